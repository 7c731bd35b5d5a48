// Package ui renders the game in the terminal and feeds player input back
// into the engine. It holds no game rules of its own.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"othello/internal/config"
	"othello/internal/engine"
)

// App is the terminal front end: one tview application driving one game.
// Both players share the keyboard and take turns on the same board.
type App struct {
	app   *tview.Application
	game  *engine.Game
	theme Theme

	showHints bool

	board  *tview.Table
	status *tview.TextView
}

// New builds the front end with cfg's presentation defaults. The start
// screen lets the players adjust them before every game.
func New(cfg config.Config) *App {
	return &App{
		app:       tview.NewApplication(),
		game:      engine.NewGame(),
		theme:     ThemeByName(cfg.Theme),
		showHints: cfg.ShowHints,
	}
}

// Run starts the UI loop and blocks until a player quits.
func (a *App) Run() error {
	a.app.EnableMouse(true)
	a.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			a.app.Stop()
			return nil
		}
		return event
	})

	a.showStartScreen()

	return a.app.Run()
}

func (a *App) showStartScreen() {
	themeNames := ThemeNames()
	themeIndex := 0
	for i, name := range themeNames {
		if name == a.theme.Name {
			themeIndex = i
		}
	}

	form := tview.NewForm()
	form.AddCheckbox("Show legal moves", a.showHints, func(checked bool) {
		a.showHints = checked
	})
	form.AddDropDown("Theme", themeNames, themeIndex, func(option string, index int) {
		a.theme = ThemeByName(option)
	})
	form.AddButton("Start Game", func() {
		a.startGame()
	})
	form.AddButton("Quit", func() {
		a.app.Stop()
	})
	form.SetBorder(true).SetTitle(" Othello ").SetTitleAlign(tview.AlignCenter)

	a.app.SetRoot(form, true).SetFocus(form)
}

func (a *App) startGame() {
	a.game.Reset()

	a.board = tview.NewTable()
	a.board.SetSelectable(true, true)
	a.board.SetBorders(true)
	a.board.SetBorder(true)
	a.board.SetBorderColor(a.theme.Border)
	a.board.SetTitleColor(a.theme.Title)
	a.board.SetTitleAlign(tview.AlignLeft)
	a.board.SetSelectedFunc(func(row, column int) {
		a.tryMove(engine.Position{Row: row, Col: column})
	})

	a.status = tview.NewTextView()
	a.status.SetBorder(true)
	a.status.SetTitle(" Score ")

	flex := tview.NewFlex().
		AddItem(a.board, 0, 1, true).
		AddItem(a.status, 30, 1, false)

	a.updateBoard("Black begins.")

	a.app.SetRoot(flex, true).SetFocus(a.board)
}

// tryMove feeds one chosen cell into the engine. Illegal choices are
// ignored so the player simply picks again.
func (a *App) tryMove(pos engine.Position) {
	receipt, err := a.game.Apply(a.game.Current(), pos)
	if err != nil {
		return
	}

	message := fmt.Sprintf("%s played %s.", receipt.Player, receipt.Pos)
	if receipt.Passed != engine.Empty {
		message += fmt.Sprintf("\n%s has no move, %s plays again.", receipt.Passed, receipt.Player)
	}
	a.updateBoard(message)

	if receipt.Over {
		a.showGameOver()
	}
}

// updateBoard redraws every cell from a fresh snapshot and refreshes the
// title and the score text.
func (a *App) updateBoard(message string) {
	snapshot := a.game.Board()
	current := a.game.Current()

	legal := make(map[engine.Position]bool)
	if a.showHints && !a.game.Over() {
		for _, move := range a.game.LegalMoves(current) {
			legal[move.Pos] = true
		}
	}

	for r := 0; r < engine.Size; r++ {
		for c := 0; c < engine.Size; c++ {
			pos := engine.Position{Row: r, Col: c}

			cell := tview.NewTableCell(a.theme.EmptyCell)
			cell.SetAlign(tview.AlignCenter)
			if a.theme.Background != tcell.ColorDefault {
				cell.SetBackgroundColor(a.theme.Background)
			}

			switch snapshot[r][c] {
			case engine.Black:
				cell.SetText(a.theme.BlackDisc)
			case engine.White:
				cell.SetText(a.theme.WhiteDisc)
			default:
				if legal[pos] {
					cell.SetText(a.theme.HintMark)
					cell.SetTextColor(a.theme.Hint)
				}
				target := pos
				cell.SetClickedFunc(func() bool {
					a.tryMove(target)
					return true
				})
			}

			a.board.SetCell(r, c, cell)
		}
	}

	a.board.SetTitle(fmt.Sprintf(" Othello - %s's turn ", current))

	black, white := a.game.Score()
	a.status.SetText(fmt.Sprintf("Black: %d\nWhite: %d\n\n%s", black, white, message))
}

func (a *App) showGameOver() {
	black, white := a.game.Score()

	var result string
	switch a.game.Winner() {
	case engine.Black:
		result = "Black wins!"
	case engine.White:
		result = "White wins!"
	default:
		result = "It's a tie!"
	}

	modal := tview.NewModal().
		SetText(fmt.Sprintf("Game Over!\n%s\nBlack: %d - White: %d", result, black, white)).
		AddButtons([]string{"New Game", "Quit"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			if buttonLabel == "New Game" {
				a.showStartScreen()
			} else {
				a.app.Stop()
			}
		})

	a.app.SetRoot(modal, false).SetFocus(modal)
}
