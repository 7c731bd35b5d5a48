package ui

import "github.com/gdamore/tcell/v2"

// DefaultTheme is used when a requested theme name is unknown.
const DefaultTheme = "classic"

// Theme bundles the colors and glyphs the board is drawn with.
type Theme struct {
	Name string

	// Border and Title color the board frame and its caption.
	Border tcell.Color
	Title  tcell.Color

	// Background fills the cells. ColorDefault keeps the terminal's own
	// background.
	Background tcell.Color

	// Hint colors the marker shown on legal moves.
	Hint tcell.Color

	BlackDisc string
	WhiteDisc string
	HintMark  string
	EmptyCell string
}

// themes lists the built-in schemes. "classic" imitates the green felt of
// a club board, "plain" leaves the terminal colors alone.
var themes = map[string]Theme{
	"classic": {
		Name:       "classic",
		Border:     tcell.ColorGreen,
		Title:      tcell.ColorGreen,
		Background: tcell.ColorGreen,
		Hint:       tcell.ColorDarkGreen,
		BlackDisc:  " ⚫ ",
		WhiteDisc:  " ⚪ ",
		HintMark:   "· ",
		EmptyCell:  "    ",
	},
	"plain": {
		Name:       "plain",
		Border:     tcell.ColorDefault,
		Title:      tcell.ColorDefault,
		Background: tcell.ColorDefault,
		Hint:       tcell.ColorGreen,
		BlackDisc:  " ⚫ ",
		WhiteDisc:  " ⚪ ",
		HintMark:   "· ",
		EmptyCell:  "    ",
	},
}

// ThemeByName returns the named theme, falling back to the default for
// unknown names.
func ThemeByName(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}

	return themes[DefaultTheme]
}

// ThemeNames returns the available theme names in a stable order.
func ThemeNames() []string {
	return []string{"classic", "plain"}
}
