package main

import (
	"log"

	"github.com/joho/godotenv"

	"othello/internal/config"
	"othello/internal/ui"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	if err := ui.New(cfg).Run(); err != nil {
		log.Fatalf("UI error: %v", err)
	}
}
