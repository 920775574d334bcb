package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/sumkit/sumkit/internal/cli"
)

func main() {
	// Optional .env for API keys; absence is fine.
	_ = godotenv.Load()

	os.Exit(cli.Execute())
}
