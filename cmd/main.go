package main

import (
	"github.com/joho/godotenv"

	"github.com/contextpack/contextpack/cmd/cli"
)

func main() {
	// Load .env if present; real environment variables win.
	_ = godotenv.Load()

	cli.Execute()
}
