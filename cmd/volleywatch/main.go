package main

import (
	"github.com/joho/godotenv"

	"github.com/dmorosoli/volleywatch/internal/cli"
)

func main() {
	// Local development keeps secrets in a .env file; scheduled runs set
	// real environment variables. A missing file is fine.
	_ = godotenv.Load()

	cli.Execute()
}
