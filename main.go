package main

import (
	"github.com/joho/godotenv"
	"github.com/matheuskafuri/readlater/cmd"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Credentials may live in a .env file (non-fatal if missing)
	_ = godotenv.Load()

	cmd.SetVersionInfo(version, commit, date)
	cmd.Execute()
}
