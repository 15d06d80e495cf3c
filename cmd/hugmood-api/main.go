package main

import (
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real deployments set env vars directly
	_ = godotenv.Load()

	Execute()
}
