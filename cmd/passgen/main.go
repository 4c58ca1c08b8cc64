package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// OPERATOR_SECRET may live in .env alongside the API server's settings.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
