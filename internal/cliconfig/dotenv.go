package cliconfig

import (
	"fmt"

	"github.com/joho/godotenv"
)

// LoadDotenv loads environment variables from a dotenv file. Variables
// already exported are never overridden. An explicitly given path must
// exist; the default ./.env is loaded only when present.
func LoadDotenv(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load env file: %w", err)
		}
		return nil
	}
	if FileExists(".env") {
		if err := godotenv.Load(); err != nil {
			return fmt.Errorf("load .env: %w", err)
		}
	}
	return nil
}
