package confs

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadConfig loads environment variables from a .env file if present
// and validates the settings the server cannot run without.
func LoadConfig() error {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		// Only log when the file truly doesn't exist; not an error for runtime
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}

	if JWTSecret() == "" {
		return fmt.Errorf("JWT_SECRET environment variable is required")
	}
	if GeminiAPIKey() == "" {
		log.Println("warning: GEMINI_API_KEY not set, mentor AI features disabled")
	}
	return nil
}

// JWTSecret returns the HMAC key used to sign auth tokens.
func JWTSecret() string {
	return os.Getenv("JWT_SECRET")
}

// GeminiAPIKey returns the key for the generative AI API.
func GeminiAPIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}

// Port returns the HTTP listen port, defaulting to 8080.
func Port() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8080"
}
