package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config membaca variabel environment, file .env dipakai sebagai fallback saat run local
func Config(key string) string {
	godotenv.Load(".env")
	return os.Getenv(key)
}
