package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/yungbote/cyberquiz-backend/internal/app"
)

func main() {
	_ = godotenv.Load()

	application, err := app.New()
	if err != nil {
		fmt.Printf("Failed to init app: %v\n", err)
		os.Exit(1)
	}
	defer application.Log.Sync()

	if err := application.Run(); err != nil {
		application.Log.Fatal("http server exited", "error", err)
	}
}
