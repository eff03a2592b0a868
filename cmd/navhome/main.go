package main

import (
	"log"

	"github.com/winterhq/navhome/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ navhome failed to start: %v", err)
	}
}
