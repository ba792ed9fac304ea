package main

import (
	"context"
	"flag"
	"os"

	"github.com/slotbook/slotbook/internal/app"
	log "github.com/sirupsen/logrus"
)

func init() {
	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		logrusLevel, err := log.ParseLevel(level)
		if err != nil {
			log.Fatal(err)
		}
		log.SetLevel(logrusLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func main() {
	week := flag.String("week", "", "week to show: today, previous, next, or YYYY-MM-DD (default: current week)")
	flag.Parse()

	application, err := app.NewApplication()
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}
	if err := application.Run(context.Background(), *week); err != nil {
		log.Fatal(err)
	}
}
