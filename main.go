package main

import (
	"context"
	"log"

	"pathfinder-server/confs"
	"pathfinder-server/db"
	"pathfinder-server/server"
	"pathfinder-server/services"
)

func main() {
	// load config
	if err := confs.LoadConfig(); err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// connect to database Postgres
	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	// mentor AI is optional; chat and roadmap features degrade without it
	var mentor *services.Mentor
	if key := confs.GeminiAPIKey(); key != "" {
		mentor, err = services.NewMentor(context.Background(), key)
		if err != nil {
			log.Fatalf("Failed to initialize mentor AI: %v", err)
		}
		defer mentor.Close()
	}

	// run server
	srv := server.NewServer(database, mentor)
	srv.Start()
}
