package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"chatline/internal/config"
	"chatline/internal/dbmongo"
	"chatline/internal/dbmysql"
	"chatline/internal/di"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using system env variables")
	}

	cfg := config.LoadConfig()
	log.Println("Configuration loaded")

	db, err := dbmysql.NewMySQL(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	var media *dbmongo.MediaStorage
	if cfg.MongoDB.Enabled {
		mongoClient, err := dbmongo.NewMongoConnection(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize media storage: %v", err)
		}
		defer mongoClient.Close(context.Background())
		media = dbmongo.NewMediaStorage(mongoClient)
		log.Println("Media storage enabled")
	}

	server := di.InitializeServer(db, media)
	log.Println("Dependencies wired successfully")

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      server.Router(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	log.Printf("chat service listening on %s", addr)
	if err := httpServer.ListenAndServe(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
