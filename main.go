// @title           Task Manager API
// @version         1.0
// @description     Multi-user task tracking API with JWT authentication
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"log"
	"net/http"
	"os"

	gorilla "github.com/gorilla/handlers"

	"taskman-api/auth"
	"taskman-api/config"
	"taskman-api/db"
	_ "taskman-api/docs"
	"taskman-api/handlers"
	"taskman-api/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	pool, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Unable to connect to DB: %v", err)
	}
	defer pool.Close()
	log.Println("Connected to PostgreSQL successfully")

	tokens := auth.NewTokenManager([]byte(cfg.JWTSecret), cfg.TokenTTL)
	h := handlers.New(store.NewUserStore(pool), store.NewTaskStore(pool), tokens, cfg.UploadDir)
	router := handlers.Routes(h, tokens)

	cors := gorilla.CORS(
		gorilla.AllowedOrigins(cfg.AllowedOrigins),
		gorilla.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gorilla.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	log.Printf("Server starting at %s", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, gorilla.LoggingHandler(os.Stdout, cors(router))))
}
