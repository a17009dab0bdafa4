// Command seed populates the development database with sample data.
package main

import (
	"context"
	"flag"
	"log"

	"fireside/internal/config"
	"fireside/internal/database"
	"fireside/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	accounts := flag.Int("accounts", 10, "number of accounts to create")
	posts := flag.Int("posts", 3, "posts per account")
	skipBcrypt := flag.Bool("skip-bcrypt", false, "skip password hashing (fast local seeding)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	opts := seed.DefaultOptions()
	opts.Accounts = *accounts
	opts.PostsPerAccount = *posts
	opts.SkipBcrypt = *skipBcrypt

	if err := seed.Run(context.Background(), db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
