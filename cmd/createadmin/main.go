package main

import (
	"context"
	"flag"
	"log"

	"tebaba-backend/config"
	"tebaba-backend/internal/auth"
	"tebaba-backend/internal/database"
	"tebaba-backend/internal/model"
	"tebaba-backend/internal/repository"

	"github.com/google/uuid"
)

// Out-of-band user provisioning: the API exposes no registration endpoint,
// so accounts are created with this tool.
func main() {
	email := flag.String("email", "", "user email (required)")
	username := flag.String("username", "", "username (required)")
	password := flag.String("password", "", "plaintext password (required)")
	name := flag.String("name", "", "display name")
	role := flag.String("role", model.RoleAdmin, "user role (user or admin)")
	flag.Parse()

	if *email == "" || *username == "" || *password == "" {
		flag.Usage()
		log.Fatal("email, username and password are required")
	}
	if *role != model.RoleUser && *role != model.RoleAdmin {
		log.Fatalf("invalid role %q", *role)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	users := repository.NewUserRepository(pool)
	if _, err := users.FindByEmail(context.Background(), *email); err == nil {
		log.Fatalf("A user with email %s already exists", *email)
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user := &model.User{
		ID:             uuid.NewString(),
		Username:       *username,
		Email:          *email,
		HashedPassword: hash,
		Role:           *role,
	}
	if *name != "" {
		user.Name = name
	}

	created, err := users.Create(context.Background(), user)
	if err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}
	log.Printf("Created %s user %s (%s)", created.Role, created.Username, created.ID)
}
