// Command seedadmin creates the initial admin user.
// Usage: MARKGUARD_ADMIN_EMAIL=... MARKGUARD_ADMIN_PASSWORD=... go run ./cmd/seedadmin
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"markguard/internal/config"
	"markguard/internal/domain"
	"markguard/internal/repository/postgres"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	email := os.Getenv("MARKGUARD_ADMIN_EMAIL")
	password := os.Getenv("MARKGUARD_ADMIN_PASSWORD")
	name := os.Getenv("MARKGUARD_ADMIN_NAME")
	if email == "" || password == "" {
		return errors.New("MARKGUARD_ADMIN_EMAIL and MARKGUARD_ADMIN_PASSWORD are required")
	}
	if name == "" {
		name = "Administrator"
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepo(db)
	ctx := context.Background()

	if _, err := userRepo.GetByEmail(ctx, email); err == nil {
		log.Printf("admin user %s already exists, nothing to do", email)
		return nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("checking for existing admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	admin := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     name,
		IsAdmin:      true,
		IsActive:     true,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}

	log.Printf("admin user %s created (id %s)", email, admin.ID)
	return nil
}
