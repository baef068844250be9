// Command create-admin provisions an administrator account. Users are never
// created through the HTTP API.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/imdhruv9/uttam-printing/internal/config"
	"github.com/imdhruv9/uttam-printing/internal/modules/user"
)

func main() {
	username := flag.String("username", "", "admin username")
	password := flag.String("password", "", "admin password")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("both -username and -password are required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	repo := user.NewPostgresRepository(db)
	u := &user.User{
		ID:           uuid.New(),
		Username:     *username,
		PasswordHash: string(hash),
		Roles:        []string{user.RoleAdmin},
	}
	if err := repo.Create(context.Background(), u); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("admin user %q created (id %s)\n", u.Username, u.ID)
}
