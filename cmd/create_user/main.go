package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"tulisan/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	role := flag.String("role", "user", "role for the new user (user, administrator)")
	flag.Parse()
	if flag.NArg() < 2 {
		fmt.Println("usage: go run ./cmd/create_user [-role name] <username> <password>")
		os.Exit(2)
	}
	username := flag.Arg(0)
	password := flag.Arg(1)
	if len(password) < 6 { // same policy as the register endpoint
		log.Fatal("password too short (min 6)")
	}

	dsn := os.Getenv("DB_DSN")
	if strings.TrimSpace(dsn) == "" {
		log.Fatal("DB_DSN not set in environment")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}

	var r models.Role
	if err := db.Where("name = ?", *role).First(&r).Error; err != nil {
		if *role != "user" {
			log.Fatalf("role %q not found", *role)
		}
		r = models.Role{Name: "user", Description: "regular user"}
		db.Create(&r)
	}

	var existing models.User
	if err := db.Where("username = ?", username).First(&existing).Error; err == nil {
		fmt.Printf("user %s already exists (id=%d)\n", username, existing.ID)
		os.Exit(0)
	}

	hpw, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("bcrypt failed: %v", err)
	}
	rid := r.ID
	user := models.User{Username: username, HashedPassword: hpw, RoleID: &rid}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("failed to create user: %v", err)
	}
	prof := models.Profile{UserID: user.ID, Name: username}
	if err := db.Create(&prof).Error; err != nil {
		log.Printf("warning: failed to create profile: %v", err)
	}
	fmt.Printf("created user %s id=%d role=%s\n", username, user.ID, r.Name)
}
