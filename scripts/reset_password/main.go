package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Minimal local view of the users table; avoids importing the full model set
// for a one-off maintenance script.
type User struct {
	ID             uint
	Username       string
	HashedPassword []byte
}

func main() {
	username := flag.String("username", "", "username to reset")
	password := flag.String("password", "", "new plaintext password (min 6 chars)")
	flag.Parse()
	if *username == "" || *password == "" {
		log.Fatal("--username and --password are required")
	}
	if len(*password) < 6 {
		log.Fatal("password too short (min 6)")
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN not set in env")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	var user User
	if err := db.Where("username = ?", *username).First(&user).Error; err != nil {
		log.Fatalf("user not found: %v", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("bcrypt: %v", err)
	}
	if err := db.Model(&user).Update("hashed_password", hash).Error; err != nil {
		log.Fatalf("update: %v", err)
	}
	fmt.Printf("password reset for %s (id=%d)\n", user.Username, user.ID)
}
