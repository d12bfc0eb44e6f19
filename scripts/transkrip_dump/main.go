package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"tulisan/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Dumps a user's transcripts to stdout, one block per file. Handy when someone
// wants their notes back out of the database as plain text.
func main() {
	username := flag.String("username", "", "user whose transcripts to dump")
	flag.Parse()
	if *username == "" {
		log.Fatal("--username is required")
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN not set in env")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	var user models.User
	if err := db.Where("username = ?", *username).First(&user).Error; err != nil {
		log.Fatalf("user not found: %v", err)
	}
	var items []models.Transkrip
	if err := db.Where("user_id = ?", user.ID).Order("file_name").Find(&items).Error; err != nil {
		log.Fatalf("query: %v", err)
	}
	for _, tk := range items {
		fmt.Printf("=== %s (engine=%s, %s)\n%s\n\n", tk.FileName, tk.Engine, tk.UpdatedAt.Format("2006-01-02"), tk.Text)
	}
	log.Printf("dumped %d transcripts for %s", len(items), *username)
}
