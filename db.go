package main

import (
	"log"
	"os"
	"strings"

	"tulisan/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

func initDB() {
	var err error
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN is not set. This project requires a Postgres DSN in DB_DSN.")
	}
	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect postgres database:", err)
	}
	// Control schema migrations with env DB_AUTO_MIGRATE (default true).
	shouldMigrate := true
	if v := os.Getenv("DB_AUTO_MIGRATE"); v != "" {
		lv := strings.ToLower(v)
		if lv == "false" || lv == "0" || lv == "no" {
			shouldMigrate = false
		}
	}
	// Roles first so the users FK can be applied safely.
	if shouldMigrate {
		if err := db.AutoMigrate(&models.Role{}); err != nil {
			log.Printf("migration warning (roles): %v", err)
		}
	}
	seedRoles()

	if shouldMigrate {
		// Migrate models individually so a failure on one doesn't block others.
		if err := db.AutoMigrate(&models.User{}); err != nil {
			log.Printf("migration warning (users): %v", err)
		}
		if err := db.AutoMigrate(&models.Transkrip{}); err != nil {
			log.Printf("migration warning (transkrips): %v", err)
		}
		if err := db.AutoMigrate(&models.Profile{}); err != nil {
			log.Printf("migration warning (profiles): %v", err)
		}
		if err := db.AutoMigrate(&models.Upload{}); err != nil {
			log.Printf("migration warning (uploads): %v", err)
		}
		if err := db.AutoMigrate(&models.RefreshToken{}); err != nil {
			log.Printf("migration warning (refresh_tokens): %v", err)
		}
	}
	seedDB()
}

func seedRoles() {
	roles := []models.Role{{Name: "administrator", Description: "full access"}, {Name: "user", Description: "regular user"}}
	for _, r := range roles {
		var cnt int64
		db.Model(&models.Role{}).Where("name = ?", r.Name).Count(&cnt)
		if cnt == 0 {
			db.Create(&r)
		}
	}
}

func seedDB() {
	seedRoles()

	// Seed an admin user once.
	var count int64
	db.Model(&models.User{}).Where("username = ?", "admin").Count(&count)
	if count == 0 {
		var role models.Role
		if err := db.Where("name = ?", "administrator").First(&role).Error; err != nil {
			log.Printf("failed to find administrator role: %v", err)
		}
		rid := role.ID
		admin := models.User{Username: "admin", RoleID: &rid}
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		admin.HashedPassword = hashedPassword
		db.Create(&admin)
		log.Println("Seeded admin user: username=admin, password=admin123")
	}
	// Ensure admin has a one-to-one profile.
	var admin models.User
	if err := db.Where("username = ?", "admin").First(&admin).Error; err != nil {
		log.Printf("failed to find admin user after seeding: %v", err)
		return
	}
	var pcount int64
	db.Model(&models.Profile{}).Where("user_id = ?", admin.ID).Count(&pcount)
	if pcount == 0 {
		profile := models.Profile{UserID: admin.ID, Name: "Administrator", Email: "admin@example.com"}
		if err := db.Create(&profile).Error; err != nil {
			log.Printf("failed to create profile for admin: %v", err)
		}
	}
	ensureUploadBase()
}

// ensureUploadBase creates the base uploads directory.
func ensureUploadBase() {
	base := uploadBaseDir()
	if err := os.MkdirAll(base, 0755); err != nil {
		log.Printf("failed to create upload base dir %s: %v", base, err)
	}
}

// uploadBaseDir returns the base directory for stored images (configurable via UPLOAD_BASE env).
func uploadBaseDir() string {
	if v := os.Getenv("UPLOAD_BASE"); v != "" {
		return v
	}
	return "uploads"
}
