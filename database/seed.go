package database

import (
	"log"

	"dlms/config"
	"dlms/models"

	"golang.org/x/crypto/bcrypt"
)

// SeedUsers creates the default admin, instructor and student accounts
// when the users table is empty.
func SeedUsers() {
	db := Database.Db

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		log.Printf("Error counting users for seeding: %v", err)
		return
	}
	if count > 0 {
		return
	}

	defaults := []struct {
		UserName string
		Password string
		Email    string
		Role     string
	}{
		{"admin", "admin123", "admin@dlms.com", "ADMIN"},
		{"instructor", "instructor123", "instructor@dlms.com", "INSTRUCTOR"},
		{"student", "student123", "student@dlms.com", "STUDENT"},
	}

	for _, d := range defaults {
		hashed, err := bcrypt.GenerateFromPassword([]byte(d.Password), config.AppConfig.SaltRound)
		if err != nil {
			log.Printf("Error hashing seed password for %s: %v", d.UserName, err)
			continue
		}
		user := models.User{
			UserName: d.UserName,
			Password: string(hashed),
			Email:    d.Email,
			Role:     d.Role,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("Error seeding user %s: %v", d.UserName, err)
		}
	}

	log.Println("Dummy data seeded: admin, instructor, student users created.")
}
