package main

import (
	"flag"
	"log"

	"go-productos-api/internal/model"
	"go-productos-api/pkg/database"

	"github.com/joho/godotenv"
)

// Seeds a login account so a fresh deployment has someone to hand tokens to.
func main() {
	email := flag.String("email", "admin@example.com", "email for the new account")
	password := flag.String("password", "admin123", "password for the new account")
	name := flag.String("name", "Administrator", "full name for the new account")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	db := database.ConnectDB()
	db.AutoMigrate(&model.User{})

	var existing model.User
	if err := db.Where("email = ?", *email).First(&existing).Error; err == nil {
		log.Fatalf("User %s already exists", *email)
	}

	user := &model.User{
		Email:    *email,
		FullName: *name,
	}
	if err := user.SetPassword(*password); err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	if err := db.Create(user).Error; err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	log.Printf("User created: %s (%s)", user.Email, user.ID)
}
