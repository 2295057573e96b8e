package main

import (
	"fmt"
	"log"

	"github.com/virtualdesk/internal/config"
	"github.com/virtualdesk/internal/db"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("failed to initialize database:", err)
	}

	var count int64
	db.DB.Model(&db.User{}).Count(&count)
	if count > 0 {
		fmt.Println("an admin user already exists, nothing to do")
		return
	}

	password := "admin123"
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("failed to hash password:", err)
	}

	user := db.User{
		Username: "admin",
		Password: string(hashedPassword),
	}

	if err := db.DB.Create(&user).Error; err != nil {
		log.Fatal("failed to create user:", err)
	}

	fmt.Println("default admin user created")
	fmt.Println("username: admin")
	fmt.Println("password: admin123")
}
