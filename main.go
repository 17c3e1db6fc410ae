package main

import (
	"flag"
	"fmt"
	"log"

	"taskboard/internal/config"
	"taskboard/internal/database"
	"taskboard/internal/models"
	"taskboard/internal/router"

	"gorm.io/gorm"
)

func main() {
	seed := flag.Bool("seed", false, "create the demo user and admin, then exit")
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	flag.Parse()

	// load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if cfg.JWT.Secret == config.InsecureDevSecret {
		log.Println("warn: the JWT secret is not set. This is unsafe! If running in production, set TB_JWT_SECRET.")
	}

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	if *seed {
		if err := seedUsers(db); err != nil {
			log.Fatalf("seed: %v", err)
		}
		return
	}

	// setup router
	r := router.SetupRouter(cfg, db)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}

// seedUsers creates one regular user and one admin for local development.
func seedUsers(db *gorm.DB) error {
	testUser := models.User{
		Email:     "hari@happy5.co",
		FirstName: "Hari",
		LastName:  "Hari",
	}
	if err := db.Create(&testUser).Error; err != nil {
		return fmt.Errorf("create test user: %w", err)
	}

	testAdmin := models.User{
		Email:     "administrator@happy5.co",
		FirstName: "Admin",
		LastName:  "Admin",
		IsAdmin:   true,
	}
	if err := db.Create(&testAdmin).Error; err != nil {
		return fmt.Errorf("create test admin: %w", err)
	}

	log.Printf("created test user\tid: %d | email: %s", testUser.ID, testUser.Email)
	log.Printf("created test admin\tid: %d | email: %s", testAdmin.ID, testAdmin.Email)
	return nil
}
