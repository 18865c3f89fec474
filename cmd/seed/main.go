package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"agrivision/database"
	"agrivision/internal/models"
	"agrivision/internal/repository"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func init() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

var defaultPractices = []models.CarbonPractice{
	{Name: "Zero Tillage", BaseFactor: 1.5, Unit: "kg/acre"},
	{Name: "Compost Application", BaseFactor: 2.5, Unit: "kg/ton"},
	{Name: "Cover Cropping", BaseFactor: 1.0, Unit: "kg/acre"},
	{Name: "Drip Irrigation", BaseFactor: 1.0, Unit: "kg/acre"},
	{Name: "Agroforestry", BaseFactor: 1.0, Unit: "kg/acre"},
	{Name: "Organic Pesticide Use", BaseFactor: 1.0, Unit: "kg/acre"},
}

func main() {
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	numUsers := seedCmd.Int("users", 5, "Number of demo farmers to create")

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	switch os.Args[1] {
	case "practices":
		if err := seedPractices(); err != nil {
			log.Fatalf("Failed to seed practices: %v", err)
		}
	case "seed":
		seedCmd.Parse(os.Args[2:])
		if err := seedPractices(); err != nil {
			log.Fatalf("Failed to seed practices: %v", err)
		}
		if err := seedFarmers(*numUsers); err != nil {
			log.Fatalf("Failed to seed farmers: %v", err)
		}
	default:
		printHelp()
		os.Exit(1)
	}
}

func seedPractices() error {
	repo := repository.NewCarbonPracticeRepository(database.DB)

	existing, err := repo.FindAll()
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(existing))
	for _, p := range existing {
		known[p.Name] = true
	}

	seeded := 0
	for _, practice := range defaultPractices {
		if known[practice.Name] {
			continue
		}
		p := practice
		if err := repo.Create(&p); err != nil {
			return err
		}
		seeded++
	}

	log.Printf("Seeded %d carbon practices (%d already present)", seeded, len(existing))
	return nil
}

func seedFarmers(count int) error {
	userRepo := repository.NewUserRepository(database.DB)
	profileRepo := repository.NewUserProfileRepository(database.DB)

	for i := 1; i <= count; i++ {
		email := fmt.Sprintf("farmer%d@agrivision.test", i)
		if _, err := userRepo.GetUserByEmail(email); err == nil {
			continue
		} else if err != gorm.ErrRecordNotFound {
			return err
		}

		user := &models.User{
			Name:     fmt.Sprintf("Demo Farmer %d", i),
			Email:    email,
			Password: "not-a-real-password",
			Role:     models.RoleFarmer,
		}
		if err := userRepo.Create(user); err != nil {
			return err
		}

		profile := &models.UserProfile{
			UserID:   user.ID,
			FullName: user.Name,
			FarmName: fmt.Sprintf("Demo Farm %d", i),
			Location: "Nashik",
			District: "Nashik",
		}
		if err := profileRepo.Upsert(profile); err != nil {
			return err
		}
	}

	log.Printf("Seeded %d demo farmers with profiles", count)
	return nil
}

func printHelp() {
	fmt.Println("Usage:")
	fmt.Println("  seed practices         Seed the carbon practice catalog")
	fmt.Println("  seed seed [--users N]  Seed practices plus N demo farmers")
}
