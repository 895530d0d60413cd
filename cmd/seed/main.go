package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"femcare/internal/utils"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file from project root
	if err := godotenv.Load(); err != nil {
		// Try loading from parent directory (in case running from cmd/seed/)
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	adminCmd := flag.NewFlagSet("admin", flag.ExitOnError)
	adminEmail := adminCmd.String("email", "admin@femcare.local", "Admin account email")
	adminPassword := adminCmd.String("password", "ChangeMe123!", "Admin account password")

	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	numFeminine := seedCmd.Int("feminine", utils.DefaultNumFeminine, "Number of demo feminine users")
	numWorkers := seedCmd.Int("workers", 5, "Number of demo health workers")

	cleanCmd := flag.NewFlagSet("clean", flag.ExitOnError)

	if len(os.Args) < 2 {
		fmt.Println("Usage: seed <admin|seed|clean> [flags]")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "admin":
		adminCmd.Parse(os.Args[2:])
		if err := utils.SeedAdmin(*adminEmail, *adminPassword); err != nil {
			log.Fatalf("Admin seeding failed: %v", err)
		}
	case "seed":
		seedCmd.Parse(os.Args[2:])
		if err := utils.SeedDemoData(*numFeminine, *numWorkers); err != nil {
			log.Fatalf("Demo seeding failed: %v", err)
		}
	case "clean":
		cleanCmd.Parse(os.Args[2:])
		if err := utils.CleanupDemoData(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		fmt.Println("Usage: seed <admin|seed|clean> [flags]")
		os.Exit(1)
	}
}
