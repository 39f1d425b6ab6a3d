// Command main runs the database seeder for wrenchbase.
package main

import (
	"flag"
	"log"

	"wrenchbase/internal/config"
	"wrenchbase/internal/database"
	"wrenchbase/internal/seed"
)

func main() {
	numVehicles := flag.Int("vehicles", 50, "Number of vehicles to create")
	problemsPer := flag.Int("problems", 4, "Max problems per vehicle")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d vehicles, up to %d problems each, clean=%v\n", *numVehicles, *problemsPer, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	_, err = database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(database.DB)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("❌ Cleanup failed: %v", err)
		}
	}

	if err := seed.Catalog(database.DB); err != nil {
		log.Fatalf("❌ Catalog seeding failed: %v", err)
	}

	if _, err := s.SeedInventory(*numVehicles, *problemsPer); err != nil {
		log.Fatalf("❌ Inventory seeding failed: %v", err)
	}

	log.Println("✨ All done! Your database is now populated with test data.")
}
