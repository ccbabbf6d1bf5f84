package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/tucasahr/hr-apigateway/internal/bootstrap"
	"github.com/tucasahr/hr-apigateway/internal/database"
	"github.com/tucasahr/hr-apigateway/internal/logger"
)

func main() {
	action := flag.String("action", "seed", "Action to perform: seed, clear, schema")
	employees := flag.Int("employees", 6, "Number of employees to seed")
	weeks := flag.Int("weeks", 4, "Number of weeks of time records to seed")
	flag.Parse()

	ctx := context.Background()

	app := bootstrap.NewApp()
	if err := app.Initialize(ctx); err != nil {
		logger.ErrorLog(ctx, "Failed to initialize application", err)
		log.Fatal(err)
	}
	defer app.DB.Close()

	seeder := database.NewDataSeeder(app.DB)

	switch *action {
	case "seed":
		if err := seeder.SeedData(ctx, *employees, *weeks); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}

	case "clear":
		fmt.Println("This will delete all HR data!")
		fmt.Print("Continue? (yes/no): ")

		var response string
		fmt.Scanln(&response)
		if response != "yes" {
			fmt.Println("Cancelled.")
			return
		}
		if err := seeder.ClearData(ctx); err != nil {
			log.Fatalf("Clear failed: %v", err)
		}

	case "schema":
		if err := seeder.EnsureSchema(ctx); err != nil {
			log.Fatalf("Schema creation failed: %v", err)
		}
		fmt.Println("Schema is up to date.")

	default:
		fmt.Printf("Unknown action: %s\n", *action)
		flag.PrintDefaults()
	}
}
