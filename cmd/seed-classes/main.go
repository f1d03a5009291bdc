package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"crossfit-gym-platform/internal/services"

	"github.com/joho/godotenv"
)

// Pushes the demo week of classes into the gym management backend so a local
// setup has a schedule to browse without manual data entry.
func main() {
	if err := godotenv.Load(".env.local"); err != nil {
		log.Printf("Warning: Could not load .env.local file: %v", err)
	}

	baseURL := os.Getenv("WODIFY_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}
	apiKey := os.Getenv("WODIFY_API_KEY")

	classes := services.MockClasses()
	fmt.Printf("Seeding %d classes into %s...\n", len(classes), baseURL)

	client := &http.Client{Timeout: 10 * time.Second}

	seeded := 0
	for _, class := range classes {
		payload, err := json.Marshal(class)
		if err != nil {
			log.Fatalf("Failed to marshal class %s: %v", class.ID, err)
		}

		req, err := http.NewRequest(http.MethodPost, baseURL+"/api/schedule/classes", bytes.NewReader(payload))
		if err != nil {
			log.Fatalf("Failed to create request: %v", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if apiKey != "" {
			req.Header.Set("X-Api-Key", apiKey)
		}

		resp, err := client.Do(req)
		if err != nil {
			log.Fatalf("Failed to seed class %s: %v", class.ID, err)
		}
		resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			log.Printf("Backend rejected class %s: %d", class.ID, resp.StatusCode)
			continue
		}

		fmt.Printf("  ✓ %s %s %s (%s)\n", class.Weekday, class.StartTime, class.Name, class.Type)
		seeded++
	}

	fmt.Printf("Done: %d/%d classes seeded\n", seeded, len(classes))
}
