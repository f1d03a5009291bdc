package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(".env.local"); err != nil {
		log.Printf("Warning: Could not load .env.local file: %v", err)
	}

	// Get database URL
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	// Connect to database
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test connection
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	fmt.Println("🔍 Checking leads in the database...")
	fmt.Println(strings.Repeat("=", 50))

	rows, err := db.Query(`
		SELECT id, first_name, last_name, email, interested_in, source, status, created_at
		FROM leads
		ORDER BY created_at DESC
	`)
	if err != nil {
		log.Fatalf("Failed to query leads: %v", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var (
			id, firstName, lastName, email string
			interestedIn, source, status   string
			createdAt                      string
		)
		if err := rows.Scan(&id, &firstName, &lastName, &email, &interestedIn, &source, &status, &createdAt); err != nil {
			log.Fatalf("Failed to scan lead: %v", err)
		}

		count++
		fmt.Printf("%-36s %-20s %-30s %-15s %-15s %s\n",
			id, firstName+" "+lastName, email, interestedIn, status, createdAt)
	}
	if err := rows.Err(); err != nil {
		log.Fatalf("Failed to iterate leads: %v", err)
	}

	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("Total: %d leads\n", count)

	// Per-status breakdown
	statusRows, err := db.Query(`SELECT status, COUNT(*) FROM leads GROUP BY status ORDER BY status`)
	if err != nil {
		log.Fatalf("Failed to query status counts: %v", err)
	}
	defer statusRows.Close()

	for statusRows.Next() {
		var status string
		var n int
		if err := statusRows.Scan(&status, &n); err != nil {
			log.Fatalf("Failed to scan status count: %v", err)
		}
		fmt.Printf("  %-12s %d\n", status, n)
	}
}
