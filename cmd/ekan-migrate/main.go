package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	// The SQLite driver "sqlite" is registered by modernc.org/sqlite, pulled
	// in through golang-migrate's sqlite database driver.
	"github.com/Fanaperana/ekan/internal/migrate"
)

func main() {
	dsn := flag.String("dsn", ".ekan/ekan.db", "SQLite database path")
	help := flag.Bool("help", false, "Show help message")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "ekan database migration tool\n\n")
		fmt.Fprintf(os.Stderr, "Applies the versioned schema migrations to an ekan SQLite database.\n\n")
		fmt.Fprintf(os.Stderr, "OPTIONS:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEXAMPLE:\n\n")
		fmt.Fprintf(os.Stderr, "    %s -dsn=.ekan/ekan.db\n\n", os.Args[0])
	}

	flag.Parse()

	if *help {
		flag.Usage()
		os.Exit(0)
	}

	if *dsn == "" {
		log.Fatal("Error: -dsn flag is required\n\nRun with -help for usage information.")
	}

	log.Printf("Connecting to database %s...\n", *dsn)
	sqlDB, err := sql.Open("sqlite", *dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v\n", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v\n", err)
	}

	log.Printf("Running migrations...\n")
	if err := migrate.RunMigrations(sqlDB); err != nil {
		log.Fatalf("Migration failed: %v\n", err)
	}

	log.Printf("All migrations completed successfully\n")
}
