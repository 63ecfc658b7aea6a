package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	dir := flag.String("dir", defaultMigrationsDir(), "directory containing the migration files")
	down := flag.Bool("down", false, "apply the down migration instead of the up one")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatal("a migration name is required")
	}
	name := flag.Arg(0)

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db, err := sql.Open("postgres", dbConnString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	path, err := findMigration(*dir, name, *down)
	if err != nil {
		log.Fatal(err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("failed to read %s: %v", path, err)
	}

	if _, err := db.Exec(string(content)); err != nil {
		log.Fatalf("failed to apply %s: %v", filepath.Base(path), err)
	}

	fmt.Printf("Applied %s\n", filepath.Base(path))
}

func defaultMigrationsDir() string {
	if dir := os.Getenv("MIGRATIONS_DIR"); dir != "" {
		return dir
	}
	return filepath.Join("internal", "adapters", "repository", "postgres", "migrations")
}

// findMigration matches by substring, so both "000002" and "create_voters"
// resolve to 000002_create_voters.up.sql.
func findMigration(dir, name string, down bool) (string, error) {
	suffix := ".up.sql"
	if down {
		suffix = ".down.sql"
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.Contains(entry.Name(), name) && strings.HasSuffix(entry.Name(), suffix) {
			return filepath.Join(dir, entry.Name()), nil
		}
	}

	return "", fmt.Errorf("no migration matching %q in %s", name, dir)
}

func dbConnString() string {
	dbName := os.Getenv("POSTGRES_DB")
	user := os.Getenv("POSTGRES_USER")
	password := os.Getenv("POSTGRES_PASSWORD")
	host := os.Getenv("POSTGRES_HOST")
	port := os.Getenv("POSTGRES_PORT")
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbName)
}
