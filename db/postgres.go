package db

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"
)

var DB *sql.DB

func Connect() error {
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		fmt.Println("DATABASE_URL environment variable is not set")
	}

	var err error
	DB, err = sql.Open("postgres", connStr)
	if err != nil {
		return err
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(25)
	DB.SetConnMaxLifetime(5 * time.Minute)

	return DB.Ping()
}

func Close() {
	if DB != nil {
		DB.Close()
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id SERIAL PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	email TEXT NOT NULL UNIQUE,
	hashed_password TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS trending_news (
	id SERIAL PRIMARY KEY,
	headline TEXT NOT NULL,
	link TEXT NOT NULL UNIQUE,
	snippet TEXT,
	article TEXT,
	fetched_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// Migrate creates the schema on first start. Both tables are append-only from
// the application's point of view, so there is nothing to version yet.
func Migrate() error {
	_, err := DB.Exec(schema)
	return err
}
