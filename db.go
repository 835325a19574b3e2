package main

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

var db *sql.DB

// initDB opens (or creates) the SQLite database backing visitor analytics.
func initDB(path string) error {
	var err error
	db, err = sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	return db.Ping()
}

func closeDB() {
	if db != nil {
		db.Close()
	}
}
