package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	db *sql.DB
}

func NewDB(path string) (*DB, error) {
	// Создаем директорию для БД, если её нет
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %v", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	// Создаем таблицы
	if err := createTables(db); err != nil {
		return nil, fmt.Errorf("failed to create tables: %v", err)
	}

	log.Printf("База данных инициализирована: %s", path)
	return &DB{db: db}, nil
}

func createTables(db *sql.DB) error {
	queries := []string{
		// Таблица завершенных анкет
		`CREATE TABLE IF NOT EXISTS intakes (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            user_id INTEGER NOT NULL,
            username TEXT,
            dependency TEXT,
            timezone TEXT,
            city TEXT,
            help_type TEXT,
            consultation TEXT,
            gender TEXT,
            age_user TEXT,
            age_specialist TEXT,
            literature TEXT,
            discovery TEXT,
            group_name TEXT,
            psychologist_name TEXT,
            created_at DATETIME DEFAULT CURRENT_TIMESTAMP
        )`,
		// Таблица анонимных вопросов
		`CREATE TABLE IF NOT EXISTS questions (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            user_id INTEGER NOT NULL,
            text TEXT NOT NULL,
            created_at DATETIME DEFAULT CURRENT_TIMESTAMP
        )`,

		`CREATE INDEX IF NOT EXISTS idx_intakes_user_id ON intakes(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_intakes_created_at ON intakes(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_questions_user_id ON questions(user_id)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("error executing query %s: %v", query, err)
		}
	}
	return nil
}

func (db *DB) Close() error {
	return db.db.Close()
}
