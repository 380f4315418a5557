package db

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS feedback (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user TEXT NOT NULL,
	comment TEXT NOT NULL,
	timestamp TEXT NOT NULL
);`

func init() {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Connect открывает файл SQLite и создаёт схему, если её ещё нет.
func Connect(path string) (*sqlx.DB, error) {
	conn, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, err
	}
	// файл блокируется целиком, второй писатель не нужен
	conn.SetMaxOpenConns(1)
	if _, err := conn.Exec(schema); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return conn, nil
}
