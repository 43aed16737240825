package sqlite

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"tiktok-transcript/internal/app/model"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS transcriptions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	source_url TEXT NOT NULL,
	video_file_name TEXT,
	audio_file_name TEXT,
	audio_duration INTEGER DEFAULT 0,
	transcription TEXT,
	created_at TIMESTAMP NOT NULL,
	has_error INTEGER DEFAULT 0,
	error_message TEXT
);`

type SQLiteDB struct {
	db *sql.DB
}

func NewSQLiteDB(dbFilePath string) *SQLiteDB {
	db, err := sql.Open("sqlite3", dbFilePath)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		log.Fatalf("Failed to create table: %v\n", err)
	}
	return &SQLiteDB{db: db}
}

func (sdb *SQLiteDB) Close() error {
	return sdb.db.Close()
}

func (sdb *SQLiteDB) RecordRun(sourceURL, videoFileName, audioFileName string, audioDuration int, transcription string,
	createdAt time.Time, hasError int, errorMessage string) error {
	insertSQL := `INSERT INTO transcriptions (source_url, video_file_name, audio_file_name, audio_duration, transcription, created_at, has_error, error_message) VALUES (?, ?, ?, ?, ?, ?, ?, ?);`
	_, err := sdb.db.Exec(insertSQL, sourceURL, videoFileName, audioFileName, audioDuration, transcription, createdAt, hasError, errorMessage)
	if err != nil {
		return fmt.Errorf("failed to insert run into database: %w", err)
	}
	return nil
}

func (sdb *SQLiteDB) GetRecent(limit int) ([]model.Transcription, error) {
	sqlStr := `
		SELECT id, source_url, video_file_name, audio_file_name, audio_duration, transcription, created_at, error_message
		FROM transcriptions
		ORDER BY created_at DESC
		LIMIT ?;`
	rows, err := sdb.db.Query(sqlStr, limit)
	if err != nil {
		return nil, fmt.Errorf("query failed: %v", err)
	}
	defer rows.Close()

	return scanTranscriptions(rows)
}

func (sdb *SQLiteDB) GetAll() ([]model.Transcription, error) {
	sqlStr := `
		SELECT id, source_url, video_file_name, audio_file_name, audio_duration, transcription, created_at, error_message
		FROM transcriptions
		ORDER BY created_at DESC;`
	rows, err := sdb.db.Query(sqlStr)
	if err != nil {
		return nil, fmt.Errorf("query failed: %v", err)
	}
	defer rows.Close()

	return scanTranscriptions(rows)
}

func scanTranscriptions(rows *sql.Rows) ([]model.Transcription, error) {
	transcriptions := make([]model.Transcription, 0)

	for rows.Next() {
		var t model.Transcription
		err := rows.Scan(&t.ID, &t.SourceURL, &t.VideoFileName, &t.AudioFileName,
			&t.AudioDuration, &t.Transcription, &t.CreatedAt, &t.ErrorMessage)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %v", err)
		}

		transcriptions = append(transcriptions, t)
	}
	return transcriptions, rows.Err()
}
