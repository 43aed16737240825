package sqlite

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tiktok-transcript/internal/app/repository"
)

// TestSQLiteDB_Interface verifies SQLiteDB implements TranscriptionDAO
func TestSQLiteDB_Interface(t *testing.T) {
	var _ repository.TranscriptionDAO = (*SQLiteDB)(nil)
}

func TestSQLiteDB_Close_Unit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sdb := &SQLiteDB{db: db}

	mock.ExpectClose()

	assert.NoError(t, sdb.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRun_Unit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sdb := &SQLiteDB{db: db}
	now := time.Now()

	mock.ExpectExec("INSERT INTO transcriptions").
		WithArgs("https://www.tiktok.com/@u/video/1", "video.mp4", "video.wav", 10, "text", now, 0, "").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = sdb.RecordRun("https://www.tiktok.com/@u/video/1", "video.mp4", "video.wav", 10, "text", now, 0, "")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRun_Unit_InsertError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sdb := &SQLiteDB{db: db}

	mock.ExpectExec("INSERT INTO transcriptions").
		WillReturnError(errors.New("database is locked"))

	err = sdb.RecordRun("url", "v", "a", 0, "", time.Now(), 0, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert run")
}

func TestGetRecent_Unit_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sdb := &SQLiteDB{db: db}

	mock.ExpectQuery("SELECT (.+) FROM transcriptions").
		WillReturnError(errors.New("no such table"))

	_, err = sdb.GetRecent(5)

	assert.Error(t, err)
}

func TestGetAll_Unit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sdb := &SQLiteDB{db: db}
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "source_url", "video_file_name", "audio_file_name",
		"audio_duration", "transcription", "created_at", "error_message",
	}).AddRow(1, "url", "video.mp4", "video.wav", 7, "text", now, "")

	mock.ExpectQuery("SELECT (.+) FROM transcriptions").WillReturnRows(rows)

	runs, err := sdb.GetAll()

	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 7, runs[0].AudioDuration)
}
