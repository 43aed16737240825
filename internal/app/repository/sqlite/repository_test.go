package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *SQLiteDB {
	t.Helper()
	db := NewSQLiteDB(filepath.Join(t.TempDir(), "transcripts.db"))
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRecordRunAndReadBack(t *testing.T) {
	db := newTestDB(t)

	now := time.Now().UTC().Truncate(time.Second)
	err := db.RecordRun("https://www.tiktok.com/@u/video/1", "video.mp4", "video.wav",
		42, "hello world", now, 0, "")
	require.NoError(t, err)

	runs, err := db.GetAll()
	require.NoError(t, err)
	require.Len(t, runs, 1)

	run := runs[0]
	assert.Equal(t, "https://www.tiktok.com/@u/video/1", run.SourceURL)
	assert.Equal(t, "video.mp4", run.VideoFileName)
	assert.Equal(t, "video.wav", run.AudioFileName)
	assert.Equal(t, 42, run.AudioDuration)
	assert.Equal(t, "hello world", run.Transcription)
	assert.Empty(t, run.ErrorMessage)
}

func TestRecordRun_Failure(t *testing.T) {
	db := newTestDB(t)

	err := db.RecordRun("https://example.com/watch", "", "", 0, "",
		time.Now(), 1, `invalid URL: "https://example.com/watch"`)
	require.NoError(t, err)

	runs, err := db.GetAll()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Contains(t, runs[0].ErrorMessage, "invalid URL")
}

func TestGetRecent_OrderAndLimit(t *testing.T) {
	db := newTestDB(t)

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 5; i++ {
		err := db.RecordRun("https://www.tiktok.com/@u/video/1", "video.mp4", "video.wav",
			i, "text", base.Add(time.Duration(i)*time.Minute), 0, "")
		require.NoError(t, err)
	}

	runs, err := db.GetRecent(3)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	// Most recent first.
	assert.Equal(t, 4, runs[0].AudioDuration)
	assert.Equal(t, 3, runs[1].AudioDuration)
	assert.Equal(t, 2, runs[2].AudioDuration)
}

func TestGetAll_Empty(t *testing.T) {
	db := newTestDB(t)

	runs, err := db.GetAll()
	require.NoError(t, err)
	assert.Empty(t, runs)
}
