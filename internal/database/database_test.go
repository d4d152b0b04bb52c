package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"oporabot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := NewDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSaveIntake(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	intake := &models.Intake{
		UserID:     123,
		Username:   "someone",
		Dependency: "alcohol",
		Timezone:   "msk",
		City:       "moscow",
		HelpType:   "groups_selection",
	}

	require.NoError(t, db.SaveIntake(ctx, intake))
	assert.NotZero(t, intake.ID)

	got, err := db.GetUserIntakes(ctx, 123)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "alcohol", got[0].Dependency)
	assert.Equal(t, "moscow", got[0].City)
	assert.False(t, got[0].CreatedAt.IsZero())
}

func TestGetUserIntakesEmpty(t *testing.T) {
	db := newTestDB(t)

	got, err := db.GetUserIntakes(context.Background(), 999)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetIntakesByDateRange(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	old := &models.Intake{UserID: 1, Dependency: "drugs", CreatedAt: time.Now().AddDate(0, 0, -30)}
	recent := &models.Intake{UserID: 2, Dependency: "gambling"}
	require.NoError(t, db.SaveIntake(ctx, old))
	require.NoError(t, db.SaveIntake(ctx, recent))

	got, err := db.GetIntakesByDateRange(ctx, time.Now().AddDate(0, 0, -7), time.Now())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].UserID)
}

func TestSaveQuestion(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	q := &models.Question{UserID: 55, Text: "Как попасть в группу?"}
	require.NoError(t, db.SaveQuestion(ctx, q))
	assert.NotZero(t, q.ID)

	got, err := db.GetQuestions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(55), got[0].UserID)
	assert.Equal(t, "Как попасть в группу?", got[0].Text)
}
