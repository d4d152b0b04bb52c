package repository

import (
	"context"
	"testing"
	"time"

	"oporabot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionRepository(t *testing.T) {
	repo := NewMemorySessionRepository(time.Hour)
	ctx := context.Background()

	t.Run("SetAndGetSession", func(t *testing.T) {
		session := models.NewSession(1, 1)
		session.State = models.StateHelpType

		require.NoError(t, repo.SetSession(ctx, session))

		got, err := repo.GetSession(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, models.StateHelpType, got.State)
	})

	t.Run("GetNonExistentSession", func(t *testing.T) {
		got, err := repo.GetSession(ctx, 42)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("ClearSession", func(t *testing.T) {
		session := models.NewSession(2, 2)
		require.NoError(t, repo.SetSession(ctx, session))
		require.NoError(t, repo.ClearSession(ctx, 2))

		got, err := repo.GetSession(ctx, 2)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("MutationWithoutSetDoesNotLeak", func(t *testing.T) {
		session := models.NewSession(3, 3)
		require.NoError(t, repo.SetSession(ctx, session))

		// Несохранённые изменения не должны попадать в хранилище
		session.Prefs.Dependency = "alcohol"

		loaded, err := repo.GetSession(ctx, 3)
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Empty(t, loaded.Prefs.Dependency)

		loaded.State = models.StateHelpType
		loaded.Prefs.City = "moscow"

		again, err := repo.GetSession(ctx, 3)
		require.NoError(t, err)
		require.NotNil(t, again)
		assert.Equal(t, models.StateDependencySelection, again.State)
		assert.Empty(t, again.Prefs.City)
	})
}
