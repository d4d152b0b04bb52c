package repository

import (
	"context"
	"sync"
	"time"

	"oporabot/internal/models"
)

type MemorySessionRepository struct {
	sessions sync.Map
	ttl      time.Duration
}

func NewMemorySessionRepository(ttl time.Duration) *MemorySessionRepository {
	return &MemorySessionRepository{
		ttl: ttl,
	}
}

// GetSession возвращает копию: вызывающая сторона мутирует сессию
// до явного сохранения, хранимое значение меняться не должно.
func (r *MemorySessionRepository) GetSession(ctx context.Context, userID int64) (*models.Session, error) {
	val, ok := r.sessions.Load(userID)
	if !ok {
		return nil, nil
	}
	c := *val.(*models.Session)
	return &c, nil
}

func (r *MemorySessionRepository) SetSession(ctx context.Context, session *models.Session) error {
	c := *session
	r.sessions.Store(session.UserID, &c)
	return nil
}

func (r *MemorySessionRepository) ClearSession(ctx context.Context, userID int64) error {
	r.sessions.Delete(userID)
	return nil
}
