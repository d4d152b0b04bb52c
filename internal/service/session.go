package service

import (
	"context"

	"oporabot/internal/domain"
	"oporabot/internal/models"

	"github.com/rs/zerolog"
)

type SessionService struct {
	sessionRepo domain.SessionRepository
	logger      *zerolog.Logger
}

func NewSessionService(sessionRepo domain.SessionRepository, logger *zerolog.Logger) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (s *SessionService) GetSession(ctx context.Context, userID int64) (*models.Session, error) {
	session, err := s.sessionRepo.GetSession(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to get session")
		return nil, err
	}

	return session, nil
}

func (s *SessionService) SaveSession(ctx context.Context, session *models.Session) error {
	if err := s.sessionRepo.SetSession(ctx, session); err != nil {
		s.logger.Error().Err(err).Int64("user_id", session.UserID).Msg("failed to save session")
		return err
	}
	return nil
}

func (s *SessionService) ClearSession(ctx context.Context, userID int64) error {
	return s.sessionRepo.ClearSession(ctx, userID)
}
