package domain

import (
	"context"

	"oporabot/internal/models"
)

type SessionRepository interface {
	GetSession(ctx context.Context, userID int64) (*models.Session, error)
	SetSession(ctx context.Context, session *models.Session) error
	ClearSession(ctx context.Context, userID int64) error
}

type SessionManager interface {
	GetSession(ctx context.Context, userID int64) (*models.Session, error)
	SaveSession(ctx context.Context, session *models.Session) error
	ClearSession(ctx context.Context, userID int64) error
}

// Port — исходящая сторона транспорта. Edit на транспортах без
// редактирования деградирует до Send, Ack может быть no-op.
type Port interface {
	Send(ctx context.Context, chat models.ChatRef, r models.Render) error
	Edit(ctx context.Context, chat models.ChatRef, r models.Render) error
	Ack(ctx context.Context, callbackID, text string) error
}

// Handler потребляет нормализованные события; транспорты зовут его
// из своих циклов приёма.
type Handler interface {
	Dispatch(ctx context.Context, in models.Interaction)
}

type IntakeStore interface {
	SaveIntake(ctx context.Context, intake *models.Intake) error
	SaveQuestion(ctx context.Context, question *models.Question) error
}
