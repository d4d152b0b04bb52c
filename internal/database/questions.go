package database

import (
	"context"
	"time"

	"oporabot/internal/models"
)

// SaveQuestion сохраняет анонимный вопрос
func (db *DB) SaveQuestion(ctx context.Context, question *models.Question) error {
	query := `INSERT INTO questions (user_id, text, created_at) VALUES (?, ?, ?)`

	if question.CreatedAt.IsZero() {
		question.CreatedAt = time.Now()
	}

	result, err := db.db.ExecContext(ctx, query, question.UserID, question.Text, question.CreatedAt)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	question.ID = id
	return nil
}

// GetQuestions возвращает последние вопросы, новые первыми
func (db *DB) GetQuestions(ctx context.Context, limit int) ([]models.Question, error) {
	query := `SELECT id, user_id, text, created_at FROM questions ORDER BY created_at DESC LIMIT ?`

	rows, err := db.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []models.Question
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.UserID, &q.Text, &q.CreatedAt); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return questions, nil
}
