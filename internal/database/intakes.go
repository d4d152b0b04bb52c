package database

import (
	"context"
	"time"

	"oporabot/internal/models"
)

// SaveIntake сохраняет завершенную анкету
func (db *DB) SaveIntake(ctx context.Context, intake *models.Intake) error {
	query := `
        INSERT INTO intakes (user_id, username, dependency, timezone, city, help_type, consultation,
                             gender, age_user, age_specialist, literature, discovery,
                             group_name, psychologist_name, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `

	if intake.CreatedAt.IsZero() {
		intake.CreatedAt = time.Now()
	}

	result, err := db.db.ExecContext(ctx, query,
		intake.UserID,
		intake.Username,
		intake.Dependency,
		intake.Timezone,
		intake.City,
		intake.HelpType,
		intake.Consultation,
		intake.Gender,
		intake.AgeUser,
		intake.AgeSpecialist,
		intake.Literature,
		intake.Discovery,
		intake.GroupName,
		intake.PsychologistName,
		intake.CreatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	intake.ID = id
	return nil
}

// GetUserIntakes возвращает анкеты пользователя, новые первыми
func (db *DB) GetUserIntakes(ctx context.Context, userID int64) ([]models.Intake, error) {
	query := `
        SELECT id, user_id, username, dependency, timezone, city, help_type, consultation,
               gender, age_user, age_specialist, literature, discovery,
               group_name, psychologist_name, created_at
        FROM intakes WHERE user_id = ? ORDER BY created_at DESC
    `

	rows, err := db.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var intakes []models.Intake
	for rows.Next() {
		var intake models.Intake
		err := rows.Scan(
			&intake.ID,
			&intake.UserID,
			&intake.Username,
			&intake.Dependency,
			&intake.Timezone,
			&intake.City,
			&intake.HelpType,
			&intake.Consultation,
			&intake.Gender,
			&intake.AgeUser,
			&intake.AgeSpecialist,
			&intake.Literature,
			&intake.Discovery,
			&intake.GroupName,
			&intake.PsychologistName,
			&intake.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		intakes = append(intakes, intake)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return intakes, nil
}

// GetIntakesByDateRange возвращает анкеты за период
func (db *DB) GetIntakesByDateRange(ctx context.Context, startDate, endDate time.Time) ([]models.Intake, error) {
	query := `
        SELECT id, user_id, username, dependency, timezone, city, help_type, consultation,
               gender, age_user, age_specialist, literature, discovery,
               group_name, psychologist_name, created_at
        FROM intakes
        WHERE strftime('%Y-%m-%d', created_at) BETWEEN ? AND ?
        ORDER BY created_at
    `

	rows, err := db.db.QueryContext(ctx, query,
		startDate.Format("2006-01-02"),
		endDate.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var intakes []models.Intake
	for rows.Next() {
		var intake models.Intake
		err := rows.Scan(
			&intake.ID,
			&intake.UserID,
			&intake.Username,
			&intake.Dependency,
			&intake.Timezone,
			&intake.City,
			&intake.HelpType,
			&intake.Consultation,
			&intake.Gender,
			&intake.AgeUser,
			&intake.AgeSpecialist,
			&intake.Literature,
			&intake.Discovery,
			&intake.GroupName,
			&intake.PsychologistName,
			&intake.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		intakes = append(intakes, intake)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return intakes, nil
}
