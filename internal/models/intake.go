package models

import "time"

// Intake — завершённая анкета, архивируемая после конца диалога.
type Intake struct {
	ID               int64
	UserID           int64
	Username         string
	Dependency       string
	Timezone         string
	City             string
	HelpType         string
	Consultation     string
	Gender           string
	AgeUser          string
	AgeSpecialist    string
	Literature       string
	Discovery        string
	GroupName        string
	PsychologistName string
	CreatedAt        time.Time
}

// Question — анонимный вопрос пользователя.
type Question struct {
	ID        int64
	UserID    int64
	Text      string
	CreatedAt time.Time
}
