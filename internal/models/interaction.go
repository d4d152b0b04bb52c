package models

import "strings"

// Виды нормализованных входящих событий.
const (
	KindText         = "text"
	KindButton       = "button"
	KindSessionStart = "session_start"
)

// ChatRef адресует исходящее сообщение. MessageID заполняется только
// push-транспортом и только для нажатий кнопок (редактирование на месте).
type ChatRef struct {
	ChatID    int64
	MessageID int
}

// Interaction — одно входящее событие в едином для обоих транспортов виде.
type Interaction struct {
	Kind       string
	UserID     int64
	Chat       ChatRef
	Text       string
	Token      string
	CallbackID string
	Username   string
}

// TokenValue возвращает значение токена без префикса пространства имён.
func (i Interaction) TokenValue(prefix string) string {
	return strings.TrimPrefix(i.Token, prefix)
}
