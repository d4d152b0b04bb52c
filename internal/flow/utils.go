package flow

import (
	"strings"

	"oporabot/internal/models"
)

// sanitizeInput убирает HTML-разметку из свободного текста пользователя
// и ограничивает его длину.
func sanitizeInput(text string) string {
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	if runes := []rune(text); len(runes) > models.MaxInputLength {
		text = string(runes[:models.MaxInputLength])
	}
	return text
}
