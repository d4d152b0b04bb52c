package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"oporabot/internal/models"
)

// normalize переводит обновление Telegram в единый вид. Для нажатий
// кнопок запоминается MessageID — ответ редактирует то же сообщение.
func normalize(update tgbotapi.Update) (models.Interaction, bool) {
	if cb := update.CallbackQuery; cb != nil {
		in := models.Interaction{
			Kind:       models.KindButton,
			UserID:     cb.From.ID,
			Token:      cb.Data,
			CallbackID: cb.ID,
			Username:   cb.From.UserName,
		}
		if cb.Message != nil {
			in.Chat = models.ChatRef{
				ChatID:    cb.Message.Chat.ID,
				MessageID: cb.Message.MessageID,
			}
		}
		return in, true
	}

	if msg := update.Message; msg != nil && msg.From != nil {
		return models.Interaction{
			Kind:     models.KindText,
			UserID:   msg.From.ID,
			Chat:     models.ChatRef{ChatID: msg.Chat.ID},
			Text:     msg.Text,
			Username: msg.From.UserName,
		}, true
	}

	return models.Interaction{}, false
}
