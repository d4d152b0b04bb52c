// Package telegram реализует push-транспорт поверх Telegram Bot API:
// длинный опрос GetUpdatesChan, редактирование сообщений на месте
// и подтверждение callback-запросов.
package telegram

import (
	"context"

	"oporabot/internal/config"
	"oporabot/internal/domain"
	"oporabot/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

type Transport struct {
	bot    *tgbotapi.BotAPI
	logger *zerolog.Logger
}

func New(cfg config.TelegramConfig, logger *zerolog.Logger) (*Transport, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}
	bot.Debug = cfg.Debug

	return &Transport{bot: bot, logger: logger}, nil
}

// Run читает обновления и передает нормализованные события
// обработчику до отмены контекста.
func (t *Transport) Run(ctx context.Context, handler domain.Handler) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)

	t.logger.Info().Str("username", t.bot.Self.UserName).Msg("Authorized on account")

	for {
		select {
		case <-ctx.Done():
			t.logger.Info().Msg("Telegram transport stopping...")
			t.bot.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			in, ok := normalize(update)
			if !ok {
				continue
			}
			handler.Dispatch(ctx, in)
		}
	}
}

func (t *Transport) Send(ctx context.Context, chat models.ChatRef, r models.Render) error {
	msg := tgbotapi.NewMessage(chat.ChatID, r.Text)
	if r.Markdown {
		msg.ParseMode = tgbotapi.ModeMarkdown
	}
	if kb, ok := keyboardFromRender(r); ok {
		msg.ReplyMarkup = kb
	}

	_, err := t.bot.Send(msg)
	return err
}

// Edit редактирует исходное сообщение на месте. Без MessageID
// (например, после текстового ввода) отправляет новое.
func (t *Transport) Edit(ctx context.Context, chat models.ChatRef, r models.Render) error {
	if chat.MessageID == 0 {
		return t.Send(ctx, chat, r)
	}

	if kb, ok := keyboardFromRender(r); ok {
		edit := tgbotapi.NewEditMessageTextAndMarkup(chat.ChatID, chat.MessageID, r.Text, kb)
		if r.Markdown {
			edit.ParseMode = tgbotapi.ModeMarkdown
		}
		_, err := t.bot.Send(edit)
		return err
	}

	edit := tgbotapi.NewEditMessageText(chat.ChatID, chat.MessageID, r.Text)
	if r.Markdown {
		edit.ParseMode = tgbotapi.ModeMarkdown
	}
	_, err := t.bot.Send(edit)
	return err
}

func (t *Transport) Ack(ctx context.Context, callbackID, text string) error {
	callback := tgbotapi.NewCallback(callbackID, text)
	_, err := t.bot.Request(callback)
	return err
}

func keyboardFromRender(r models.Render) (tgbotapi.InlineKeyboardMarkup, bool) {
	if len(r.Buttons) == 0 {
		return tgbotapi.InlineKeyboardMarkup{}, false
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, row := range r.Buttons {
		var buttons []tgbotapi.InlineKeyboardButton
		for _, b := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Token))
		}
		rows = append(rows, buttons)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...), true
}
