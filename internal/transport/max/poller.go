package max

import (
	"context"
	"fmt"
	"time"

	"oporabot/internal/config"
	"oporabot/internal/domain"
	"oporabot/internal/models"

	"github.com/rs/zerolog"
)

const errorBackoff = 5 * time.Second

// Poller крутит цикл длинного опроса и передает нормализованные
// события обработчику. Пустой ответ по истечении timeout — штатная
// ситуация, не ошибка.
type Poller struct {
	client  *Client
	handler domain.Handler
	timeout int
	limit   int
	logger  *zerolog.Logger

	marker        *int64
	lastTimestamp int64
	seen          map[string]struct{}
}

func NewPoller(client *Client, handler domain.Handler, cfg config.MaxConfig, logger *zerolog.Logger) *Poller {
	return &Poller{
		client:  client,
		handler: handler,
		timeout: cfg.PollTimeout,
		limit:   cfg.PollLimit,
		logger:  logger,
	}
}

func (p *Poller) Run(ctx context.Context) {
	p.logger.Info().Int("timeout", p.timeout).Int("limit", p.limit).Msg("Polling loop started")

	for {
		select {
		case <-ctx.Done():
			p.logger.Info().Msg("Polling loop stopping...")
			return
		default:
		}

		resp, err := p.client.GetUpdates(ctx, p.marker, p.timeout, p.limit)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			p.logger.Error().Err(err).Msg("Failed to get updates, backing off")
			select {
			case <-ctx.Done():
				return
			case <-time.After(errorBackoff):
			}
			continue
		}

		if resp.Marker != nil {
			p.marker = resp.Marker
		}

		p.processBatch(ctx, resp.Updates)
	}
}

// processBatch отсеивает повторно доставленные и неподдерживаемые
// обновления, остальные отдает обработчику. Повтор определяется по
// идентификатору обновления: при сбое опроса маркер не сдвигается и
// та же пачка приходит снова, а два разных события могут делить
// одну временную метку.
func (p *Poller) processBatch(ctx context.Context, updates []Update) {
	if p.seen == nil {
		p.seen = make(map[string]struct{})
	}

	for _, u := range updates {
		id := updateID(u)

		switch {
		case u.Timestamp < p.lastTimestamp:
			p.logger.Debug().Int64("timestamp", u.Timestamp).Msg("Skipping already processed update")
			continue
		case u.Timestamp == p.lastTimestamp:
			if _, ok := p.seen[id]; ok {
				p.logger.Debug().Str("update_id", id).Msg("Skipping already processed update")
				continue
			}
		default:
			p.lastTimestamp = u.Timestamp
			p.seen = make(map[string]struct{})
		}
		p.seen[id] = struct{}{}

		in, ok := normalize(u)
		if !ok {
			p.logger.Debug().Str("update_type", u.UpdateType).Msg("Skipping update type")
			continue
		}

		p.handler.Dispatch(ctx, in)
	}
}

// updateID — идентификатор обновления для отсева повторов.
func updateID(u Update) string {
	switch {
	case u.Callback != nil && u.Callback.CallbackID != "":
		return "cb:" + u.Callback.CallbackID
	case u.Message != nil && u.Message.Body.MID != "":
		return "msg:" + u.Message.Body.MID
	}

	var userID int64
	if u.User != nil {
		userID = u.User.UserID
	}
	return fmt.Sprintf("%s:%d:%d:%d", u.UpdateType, u.ChatID, userID, u.Timestamp)
}

// normalize переводит обновление MAX в единый вид. bot_started
// становится началом сессии: приветствие уходит без команды /start.
func normalize(u Update) (models.Interaction, bool) {
	switch u.UpdateType {
	case UpdateBotStarted:
		if u.User == nil || u.ChatID == 0 {
			return models.Interaction{}, false
		}
		return models.Interaction{
			Kind:     models.KindSessionStart,
			UserID:   u.User.UserID,
			Chat:     models.ChatRef{ChatID: u.ChatID},
			Username: u.User.Username,
		}, true

	case UpdateMessageCreated:
		if u.Message == nil {
			return models.Interaction{}, false
		}
		return models.Interaction{
			Kind:     models.KindText,
			UserID:   u.Message.Sender.UserID,
			Chat:     models.ChatRef{ChatID: u.Message.Recipient.ChatID},
			Text:     u.Message.Body.Text,
			Username: u.Message.Sender.Username,
		}, true

	case UpdateMessageCallback:
		if u.Callback == nil {
			return models.Interaction{}, false
		}
		in := models.Interaction{
			Kind:       models.KindButton,
			UserID:     u.Callback.User.UserID,
			Token:      u.Callback.Payload,
			CallbackID: u.Callback.CallbackID,
			Username:   u.Callback.User.Username,
		}
		if u.Message != nil {
			in.Chat = models.ChatRef{ChatID: u.Message.Recipient.ChatID}
		}
		return in, true
	}

	return models.Interaction{}, false
}
