package max

import (
	"context"
	"testing"

	"oporabot/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	interactions []models.Interaction
}

func (h *recordingHandler) Dispatch(ctx context.Context, in models.Interaction) {
	h.interactions = append(h.interactions, in)
}

func newTestPoller(h *recordingHandler) *Poller {
	logger := zerolog.Nop()
	return &Poller{handler: h, timeout: 1, limit: 10, logger: &logger}
}

func botStartedUpdate(ts int64) Update {
	return Update{
		UpdateType: UpdateBotStarted,
		Timestamp:  ts,
		ChatID:     42,
		User:       &User{UserID: 7, Username: "someone"},
	}
}

func TestProcessBatchNormalizesKinds(t *testing.T) {
	h := &recordingHandler{}
	p := newTestPoller(h)

	p.processBatch(context.Background(), []Update{
		botStartedUpdate(1),
		{
			UpdateType: UpdateMessageCreated,
			Timestamp:  2,
			Message: &Message{
				Sender:    User{UserID: 7},
				Recipient: Recipient{ChatID: 42},
				Body:      MessageBody{Text: "/start"},
			},
		},
		{
			UpdateType: UpdateMessageCallback,
			Timestamp:  3,
			Callback:   &Callback{CallbackID: "cb-1", Payload: "dep_alcohol", User: User{UserID: 7}},
			Message: &Message{
				Recipient: Recipient{ChatID: 42},
			},
		},
	})

	require.Len(t, h.interactions, 3)
	assert.Equal(t, models.KindSessionStart, h.interactions[0].Kind)
	assert.Equal(t, models.KindText, h.interactions[1].Kind)
	assert.Equal(t, "/start", h.interactions[1].Text)
	assert.Equal(t, models.KindButton, h.interactions[2].Kind)
	assert.Equal(t, "dep_alcohol", h.interactions[2].Token)
	assert.Equal(t, int64(42), h.interactions[2].Chat.ChatID)
}

func TestProcessBatchSkipsReplayedUpdates(t *testing.T) {
	h := &recordingHandler{}
	p := newTestPoller(h)

	batch := []Update{botStartedUpdate(100)}

	p.processBatch(context.Background(), batch)
	// Повторная доставка той же пачки после сбоя опроса
	p.processBatch(context.Background(), batch)

	assert.Len(t, h.interactions, 1)
}

func TestProcessBatchKeepsDistinctUpdatesWithEqualTimestamp(t *testing.T) {
	h := &recordingHandler{}
	p := newTestPoller(h)

	// Два разных сообщения в одну миллисекунду
	batch := []Update{
		{
			UpdateType: UpdateMessageCreated,
			Timestamp:  100,
			Message: &Message{
				Sender:    User{UserID: 7},
				Recipient: Recipient{ChatID: 42},
				Body:      MessageBody{MID: "m1", Text: "первое"},
			},
		},
		{
			UpdateType: UpdateMessageCreated,
			Timestamp:  100,
			Message: &Message{
				Sender:    User{UserID: 7},
				Recipient: Recipient{ChatID: 42},
				Body:      MessageBody{MID: "m2", Text: "второе"},
			},
		},
	}

	p.processBatch(context.Background(), batch)
	require.Len(t, h.interactions, 2)
	assert.Equal(t, "первое", h.interactions[0].Text)
	assert.Equal(t, "второе", h.interactions[1].Text)

	// Повторная доставка той же пачки отсеивается по идентификаторам
	p.processBatch(context.Background(), batch)
	assert.Len(t, h.interactions, 2)
}

func TestProcessBatchSkipsUnsupportedTypes(t *testing.T) {
	h := &recordingHandler{}
	p := newTestPoller(h)

	p.processBatch(context.Background(), []Update{
		{UpdateType: "message_edited", Timestamp: 1},
		{UpdateType: "message_removed", Timestamp: 2},
		botStartedUpdate(3),
	})

	require.Len(t, h.interactions, 1)
	assert.Equal(t, models.KindSessionStart, h.interactions[0].Kind)
}

func TestNormalizeBotStartedWithoutChat(t *testing.T) {
	_, ok := normalize(Update{UpdateType: UpdateBotStarted, User: &User{UserID: 7}})
	assert.False(t, ok)
}
