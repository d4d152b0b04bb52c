package max

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"oporabot/internal/config"
	"oporabot/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	logger := zerolog.Nop()
	client := NewClient(config.MaxConfig{
		BotToken:    "test-token",
		BaseURL:     server.URL,
		PollTimeout: 1,
		PollLimit:   10,
	}, &logger)
	return client, server
}

func TestGetUpdates(t *testing.T) {
	var gotAuth, gotMarker, gotTimeout string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotMarker = r.URL.Query().Get("marker")
		gotTimeout = r.URL.Query().Get("timeout")

		resp := UpdatesResponse{
			Updates: []Update{
				{
					UpdateType: UpdateMessageCreated,
					Timestamp:  100,
					Message: &Message{
						Sender:    User{UserID: 7},
						Recipient: Recipient{ChatID: 42},
						Body:      MessageBody{MID: "m1", Text: "привет"},
					},
				},
			},
			Marker: int64Ptr(555),
		}
		json.NewEncoder(w).Encode(resp)
	})
	defer server.Close()

	marker := int64(123)
	resp, err := client.GetUpdates(context.Background(), &marker, 1, 10)
	require.NoError(t, err)

	assert.Equal(t, "test-token", gotAuth)
	assert.Equal(t, "123", gotMarker)
	assert.Equal(t, "1", gotTimeout)

	require.Len(t, resp.Updates, 1)
	assert.Equal(t, "привет", resp.Updates[0].Message.Body.Text)
	require.NotNil(t, resp.Marker)
	assert.Equal(t, int64(555), *resp.Marker)
}

func TestGetUpdatesAPIError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	})
	defer server.Close()

	_, err := client.GetUpdates(context.Background(), nil, 1, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestSendWithKeyboard(t *testing.T) {
	var gotChatID string
	var gotBody outgoingMessage
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotChatID = r.URL.Query().Get("chat_id")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{}`))
	})
	defer server.Close()

	render := models.Render{
		Text:     "Выберите вариант",
		Markdown: true,
		Buttons: [][]models.Button{
			{{Label: "Да", Token: "yes_anon_question"}},
			{{Label: "Нет", Token: "no_anon_question"}},
		},
	}

	err := client.Send(context.Background(), models.ChatRef{ChatID: 42}, render)
	require.NoError(t, err)

	assert.Equal(t, "42", gotChatID)
	assert.Equal(t, "Выберите вариант", gotBody.Text)
	assert.Equal(t, "markdown", gotBody.Format)
	require.Len(t, gotBody.Attachments, 1)
	assert.Equal(t, "inline_keyboard", gotBody.Attachments[0].Type)
	buttons := gotBody.Attachments[0].Payload.Buttons
	require.Len(t, buttons, 2)
	assert.Equal(t, "callback", buttons[0][0].Type)
	assert.Equal(t, "yes_anon_question", buttons[0][0].Payload)
}

func TestEditFallsBackToSend(t *testing.T) {
	var requests int
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/messages", r.URL.Path)
		w.Write([]byte(`{}`))
	})
	defer server.Close()

	err := client.Edit(context.Background(), models.ChatRef{ChatID: 42, MessageID: 7}, models.Render{Text: "x"})
	require.NoError(t, err)
	assert.Equal(t, 1, requests)
}

func TestAckIsNoop(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("ack must not hit the network")
	})
	defer server.Close()

	assert.NoError(t, client.Ack(context.Background(), "cb-1", ""))
}

func TestGetMe(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/me", r.URL.Path)
		json.NewEncoder(w).Encode(BotInfo{UserID: 1, Name: "bot", Username: "counseling_bot"})
	})
	defer server.Close()

	info, err := client.GetMe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "counseling_bot", info.Username)
}

func int64Ptr(v int64) *int64 { return &v }
