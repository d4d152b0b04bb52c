package max

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"oporabot/internal/config"
	"oporabot/internal/models"

	"github.com/rs/zerolog"
)

// Client — HTTP-клиент Bot API MAX. Реализует domain.Port:
// Edit отправляет новое сообщение, Ack ничего не делает.
type Client struct {
	token   string
	baseURL string
	http    *http.Client
	logger  *zerolog.Logger
}

func NewClient(cfg config.MaxConfig, logger *zerolog.Logger) *Client {
	return &Client{
		token:   cfg.BotToken,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		// Таймаут клиента должен переживать длинный опрос
		http:   &http.Client{Timeout: time.Duration(cfg.PollTimeout+10) * time.Second},
		logger: logger,
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("max api %s %s: status %d: %s", method, path, resp.StatusCode, string(data))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

// GetUpdates выполняет длинный опрос. marker — курсор, выданный
// предыдущим ответом; nil для первого запроса.
func (c *Client) GetUpdates(ctx context.Context, marker *int64, timeout, limit int) (*UpdatesResponse, error) {
	query := url.Values{}
	query.Set("timeout", strconv.Itoa(timeout))
	query.Set("limit", strconv.Itoa(limit))
	if marker != nil {
		query.Set("marker", strconv.FormatInt(*marker, 10))
	}

	var resp UpdatesResponse
	if err := c.do(ctx, http.MethodGet, "/updates", query, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SendMessage отправляет сообщение. chat_id передается
// query-параметром, так требует API.
func (c *Client) SendMessage(ctx context.Context, chatID int64, msg outgoingMessage) error {
	query := url.Values{}
	query.Set("chat_id", strconv.FormatInt(chatID, 10))

	return c.do(ctx, http.MethodPost, "/messages", query, msg, nil)
}

func (c *Client) GetMe(ctx context.Context) (*BotInfo, error) {
	var info BotInfo
	if err := c.do(ctx, http.MethodGet, "/me", nil, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func outgoingFromRender(r models.Render) outgoingMessage {
	msg := outgoingMessage{Text: r.Text}
	if r.Markdown {
		msg.Format = "markdown"
	}
	if len(r.Buttons) > 0 {
		var rows [][]outgoingButton
		for _, row := range r.Buttons {
			var buttons []outgoingButton
			for _, b := range row {
				buttons = append(buttons, outgoingButton{
					Type:    "callback",
					Text:    b.Label,
					Payload: b.Token,
				})
			}
			rows = append(rows, buttons)
		}
		msg.Attachments = []attachment{{
			Type:    "inline_keyboard",
			Payload: keyboardPayload{Buttons: rows},
		}}
	}
	return msg
}

func (c *Client) Send(ctx context.Context, chat models.ChatRef, r models.Render) error {
	return c.SendMessage(ctx, chat.ChatID, outgoingFromRender(r))
}

// Edit в MAX невозможен, вместо редактирования уходит новое сообщение.
func (c *Client) Edit(ctx context.Context, chat models.ChatRef, r models.Render) error {
	return c.Send(ctx, chat, r)
}

// Ack — заглушка: у MAX нет подтверждения callback-запросов.
func (c *Client) Ack(ctx context.Context, callbackID, text string) error {
	return nil
}
