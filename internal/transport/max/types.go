// Package max реализует транспорт для мессенджера MAX: длинный опрос
// /updates с маркером-курсором и отправку сообщений. Редактирование
// сообщений API не поддерживает, Edit деградирует до Send.
package max

// Типы обновлений, которые обрабатывает бот. Остальные
// (message_edited, message_removed и пр.) пропускаются.
const (
	UpdateMessageCreated  = "message_created"
	UpdateMessageCallback = "message_callback"
	UpdateBotStarted      = "bot_started"
)

type User struct {
	UserID    int64  `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	IsBot     bool   `json:"is_bot"`
}

type Recipient struct {
	ChatID   int64  `json:"chat_id"`
	ChatType string `json:"chat_type"`
}

type MessageBody struct {
	MID  string `json:"mid"`
	Text string `json:"text"`
}

type Message struct {
	Sender    User        `json:"sender"`
	Recipient Recipient   `json:"recipient"`
	Body      MessageBody `json:"body"`
}

type Callback struct {
	CallbackID string `json:"callback_id"`
	Payload    string `json:"payload"`
	User       User   `json:"user"`
}

// Update — одно обновление из /updates. Для bot_started идентификатор
// чата и пользователь лежат прямо в корне, а не в message.
type Update struct {
	UpdateType string    `json:"update_type"`
	Timestamp  int64     `json:"timestamp"`
	Message    *Message  `json:"message,omitempty"`
	Callback   *Callback `json:"callback,omitempty"`
	ChatID     int64     `json:"chat_id,omitempty"`
	User       *User     `json:"user,omitempty"`
}

type UpdatesResponse struct {
	Updates []Update `json:"updates"`
	Marker  *int64   `json:"marker"`
}

type BotInfo struct {
	UserID   int64  `json:"user_id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// Исходящее сообщение. Клавиатура передается вложением
// типа inline_keyboard.
type outgoingButton struct {
	Type    string `json:"type"`
	Text    string `json:"text"`
	Payload string `json:"payload"`
}

type keyboardPayload struct {
	Buttons [][]outgoingButton `json:"buttons"`
}

type attachment struct {
	Type    string          `json:"type"`
	Payload keyboardPayload `json:"payload"`
}

type outgoingMessage struct {
	Text        string       `json:"text"`
	Format      string       `json:"format,omitempty"`
	Attachments []attachment `json:"attachments,omitempty"`
}
