package models

// Button — одна inline-кнопка: подпись и токен обратного вызова.
type Button struct {
	Label string
	Token string
}

// Render — запрос на отрисовку ответа: текст плюс раскладка кнопок.
// Транспорт сам решает, отправить новое сообщение или отредактировать старое.
type Render struct {
	Text     string
	Buttons  [][]Button
	Markdown bool
}

func ButtonRow(buttons ...Button) []Button { return buttons }
