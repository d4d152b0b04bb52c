package flow

import (
	"context"
	"strings"
	"time"

	"oporabot/internal/catalog"
	"oporabot/internal/domain"
	"oporabot/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Dispatcher ведет диалог: принимает нормализованные события от
// транспортов, применяет обработчик текущего состояния и сохраняет
// сессию только после успешного завершения шага.
type Dispatcher struct {
	sessions domain.SessionManager
	port     domain.Port
	store    domain.IntakeStore
	metrics  *Metrics
	admins   []int64
	logger   *zerolog.Logger

	global       map[string]handlerFunc
	prefixRoutes map[string][]prefixRoute
	exactRoutes  map[string]map[string]handlerFunc
	textRoutes   map[string]handlerFunc
	backRoutes   map[string]handlerFunc
}

func NewDispatcher(sessions domain.SessionManager, port domain.Port, store domain.IntakeStore, metrics *Metrics, admins []int64, logger *zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		sessions: sessions,
		port:     port,
		store:    store,
		metrics:  metrics,
		admins:   admins,
		logger:   logger,
	}
	d.buildRoutes()
	return d
}

func (d *Dispatcher) Dispatch(ctx context.Context, in models.Interaction) {
	start := time.Now()

	requestID := uuid.New().String()
	l := d.logger.With().
		Str("request_id", requestID).
		Str("kind", in.Kind).
		Int64("user_id", in.UserID).
		Logger()
	ctx = l.WithContext(ctx)

	if d.metrics != nil {
		d.metrics.UpdatesProcessed.WithLabelValues(in.Kind).Inc()
		defer func() {
			d.metrics.UpdateProcessingTime.Observe(time.Since(start).Seconds())
		}()
	}

	defer func() {
		if r := recover(); r != nil {
			l.Error().Interface("panic", r).Msg("panic while handling update")
			if d.metrics != nil {
				d.metrics.ErrorsTotal.Inc()
			}
		}
	}()

	switch in.Kind {
	case models.KindSessionStart:
		d.handleSessionStart(ctx, in)
	case models.KindButton:
		d.handleButton(ctx, in)
	case models.KindText:
		d.handleText(ctx, in)
	default:
		l.Warn().Msg("unknown interaction kind")
	}
}

// handleSessionStart идемпотентен: при повторной доставке события
// существующая сессия не трогается.
func (d *Dispatcher) handleSessionStart(ctx context.Context, in models.Interaction) {
	l := zerolog.Ctx(ctx)

	sess, err := d.sessions.GetSession(ctx, in.UserID)
	if err != nil {
		return
	}
	if sess != nil {
		l.Debug().Msg("session already exists, ignoring session start")
		return
	}

	d.startConversation(ctx, in)
}

// startConversation создает новую сессию и показывает приветствие.
func (d *Dispatcher) startConversation(ctx context.Context, in models.Interaction) {
	l := zerolog.Ctx(ctx)

	sess := models.NewSession(in.UserID, in.Chat.ChatID)
	sess.Username = in.Username

	if err := d.sessions.SaveSession(ctx, sess); err != nil {
		d.countError()
		return
	}

	l.Info().Msg("conversation started")

	if err := d.port.Send(ctx, models.ChatRef{ChatID: sess.ChatID}, welcomeRender()); err != nil {
		l.Error().Err(err).Msg("failed to send welcome message")
		d.countError()
	}
}

func (d *Dispatcher) handleButton(ctx context.Context, in models.Interaction) {
	l := zerolog.Ctx(ctx)

	if err := d.port.Ack(ctx, in.CallbackID, ""); err != nil {
		l.Warn().Err(err).Msg("failed to ack callback")
	}

	sess, err := d.sessions.GetSession(ctx, in.UserID)
	if err != nil {
		return
	}
	if sess == nil {
		d.send(ctx, in.Chat, models.Render{Text: catalog.SessionExpiredText})
		return
	}

	// MAX может прислать callback без вложенного сообщения
	if in.Chat.ChatID == 0 {
		in.Chat.ChatID = sess.ChatID
	}

	h := d.resolveButton(sess.State, in.Token)
	if h == nil {
		l.Warn().
			Str("state", sess.State).
			Str("token", in.Token).
			Msg("no route for token, re-rendering prompt")
		if d.metrics != nil {
			d.metrics.UnknownTokens.Inc()
		}
		d.edit(ctx, in.Chat, promptFor(sess.State, sess))
		return
	}

	prev := sess.State
	next, render, err := h(ctx, sess, in)
	if err != nil {
		l.Error().Err(err).Str("state", prev).Msg("handler failed")
		d.countError()
		return
	}

	sess.State = next
	if err := d.sessions.SaveSession(ctx, sess); err != nil {
		d.countError()
		return
	}

	if next == models.StateConversationEnd && prev != models.StateConversationEnd {
		d.completeConversation(ctx, sess)
	}

	d.edit(ctx, in.Chat, render)
}

func (d *Dispatcher) handleText(ctx context.Context, in models.Interaction) {
	l := zerolog.Ctx(ctx)
	text := strings.TrimSpace(in.Text)

	if strings.HasPrefix(text, "/") {
		d.handleCommand(ctx, in, text)
		return
	}

	sess, err := d.sessions.GetSession(ctx, in.UserID)
	if err != nil {
		return
	}
	if sess == nil {
		// Текст от пользователя без сессии: событие bot_started могло
		// потеряться, начинаем диалог как при первом обращении
		l.Info().Msg("text from user without session, starting conversation")
		d.startConversation(ctx, in)
		return
	}

	if in.Chat.ChatID == 0 {
		in.Chat.ChatID = sess.ChatID
	}

	h, ok := d.textRoutes[sess.State]
	if !ok {
		l.Debug().Str("state", sess.State).Msg("free text outside input state, re-rendering prompt")
		d.send(ctx, in.Chat, promptFor(sess.State, sess))
		return
	}

	prev := sess.State
	next, render, err := h(ctx, sess, in)
	if err != nil {
		l.Error().Err(err).Str("state", prev).Msg("handler failed")
		d.countError()
		return
	}

	sess.State = next
	if err := d.sessions.SaveSession(ctx, sess); err != nil {
		d.countError()
		return
	}

	if next == models.StateConversationEnd && prev != models.StateConversationEnd {
		d.completeConversation(ctx, sess)
	}

	d.send(ctx, in.Chat, render)
}

func (d *Dispatcher) handleCommand(ctx context.Context, in models.Interaction, command string) {
	l := zerolog.Ctx(ctx)

	switch command {
	case "/start":
		// /start всегда начинает диалог заново
		d.startConversation(ctx, in)

	case "/help":
		d.send(ctx, in.Chat, models.Render{Text: catalog.HelpCommandText, Markdown: true})

	case "/cancel":
		if err := d.sessions.ClearSession(ctx, in.UserID); err != nil {
			l.Error().Err(err).Msg("failed to clear session")
		}
		d.send(ctx, in.Chat, models.Render{Text: catalog.CancelText})

	case "/back":
		d.handleBackCommand(ctx, in)

	default:
		l.Debug().Str("command", command).Msg("unknown command")
		d.send(ctx, in.Chat, models.Render{Text: catalog.HelpCommandText, Markdown: true})
	}
}

func (d *Dispatcher) handleBackCommand(ctx context.Context, in models.Interaction) {
	l := zerolog.Ctx(ctx)

	sess, err := d.sessions.GetSession(ctx, in.UserID)
	if err != nil {
		return
	}
	if sess == nil {
		d.send(ctx, in.Chat, models.Render{Text: "Нет предыдущего шага. Начните диалог с команды /start"})
		return
	}

	h, ok := d.backRoutes[sess.State]
	if !ok {
		d.send(ctx, in.Chat, models.Render{Text: "Используйте кнопки для навигации."})
		return
	}

	next, render, err := h(ctx, sess, in)
	if err != nil {
		l.Error().Err(err).Msg("back handler failed")
		d.countError()
		return
	}

	sess.State = next
	if err := d.sessions.SaveSession(ctx, sess); err != nil {
		d.countError()
		return
	}

	d.send(ctx, in.Chat, render)
}

// completeConversation архивирует собранную анкету при переходе
// в финальное состояние.
func (d *Dispatcher) completeConversation(ctx context.Context, sess *models.Session) {
	l := zerolog.Ctx(ctx)

	if d.metrics != nil {
		d.metrics.ConversationsCompleted.Inc()
	}

	if d.store == nil {
		return
	}

	intake := intakeFromSession(sess)
	if err := d.store.SaveIntake(ctx, intake); err != nil {
		l.Error().Err(err).Msg("failed to archive intake")
		d.countError()
		return
	}

	l.Info().Int64("intake_id", intake.ID).Msg("conversation completed, intake archived")
}

func intakeFromSession(s *models.Session) *models.Intake {
	return &models.Intake{
		UserID:           s.UserID,
		Username:         s.Username,
		Dependency:       s.Prefs.Dependency,
		Timezone:         s.Prefs.Timezone,
		City:             s.Prefs.City,
		HelpType:         s.Prefs.HelpType,
		Consultation:     s.Prefs.Consultation,
		Gender:           s.Prefs.Gender,
		AgeUser:          s.Prefs.AgeUser,
		AgeSpecialist:    s.Prefs.AgeSpecialist,
		Literature:       s.Prefs.Literature,
		Discovery:        s.Prefs.Discovery,
		GroupName:        s.Prefs.GroupName,
		PsychologistName: s.Prefs.PsychologistName,
	}
}

func (d *Dispatcher) send(ctx context.Context, chat models.ChatRef, r models.Render) {
	if err := d.port.Send(ctx, chat, r); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to send message")
		d.countError()
	}
}

func (d *Dispatcher) edit(ctx context.Context, chat models.ChatRef, r models.Render) {
	if err := d.port.Edit(ctx, chat, r); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to edit message")
		d.countError()
	}
}

func (d *Dispatcher) countError() {
	if d.metrics != nil {
		d.metrics.ErrorsTotal.Inc()
	}
}
