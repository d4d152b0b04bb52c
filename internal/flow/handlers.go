package flow

import (
	"context"
	"fmt"

	"oporabot/internal/catalog"
	"oporabot/internal/models"

	"github.com/rs/zerolog"
)

// handlerFunc обрабатывает одно событие: мутирует сессию и возвращает
// следующее состояние вместе с ответом. Сессия сохраняется диспетчером
// только после успешного завершения.
type handlerFunc func(ctx context.Context, s *models.Session, in models.Interaction) (string, models.Render, error)

// ==================== выбор зависимости, пояса, города ====================

func (d *Dispatcher) handleDependency(ctx context.Context, s *models.Session, in models.Interaction) (string, models.Render, error) {
	s.Prefs.Dependency = in.TokenValue(models.PrefixDependency)

	zerolog.Ctx(ctx).Info().
		Str("dependency", s.Prefs.Dependency).
		Msg("dependency selected")

	return models.StateTimezoneSelection, timezonePrompt(s), nil
}

func (d *Dispatcher) handleTimezone(ctx context.Context, s *models.Session, in models.Interaction) (string, models.Render, error) {
	s.Prefs.Timezone = in.TokenValue(models.PrefixTimezone)

	zerolog.Ctx(ctx).Info().
		Str("timezone", s.Prefs.Timezone).
		Msg("timezone selected")

	return models.StateCitySelection, cityPrompt(s), nil
}

func (d *Dispatcher) handleCity(ctx context.Context, s *models.Session, in models.Interaction) (string, models.Render, error) {
	s.Prefs.City = in.TokenValue(models.PrefixCity)

	zerolog.Ctx(ctx).Info().
		Str("city", s.Prefs.City).
		Msg("city selected")

	return models.StateHelpType, helpTypePrompt(s), nil
}

// ==================== выбор вида помощи ====================

func (d *Dispatcher) handleHelpType(ctx context.Context, s *models.Session, in models.Interaction) (string, models.Render, error) {
	helpType := in.TokenValue(models.PrefixHelpType)
	l := zerolog.Ctx(ctx)

	switch helpType {
	case "info":
		s.Prefs.HelpType = helpType
		return models.StateHelpChoice, models.Render{
			Text:    catalog.HelpChoiceText,
			Buttons: helpChoiceKeyboard(),
		}, nil

	case "groups_selection":
		s.Prefs.HelpType = helpType
		// Быстрая карточка, состояние не меняется
		return models.StateHelpType, models.Render{
			Text:     groupsQuickText(s),
			Buttons:  backKeyboard("⬅️ Назад к выбору помощи", models.TokenBackToHelp),
			Markdown: true,
		}, nil

	case "specialist":
		s.Prefs.HelpType = helpType
		s.Prefs.Consultation = models.ConsultationSpecialist
		s.Prefs.Arrival = models.ArrivalHelpType
		return models.StateGenderPreference, models.Render{
			Text:     catalog.GenderPromptText,
			Buttons:  genderKeyboard(),
			Markdown: true,
		}, nil

	case "faq":
		s.Prefs.HelpType = helpType
		return models.StateHelpType, models.Render{
			Text:    catalog.FAQText,
			Buttons: backKeyboard("⬅️ Назад к выбору помощи", models.TokenBackToHelp),
		}, nil

	case "webinars":
		s.Prefs.HelpType = helpType
		return models.StateHelpType, models.Render{
			Text:    catalog.WebinarsText,
			Buttons: backKeyboard("⬅️ Назад к выбору помощи", models.TokenBackToHelp),
		}, nil
	}

	l.Warn().Str("help_type", helpType).Msg("unknown help type")
	return s.State, promptFor(s.State, s), nil
}

// ==================== ветка после информации ====================

func (d *Dispatcher) chooseSupport(ctx context.Context, s *models.Session, in models.Interaction) (string, models.Render, error) {
	s.Prefs.WantsSupport = models.BoolPtr(true)
	return models.StateSupportOrSpecialist, models.Render{
		Text:    catalog.SupportMenuText,
		Buttons: supportMenuKeyboard(),
	}, nil
}

func (d *Dispatcher) chooseLiterature(ctx context.Context, s *models.Session, in models.Interaction) (string, models.Render, error) {
	s.Prefs.WantsLiterature = models.BoolPtr(true)
	return models.StateLiteratureChoice, models.Render{
		Text:    catalog.LiteratureMenuText,
		Buttons: literatureKeyboard(),
	}, nil
}

func (d *Dispatcher) skipBoth(ctx context.Context, s *models.Session, in models.Interaction) (string, models.Render, error) {
	s.Prefs.WantsSupport = models.BoolPtr(false)
	s.Prefs.WantsLiterature = models.BoolPtr(false)
	return d.showDiscovery(s)
}

func (d *Dispatcher) handleSupportAfterInfo(ctx context.Context, s *models.Session, in models.Interaction) (string, models.Render, error) {
	s.Prefs.WantsSupport = models.BoolPtr(in.Token == models.TokenYesSupportAfterInfo)

	// Вопрос про литературу задается независимо от ответа
	return models.StateLiteratureChoice, models.Render{
		Text:    catalog.LiteratureQuestionText,
		Buttons: yesNoKeyboard(models.TokenYesLiteratureAfterInfo, models.TokenNoLiteratureAfterInfo),
	}, nil
}

func (d *Dispatcher) handleLiteratureAfterInfo(ctx context.Context, s *models.Session, in models.Interaction) (string, models.Render, error) {
	wantsLiterature := in.Token == models.TokenYesLiteratureAfterInfo
	s.Prefs.WantsLiterature = models.BoolPtr(wantsLiterature)

	wantsSupport := s.Prefs.WantsSupport != nil && *s.Prefs.WantsSupport

	switch {
	case wantsSupport:
		return models.StateSupportOrSpecialist, models.Render{
			Text:    catalog.SupportMenuText,
			Buttons: supportMenuKeyboard(),
		}, nil
	case wantsLiterature:
		return models.StateLiteratureChoice, models.Render{
			Text:    catalog.LiteratureMenuText,
			Buttons: literatureKeyboard(),
		}, nil
	default:
		return d.showDiscovery(s)
	}
}

func (d *Dispatcher) handleLiteratureSelection(ctx context.Context, s *models.Session, in models.Interaction) (string, models.Render, error) {
	key := in.TokenValue(models.PrefixLiterature)
	s.Prefs.Literature = key

	zerolog.Ctx(ctx).Info().Str("literature", key).Msg("literature selected")

	return models.StateLiteratureChoice, models.Render{
		Text:     catalog.LiteratureText(key),
		Buttons:  continueKeyboard(models.TokenContinueAfterLiterature),
		Markdown: true,
	}, nil
}

// ==================== группа поддержки или специалист ====================

func (d *Dispatcher) handleSupportOrSpecialist(ctx context.Context, s *models.Session, in models.Interaction) (string, models.Render, error) {
	choice := in.TokenValue(models.PrefixSOS)
	s.Prefs.SOSChoice = choice

	zerolog.Ctx(ctx).Info().Str("choice", choice).Msg("support menu choice")

	switch choice {
	case "support_group":
		return models.StateGroupsResult, models.Render{
			Text:     groupsResultText(s),
			Buttons:  continueKeyboard(models.TokenContinueToDiscovery),
			Markdown: true,
		}, nil

	case "specialist":
		// Кнопка меню поддержки ведет к консультации психолога
		s.Prefs.Consultation = models.ConsultationPsychologist
		s.Prefs.Arrival = models.ArrivalSupportMenu
		return models.StateGenderPreference, models.Render{
			Text:     catalog.GenderPromptText,
			Buttons:  genderKeyboard(),
			Markdown: true,
		}, nil
	}

	return s.State, promptFor(s.State, s), nil
}

// ==================== анкета специалиста ====================

func (d *Dispatcher) handleGender(ctx context.Context, s *models.Session, in models.Interaction) (string, models.Render, error) {
	s.Prefs.Gender = in.TokenValue(models.PrefixGender)

	return models.StateAgeUser, models.Render{
		Text:     catalog.AgeUserPromptText,
		Buttons:  ageUserKeyboard(),
		Markdown: true,
	}, nil
}

func (d *Dispatcher) handleAgeUser(ctx context.Context, s *models.Session, in models.Interaction) (string, models.Render, error) {
	s.Prefs.AgeUser = in.TokenValue(models.PrefixAgeUser)

	if s.Prefs.Consultation == models.ConsultationPsychologist {
		// Для психолога возраст специалиста не спрашиваем
		return models.StateAgeUser, models.Render{
			Text:     psychologistSummaryText(s),
			Buttons:  continueKeyboard(models.TokenContinueToDiscovery),
			Markdown: true,
		}, nil
	}

	return models.StateAgeSpecialist, models.Render{
		Text:     catalog.AgeSpecialistPromptText,
		Buttons:  ageSpecialistKeyboard(),
		Markdown: true,
	}, nil
}

func (d *Dispatcher) handleAgeSpecialist(ctx context.Context, s *models.Session, in models.Interaction) (string, models.Render, error) {
	s.Prefs.AgeSpecialist = in.TokenValue(models.PrefixAgeSpec)

	return models.StateAgeSpecialist, models.Render{
		Text:     specialistSummaryText(s),
		Buttons:  continueKeyboard(models.TokenContinueToDiscovery),
		Markdown: true,
	}, nil
}

// ==================== источник и свободный ввод ====================

func (d *Dispatcher) showDiscovery(s *models.Session) (string, models.Render, error) {
	return models.StateHowFoundUs, models.Render{
		Text:     catalog.DiscoveryPromptText,
		Buttons:  discoveryKeyboard(),
		Markdown: true,
	}, nil
}

func (d *Dispatcher) continueToDiscovery(ctx context.Context, s *models.Session, in models.Interaction) (string, models.Render, error) {
	return d.showDiscovery(s)
}

func (d *Dispatcher) handleDiscovery(ctx context.Context, s *models.Session, in models.Interaction) (string, models.Render, error) {
	source := in.TokenValue(models.PrefixDiscovery)
	s.Prefs.Discovery = source

	zerolog.Ctx(ctx).Info().Str("source", source).Msg("discovery source")

	switch source {
	case "support_group":
		return models.StateGroupNameInput, models.Render{
			Text:     catalog.GroupNamePromptText,
			Markdown: true,
		}, nil
	case "psychologist":
		return models.StatePsychologistNameInput, models.Render{
			Text:     catalog.PsychologistNamePromptText,
			Markdown: true,
		}, nil
	}

	return models.StateAnonQuestionChoice, models.Render{
		Text:     catalog.AnonQuestionChoiceText,
		Buttons:  yesNoKeyboard(models.TokenYesAnonQuestion, models.TokenNoAnonQuestion),
		Markdown: true,
	}, nil
}

func (d *Dispatcher) handleGroupName(ctx context.Context, s *models.Session, in models.Interaction) (string, models.Render, error) {
	name := sanitizeInput(in.Text)
	s.Prefs.GroupName = name

	text := fmt.Sprintf("✅ **Спасибо!**\n\nНазвание группы: %s\n\n%s", name, catalog.AnonQuestionChoiceText)
	return models.StateAnonQuestionChoice, models.Render{
		Text:     text,
		Buttons:  yesNoKeyboard(models.TokenYesAnonQuestion, models.TokenNoAnonQuestion),
		Markdown: true,
	}, nil
}

func (d *Dispatcher) handlePsychologistName(ctx context.Context, s *models.Session, in models.Interaction) (string, models.Render, error) {
	name := sanitizeInput(in.Text)
	s.Prefs.PsychologistName = name

	text := fmt.Sprintf("✅ **Спасибо!**\n\nИмя психолога: %s\n\n%s", name, catalog.AnonQuestionChoiceText)
	return models.StateAnonQuestionChoice, models.Render{
		Text:     text,
		Buttons:  yesNoKeyboard(models.TokenYesAnonQuestion, models.TokenNoAnonQuestion),
		Markdown: true,
	}, nil
}

// ==================== анонимный вопрос ====================

func (d *Dispatcher) handleAnonChoice(ctx context.Context, s *models.Session, in models.Interaction) (string, models.Render, error) {
	if in.Token == models.TokenYesAnonQuestion {
		return models.StateAnonQuestionInput, models.Render{
			Text:     catalog.AnonQuestionPromptText,
			Markdown: true,
		}, nil
	}

	return models.StateConversationEnd, models.Render{
		Text:    catalog.FinalText,
		Buttons: finalKeyboard(),
	}, nil
}

func (d *Dispatcher) handleAnonQuestion(ctx context.Context, s *models.Session, in models.Interaction) (string, models.Render, error) {
	question := sanitizeInput(in.Text)
	s.Prefs.AnonQuestion = question
	l := zerolog.Ctx(ctx)

	if d.store != nil {
		q := &models.Question{UserID: s.UserID, Text: question}
		if err := d.store.SaveQuestion(ctx, q); err != nil {
			return "", models.Render{}, fmt.Errorf("save question: %w", err)
		}
	}

	if d.metrics != nil {
		d.metrics.QuestionsReceived.Inc()
	}

	// Пересылаем вопрос администраторам
	for _, adminID := range d.admins {
		notice := fmt.Sprintf("❓ Новый анонимный вопрос\n\nОт пользователя: %d\n\n%s", s.UserID, question)
		if err := d.port.Send(ctx, models.ChatRef{ChatID: adminID}, models.Render{Text: notice}); err != nil {
			l.Error().Err(err).Int64("admin_id", adminID).Msg("failed to forward question to admin")
		}
	}

	text := catalog.AnonQuestionThanksText + "\n\n" + catalog.FinalText
	return models.StateConversationEnd, models.Render{
		Text:    text,
		Buttons: finalKeyboard(),
	}, nil
}

// ==================== финальный экран ====================

func (d *Dispatcher) finalFAQ(ctx context.Context, s *models.Session, in models.Interaction) (string, models.Render, error) {
	return models.StateConversationEnd, models.Render{
		Text:    catalog.FAQText,
		Buttons: backKeyboard("⬅️ Назад", models.TokenBackToFinal),
	}, nil
}

func (d *Dispatcher) finalWebinars(ctx context.Context, s *models.Session, in models.Interaction) (string, models.Render, error) {
	return models.StateConversationEnd, models.Render{
		Text:    catalog.WebinarsText,
		Buttons: backKeyboard("⬅️ Назад", models.TokenBackToFinal),
	}, nil
}

func (d *Dispatcher) gotoFinal(ctx context.Context, s *models.Session, in models.Interaction) (string, models.Render, error) {
	return models.StateConversationEnd, models.Render{
		Text:    catalog.FinalText,
		Buttons: finalKeyboard(),
	}, nil
}

func (d *Dispatcher) restartConversation(ctx context.Context, s *models.Session, in models.Interaction) (string, models.Render, error) {
	s.ResetPrefs()

	zerolog.Ctx(ctx).Info().Msg("conversation restarted")

	return models.StateDependencySelection, models.Render{
		Text:    catalog.DependencyMenuText,
		Buttons: dependencyKeyboard(),
	}, nil
}

// ==================== навигация назад ====================

func (d *Dispatcher) gotoDependency(ctx context.Context, s *models.Session, in models.Interaction) (string, models.Render, error) {
	return models.StateDependencySelection, promptFor(models.StateDependencySelection, s), nil
}

func (d *Dispatcher) gotoTimezones(ctx context.Context, s *models.Session, in models.Interaction) (string, models.Render, error) {
	return models.StateTimezoneSelection, timezonePrompt(s), nil
}

func (d *Dispatcher) gotoCity(ctx context.Context, s *models.Session, in models.Interaction) (string, models.Render, error) {
	return models.StateCitySelection, cityPrompt(s), nil
}

func (d *Dispatcher) gotoHelp(ctx context.Context, s *models.Session, in models.Interaction) (string, models.Render, error) {
	return models.StateHelpType, helpTypePrompt(s), nil
}

func (d *Dispatcher) gotoSupportMenu(ctx context.Context, s *models.Session, in models.Interaction) (string, models.Render, error) {
	return models.StateSupportOrSpecialist, models.Render{
		Text:    catalog.SupportMenuText,
		Buttons: supportMenuKeyboard(),
	}, nil
}

func (d *Dispatcher) gotoGender(ctx context.Context, s *models.Session, in models.Interaction) (string, models.Render, error) {
	return models.StateGenderPreference, models.Render{
		Text:     catalog.GenderPromptText,
		Buttons:  genderKeyboard(),
		Markdown: true,
	}, nil
}

func (d *Dispatcher) gotoAgeUser(ctx context.Context, s *models.Session, in models.Interaction) (string, models.Render, error) {
	return models.StateAgeUser, models.Render{
		Text:     catalog.AgeUserPromptText,
		Buttons:  ageUserKeyboard(),
		Markdown: true,
	}, nil
}

// backFromGender смотрит, откуда пользователь пришел к выбору пола.
func (d *Dispatcher) backFromGender(ctx context.Context, s *models.Session, in models.Interaction) (string, models.Render, error) {
	if s.Prefs.Arrival == models.ArrivalSupportMenu {
		return d.gotoSupportMenu(ctx, s, in)
	}
	return d.gotoHelp(ctx, s, in)
}
