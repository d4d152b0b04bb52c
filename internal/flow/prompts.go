package flow

import (
	"fmt"

	"oporabot/internal/catalog"
	"oporabot/internal/models"
)

func welcomeRender() models.Render {
	return models.Render{
		Text:     catalog.WelcomeText,
		Buttons:  dependencyKeyboard(),
		Markdown: true,
	}
}

func timezonePrompt(s *models.Session) models.Render {
	name := catalog.DependencyName(s.Prefs.Dependency)
	return models.Render{
		Text:     fmt.Sprintf("✅ **Выбрано: %s**\n\nТеперь укажите ваш часовой пояс:", name),
		Buttons:  timezoneKeyboard(),
		Markdown: true,
	}
}

func cityPrompt(s *models.Session) models.Render {
	name := catalog.TimezoneName(s.Prefs.Timezone)
	return models.Render{
		Text:     fmt.Sprintf("✅ **Часовой пояс: %s**\n\nВыберите город:", name),
		Buttons:  cityKeyboard(s.Prefs.Timezone),
		Markdown: true,
	}
}

func helpTypePrompt(s *models.Session) models.Render {
	name := catalog.CityName(s.Prefs.City)
	return models.Render{
		Text:     fmt.Sprintf("✅ **Город: %s**\n\nКакая помощь необходима?", name),
		Buttons:  helpTypeKeyboard(),
		Markdown: true,
	}
}

// linkLine — строка со ссылкой на группу либо объяснение её отсутствия.
func linkLine(city, dependency string) string {
	link, status := catalog.LookupLink(city, dependency)
	switch status {
	case catalog.LinkFound:
		return fmt.Sprintf("🔗 Ссылка: %s", link)
	case catalog.LinkComingLater:
		return "(информация появится позже)"
	default:
		return "(ссылка недоступна для этого города)"
	}
}

// groupsQuickText — карточка подбора групп из меню помощи (без сводки).
func groupsQuickText(s *models.Session) string {
	return fmt.Sprintf("👥 **Подбор онлайн/офлайн-групп**\n\n📍 Город: %s\n🎯 Зависимость: %s\n\n%s",
		catalog.CityName(s.Prefs.City),
		catalog.DependencyName(s.Prefs.Dependency),
		linkLine(s.Prefs.City, s.Prefs.Dependency))
}

// groupsResultText — карточка подбора групп со сводкой собранных данных.
func groupsResultText(s *models.Session) string {
	return fmt.Sprintf("👥 **Подбор онлайн/офлайн-групп**\n\n**Ваши данные:**\n• Зависимость: %s\n• Часовой пояс: %s\n• Город: %s\n\n%s",
		catalog.DependencyName(s.Prefs.Dependency),
		catalog.TimezoneName(s.Prefs.Timezone),
		catalog.CityName(s.Prefs.City),
		linkLine(s.Prefs.City, s.Prefs.Dependency))
}

func psychologistSummaryText(s *models.Session) string {
	return fmt.Sprintf("✅ **Подбор психолога завершен!**\n\n**Ваши данные:**\n• Ваш пол: %s\n• Ваш возраст: %s\n\nПсихолог будет подобран в соответствии с вашими предпочтениями.\nАдминистратор свяжется с вами в ближайшее время.",
		catalog.GenderName(s.Prefs.Gender),
		catalog.AgeUserName(s.Prefs.AgeUser))
}

func specialistSummaryText(s *models.Session) string {
	return fmt.Sprintf("✅ **Подбор специалиста завершен!**\n\n**Ваши предпочтения:**\n• Ваш пол: %s\n• Ваш возраст: %s\n• Возраст специалиста: %s\n\nС вами свяжется специалист в течении 24 часов для уточнения информации и запроса.",
		catalog.GenderName(s.Prefs.Gender),
		catalog.AgeUserName(s.Prefs.AgeUser),
		catalog.AgeSpecialistName(s.Prefs.AgeSpecialist))
}

// promptFor возвращает актуальное приглашение для состояния. Используется
// навигацией назад и повторной отрисовкой при неизвестном токене.
func promptFor(state string, s *models.Session) models.Render {
	switch state {
	case models.StateDependencySelection:
		return models.Render{Text: catalog.DependencyMenuText, Buttons: dependencyKeyboard(), Markdown: true}
	case models.StateTimezoneSelection:
		return timezonePrompt(s)
	case models.StateCitySelection:
		return cityPrompt(s)
	case models.StateHelpType:
		return helpTypePrompt(s)
	case models.StateHelpChoice:
		if s.Prefs.WantsSupport != nil {
			return models.Render{
				Text:    "💡 Хотите ли подобрать группу поддержки/специалиста для помощи?",
				Buttons: yesNoKeyboard(models.TokenYesSupportAfterInfo, models.TokenNoSupportAfterInfo),
			}
		}
		return models.Render{Text: catalog.HelpChoiceText, Buttons: helpChoiceKeyboard()}
	case models.StateLiteratureChoice:
		if s.Prefs.WantsLiterature == nil {
			return models.Render{
				Text:    catalog.LiteratureQuestionText,
				Buttons: yesNoKeyboard(models.TokenYesLiteratureAfterInfo, models.TokenNoLiteratureAfterInfo),
			}
		}
		return models.Render{Text: catalog.LiteratureMenuText, Buttons: literatureKeyboard()}
	case models.StateSupportOrSpecialist:
		return models.Render{Text: catalog.SupportMenuText, Buttons: supportMenuKeyboard()}
	case models.StateGenderPreference:
		return models.Render{Text: catalog.GenderPromptText, Buttons: genderKeyboard(), Markdown: true}
	case models.StateAgeUser:
		return models.Render{Text: catalog.AgeUserPromptText, Buttons: ageUserKeyboard(), Markdown: true}
	case models.StateAgeSpecialist:
		return models.Render{Text: catalog.AgeSpecialistPromptText, Buttons: ageSpecialistKeyboard(), Markdown: true}
	case models.StateGroupsResult:
		return models.Render{Text: groupsResultText(s), Buttons: continueKeyboard(models.TokenContinueToDiscovery), Markdown: true}
	case models.StateHowFoundUs:
		return models.Render{Text: catalog.DiscoveryPromptText, Buttons: discoveryKeyboard(), Markdown: true}
	case models.StateGroupNameInput:
		return models.Render{Text: catalog.GroupNamePromptText, Markdown: true}
	case models.StatePsychologistNameInput:
		return models.Render{Text: catalog.PsychologistNamePromptText, Markdown: true}
	case models.StateAnonQuestionChoice:
		return models.Render{
			Text:     catalog.AnonQuestionChoiceText,
			Buttons:  yesNoKeyboard(models.TokenYesAnonQuestion, models.TokenNoAnonQuestion),
			Markdown: true,
		}
	case models.StateAnonQuestionInput:
		return models.Render{Text: catalog.AnonQuestionPromptText, Markdown: true}
	case models.StateConversationEnd:
		return models.Render{Text: catalog.FinalText, Buttons: finalKeyboard()}
	}
	return models.Render{Text: catalog.SessionExpiredText}
}
