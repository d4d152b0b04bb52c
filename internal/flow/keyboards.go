package flow

import (
	"oporabot/internal/catalog"
	"oporabot/internal/models"
)

// Клавиатуры собираются из справочников; порядок кнопок повторяет
// порядок записей в catalog.

func entryKeyboard(entries []catalog.Entry, prefix string) [][]models.Button {
	var rows [][]models.Button
	for _, e := range entries {
		rows = append(rows, models.ButtonRow(models.Button{Label: e.Name, Token: prefix + e.Key}))
	}
	return rows
}

func dependencyKeyboard() [][]models.Button {
	return entryKeyboard(catalog.Dependencies, models.PrefixDependency)
}

func timezoneKeyboard() [][]models.Button {
	rows := entryKeyboard(catalog.Timezones, models.PrefixTimezone)
	return append(rows, models.ButtonRow(models.Button{Label: "⬅️ Назад", Token: models.TokenBackToDependency}))
}

func cityKeyboard(timezone string) [][]models.Button {
	rows := entryKeyboard(catalog.CitiesByTimezone[timezone], models.PrefixCity)
	return append(rows, models.ButtonRow(models.Button{Label: "⬅️ Назад к часовым поясам", Token: models.TokenBackToTimezones}))
}

func helpTypeKeyboard() [][]models.Button {
	rows := entryKeyboard(catalog.HelpTypes, models.PrefixHelpType)
	return append(rows, models.ButtonRow(models.Button{Label: "⬅️ Назад к выбору города", Token: models.TokenBackToCity}))
}

func helpChoiceKeyboard() [][]models.Button {
	return [][]models.Button{
		models.ButtonRow(models.Button{Label: "👥 Группа поддержки/Специалист", Token: models.TokenChooseSupport}),
		models.ButtonRow(models.Button{Label: "📚 Литература", Token: models.TokenChooseLiterature}),
		models.ButtonRow(models.Button{Label: "⏭️ Пропустить оба", Token: models.TokenSkipBoth}),
		models.ButtonRow(models.Button{Label: "⬅️ Назад", Token: models.TokenBackToHelp}),
	}
}

func supportMenuKeyboard() [][]models.Button {
	return [][]models.Button{
		models.ButtonRow(models.Button{Label: "Консультация психолога", Token: "sos_specialist"}),
		models.ButtonRow(models.Button{Label: "Группа поддержки", Token: "sos_support_group"}),
		models.ButtonRow(models.Button{Label: "⬅️ Назад", Token: models.TokenBackToHelp}),
	}
}

func literatureKeyboard() [][]models.Button {
	rows := entryKeyboard(catalog.LiteratureOptions, models.PrefixLiterature)
	return append(rows, models.ButtonRow(models.Button{Label: "⬅️ Назад", Token: models.TokenBackToHelp}))
}

func yesNoKeyboard(yesToken, noToken string) [][]models.Button {
	return [][]models.Button{
		models.ButtonRow(models.Button{Label: "Да", Token: yesToken}),
		models.ButtonRow(models.Button{Label: "Нет", Token: noToken}),
	}
}

func genderKeyboard() [][]models.Button {
	rows := entryKeyboard(catalog.GenderOptions, models.PrefixGender)
	return append(rows, models.ButtonRow(models.Button{Label: "⬅️ Назад", Token: models.TokenBackFromGender}))
}

func ageUserKeyboard() [][]models.Button {
	rows := entryKeyboard(catalog.AgeUserOptions, models.PrefixAgeUser)
	return append(rows, models.ButtonRow(models.Button{Label: "⬅️ Назад", Token: models.TokenBackToGender}))
}

func ageSpecialistKeyboard() [][]models.Button {
	rows := entryKeyboard(catalog.AgeSpecialistOptions, models.PrefixAgeSpec)
	return append(rows, models.ButtonRow(models.Button{Label: "⬅️ Назад", Token: models.TokenBackToAgeUser}))
}

func discoveryKeyboard() [][]models.Button {
	return entryKeyboard(catalog.DiscoverySources, models.PrefixDiscovery)
}

func continueKeyboard(token string) [][]models.Button {
	return [][]models.Button{
		models.ButtonRow(models.Button{Label: "Продолжить", Token: token}),
	}
}

func finalKeyboard() [][]models.Button {
	return [][]models.Button{
		models.ButtonRow(models.Button{Label: "❓ Ответы на популярные вопросы", Token: models.TokenFinalFAQ}),
		models.ButtonRow(models.Button{Label: "📅 Расписание вебинаров спикеров", Token: models.TokenFinalWebinars}),
		models.ButtonRow(models.Button{Label: "🔄 Вернуться к началу", Token: models.TokenRestartConversation}),
	}
}

func backKeyboard(label, token string) [][]models.Button {
	return [][]models.Button{
		models.ButtonRow(models.Button{Label: label, Token: token}),
	}
}
