package models

const (
	ParseModeMarkdown = "Markdown"
)

// Состояния диалога. Терминальное — StateConversationEnd.
const (
	StateDependencySelection   = "dependency_selection"
	StateTimezoneSelection     = "timezone_selection"
	StateCitySelection         = "city_selection"
	StateHelpType              = "help_type"
	StateHelpChoice            = "help_choice"
	StateLiteratureChoice      = "literature_choice"
	StateSupportOrSpecialist   = "support_or_specialist"
	StateGenderPreference      = "gender_preference"
	StateAgeUser               = "age_user"
	StateAgeSpecialist         = "age_specialist"
	StateGroupsResult          = "groups_result"
	StateHowFoundUs            = "how_found_us"
	StateGroupNameInput        = "group_name_input"
	StatePsychologistNameInput = "psychologist_name_input"
	StateAnonQuestionChoice    = "anon_question_choice"
	StateAnonQuestionInput     = "anon_question_input"
	StateConversationEnd       = "conversation_end"
)

// Префиксы токенов кнопок. Значение извлекается отрезанием префикса.
const (
	PrefixDependency = "dep_"
	PrefixTimezone   = "timezone_"
	PrefixCity       = "city_"
	PrefixHelpType   = "help_"
	PrefixSOS        = "sos_"
	PrefixLiterature = "lit_"
	PrefixGender     = "gender_"
	PrefixAgeUser    = "ageu_"
	PrefixAgeSpec    = "ages_"
	PrefixDiscovery  = "found_"
)

// Фиксированные токены. Глобальные проверяются до маршрутов состояния.
const (
	TokenChooseSupport           = "choose_support"
	TokenChooseLiterature        = "choose_literature"
	TokenSkipBoth                = "skip_both"
	TokenContinueAfterLiterature = "continue_after_literature"
	TokenContinueToDiscovery     = "continue_to_discovery"
	TokenRestartConversation     = "restart_conversation"
	TokenFinalFAQ                = "final_faq"
	TokenFinalWebinars           = "final_webinars"

	TokenBackToFinal      = "back_to_final"
	TokenBackToDependency = "back_to_dependency"
	TokenBackToTimezones  = "back_to_timezones"
	TokenBackToCity       = "back_to_city"
	TokenBackToHelp       = "back_to_help"
	TokenBackFromGender   = "back_from_gender"
	TokenBackToGender     = "back_to_gender"
	TokenBackToAgeUser    = "back_to_age_user"

	TokenYesSupportAfterInfo    = "yes_support_after_info"
	TokenNoSupportAfterInfo     = "no_support_after_info"
	TokenYesLiteratureAfterInfo = "yes_literature_after_info"
	TokenNoLiteratureAfterInfo  = "no_literature_after_info"
	TokenYesAnonQuestion        = "yes_anon_question"
	TokenNoAnonQuestion         = "no_anon_question"
)

// Типы консультации.
const (
	ConsultationSpecialist   = "specialist"
	ConsultationPsychologist = "psychologist"
)

const (
	// SessionTTL время жизни сессии пользователя в Redis
	SessionTTL = 24 * 60 * 60 // 24 часа в секундах

	// MaxInputLength предел длины свободного текста от пользователя
	MaxInputLength = 1000
)
