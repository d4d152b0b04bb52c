package models

// Arrival фиксирует, каким путём пользователь попал к выбору пола.
// От него зависит цель кнопки "Назад" на этом шаге.
type Arrival string

const (
	ArrivalHelpType    Arrival = "help_type"
	ArrivalSupportMenu Arrival = "support_menu"
)

// Preferences — слоты, заполняемые по ходу диалога. Указатели на bool
// отличают "не спрашивали" от явного "нет".
type Preferences struct {
	Dependency       string  `json:"dependency,omitempty"`
	Timezone         string  `json:"timezone,omitempty"`
	City             string  `json:"city,omitempty"`
	HelpType         string  `json:"help_type,omitempty"`
	WantsSupport     *bool   `json:"wants_support,omitempty"`
	WantsLiterature  *bool   `json:"wants_literature,omitempty"`
	SOSChoice        string  `json:"sos_choice,omitempty"`
	Consultation     string  `json:"consultation,omitempty"`
	Literature       string  `json:"literature,omitempty"`
	Gender           string  `json:"gender,omitempty"`
	AgeUser          string  `json:"age_user,omitempty"`
	AgeSpecialist    string  `json:"age_specialist,omitempty"`
	Discovery        string  `json:"discovery,omitempty"`
	GroupName        string  `json:"group_name,omitempty"`
	PsychologistName string  `json:"psychologist_name,omitempty"`
	AnonQuestion     string  `json:"anon_question,omitempty"`
	Arrival          Arrival `json:"arrival,omitempty"`
}

type Session struct {
	UserID   int64       `json:"user_id"`
	ChatID   int64       `json:"chat_id"`
	State    string      `json:"state"`
	Prefs    Preferences `json:"prefs"`
	Username string      `json:"username,omitempty"`
}

func NewSession(userID, chatID int64) *Session {
	return &Session{
		UserID: userID,
		ChatID: chatID,
		State:  StateDependencySelection,
	}
}

// ResetPrefs очищает собранные предпочтения и возвращает диалог к началу.
func (s *Session) ResetPrefs() {
	s.Prefs = Preferences{}
	s.State = StateDependencySelection
}

func BoolPtr(v bool) *bool { return &v }
