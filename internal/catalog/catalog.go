// Package catalog содержит статические справочники диалога: виды
// зависимостей, часовые пояса, города, варианты меню и тексты.
// Порядок записей определяет порядок кнопок в клавиатурах.
package catalog

// Entry — запись справочника: внутренний ключ и отображаемое название.
type Entry struct {
	Key  string
	Name string
}

var Dependencies = []Entry{
	{"alcohol", "Алкогольная зависимость"},
	{"drugs", "Наркотическая зависимость"},
	{"gaming", "Игровая зависимость (Лудомания)"},
	{"food", "Пищевая зависимость (РПП)"},
	{"internet", "Интернет-зависимость"},
	{"nicotine", "Никотиновая зависимость"},
	{"codependency", "Созависимость"},
	{"vad", "ВДА (взрослые дети алкоголиков)"},
	{"love", "Любовная зависимость"},
	{"workaholism", "Трудоголизм"},
	{"vr", "ВР (Взрослый ребёнок)"},
}

var Timezones = []Entry{
	{"msk", "МСК"},
	{"msk_plus_1", "МСК+1"},
	{"msk_plus_2", "МСК+2"},
	{"msk_plus_3", "МСК+3"},
	{"msk_plus_4", "МСК+4"},
	{"msk_plus_5", "МСК+5"},
	{"msk_plus_6", "МСК+6"},
	{"msk_plus_7", "МСК+7"},
	{"msk_plus_8", "МСК+8"},
	{"msk_plus_9", "МСК+9"},
	{"msk_minus_1", "МСК-1"},
}

var CitiesByTimezone = map[string][]Entry{
	"msk": {
		{"moscow", "Москва"},
		{"spb", "Санкт-Петербург"},
		{"voronezh", "Воронеж"},
		{"krasnodar", "Краснодар"},
		{"kazan", "Казань"},
	},
	"msk_plus_1": {
		{"samara", "Самара"},
		{"izhevsk", "Ижевск"},
	},
	"msk_plus_2": {
		{"ekaterinburg", "Екатеринбург"},
		{"chelyabinsk", "Челябинск"},
	},
	"msk_plus_3": {
		{"omsk", "Омск"},
		{"barnaul", "Барнаул"},
	},
	"msk_plus_4": {
		{"novosibirsk", "Новосибирск"},
		{"krasnoyarsk", "Красноярск"},
	},
	"msk_plus_5": {
		{"irkutsk", "Иркутск"},
		{"ulan_ude", "Улан-Удэ"},
	},
	"msk_plus_6": {
		{"yakutsk", "Якутск"},
		{"blagoveshchensk", "Благовещенск"},
	},
	"msk_plus_7": {
		{"vladivostok", "Владивосток"},
		{"khabarovsk", "Хабаровск"},
	},
	"msk_plus_8": {
		{"magadan", "Магадан"},
		{"yuzhno_sakhalinsk", "Южно-Сахалинск"},
	},
	"msk_plus_9": {
		{"petropavlovsk", "Петропавловск-Камчатский"},
		{"anadyr", "Анадырь"},
	},
	"msk_minus_1": {
		{"kaliningrad", "Калининград"},
	},
}

var HelpTypes = []Entry{
	{"info", "Информация о зависимости"},
	{"groups_selection", "Подбор онлайн/офлайн-групп"},
	{"specialist", "Консультация специалиста"},
	{"faq", "Ответы на популярные вопросы"},
	{"webinars", "Расписание вебинаров спикеров"},
}

var LiteratureOptions = []Entry{
	{"12steps", "12 шагов и 12 традиций"},
	{"new_glasses", "Новые очки"},
}

var GenderOptions = []Entry{
	{"male", "Мужской"},
	{"female", "Женский"},
}

var AgeUserOptions = []Entry{
	{"16_18", "16-18"},
	{"18_25", "18-25"},
	{"25_35", "25-35"},
	{"35_50", "35-50"},
	{"50_plus", "50+"},
}

var AgeSpecialistOptions = []Entry{
	{"young", "Молодой"},
	{"middle", "Средний"},
}

var DiscoverySources = []Entry{
	{"friends", "Друзья/знакомые"},
	{"ads", "Реклама"},
	{"psychologist", "Психолог"},
	{"support_group", "Группа поддержки"},
	{"other", "Другое"},
}

func nameByKey(entries []Entry, key, fallback string) string {
	for _, e := range entries {
		if e.Key == key {
			return e.Name
		}
	}
	return fallback
}

func DependencyName(key string) string {
	return nameByKey(Dependencies, key, "Неизвестный тип")
}

func TimezoneName(key string) string {
	return nameByKey(Timezones, key, "Неизвестный часовой пояс")
}

// CityName ищет город по всем часовым поясам.
func CityName(key string) string {
	for _, cities := range CitiesByTimezone {
		for _, e := range cities {
			if e.Key == key {
				return e.Name
			}
		}
	}
	return "Неизвестный город"
}

func LiteratureName(key string) string {
	return nameByKey(LiteratureOptions, key, "Выбранная литература")
}

func GenderName(key string) string {
	return nameByKey(GenderOptions, key, "Не указан")
}

func AgeUserName(key string) string {
	return nameByKey(AgeUserOptions, key, "Не указан")
}

func AgeSpecialistName(key string) string {
	return nameByKey(AgeSpecialistOptions, key, "Не указан")
}

func DiscoveryName(key string) string {
	return nameByKey(DiscoverySources, key, "Другое")
}
