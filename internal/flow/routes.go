package flow

import (
	"strings"

	"oporabot/internal/models"
)

type prefixRoute struct {
	prefix  string
	handler handlerFunc
}

// buildRoutes заполняет таблицы маршрутизации. Глобальные токены
// проверяются до маршрутов состояния, поэтому кнопки навигации
// срабатывают из любого места диалога.
func (d *Dispatcher) buildRoutes() {
	d.global = map[string]handlerFunc{
		models.TokenBackToDependency: d.gotoDependency,
		models.TokenBackToTimezones:  d.gotoTimezones,
		models.TokenBackToCity:       d.gotoCity,
		models.TokenBackToHelp:       d.gotoHelp,
		models.TokenBackToFinal:      d.gotoFinal,
		models.TokenBackFromGender:   d.backFromGender,
		models.TokenBackToGender:     d.gotoGender,
		models.TokenBackToAgeUser:    d.gotoAgeUser,

		models.TokenChooseSupport:    d.chooseSupport,
		models.TokenChooseLiterature: d.chooseLiterature,
		models.TokenSkipBoth:         d.skipBoth,

		models.TokenContinueAfterLiterature: d.continueToDiscovery,
		models.TokenContinueToDiscovery:     d.continueToDiscovery,

		models.TokenRestartConversation: d.restartConversation,
		models.TokenFinalFAQ:            d.finalFAQ,
		models.TokenFinalWebinars:       d.finalWebinars,
	}

	d.prefixRoutes = map[string][]prefixRoute{
		models.StateDependencySelection: {{models.PrefixDependency, d.handleDependency}},
		models.StateTimezoneSelection:   {{models.PrefixTimezone, d.handleTimezone}},
		models.StateCitySelection:       {{models.PrefixCity, d.handleCity}},
		models.StateHelpType:            {{models.PrefixHelpType, d.handleHelpType}},
		models.StateLiteratureChoice:    {{models.PrefixLiterature, d.handleLiteratureSelection}},
		models.StateSupportOrSpecialist: {{models.PrefixSOS, d.handleSupportOrSpecialist}},
		models.StateGenderPreference:    {{models.PrefixGender, d.handleGender}},
		models.StateAgeUser:             {{models.PrefixAgeUser, d.handleAgeUser}},
		models.StateAgeSpecialist:       {{models.PrefixAgeSpec, d.handleAgeSpecialist}},
		models.StateHowFoundUs:          {{models.PrefixDiscovery, d.handleDiscovery}},
	}

	d.exactRoutes = map[string]map[string]handlerFunc{
		models.StateHelpChoice: {
			models.TokenYesSupportAfterInfo: d.handleSupportAfterInfo,
			models.TokenNoSupportAfterInfo:  d.handleSupportAfterInfo,
		},
		models.StateLiteratureChoice: {
			models.TokenYesLiteratureAfterInfo: d.handleLiteratureAfterInfo,
			models.TokenNoLiteratureAfterInfo:  d.handleLiteratureAfterInfo,
		},
		models.StateAnonQuestionChoice: {
			models.TokenYesAnonQuestion: d.handleAnonChoice,
			models.TokenNoAnonQuestion:  d.handleAnonChoice,
		},
	}

	d.textRoutes = map[string]handlerFunc{
		models.StateGroupNameInput:        d.handleGroupName,
		models.StatePsychologistNameInput: d.handlePsychologistName,
		models.StateAnonQuestionInput:     d.handleAnonQuestion,
	}

	// Цели команды /back по текущему состоянию
	d.backRoutes = map[string]handlerFunc{
		models.StateTimezoneSelection:   d.gotoDependency,
		models.StateCitySelection:       d.gotoTimezones,
		models.StateHelpType:            d.gotoCity,
		models.StateSupportOrSpecialist: d.gotoHelp,
		models.StateGenderPreference:    d.backFromGender,
		models.StateAgeUser:             d.gotoGender,
		models.StateAgeSpecialist:       d.gotoAgeUser,
	}
}

// resolveButton ищет обработчик для токена: сначала глобальные,
// затем точные и префиксные маршруты текущего состояния.
func (d *Dispatcher) resolveButton(state, token string) handlerFunc {
	if h, ok := d.global[token]; ok {
		return h
	}
	if exact, ok := d.exactRoutes[state]; ok {
		if h, ok := exact[token]; ok {
			return h
		}
	}
	for _, r := range d.prefixRoutes[state] {
		if strings.HasPrefix(token, r.prefix) {
			return r.handler
		}
	}
	return nil
}
