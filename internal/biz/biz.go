package biz

import (
	"github.com/jaywang922/line-translator-bot/internal/biz/repo"
	"github.com/jaywang922/line-translator-bot/internal/biz/usecase"
)

// Usecases contains all usecases
type Usecases struct {
	Dispatcher *usecase.Dispatcher
}

// NewUsecases wires the business layer from its repo dependencies.
// history and speechLink may be nil.
func NewUsecases(
	store repo.SessionStore,
	translator repo.Translator,
	history repo.HistoryRepo,
	speechLink usecase.SpeechLinkFunc,
) *Usecases {
	return &Usecases{
		Dispatcher: usecase.NewDispatcher(store, translator, history, speechLink),
	}
}
