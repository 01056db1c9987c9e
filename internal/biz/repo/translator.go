package repo

import (
	"context"

	"github.com/jaywang922/line-translator-bot/internal/biz/domain"
)

// Translator is the port to the remote completion service.
// Callers must not pass empty text. Failures are returned as errors and
// handled per call; retry policy, if any, lives behind this interface.
type Translator interface {
	// Translate renders text into the target language.
	Translate(ctx context.Context, text string, target domain.LanguageCode) (string, error)
}
