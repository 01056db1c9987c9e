package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jaywang922/line-translator-bot/internal/biz/domain"
	"github.com/jaywang922/line-translator-bot/internal/biz/repo"
)

// SpeechLinkFunc builds a synthesized-speech link for a translated text,
// or returns "" to append nothing.
type SpeechLinkFunc func(text string, lang domain.LanguageCode) string

// Dispatcher maps (Intent, current Session, notified flag) to an ordered
// sequence of Actions. It reads the session store directly but mutates it
// only through the actions it returns, so the relay applies state changes
// and deliveries in one documented order.
type Dispatcher struct {
	store      repo.SessionStore
	translator repo.Translator
	history    repo.HistoryRepo // optional, may be nil
	speechLink SpeechLinkFunc   // optional, may be nil
}

// NewDispatcher creates a new dispatcher. history and speechLink are
// optional collaborators.
func NewDispatcher(
	store repo.SessionStore,
	translator repo.Translator,
	history repo.HistoryRepo,
	speechLink SpeechLinkFunc,
) *Dispatcher {
	return &Dispatcher{
		store:      store,
		translator: translator,
		history:    history,
		speechLink: speechLink,
	}
}

// Dispatch parses one inbound event and produces the actions to take.
// Exactly one event is handled at a time per batch; translation failures
// are converted to user-visible text and never escape as errors.
func (d *Dispatcher) Dispatch(ctx context.Context, ev domain.Event) []domain.Action {
	intent := Parse(strings.TrimSpace(ev.Text))

	switch intent.Kind {
	case domain.IntentHelp:
		return []domain.Action{domain.ReplyAction(HelpText())}

	case domain.IntentWhoAmI:
		return []domain.Action{domain.ReplyAction(d.whoAmIText(ctx, ev.UserID))}

	case domain.IntentStop:
		return d.dispatchStop(ev)

	case domain.IntentSetLanguage:
		return d.dispatchSetLanguage(intent)

	case domain.IntentTranslate:
		return []domain.Action{domain.ReplyAction(d.translateOne(ctx, ev.UserID, intent.Text, intent.Languages[0]))}

	case domain.IntentStartTimedSession:
		return d.dispatchStartSession(ctx, ev, intent)

	case domain.IntentMultiTranslate:
		return d.dispatchFanOut(ctx, ev.UserID, intent.Text, intent.Languages)

	case domain.IntentImplicitTranslate:
		return d.dispatchImplicit(ctx, ev, intent.Text)

	case domain.IntentInvalidLanguages:
		return []domain.Action{domain.ReplyAction(invalidLanguagesText(intent.BadTokens))}

	default:
		return []domain.Action{domain.ReplyAction(fallbackText)}
	}
}

func (d *Dispatcher) dispatchStop(ev domain.Event) []domain.Action {
	if d.store.Get(ev.UserID) == nil {
		return []domain.Action{domain.ReplyAction("No active translation session.")}
	}
	return []domain.Action{
		{Kind: domain.ActionClearSession},
		domain.ReplyAction("Translation session stopped."),
	}
}

func (d *Dispatcher) dispatchSetLanguage(intent domain.Intent) []domain.Action {
	session := domain.NewSession(intent.Languages, 0)
	confirm := fmt.Sprintf(
		"Default translation language set to %s. Send any message to translate, or /stop to end.",
		session.LanguageList(),
	)
	return []domain.Action{
		{Kind: domain.ActionSetSession, Session: session},
		domain.ReplyAction(confirm),
	}
}

func (d *Dispatcher) dispatchStartSession(ctx context.Context, ev domain.Event, intent domain.Intent) []domain.Action {
	session := domain.NewSession(intent.Languages, intent.Minutes)

	var confirm string
	if intent.Minutes > 0 {
		confirm = fmt.Sprintf("Translating to %s for the next %d minutes.", session.LanguageList(), intent.Minutes)
	} else {
		confirm = fmt.Sprintf("Translating to %s until /stop.", session.LanguageList())
	}

	actions := []domain.Action{{Kind: domain.ActionSetSession, Session: session}}

	if intent.Text == "" {
		return append(actions, domain.ReplyAction(confirm))
	}

	// Immediate text: single language folds the translation into the
	// confirmation reply, multiple languages push one message each.
	if len(intent.Languages) == 1 {
		translated := d.translateOne(ctx, ev.UserID, intent.Text, intent.Languages[0])
		return append(actions, domain.ReplyAction(confirm+"\n\n"+translated))
	}

	actions = append(actions, domain.ReplyAction(confirm))
	for _, res := range d.fanOut(ctx, ev.UserID, intent.Text, intent.Languages) {
		actions = append(actions, domain.PushAction(res.line()))
	}
	return actions
}

func (d *Dispatcher) dispatchImplicit(ctx context.Context, ev domain.Event, text string) []domain.Action {
	session := d.store.Get(ev.UserID) // lazily expires
	if session == nil {
		if d.store.Notified(ev.UserID) {
			return nil
		}
		return []domain.Action{
			{Kind: domain.ActionMarkNotified},
			domain.ReplyAction(onboardingText),
		}
	}

	if len(session.Languages) == 1 {
		return []domain.Action{domain.ReplyAction(d.translateOne(ctx, ev.UserID, text, session.Languages[0]))}
	}
	return d.dispatchFanOut(ctx, ev.UserID, text, session.Languages)
}

// dispatchFanOut translates text for every language and emits the first
// result as a reply, the rest as pushes, each tagged with its language.
func (d *Dispatcher) dispatchFanOut(ctx context.Context, userID, text string, codes []domain.LanguageCode) []domain.Action {
	results := d.fanOut(ctx, userID, text, codes)
	actions := make([]domain.Action, 0, len(results))
	for i, res := range results {
		if i == 0 {
			actions = append(actions, domain.ReplyAction(res.line()))
		} else {
			actions = append(actions, domain.PushAction(res.line()))
		}
	}
	return actions
}

// fanResult is one per-language outcome of a fan-out.
type fanResult struct {
	code domain.LanguageCode
	text string
	err  error
}

// line renders the result tagged with its language name. A failure yields
// a per-language failure line instead of aborting siblings.
func (r fanResult) line() string {
	if r.err != nil {
		return fmt.Sprintf("%s: translation failed", r.code.DisplayName())
	}
	return fmt.Sprintf("%s: %s", r.code.DisplayName(), r.text)
}

// fanOut issues the per-language translation calls concurrently; they are
// independent of each other. Results keep the order of codes.
func (d *Dispatcher) fanOut(ctx context.Context, userID, text string, codes []domain.LanguageCode) []fanResult {
	results := make([]fanResult, len(codes))
	var wg sync.WaitGroup
	for i, code := range codes {
		wg.Add(1)
		go func(i int, code domain.LanguageCode) {
			defer wg.Done()
			translated, err := d.translator.Translate(ctx, text, code)
			results[i] = fanResult{code: code, text: translated, err: err}
		}(i, code)
	}
	wg.Wait()

	for _, res := range results {
		if res.err != nil {
			fmt.Printf("[Dispatcher] Translate to %s failed: %v\n", res.code, res.err)
			continue
		}
		d.record(ctx, userID, res.code, len(res.text))
	}
	return results
}

// translateOne translates for a single target and returns the reply text,
// with a speech link appended when configured. Failures become the generic
// failure message.
func (d *Dispatcher) translateOne(ctx context.Context, userID, text string, code domain.LanguageCode) string {
	translated, err := d.translator.Translate(ctx, text, code)
	if err != nil {
		fmt.Printf("[Dispatcher] Translate to %s failed: %v\n", code, err)
		return "Translation failed, please try again later."
	}
	d.record(ctx, userID, code, len(translated))

	if d.speechLink != nil {
		if link := d.speechLink(translated, code); link != "" {
			return translated + "\n🔊 " + link
		}
	}
	return translated
}

// record logs a completed translation to the audit history. Best effort:
// the audit log must never affect dispatch.
func (d *Dispatcher) record(ctx context.Context, userID string, code domain.LanguageCode, chars int) {
	if d.history == nil {
		return
	}
	if err := d.history.Record(ctx, userID, code, chars); err != nil {
		fmt.Printf("[Dispatcher] History record failed: %v\n", err)
	}
}

func (d *Dispatcher) whoAmIText(ctx context.Context, userID string) string {
	text := "Your user ID: " + userID
	if d.history != nil {
		if count, err := d.history.CountByUser(ctx, userID); err == nil {
			text += fmt.Sprintf("\nTranslations completed: %d", count)
		}
	}
	return text
}

const onboardingText = "Please set a translation language first: /<code> (e.g. /ja), " +
	"or send /help for the full list of languages and commands."

const fallbackText = "Unknown command. Send /help for usage and the supported language list."

func invalidLanguagesText(tokens []string) string {
	if len(tokens) == 0 {
		return "Usage: /multi <lang1>[,<lang2>...] [<N>min] [text] — 1 to 4 language codes from /help."
	}
	return fmt.Sprintf("Invalid languages: %s. Use 1 to 4 codes from /help.", strings.Join(tokens, ", "))
}

var (
	helpOnce sync.Once
	helpText string
)

// HelpText returns the static help reply enumerating the command grammar
// and every registered language code.
func HelpText() string {
	helpOnce.Do(func() {
		var b strings.Builder
		b.WriteString("🤖 Translation bot usage:\n")
		b.WriteString("Send any message and I will translate it to your configured language.\n\n")
		b.WriteString("Commands:\n")
		b.WriteString("/<code> — set your default translation language (e.g. /ja)\n")
		b.WriteString("/<code> <text> — translate text once (e.g. /en hello)\n")
		b.WriteString("/<code> <N>min [text] — translate everything for N minutes (1-60)\n")
		b.WriteString("/multi <lang1>[,<lang2>...] [<N>min] [text] — up to 4 languages at once\n")
		b.WriteString("/stop — end the current session\n")
		b.WriteString("/whoami — show your user ID\n")
		b.WriteString("/help — this message\n\n")
		b.WriteString("Supported languages:\n")
		for i, code := range domain.AllLanguageCodes() {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString("/" + code)
		}
		helpText = b.String()
	})
	return helpText
}
