package conversation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lionmotors/carbot/core/logger"
	"github.com/lionmotors/carbot/fueltype"
	"github.com/lionmotors/carbot/inventory"
	"github.com/lionmotors/carbot/search"
)

// Loader supplies the current record set for a category. Implemented by
// inventory.Store.
type Loader interface {
	Load(ctx context.Context, category string) ([]inventory.Record, error)
}

// Renderer turns one vehicle record into outbound message units. Implemented
// by listing.Renderer.
type Renderer interface {
	Render(ctx context.Context, rec inventory.Record) []Message
}

// Engine drives the guided search dialog. It validates input at every step,
// owns the per-user session store, and at the terminal step runs the
// load → filter → render pipeline. Handle never returns an error: every
// failure either re-prompts the same state or aborts the flow to idle with a
// user-visible message.
type Engine struct {
	sessions *sessionStore
	store    Loader
	renderer Renderer
	codec    *fueltype.Codec
}

// NewEngine wires a dialog engine over an inventory loader and a renderer.
func NewEngine(store Loader, renderer Renderer, codec *fueltype.Codec) *Engine {
	return &Engine{
		sessions: newSessionStore(),
		store:    store,
		renderer: renderer,
		codec:    codec,
	}
}

// InProgress reports whether the user is mid-flow; the transport uses it to
// route free text into the engine.
func (e *Engine) InProgress(userID int64) bool {
	return e.sessions.active(userID)
}

// ActiveSessions returns the number of users currently mid-flow.
func (e *Engine) ActiveSessions() int {
	return e.sessions.count()
}

// Handle processes one inbound event to completion and returns the outbound
// messages it produced, in send order.
func (e *Engine) Handle(ctx context.Context, ev Event) []Message {
	switch ev.Kind {
	case EventCancel:
		return e.cancel(ctx, ev.UserID)
	case EventMenu:
		return e.handleMenu(ctx, ev)
	case EventText:
		return e.handleText(ctx, ev)
	default:
		return nil
	}
}

func (e *Engine) cancel(ctx context.Context, userID int64) []Message {
	e.sessions.clear(userID)
	logger.Debug(ctx, "conversation", "flow.cancelled",
		slog.Int64("user_id", userID),
	)
	return []Message{TextMessage(msgCancelled, ReplyMainMenu)}
}

// handleMenu dispatches main menu selections. Only the search tag touches
// session state; re-entering search mid-flow deliberately restarts the dialog
// from the first step with empty criteria.
func (e *Engine) handleMenu(ctx context.Context, ev Event) []Message {
	switch ev.Tag {
	case TagSearch:
		e.sessions.begin(ev.UserID)
		e.logTransition(ctx, ev.UserID, StateAwaitFuel)
		return []Message{TextMessage(msgFuelPrompt, ReplyFuelButtons)}
	case TagStart:
		return []Message{TextMessage(fmt.Sprintf(msgGreetingFmt, ev.Name), ReplyMainMenu)}
	case TagMarket:
		return e.browse(ctx, inventory.CategoryMarket)
	case TagAuction:
		return e.browse(ctx, inventory.CategoryAuction)
	case TagContacts:
		return []Message{TextMessage(msgContacts, ReplyMainMenu)}
	case TagHelp:
		return []Message{TextMessage(msgHelp, ReplyMainMenu)}
	default:
		logger.Warn(ctx, "conversation", "menu.unknown",
			slog.String("payload", ev.Tag),
		)
		return nil
	}
}

func (e *Engine) handleText(ctx context.Context, ev Event) []Message {
	text := strings.TrimSpace(ev.Text)
	state := e.sessions.state(ev.UserID)

	switch state {
	case StateAwaitFuel:
		return e.stepFuel(ctx, ev.UserID, text)
	case StateAwaitBrandModel:
		return e.stepBrandModel(ctx, ev.UserID, text)
	case StateAwaitPrice:
		return e.stepPrice(ctx, ev.UserID, text)
	case StateAwaitCategory:
		return e.stepCategory(ctx, ev.UserID, text)
	default:
		// Free text outside a flow is not the engine's business.
		return nil
	}
}

func (e *Engine) stepFuel(ctx context.Context, userID int64, text string) []Message {
	code, ok := e.codec.Internal(text)
	if !ok {
		logger.Debug(ctx, "conversation", "input.invalid",
			slog.Int64("user_id", userID),
			slog.String("state", string(StateAwaitFuel)),
		)
		return []Message{TextMessage(msgFuelInvalid, ReplyFuelButtons)}
	}
	e.sessions.advance(userID, StateAwaitBrandModel, func(c *search.Criteria) {
		c.FuelType = code
	})
	e.logTransition(ctx, userID, StateAwaitBrandModel)
	return []Message{TextMessage(msgBrandModelPrompt, ReplySkipButton)}
}

func (e *Engine) stepBrandModel(ctx context.Context, userID int64, text string) []Message {
	lowered := strings.ToLower(text)
	e.sessions.advance(userID, StateAwaitPrice, func(c *search.Criteria) {
		if lowered != strings.ToLower(SkipLabel) {
			c.BrandModel = lowered
		}
	})
	e.logTransition(ctx, userID, StateAwaitPrice)
	return []Message{TextMessage(msgPricePrompt, ReplyPriceButtons)}
}

func (e *Engine) stepPrice(ctx context.Context, userID int64, text string) []Message {
	band, ok := search.BandByLabel(text)
	if !ok {
		logger.Debug(ctx, "conversation", "input.invalid",
			slog.Int64("user_id", userID),
			slog.String("state", string(StateAwaitPrice)),
		)
		return []Message{TextMessage(msgPriceInvalid, ReplyPriceButtons)}
	}
	e.sessions.advance(userID, StateAwaitCategory, func(c *search.Criteria) {
		c.SetPriceBand(band)
	})
	e.logTransition(ctx, userID, StateAwaitCategory)
	return []Message{TextMessage(msgCategoryPrompt, ReplyCategoryButtons)}
}

func (e *Engine) stepCategory(ctx context.Context, userID int64, text string) []Message {
	category := strings.ToLower(text)
	if category != inventory.CategoryMarket && category != inventory.CategoryAuction {
		logger.Debug(ctx, "conversation", "input.invalid",
			slog.Int64("user_id", userID),
			slog.String("state", string(StateAwaitCategory)),
		)
		return []Message{TextMessage(msgCategoryInvalid, ReplyCategoryButtons)}
	}
	return e.finishSearch(ctx, userID, category)
}

// finishSearch is the terminal action: it consumes the session's criteria,
// queries the chosen category, and renders the filtered result. The criteria
// are cleared up front so that no failure below can leak them into the next
// flow.
func (e *Engine) finishSearch(ctx context.Context, userID int64, category string) []Message {
	criteria := e.sessions.take(userID)
	e.logTransition(ctx, userID, StateIdle)

	records, err := e.store.Load(ctx, category)
	if err != nil {
		var corrupt *inventory.CorruptError
		if errors.As(err, &corrupt) {
			logger.Error(ctx, "conversation", "search.inventory_corrupt",
				slog.String("category", category),
				slog.String("err", err.Error()),
			)
		} else {
			logger.Error(ctx, "conversation", "search.load_failed",
				slog.String("category", category),
				slog.String("err", err.Error()),
			)
		}
		return []Message{TextMessage(msgInventoryUnavailable, ReplyMainMenu)}
	}

	filtered := search.Apply(records, criteria)
	logger.Info(ctx, "conversation", "search.finish",
		slog.String("status", "ok"),
		slog.Int64("user_id", userID),
		slog.String("category", category),
		slog.Int("records", len(records)),
		slog.Int("count", len(filtered)),
	)

	if len(filtered) == 0 {
		return []Message{TextMessage(fmt.Sprintf(msgNoResultsFmt, category), ReplyMainMenu)}
	}

	messages := make([]Message, 0, len(filtered)+1)
	for _, rec := range filtered {
		messages = append(messages, e.renderer.Render(ctx, rec)...)
	}
	messages = append(messages, TextMessage(fmt.Sprintf(msgShowingFmt, category), ReplyMainMenu))
	return messages
}

// browse lists a category unfiltered, for the market/auction menu buttons.
// It never touches session state.
func (e *Engine) browse(ctx context.Context, category string) []Message {
	records, err := e.store.Load(ctx, category)
	if err != nil {
		logger.Error(ctx, "conversation", "browse.load_failed",
			slog.String("category", category),
			slog.String("err", err.Error()),
		)
		return []Message{TextMessage(msgInventoryUnavailable, ReplyMainMenu)}
	}
	if len(records) == 0 {
		return []Message{TextMessage(fmt.Sprintf(msgNoCarsFmt, category), ReplyMainMenu)}
	}

	messages := make([]Message, 0, len(records)+1)
	for _, rec := range records {
		messages = append(messages, e.renderer.Render(ctx, rec)...)
	}
	messages = append(messages, TextMessage(fmt.Sprintf(msgShowingFmt, category), ReplyMainMenu))
	return messages
}

func (e *Engine) logTransition(ctx context.Context, userID int64, next State) {
	logger.Debug(ctx, "conversation", "fsm.transition",
		slog.Int64("user_id", userID),
		slog.String("state", string(next)),
	)
}
