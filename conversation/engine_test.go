package conversation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lionmotors/carbot/conversation"
	"github.com/lionmotors/carbot/fueltype"
	"github.com/lionmotors/carbot/inventory"
	"github.com/lionmotors/carbot/listing"
)

// stubLoader serves fixed record sets per category.
type stubLoader struct {
	sets map[string][]inventory.Record
	err  error
}

func (s stubLoader) Load(_ context.Context, category string) ([]inventory.Record, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.sets[category], nil
}

// mapResolver resolves only the paths it knows about.
type mapResolver map[string][]byte

func (m mapResolver) Resolve(path string) ([]byte, error) {
	if data, ok := m[path]; ok {
		return data, nil
	}
	return nil, listing.ErrImageNotFound
}

const userID int64 = 42

func newEngine(loader conversation.Loader, resolver listing.Resolver) *conversation.Engine {
	codec := fueltype.NewCodec()
	return conversation.NewEngine(loader, listing.NewRenderer(codec, resolver), codec)
}

// walk drives the engine through one full search flow.
func walk(t *testing.T, e *conversation.Engine, inputs ...string) []conversation.Message {
	t.Helper()
	ctx := context.Background()

	msgs := e.Handle(ctx, conversation.MenuEvent(userID, conversation.TagSearch))
	require.Len(t, msgs, 1)

	var last []conversation.Message
	for _, input := range inputs {
		last = e.Handle(ctx, conversation.TextEvent(userID, input))
	}
	return last
}

func marketRecord() inventory.Record {
	return inventory.Record{
		Year: 2019, Make: "Honda", Model: "Accord", Price: 12000,
		VIN: "vin-accord", Condition: "used", Mileage: 30000, FuelType: "gas",
	}
}

func TestFullFlowSingleResult(t *testing.T) {
	loader := stubLoader{sets: map[string][]inventory.Record{
		"market": {marketRecord()},
	}}
	e := newEngine(loader, mapResolver{})

	msgs := walk(t, e, "Бензин", "Пропустити", "10 - 15.000$", "market")

	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[0].Text, "vin-accord")
	assert.Contains(t, msgs[1].Text, "market")
	assert.Equal(t, conversation.ReplyMainMenu, msgs[1].Reply)
	assert.False(t, e.InProgress(userID))
}

func TestInvalidFuelRepromptsSameState(t *testing.T) {
	e := newEngine(stubLoader{}, mapResolver{})
	ctx := context.Background()

	e.Handle(ctx, conversation.MenuEvent(userID, conversation.TagSearch))
	msgs := e.Handle(ctx, conversation.TextEvent(userID, "вугілля"))

	require.Len(t, msgs, 1)
	assert.Equal(t, conversation.ReplyFuelButtons, msgs[0].Reply)
	assert.True(t, e.InProgress(userID))

	// A valid label afterwards still advances: criteria were not corrupted.
	msgs = e.Handle(ctx, conversation.TextEvent(userID, "Бензин"))
	require.Len(t, msgs, 1)
	assert.Equal(t, conversation.ReplySkipButton, msgs[0].Reply)
}

func TestUnresolvedImageYieldsAnnotatedText(t *testing.T) {
	rec := marketRecord()
	rec.ImagePaths = []string{"missing.jpg"}
	loader := stubLoader{sets: map[string][]inventory.Record{"market": {rec}}}
	e := newEngine(loader, mapResolver{})

	msgs := walk(t, e, "Бензин", "Пропустити", "10 - 15.000$", "market")

	require.Len(t, msgs, 2)
	assert.False(t, msgs[0].IsMediaGroup())
	assert.Contains(t, msgs[0].Text, "[Фото не знайдено: missing.jpg]")
}

func TestNoResultsEmitsSingleMessage(t *testing.T) {
	loader := stubLoader{sets: map[string][]inventory.Record{
		"market": {marketRecord()},
	}}
	e := newEngine(loader, mapResolver{})

	// The only record is gas; searching diesel excludes it.
	msgs := walk(t, e, "Дизель", "Пропустити", "10 - 15.000$", "market")

	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Text, "даними фільтрами")
	assert.False(t, e.InProgress(userID))
}

func TestCancelMidFlowResetsSession(t *testing.T) {
	loader := stubLoader{sets: map[string][]inventory.Record{
		"market": {marketRecord()},
	}}
	e := newEngine(loader, mapResolver{})
	ctx := context.Background()

	e.Handle(ctx, conversation.MenuEvent(userID, conversation.TagSearch))
	e.Handle(ctx, conversation.TextEvent(userID, "Бензин"))

	msgs := e.Handle(ctx, conversation.CancelEvent(userID))
	require.Len(t, msgs, 1)
	assert.Equal(t, conversation.ReplyMainMenu, msgs[0].Reply)
	assert.False(t, e.InProgress(userID))

	// A fresh search starts at the fuel step with empty criteria: the cancelled
	// flow's gas filter must not leak in, so a diesel search matches nothing.
	msgs = walk(t, e, "Дизель", "Пропустити", "10 - 15.000$", "market")
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Text, "даними фільтрами")
}

func TestBandBoundsRespectedThroughPipeline(t *testing.T) {
	cheap := marketRecord()
	cheap.VIN = "vin-cheap"
	cheap.Price = 4999
	edge := marketRecord()
	edge.VIN = "vin-edge"
	edge.Price = 10000
	pricey := marketRecord()
	pricey.VIN = "vin-pricey"
	pricey.Price = 15001

	loader := stubLoader{sets: map[string][]inventory.Record{
		"market": {cheap, marketRecord(), edge, pricey},
	}}
	e := newEngine(loader, mapResolver{})

	msgs := walk(t, e, "Бензин", "Пропустити", "10 - 15.000$", "market")

	// Bounds are inclusive: 10000 and 12000 sit inside [10000, 15000],
	// 4999 and 15001 do not.
	require.Len(t, msgs, 3)
	listed := msgs[0].Text + msgs[1].Text
	assert.Contains(t, listed, "vin-accord")
	assert.Contains(t, listed, "vin-edge")
	assert.NotContains(t, listed, "vin-cheap")
	assert.NotContains(t, listed, "vin-pricey")
}

func TestTerminalActionIsIdempotent(t *testing.T) {
	loader := stubLoader{sets: map[string][]inventory.Record{
		"market": {marketRecord(), marketRecord()},
	}}
	e := newEngine(loader, mapResolver{})

	first := walk(t, e, "Бензин", "Пропустити", "10 - 15.000$", "market")
	second := walk(t, e, "Бензин", "Пропустити", "10 - 15.000$", "market")

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Text, second[i].Text)
	}
}

func TestCorruptInventoryAbortsFlow(t *testing.T) {
	loader := stubLoader{err: &inventory.CorruptError{Category: "market", Path: "cars.json"}}
	e := newEngine(loader, mapResolver{})

	msgs := walk(t, e, "Бензин", "Пропустити", "10 - 15.000$", "market")

	require.Len(t, msgs, 1)
	assert.Equal(t, conversation.ReplyMainMenu, msgs[0].Reply)
	assert.False(t, e.InProgress(userID))
}

func TestSearchReentryResetsCriteria(t *testing.T) {
	loader := stubLoader{sets: map[string][]inventory.Record{
		"market": {marketRecord()},
	}}
	e := newEngine(loader, mapResolver{})
	ctx := context.Background()

	// Start a flow and set a diesel filter, then re-enter search mid-flow.
	e.Handle(ctx, conversation.MenuEvent(userID, conversation.TagSearch))
	e.Handle(ctx, conversation.TextEvent(userID, "Дизель"))

	msgs := walk(t, e, "Бензин", "Пропустити", "10 - 15.000$", "market")
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[0].Text, "vin-accord")
}

func TestBrowseMenuDoesNotTouchSession(t *testing.T) {
	loader := stubLoader{sets: map[string][]inventory.Record{
		"auction": {marketRecord()},
	}}
	e := newEngine(loader, mapResolver{})
	ctx := context.Background()

	e.Handle(ctx, conversation.MenuEvent(userID, conversation.TagSearch))
	e.Handle(ctx, conversation.TextEvent(userID, "Бензин"))

	msgs := e.Handle(ctx, conversation.MenuEvent(userID, conversation.TagAuction))
	require.Len(t, msgs, 2)
	assert.True(t, e.InProgress(userID), "browsing must not clear the active flow")

	// The paused flow continues where it left off.
	next := e.Handle(ctx, conversation.TextEvent(userID, "Пропустити"))
	require.Len(t, next, 1)
	assert.Equal(t, conversation.ReplyPriceButtons, next[0].Reply)
}

func TestBrowseEmptyCategory(t *testing.T) {
	e := newEngine(stubLoader{}, mapResolver{})

	msgs := e.Handle(context.Background(), conversation.MenuEvent(userID, conversation.TagMarket))
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Text, "Немає доступних автомобілів")
}

func TestGreetingUsesFirstName(t *testing.T) {
	e := newEngine(stubLoader{}, mapResolver{})

	ev := conversation.MenuEvent(userID, conversation.TagStart)
	ev.Name = "Олена"
	msgs := e.Handle(context.Background(), ev)

	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Text, "Олена")
	assert.Equal(t, conversation.ReplyMainMenu, msgs[0].Reply)
}

func TestBrandModelFilterApplied(t *testing.T) {
	camry := marketRecord()
	camry.VIN = "vin-camry"
	camry.Model = "Camry"
	loader := stubLoader{sets: map[string][]inventory.Record{
		"market": {marketRecord(), camry},
	}}
	e := newEngine(loader, mapResolver{})

	msgs := walk(t, e, "Бензин", "CaMrY", "10 - 15.000$", "Market")

	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[0].Text, "vin-camry")
	assert.NotContains(t, msgs[0].Text, "vin-accord")
}
