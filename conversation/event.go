// Package conversation implements the guided vehicle search dialog: the
// per-user finite-state machine, the criteria it accumulates, and the
// transport-neutral inbound/outbound message values it exchanges with the
// Telegram layer.
package conversation

// EventKind discriminates inbound events delivered by the transport.
type EventKind int

const (
	// EventMenu is a main-menu button selection carrying a Tag.
	EventMenu EventKind = iota
	// EventText is a free-text message.
	EventText
	// EventCancel is an explicit cancel command.
	EventCancel
)

// Menu selection tags understood by the engine.
const (
	TagStart    = "start"
	TagSearch   = "search"
	TagMarket   = "market"
	TagAuction  = "auction"
	TagContacts = "contacts"
	TagHelp     = "help"
)

// Event is one normalized inbound update, tagged with the user it belongs to.
type Event struct {
	UserID int64
	Kind   EventKind

	// Tag holds the menu selection for EventMenu.
	Tag string
	// Text holds the raw message text for EventText.
	Text string
	// Name is the sender's first name, used only for greetings.
	Name string
}

// MenuEvent builds a menu selection event.
func MenuEvent(userID int64, tag string) Event {
	return Event{UserID: userID, Kind: EventMenu, Tag: tag}
}

// TextEvent builds a free-text event.
func TextEvent(userID int64, text string) Event {
	return Event{UserID: userID, Kind: EventText, Text: text}
}

// CancelEvent builds an explicit cancel event.
func CancelEvent(userID int64) Event {
	return Event{UserID: userID, Kind: EventCancel}
}
