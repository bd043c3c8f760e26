package conversation

// ReplyOption tells the transport which keyboard to attach to a text message.
// The engine never builds transport markup itself.
type ReplyOption int

const (
	// ReplyNone attaches no keyboard.
	ReplyNone ReplyOption = iota
	// ReplyMainMenu shows the main inline menu.
	ReplyMainMenu
	// ReplyFuelButtons shows the fuel type selection keyboard.
	ReplyFuelButtons
	// ReplySkipButton shows the single skip button.
	ReplySkipButton
	// ReplyPriceButtons shows the price band keyboard.
	ReplyPriceButtons
	// ReplyCategoryButtons shows the Market/Auction keyboard.
	ReplyCategoryButtons
	// ReplyRemoveKeyboard hides any visible reply keyboard.
	ReplyRemoveKeyboard
)

// Message is one outbound unit produced by the engine or the listing renderer.
// When Images is non-empty the unit is a media group and Text is its caption;
// otherwise it is a plain text message with an optional reply keyboard.
type Message struct {
	Text   string
	Reply  ReplyOption
	Images [][]byte
}

// TextMessage builds a plain text unit.
func TextMessage(text string, reply ReplyOption) Message {
	return Message{Text: text, Reply: reply}
}

// MediaGroup builds a grouped-media unit with the given caption.
func MediaGroup(images [][]byte, caption string) Message {
	return Message{Text: caption, Images: images}
}

// IsMediaGroup reports whether the unit carries images.
func (m Message) IsMediaGroup() bool { return len(m.Images) > 0 }
