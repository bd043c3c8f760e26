package app

import (
	"bytes"

	"github.com/lionmotors/carbot/conversation"
	tghelpers "github.com/lionmotors/carbot/core/telegram/helpers"
	"github.com/lionmotors/carbot/core/telegram/keyboard"
	"github.com/lionmotors/carbot/search"

	tele "gopkg.in/telebot.v4"
)

// markupFor maps a reply option to the concrete keyboard shown with the message.
func (a *App) markupFor(reply conversation.ReplyOption) *tele.ReplyMarkup {
	switch reply {
	case conversation.ReplyMainMenu:
		return a.menu
	case conversation.ReplyFuelButtons:
		return keyboard.ReplyButtons(a.codec.ButtonRows()...)
	case conversation.ReplySkipButton:
		return keyboard.ReplyButtons([]string{conversation.SkipLabel})
	case conversation.ReplyPriceButtons:
		return keyboard.ReplyButtons(search.BandRows()...)
	case conversation.ReplyCategoryButtons:
		return keyboard.ReplyButtons([]string{conversation.LabelMarket, conversation.LabelAuction})
	case conversation.ReplyRemoveKeyboard:
		return keyboard.RemoveKeyboard()
	default:
		return nil
	}
}

// deliver sends dialog messages to the chat in order. A media group becomes a
// single album with the listing text as the caption of the first photo.
func (a *App) deliver(c tele.Context, msgs []conversation.Message) error {
	for _, m := range msgs {
		if m.IsMediaGroup() {
			album := make(tele.Album, 0, len(m.Images))
			for i, img := range m.Images {
				photo := &tele.Photo{File: tele.FromReader(bytes.NewReader(img))}
				if i == 0 {
					photo.Caption = m.Text
				}
				album = append(album, photo)
			}
			if err := tghelpers.SendAlbum(c, album); err != nil {
				return err
			}
			continue
		}

		if rm := a.markupFor(m.Reply); rm != nil {
			if err := tghelpers.SendText(c, m.Text, &tele.SendOptions{ReplyMarkup: rm}); err != nil {
				return err
			}
			continue
		}
		if err := tghelpers.SendText(c, m.Text); err != nil {
			return err
		}
	}
	return nil
}
