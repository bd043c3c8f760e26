package app

import (
	"fmt"

	"github.com/lionmotors/carbot/conversation"
	coretelegram "github.com/lionmotors/carbot/core/telegram"
	"github.com/lionmotors/carbot/core/telegram/commands"
	tghelpers "github.com/lionmotors/carbot/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

// dialogFSM routes free text into the dialog engine while a search is active.
type dialogFSM struct {
	app *App
}

func (f dialogFSM) InProgress(userID int64) bool {
	return f.app.engine.InProgress(userID)
}

func (f dialogFSM) ManagerHandler(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	msgs := f.app.engine.Handle(ctx, conversation.TextEvent(c.Sender().ID, c.Text()))
	return f.app.deliver(c, msgs)
}

func (a *App) registerCommands(reg *coretelegram.Registry) {
	reg.RegisterCommand("/start", commands.Command{
		Handler:     a.handleStart,
		Description: "Головне меню",
	})
	reg.RegisterCommand("/cancel", commands.Command{
		Handler:     a.handleCancel,
		Description: "Скасувати пошук",
	})
	reg.RegisterCommand("/stats", commands.Command{
		Handler:     a.handleStats,
		Description: "Статистика бота",
		AdminOnly:   true,
		Hidden:      true,
	})
}

func (a *App) registerCallbacks(reg *coretelegram.Registry) error {
	tags := []string{
		conversation.TagSearch,
		conversation.TagMarket,
		conversation.TagAuction,
		conversation.TagContacts,
		conversation.TagHelp,
	}
	for _, tag := range tags {
		if err := reg.RegisterCallback(tag, a.menuHandler(tag)); err != nil {
			return err
		}
	}
	return nil
}

// menuHandler turns a main menu button press into a dialog event.
func (a *App) menuHandler(tag string) tele.HandlerFunc {
	return func(c tele.Context) error {
		ctx := tghelpers.BuildContext(c)
		msgs := a.engine.Handle(ctx, conversation.MenuEvent(c.Sender().ID, tag))
		return a.deliver(c, msgs)
	}
}

func (a *App) handleStart(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	ev := conversation.MenuEvent(c.Sender().ID, conversation.TagStart)
	ev.Name = c.Sender().FirstName
	return a.deliver(c, a.engine.Handle(ctx, ev))
}

func (a *App) handleCancel(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	msgs := a.engine.Handle(ctx, conversation.CancelEvent(c.Sender().ID))
	return a.deliver(c, msgs)
}

func (a *App) handleStats(c tele.Context) error {
	var sendErrors uint64
	if a.dispatcher != nil {
		sendErrors = a.dispatcher.ErrorCount()
	}
	text := fmt.Sprintf("*Статистика*\nАктивні сесії: %d\nПомилки відправки: %d",
		a.engine.ActiveSessions(), sendErrors)
	return tghelpers.SendMD(c, text)
}

// handleUnknownText answers free text that belongs to no dialog and no command.
func (a *App) handleUnknownText(c tele.Context) error {
	return tghelpers.SendText(c, "Скористайтеся меню нижче 👇",
		&tele.SendOptions{ReplyMarkup: a.menu})
}
