package app

import (
	"github.com/lionmotors/carbot/conversation"
	"github.com/lionmotors/carbot/core/telegram/keyboard"

	tele "gopkg.in/telebot.v4"
)

// Main menu button labels.
const (
	btnSearch   = "Пошук Авто 🔎"
	btnMarket   = "Авто в Наявності 🚗"
	btnAuction  = "Скоро на Аукціоні 🚢"
	btnContacts = "Наші Контакти 📇"
	btnHelp     = "Допомога ℹ️"
)

func mainMenu() *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{
			{Text: btnSearch, Unique: conversation.TagSearch},
			{Text: btnMarket, Unique: conversation.TagMarket},
		},
		[]keyboard.InlineBtn{
			{Text: btnAuction, Unique: conversation.TagAuction},
			{Text: btnContacts, Unique: conversation.TagContacts},
		},
		[]keyboard.InlineBtn{
			{Text: btnHelp, Unique: conversation.TagHelp},
		},
	)
}
