package conversation

// User-facing strings for the guided search dialog. The bot speaks Ukrainian
// except for the category step, which mirrors the stored category names.
const (
	msgGreetingFmt = "Привіт %s! Вітаємо в LionMotors🦁 Боті. Що Bac цікавить?"

	msgFuelPrompt  = "Виберіть тип пального"
	msgFuelInvalid = "Будь ласка, виберіть один із: Дизель, Бензин, Гібрид, Електрика."

	msgBrandModelPrompt = "Введіть марку або модель для фільтрації, або натисніть Пропустити:"

	msgPricePrompt  = "Виберіть діапазон цін:"
	msgPriceInvalid = "Виберіть Ціновий Діапазон 💵"

	msgCategoryPrompt  = "Choose to show from Market or Auction:"
	msgCategoryInvalid = "Please choose 'Market' or 'Auction'."

	msgCancelled = "Search cancelled."

	msgContacts = "Зв'яжіться з нами: info@lionmotors.com"
	msgHelp     = "Використовуйте меню для перегляду автомобілів або зв'язку з нами!"

	msgNoCarsFmt    = "Немає доступних автомобілів для %s."
	msgNoResultsFmt = "Немає доступних автомобілів для %s з даними фільтрами."
	msgShowingFmt   = "Показуємо автомобілі для %s:"

	msgInventoryUnavailable = "Інвентар тимчасово недоступний, спробуйте пізніше."
)

// SkipLabel is the button text that skips the brand/model step. Input is
// matched against it case-insensitively.
const SkipLabel = "Пропустити"

// Category button labels offered at the final step.
const (
	LabelMarket  = "Market"
	LabelAuction = "Auction"
)
