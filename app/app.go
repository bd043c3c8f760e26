// Package app assembles the LionMotors bot: inventory store, listing
// renderer, dialog engine, and the Telegram wiring on top of them.
package app

import (
	"fmt"

	"github.com/lionmotors/carbot/conversation"
	coreconfig "github.com/lionmotors/carbot/core/config"
	"github.com/lionmotors/carbot/core/logger"
	coretelegram "github.com/lionmotors/carbot/core/telegram"
	"github.com/lionmotors/carbot/core/telegram/router"
	tgsender "github.com/lionmotors/carbot/core/telegram/sender"
	"github.com/lionmotors/carbot/fueltype"
	"github.com/lionmotors/carbot/inventory"
	"github.com/lionmotors/carbot/listing"

	tele "gopkg.in/telebot.v4"
)

// Config wraps the core configuration for the process runner.
type Config struct {
	Core *coreconfig.Config
}

// CoreConfig exposes the embedded core configuration.
func (c *Config) CoreConfig() *coreconfig.Config {
	if c == nil {
		return nil
	}
	return c.Core
}

// LoadConfig reads the bot configuration from path.
func LoadConfig(path string) (*Config, error) {
	core, err := coreconfig.Load(path)
	if err != nil {
		return nil, err
	}
	return &Config{Core: core}, nil
}

// App holds the assembled bot components.
type App struct {
	cfg        *coreconfig.Config
	codec      *fueltype.Codec
	store      *inventory.Store
	engine     *conversation.Engine
	dispatcher *tgsender.Dispatcher
	menu       *tele.ReplyMarkup
}

// Bootstrap initializes logging and builds the bot components from config.
func Bootstrap(cfg *Config) (*App, error) {
	if cfg == nil || cfg.Core == nil {
		return nil, fmt.Errorf("app: nil config")
	}
	if err := logger.InitLogger(cfg.Core); err != nil {
		return nil, fmt.Errorf("app: logger init failed: %w", err)
	}

	store, err := inventory.NewStore(cfg.Core.Inventory.Dir)
	if err != nil {
		return nil, fmt.Errorf("app: inventory store init failed: %w", err)
	}

	codec := fueltype.NewCodec()
	renderer := listing.NewRenderer(codec, listing.FileResolver{BaseDir: cfg.Core.Inventory.ImagesDir})
	engine := conversation.NewEngine(store, renderer, codec)

	return &App{
		cfg:    cfg.Core,
		codec:  codec,
		store:  store,
		engine: engine,
		menu:   mainMenu(),
	}, nil
}

// TelegramRunOptions builds the Telegram runtime wiring for the bot.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	reg := coretelegram.NewRegistry()
	a.registerCommands(reg)
	if err := a.registerCallbacks(reg); err != nil {
		return coretelegram.RunOptions{}, err
	}

	dispatcher := tgsender.NewDispatcher(tgsender.Options{})
	a.dispatcher = dispatcher

	routes := router.CommandRoutes(reg, router.CommandRouteOptions{
		AdminID: a.cfg.Telegram.AdminID,
	})
	routes = append(routes, router.CallbackRoute(reg, router.CallbackOptions{}))
	routes = append(routes, router.TextRoutes(dialogFSM{app: a}, reg, router.TextOptions{
		UnknownText: a.handleUnknownText,
	})...)

	return coretelegram.RunOptions{
		Config:      a.cfg,
		Registry:    reg,
		Dispatcher:  dispatcher,
		Middlewares: coretelegram.DefaultMiddlewares(a.cfg, nil),
		Routes:      routes,
	}, nil
}
