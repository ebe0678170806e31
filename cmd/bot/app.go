package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/NefyAD/madoguchi/cmd/bot/config"
	"github.com/NefyAD/madoguchi/pkg/logging"
	"github.com/NefyAD/madoguchi/pkg/panel"
	"github.com/NefyAD/madoguchi/pkg/request"
	"github.com/NefyAD/madoguchi/pkg/settings"
	"github.com/NefyAD/madoguchi/pkg/snapshots"
	"github.com/NefyAD/madoguchi/pkg/ticket"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

const (
	// PathMetrics is the path for metrics.
	PathMetrics = "/metrics"

	// PathHealth is the path for the health check.
	PathHealth = "/health"
)

// IApp is the interface for the application.
type IApp interface {
	// Session returns the discord session.
	Session() *discordgo.Session

	// Log returns the logger.
	Log() *slog.Logger

	// Settings returns the configuration store.
	Settings() *settings.Store

	// Snapshots returns the snapshot store.
	Snapshots() *snapshots.Store

	// Tickets returns the ticket lifecycle.
	Tickets() *ticket.Lifecycle

	// Panels returns the panel builder.
	Panels() *panel.Builder

	// SetPendingButton stores a button configuration awaiting its category
	// selection.
	SetPendingButton(guildID, userID string, p pendingButton)

	// TakePendingButton removes and returns the pending button
	// configuration for the user, if any.
	TakePendingButton(guildID, userID string) (pendingButton, bool)
}

type App struct {
	// is the logger.
	*slog.Logger

	// r is the router for the application.
	r *mux.Router

	// svr is the server for the application.
	svr *http.Server

	// s is the discord session.
	s *discordgo.Session

	// store is the configuration store.
	store *settings.Store

	// panels is the panel builder.
	panels *panel.Builder

	// snaps is the snapshot store.
	snaps *snapshots.Store

	// tickets is the ticket lifecycle.
	tickets *ticket.Lifecycle

	// pendingMu guards pending.
	pendingMu sync.Mutex

	// pending holds button configurations awaiting their category
	// selection, keyed by guild and user.
	pending map[string]pendingButton

	// registered is the set of slash commands created per guild, kept for
	// unregistering on shutdown.
	registered map[string][]*discordgo.ApplicationCommand

	// eventNotifier is the channel for notifying of events.
	eventNotifier chan any
}

// NewApp creates a new instance of App.
func NewApp(l *slog.Logger, r *mux.Router, store *settings.Store, panels *panel.Builder) *App {
	return &App{
		Logger:     l,
		r:          r,
		store:      store,
		panels:     panels,
		pending:    make(map[string]pendingButton),
		registered: make(map[string][]*discordgo.ApplicationCommand),
	}
}

func (a *App) Run() error {
	// Register bot.
	if err := a.RegisterBot(); err != nil {
		return fmt.Errorf("error registering bot: %w", err)
	}

	// The snapshot store needs the parsed configuration, so it is wired
	// here rather than in the injector.
	snaps, err := snapshots.NewStore(a.Log(), config.SnapshotDir)
	if err != nil {
		return fmt.Errorf("error creating snapshot store: %w", err)
	}
	a.snaps = snaps

	// The ticket lifecycle talks to Discord through a rate-limited
	// platform adapter over the session.
	platform := ticket.NewSessionPlatform(a.s, rate.NewLimiter(rate.Limit(25), 5))
	a.tickets = ticket.NewLifecycle(a.Log(), a.store, platform)

	a.s.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		a.Info(fmt.Sprintf("Logged in as %s#%s", r.User.Username, r.User.Discriminator))
	})

	if err := a.RegisterDiscordHandlers(); err != nil {
		return fmt.Errorf("error registering discord handlers: %w", err)
	}

	// Start event listener.
	go a.eventListener()

	// Open websocket.
	if err := a.s.Open(); err != nil {
		return fmt.Errorf("error opening connection to Discord: %w", err)
	}

	// Register slash commands.
	if err := a.registerSlashCommands(); err != nil {
		return fmt.Errorf("error registering slash commands: %w", err)
	}

	a.Info("Bot is now running.")

	a.generateServer()
	a.setupRoutes()
	a.runServer()

	// Register listener for shutdown signal.
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)

	// Process shutdown signal.
	for sig := range c {
		a.Info("Received shutdown signal", slog.String("signal", sig.String()))
		if err := a.ShutdownHook(); err != nil {
			a.Error("Error shutting down application", slog.String(logging.KeyError, err.Error()))
		}
		os.Exit(0)
	}
	return nil
}

func (a *App) ShutdownHook() error {
	// Reset the total number of guilds to 0.
	TotalDiscordGuilds.Set(0)

	// Unregister slash commands.
	if err := a.unregisterSlashCommands(); err != nil {
		return fmt.Errorf("error unregistering slash commands: %w", err)
	}

	// Close the connection to Discord.
	if err := a.s.Close(); err != nil {
		return fmt.Errorf("error closing connection to Discord: %w", err)
	}
	return nil
}

func (a *App) RegisterBot() error {
	// Default the number of guilds to 0.
	TotalDiscordGuilds.Set(0)

	dg, err := discordgo.New("Bot " + config.BotToken)
	if err != nil {
		return fmt.Errorf("error creating Discord session: %w", err)
	}

	dg.Identify.Intents = discordgo.MakeIntent(discordgo.IntentsAll)

	if a.eventNotifier == nil {
		// Create event notifier. This is used to observe events. It is buffered to prevent blocking.
		a.eventNotifier = make(chan any, 100)
	}

	dg.SetEventNotifier(a.eventNotifier)

	a.s = dg
	return nil
}

func (a *App) runServer() {
	go func() {
		slog.Info("Starting monitoring server")
		if err := a.svr.ListenAndServe(); err != nil {
			a.Error("Error starting monitoring server", slog.String(logging.KeyError, err.Error()))
			a.Warn("Monitoring server will not be available")
		}
	}()
}

func (a *App) setupRoutes() {
	// PathMetrics is the path for metrics.
	a.r.HandleFunc(PathMetrics, promhttp.Handler().ServeHTTP).Methods(http.MethodGet)

	// PathHealth is the path for health check.
	a.r.HandleFunc(PathHealth, middlewareHttp(a.healthCheck(), a)).Methods(http.MethodGet)

	// NotFoundHandler is the handler for 404.
	a.r.NotFoundHandler = request.NotFoundHandler(a.Log())

	// MethodNotAllowedHandler is the handler for 405.
	a.r.MethodNotAllowedHandler = request.MethodNotAllowedHandler(a.Log())
}

func (a *App) generateServer() {
	a.svr = &http.Server{
		Addr:    ":" + config.MonitoringPort,
		Handler: a.r,
	}
}

func (a *App) GetJoinedGuilds() ([]*discordgo.UserGuild, error) {
	guilds, err := a.s.UserGuilds(0, "", "")
	if err != nil {
		return nil, fmt.Errorf("error getting guilds: %w", err)
	}
	return guilds, nil
}

func (a *App) RegisterDiscordHandlers() error {
	// Bot joined guild.
	a.s.AddHandler(guildJoinedHandler(a))

	// Bot left guild.
	a.s.AddHandler(guildLeaveHandler(a))

	// Interaction create handler.
	a.s.AddHandler(interactionHandler(a,
		// Slash Controllers
		slashControllers(),
		// Component Controllers
		componentControllers(),
		// Modal Controllers
		modalControllers(),
	))
	return nil
}

func (a *App) eventListener() {
	for e := range a.eventNotifier {
		switch t := e.(type) {
		case *discordgo.Event:
			if t.Type != "" {
				TotalDiscordEvents.WithLabelValues(t.Type).Inc()
			} else {
				// If there is no type, then use the operation name.
				TotalDiscordEvents.WithLabelValues(strings.ToUpper(t.Operation.String())).Inc()
			}
		default:
			a.Error("Unknown event type", slog.String("type", fmt.Sprintf("%T", e)))
			TotalDiscordEvents.WithLabelValues("UNKNOWN").Inc()
		}
	}
}

func (a *App) registerSlashCommands() error {
	// Get all guilds the bot is in.
	guilds, err := a.GetJoinedGuilds()
	if err != nil {
		return fmt.Errorf("error getting guilds: %w", err)
	}

	// Register every command for each guild.
	for _, g := range guilds {
		for _, cmd := range commands() {
			created, err := a.Session().ApplicationCommandCreate(config.ApplicationId, g.ID, cmd)
			if err != nil {
				return fmt.Errorf("error creating command %s for guild %s: %w", cmd.Name, g.ID, err)
			}
			a.registered[g.ID] = append(a.registered[g.ID], created)
		}
	}
	return nil
}

func (a *App) unregisterSlashCommands() error {
	for guildID, cmds := range a.registered {
		for _, cmd := range cmds {
			if err := a.s.ApplicationCommandDelete(config.ApplicationId, guildID, cmd.ID); err != nil {
				return fmt.Errorf("error deleting command %s for guild %s: %w", cmd.Name, guildID, err)
			}
		}
	}
	return nil
}

func (a *App) Session() *discordgo.Session {
	return a.s
}

func (a *App) Log() *slog.Logger {
	return a.Logger
}

func (a *App) Settings() *settings.Store {
	return a.store
}

func (a *App) Snapshots() *snapshots.Store {
	return a.snaps
}

func (a *App) Tickets() *ticket.Lifecycle {
	return a.tickets
}

func (a *App) Panels() *panel.Builder {
	return a.panels
}

func (a *App) SetPendingButton(guildID, userID string, p pendingButton) {
	a.pendingMu.Lock()
	defer a.pendingMu.Unlock()
	a.pending[guildID+":"+userID] = p
}

func (a *App) TakePendingButton(guildID, userID string) (pendingButton, bool) {
	a.pendingMu.Lock()
	defer a.pendingMu.Unlock()

	p, ok := a.pending[guildID+":"+userID]
	if ok {
		delete(a.pending, guildID+":"+userID)
	}
	return p, ok
}
