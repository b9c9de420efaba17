package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/attendmark/attendmark/internal/client/client"
	"github.com/attendmark/attendmark/internal/client/config"
	"github.com/attendmark/attendmark/internal/client/repositories/credentials"
	"github.com/attendmark/attendmark/internal/client/services"
	"github.com/attendmark/attendmark/internal/client/session"
	"github.com/attendmark/attendmark/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires config, storage, the API client and the services together and
// carries the session routing state for the prompt.
type App struct {
	config     *config.Config
	db         *sql.DB
	tokens     *session.TokenStore
	auth       services.AuthService
	events     services.EventService
	attendance services.AttendanceService
	log        logging.Logger
	reader     *bufio.Reader
	state      session.State
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	tokens := session.NewTokenStore(credentials.NewSQLiteRepository(db))
	api := client.NewHTTPClient(cfg.ServerBaseURL, tokens, cfg.PublicPathMarkers, cfg.RequestTimeout, log)

	return &App{
		config:     cfg,
		db:         db,
		tokens:     tokens,
		auth:       services.NewAuthService(api, tokens),
		events:     services.NewEventService(api),
		attendance: services.NewAttendanceService(api),
		log:        log,
		reader:     bufio.NewReader(os.Stdin),
		state:      session.StateUnknown,
	}, nil
}

// Run resolves the initial routing state from the stored token, then hands
// control to the REPL. The state leaves Unknown exactly once, before any
// prompt is shown.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	state, err := session.InitialState(ctx, a.tokens)
	if err != nil {
		return fmt.Errorf("resolving session state: %w", err)
	}
	a.state = state

	if a.isLoggedIn() {
		printlnFn("Welcome back! Type 'help' for commands.")
	} else {
		printlnFn("Welcome! Type 'signup' or 'login' to get started.")
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
	return nil
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.state == session.StateAuthenticated
}

func (a *App) getStatus() string {
	return fmt.Sprintf("(%s)", a.state)
}

func (a *App) setState(s session.State) {
	if a.state != s {
		a.state = s
		a.log.Info(context.Background(), "session state changed", "state", s.String())
	}
}
