package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/textfix/internal/client/config"
	"github.com/dmitrijs2005/textfix/internal/client/services"
	"github.com/dmitrijs2005/textfix/internal/client/session"
	"github.com/dmitrijs2005/textfix/internal/client/ui"
	"github.com/dmitrijs2005/textfix/internal/client/ui/render"
	"github.com/dmitrijs2005/textfix/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config  *config.Config
	dataDir string
	set     *services.Set
	auth    services.AuthService
	ui      *ui.UI
	term    *render.Terminal
	logger  logging.Logger
	reader  *bufio.Reader
	out     io.Writer

	mu   sync.Mutex
	Mode Mode
}

// NewApp opens the local store under dataDir and wires the services and ui
// state to a REPL on stdin/stdout.
func NewApp(ctx context.Context, c *config.Config, dataDir string, logger logging.Logger) (*App, error) {
	a := &App{
		config:  c,
		dataDir: dataDir,
		term:    render.NewTerminal(0),
		logger:  logger.With("module", "cli"),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}

	set, err := services.Wire(ctx, c, dataDir, a, logger)
	if err != nil {
		a.logger.Error(ctx, "error initializing services", "error", err)
		return nil, err
	}
	a.set = set
	a.auth = set.Auth
	a.ui = ui.New(set.UIDeps(a, logger))

	return a, nil
}

// RedirectToLogin is the REPL's login surface: it tells the user to
// authenticate. Commands that need a session are refused until then.
func (a *App) RedirectToLogin() {
	printlnFn("You are not logged in. Use 'login', 'signup' or 'otp'.")
}

// Notice prints a failed action; the cause goes to the log file.
func (a *App) Notice(message string, err error) {
	if err != nil {
		a.logger.Warn(context.Background(), message, "error", err)
	}
	printlnFn(a.term.Notice(message))
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.Mode != mode {
		a.Mode = mode
		a.logger.Info(context.Background(), "connectivity changed", "mode", mode)
	}
}

func (a *App) mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.Mode
}

func (a *App) Run(ctx context.Context) {
	defer a.set.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.auth.LoggedIn(context.Background())
}

func (a *App) currentView() ui.View {
	return a.ui.Controller.State().View
}

// StartOnlineStatusWatcher pings the server every interval and flips Mode
// between online and offline. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.auth.Ping(ctx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}

var _ session.Navigator = (*App)(nil)
var _ ui.Notifier = (*App)(nil)
