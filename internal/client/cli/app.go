package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/influeapp/influe-cli/internal/client/api"
	"github.com/influeapp/influe-cli/internal/client/config"
	"github.com/influeapp/influe-cli/internal/client/imaging"
	"github.com/influeapp/influe-cli/internal/client/repositories/metadata"
	"github.com/influeapp/influe-cli/internal/client/services"
	"github.com/influeapp/influe-cli/internal/client/store"
	"github.com/influeapp/influe-cli/internal/filex"
	"github.com/influeapp/influe-cli/internal/logging"
)

// App is the submission controller: it owns the API client, the auth and
// submission services, the injected view, and the busy guard that keeps
// operations serialized.
type App struct {
	config     *config.Config
	client     api.Client
	auth       services.AuthService
	submission services.SubmissionService
	view       View
	log        logging.Logger
	reader     *bufio.Reader
	db         *sql.DB

	// busy serializes user-triggered operations; TryAcquire failing means a
	// request is already in flight and the new trigger is rejected, not queued.
	busy *semaphore.Weighted

	email  string
	online atomic.Bool

	// previewPath is the temp copy of the currently selected photo. It is
	// removed before a new selection and on shutdown so repeated selections
	// do not accumulate files.
	previewPath string
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}

	client, err := api.NewHTTPClient(cfg.ServerBaseURL, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	meta := metadata.NewSQLiteRepository(db)
	shrink := imaging.Options{
		MaxWidth:  cfg.MaxImageWidth,
		MaxHeight: cfg.MaxImageHeight,
		Quality:   cfg.JPEGQuality,
	}

	return &App{
		config:     cfg,
		client:     client,
		auth:       services.NewAuthService(client, meta),
		submission: services.NewSubmissionService(client, shrink, log),
		view:       NewTermView(os.Stdout),
		log:        log.With("component", "cli"),
		reader:     bufio.NewReader(os.Stdin),
		db:         db,
		busy:       semaphore.NewWeighted(1),
	}, nil
}

func (a *App) Close() error {
	a.clearPreview()
	return a.db.Close()
}

// Run restores any persisted token, shows the initial credit counts, starts
// the connectivity watcher, and enters the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	email, err := a.auth.Restore(ctx)
	if err != nil {
		a.log.Warn(ctx, "token restore failed", "err", err)
	}
	a.email = email
	a.online.Store(true)

	a.view.Info("Influe risk check (type 'help' for commands)")
	a.refreshCredits(ctx)

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.startOnlineStatusWatcher(watchCtx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.email != ""
}

func (a *App) status() string {
	who := "guest"
	if a.email != "" {
		who = a.email
	}
	if a.online.Load() {
		return who
	}
	return who + " offline"
}

// beginOp acquires the busy guard. On success the returned release must run
// on every exit path; on failure the trigger is rejected with a message.
func (a *App) beginOp() (func(), bool) {
	if !a.busy.TryAcquire(1) {
		a.view.Error("another operation is in progress")
		return nil, false
	}
	return func() { a.busy.Release(1) }, true
}

// refreshCredits re-fetches and re-renders the credit counts. Callers defer
// it so every submission attempt refreshes exactly once, whatever branch it
// ends on.
func (a *App) refreshCredits(ctx context.Context) {
	cs, err := a.client.CreditsStatus(ctx)
	if err != nil {
		a.log.Warn(ctx, "credits refresh failed", "err", err)
		return
	}
	a.view.Credits(cs)
}

// startOnlineStatusWatcher periodically pings the server and keeps the
// online flag (shown in the prompt) current.
func (a *App) startOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.client.Ping(pctx)
			cancel()

			was := a.online.Swap(err == nil)
			if was && err != nil {
				a.log.Warn(ctx, "server unreachable", "err", err)
			}

		case <-ctx.Done():
			return
		}
	}
}

func (a *App) clearPreview() {
	if a.previewPath != "" {
		_ = os.Remove(a.previewPath)
		a.previewPath = ""
	}
}

// setPreview replaces the preview copy of the selected photo. The previous
// copy is always removed first. Preview files live in a "previews" subdir of
// the working directory so a crashed run leaves them somewhere findable.
func (a *App) setPreview(data []byte) {
	a.clearPreview()

	dir, err := filex.EnsureSubDir("previews")
	if err != nil {
		return
	}
	f, err := os.CreateTemp(dir, "influe-preview-*")
	if err != nil {
		return
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return
	}
	_ = f.Close()
	a.previewPath = f.Name()
}
