package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/textfix/internal/client/client"
	"github.com/dmitrijs2005/textfix/internal/client/config"
	"github.com/dmitrijs2005/textfix/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/textfix/internal/client/session"
	"github.com/dmitrijs2005/textfix/internal/client/ui"
	"github.com/dmitrijs2005/textfix/internal/logging"
)

// Set is every client service wired to one local database and one API
// client.
type Set struct {
	DB      *sql.DB
	Store   *session.Store
	Guard   *session.Guard
	Auth    AuthService
	Chat    *ChatService
	History *HistoryService
	Profile *ProfileService
}

// Wire opens the local database under dataDir and builds the services.
// nav is the front end's login surface.
func Wire(ctx context.Context, cfg *config.Config, dataDir string, nav session.Navigator, logger logging.Logger) (*Set, error) {
	db, err := client.InitDatabase(ctx, cfg.DatabasePath(dataDir))
	if err != nil {
		return nil, err
	}

	api := client.NewHTTPClient(cfg.ServerURL, cfg.RequestTimeout, logger)
	return NewSet(db, api, nav, logger), nil
}

// NewSet builds the services over an already opened database.
func NewSet(db *sql.DB, api client.Client, nav session.Navigator, logger logging.Logger) *Set {
	store := session.NewStore(metadata.NewSQLiteRepository(db))
	guard := session.NewGuard(store, nav, logger)

	return &Set{
		DB:      db,
		Store:   store,
		Guard:   guard,
		Auth:    NewAuthService(api, guard, logger),
		Chat:    NewChatService(api, guard, logger),
		History: NewHistoryService(api, guard),
		Profile: NewProfileService(api, guard),
	}
}

// UIDeps adapts the set to the ui package's collaborators.
func (s *Set) UIDeps(notifier ui.Notifier, logger logging.Logger) ui.Deps {
	return ui.Deps{
		Auth:     s.Guard,
		Analyzer: s.Chat,
		History:  s.History,
		Profile:  s.Profile,
		Notifier: notifier,
		Logger:   logger,
	}
}

// Close releases the local database.
func (s *Set) Close() error {
	return s.DB.Close()
}
