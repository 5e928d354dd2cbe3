package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/textfix/internal/dbx"
	"github.com/dmitrijs2005/textfix/internal/server/repositories/history"
	"github.com/dmitrijs2005/textfix/internal/server/repositories/otps"
	"github.com/dmitrijs2005/textfix/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a *sql.DB or a transaction,
// so services can run several repositories inside one dbx.WithTx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	History(db dbx.DBTX) history.Repository
	OTPs(db dbx.DBTX) otps.Repository
}
