package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/presale/internal/dbx"
	"github.com/dmitrijs2005/presale/internal/server/repositories/purchases"
	"github.com/dmitrijs2005/presale/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Purchases(db dbx.DBTX) purchases.Repository
}
