package uow

import (
	"context"

	"loan-backoffice/internal/domain/application"
	"loan-backoffice/internal/domain/document"
	"loan-backoffice/internal/domain/loantype"
	"loan-backoffice/internal/domain/restoration"
)

// Repos bundles the transaction-bound repositories handed to a unit of work.
type Repos struct {
	Applications application.Repository
	Documents    document.Repository
	Restorations restoration.Repository
	LoanTypes    loantype.Repository
}

type UnitOfWork interface {
	// WithinTx runs fn in a single transaction.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinApplicationTx locks the application row first, giving the body
	// single-writer-at-a-time semantics for that application. Operations on
	// other applications proceed independently.
	WithinApplicationTx(ctx context.Context, applicationID string, fn func(r Repos, app *application.LoanApplication) error) error
}
