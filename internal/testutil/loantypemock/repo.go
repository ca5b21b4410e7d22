package loantypemock

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "loan-backoffice/internal/domain/loantype"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("loantypemock: method not implemented")

// Repo is a function-backed mock that satisfies loantype.Repository.
// FromCatalog answers GetByCode out of the in-memory default catalog,
// which is what most usecase tests want.
type Repo struct {
	GetByCodeFn  func(ctx context.Context, code string) (*domain.LoanType, error)
	ListActiveFn func(ctx context.Context) ([]domain.LoanType, error)
}

func FromCatalog() *Repo {
	catalog := domain.DefaultCatalog()
	return &Repo{
		GetByCodeFn: func(_ context.Context, code string) (*domain.LoanType, error) {
			for i := range catalog {
				if catalog[i].Code == code {
					return &catalog[i], nil
				}
			}
			// Unknown codes surface the same error the gorm repository does.
			return nil, gorm.ErrRecordNotFound
		},
		ListActiveFn: func(context.Context) ([]domain.LoanType, error) {
			return catalog, nil
		},
	}
}

func (m *Repo) GetByCode(ctx context.Context, code string) (*domain.LoanType, error) {
	if m.GetByCodeFn != nil {
		return m.GetByCodeFn(ctx, code)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListActive(ctx context.Context) ([]domain.LoanType, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return nil, errUnimplemented
}
