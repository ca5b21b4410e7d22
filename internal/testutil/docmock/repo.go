package docmock

import (
	"context"
	"errors"

	domain "loan-backoffice/internal/domain/document"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("docmock: method not implemented")

// Repo is a function-backed mock that satisfies document.Repository.
type Repo struct {
	UpsertFn              func(ctx context.Context, d *domain.Document) error
	ListByApplicationFn   func(ctx context.Context, applicationID uint64) ([]domain.Document, error)
	DeleteByTypeFn        func(ctx context.Context, applicationID uint64, t domain.Type) error
	DeleteByApplicationFn func(ctx context.Context, applicationID uint64) error
}

func (m *Repo) Upsert(ctx context.Context, d *domain.Document) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, d)
	}
	return nil
}

func (m *Repo) ListByApplication(ctx context.Context, applicationID uint64) ([]domain.Document, error) {
	if m.ListByApplicationFn != nil {
		return m.ListByApplicationFn(ctx, applicationID)
	}
	return nil, errUnimplemented
}

func (m *Repo) DeleteByType(ctx context.Context, applicationID uint64, t domain.Type) error {
	if m.DeleteByTypeFn != nil {
		return m.DeleteByTypeFn(ctx, applicationID, t)
	}
	return nil
}

func (m *Repo) DeleteByApplication(ctx context.Context, applicationID uint64) error {
	if m.DeleteByApplicationFn != nil {
		return m.DeleteByApplicationFn(ctx, applicationID)
	}
	return nil
}
