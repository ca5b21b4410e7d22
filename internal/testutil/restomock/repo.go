package restomock

import (
	"context"
	"errors"

	domain "loan-backoffice/internal/domain/restoration"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("restomock: method not implemented")

// Repo is a function-backed mock that satisfies restoration.Repository.
type Repo struct {
	CreateFn                    func(ctx context.Context, r *domain.Request) error
	SaveFn                      func(ctx context.Context, r *domain.Request) error
	GetByRequestIDFn            func(ctx context.Context, requestID string) (*domain.Request, error)
	GetPendingByApplicationIDFn func(ctx context.Context, applicationID string) (*domain.Request, error)
	ListAllFn                   func(ctx context.Context) ([]domain.Request, error)
	ListByStatusFn              func(ctx context.Context, s domain.Status) ([]domain.Request, error)
	ListByRequesterFn           func(ctx context.Context, requestedBy string) ([]domain.Request, error)
}

func (m *Repo) Create(ctx context.Context, r *domain.Request) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, r *domain.Request) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByRequestID(ctx context.Context, requestID string) (*domain.Request, error) {
	if m.GetByRequestIDFn != nil {
		return m.GetByRequestIDFn(ctx, requestID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetPendingByApplicationID(ctx context.Context, applicationID string) (*domain.Request, error) {
	if m.GetPendingByApplicationIDFn != nil {
		return m.GetPendingByApplicationIDFn(ctx, applicationID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Request, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByStatus(ctx context.Context, s domain.Status) ([]domain.Request, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, s)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByRequester(ctx context.Context, requestedBy string) ([]domain.Request, error) {
	if m.ListByRequesterFn != nil {
		return m.ListByRequesterFn(ctx, requestedBy)
	}
	return nil, errUnimplemented
}
