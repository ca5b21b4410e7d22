package appmock

import (
	"context"
	"errors"

	domain "loan-backoffice/internal/domain/application"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("appmock: method not implemented")

// Repo is a function-backed mock that satisfies application.Repository.
// Fill in the function fields a test needs; unfilled getters fail loudly.
type Repo struct {
	CreateFn                      func(ctx context.Context, a *domain.LoanApplication) error
	SaveFn                        func(ctx context.Context, a *domain.LoanApplication) error
	GetByApplicationIDFn          func(ctx context.Context, applicationID string) (*domain.LoanApplication, error)
	GetByApplicationIDForUpdateFn func(ctx context.Context, applicationID string) (*domain.LoanApplication, error)
	ListByApplicantFn             func(ctx context.Context, applicantID string) ([]domain.LoanApplication, error)
	ListActiveFn                  func(ctx context.Context) ([]domain.LoanApplication, error)
	ListDeletedFn                 func(ctx context.Context) ([]domain.LoanApplication, error)
	HardDeleteFn                  func(ctx context.Context, id uint64) error
	AppendHistoryFn               func(ctx context.Context, h *domain.StatusHistory) error
	ListHistoryFn                 func(ctx context.Context, applicationID uint64) ([]domain.StatusHistory, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.LoanApplication) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, a *domain.LoanApplication) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByApplicationID(ctx context.Context, applicationID string) (*domain.LoanApplication, error) {
	if m.GetByApplicationIDFn != nil {
		return m.GetByApplicationIDFn(ctx, applicationID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*domain.LoanApplication, error) {
	if m.GetByApplicationIDForUpdateFn != nil {
		return m.GetByApplicationIDForUpdateFn(ctx, applicationID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByApplicant(ctx context.Context, applicantID string) ([]domain.LoanApplication, error) {
	if m.ListByApplicantFn != nil {
		return m.ListByApplicantFn(ctx, applicantID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListActive(ctx context.Context) ([]domain.LoanApplication, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListDeleted(ctx context.Context) ([]domain.LoanApplication, error) {
	if m.ListDeletedFn != nil {
		return m.ListDeletedFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) HardDelete(ctx context.Context, id uint64) error {
	if m.HardDeleteFn != nil {
		return m.HardDeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) AppendHistory(ctx context.Context, h *domain.StatusHistory) error {
	if m.AppendHistoryFn != nil {
		return m.AppendHistoryFn(ctx, h)
	}
	return nil
}

func (m *Repo) ListHistory(ctx context.Context, applicationID uint64) ([]domain.StatusHistory, error) {
	if m.ListHistoryFn != nil {
		return m.ListHistoryFn(ctx, applicationID)
	}
	return nil, errUnimplemented
}
