package application

import "context"

type Repository interface {
	Create(ctx context.Context, a *LoanApplication) error
	Save(ctx context.Context, a *LoanApplication) error

	// GetByApplicationID returns the row regardless of its deletion flag;
	// callers decide whether a soft-deleted application is acceptable.
	GetByApplicationID(ctx context.Context, applicationID string) (*LoanApplication, error)
	// GetByApplicationIDForUpdate does the same under a row lock (SELECT ... FOR UPDATE).
	GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*LoanApplication, error)

	// Active views: soft-deleted applications are excluded.
	ListByApplicant(ctx context.Context, applicantID string) ([]LoanApplication, error)
	ListActive(ctx context.Context) ([]LoanApplication, error)
	// ListDeleted is the restoration work queue: soft-deleted rows only.
	ListDeleted(ctx context.Context) ([]LoanApplication, error)

	// HardDelete physically removes the application and its history rows.
	HardDelete(ctx context.Context, id uint64) error

	// Audit trail. AppendHistory is insert-only; nothing updates or removes rows.
	AppendHistory(ctx context.Context, h *StatusHistory) error
	ListHistory(ctx context.Context, applicationID uint64) ([]StatusHistory, error)
}
