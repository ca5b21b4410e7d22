package restoration

import "context"

type Repository interface {
	Create(ctx context.Context, r *Request) error
	Save(ctx context.Context, r *Request) error
	GetByRequestID(ctx context.Context, requestID string) (*Request, error)
	// GetPendingByApplicationID backs the one-pending-request-per-application
	// invariant; callers check-and-create under the application row lock.
	GetPendingByApplicationID(ctx context.Context, applicationID string) (*Request, error)
	ListAll(ctx context.Context) ([]Request, error)
	ListByStatus(ctx context.Context, s Status) ([]Request, error)
	ListByRequester(ctx context.Context, requestedBy string) ([]Request, error)
}
