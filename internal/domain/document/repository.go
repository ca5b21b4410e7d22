package document

import "context"

type Repository interface {
	// Upsert replaces any existing document of the same type for the same
	// application; a re-upload never duplicates.
	Upsert(ctx context.Context, d *Document) error
	ListByApplication(ctx context.Context, applicationID uint64) ([]Document, error)
	// DeleteByType returns gorm.ErrRecordNotFound when no such document exists.
	DeleteByType(ctx context.Context, applicationID uint64, t Type) error
	DeleteByApplication(ctx context.Context, applicationID uint64) error
}
