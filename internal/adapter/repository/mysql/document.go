package mysql

import (
	"context"

	docDomain "loan-backoffice/internal/domain/document"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DocumentRepository struct{ db *gorm.DB }

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Upsert relies on the (application_id, document_type) unique index: a
// re-upload of the same type overwrites the existing row.
func (r *DocumentRepository) Upsert(ctx context.Context, d *docDomain.Document) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "application_id"}, {Name: "document_type"}},
			DoUpdates: clause.AssignmentColumns([]string{"file_ref", "file_name", "uploaded_at"}),
		}).
		Create(d).Error
}

func (r *DocumentRepository) ListByApplication(ctx context.Context, applicationID uint64) ([]docDomain.Document, error) {
	var out []docDomain.Document
	res := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("document_type ASC").
		Find(&out)
	return out, res.Error
}

func (r *DocumentRepository) DeleteByType(ctx context.Context, applicationID uint64, t docDomain.Type) error {
	res := r.db.WithContext(ctx).
		Where("application_id = ? AND document_type = ?", applicationID, t).
		Delete(&docDomain.Document{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DocumentRepository) DeleteByApplication(ctx context.Context, applicationID uint64) error {
	return r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Delete(&docDomain.Document{}).Error
}
