package mysql

import (
	"context"

	restDomain "loan-backoffice/internal/domain/restoration"

	"gorm.io/gorm"
)

type RestorationRepository struct{ db *gorm.DB }

func NewRestorationRepository(db *gorm.DB) *RestorationRepository {
	return &RestorationRepository{db: db}
}

func (r *RestorationRepository) Create(ctx context.Context, req *restDomain.Request) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *RestorationRepository) Save(ctx context.Context, req *restDomain.Request) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *RestorationRepository) GetByRequestID(ctx context.Context, requestID string) (*restDomain.Request, error) {
	var out restDomain.Request
	res := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&out)
	return &out, res.Error
}

func (r *RestorationRepository) GetPendingByApplicationID(ctx context.Context, applicationID string) (*restDomain.Request, error) {
	var out restDomain.Request
	res := r.db.WithContext(ctx).
		Where("application_id = ? AND status = ?", applicationID, restDomain.StatusPending).
		First(&out)
	return &out, res.Error
}

func (r *RestorationRepository) ListAll(ctx context.Context) ([]restDomain.Request, error) {
	var out []restDomain.Request
	res := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *RestorationRepository) ListByStatus(ctx context.Context, s restDomain.Status) ([]restDomain.Request, error) {
	var out []restDomain.Request
	res := r.db.WithContext(ctx).
		Where("status = ?", s).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *RestorationRepository) ListByRequester(ctx context.Context, requestedBy string) ([]restDomain.Request, error) {
	var out []restDomain.Request
	res := r.db.WithContext(ctx).
		Where("requested_by = ?", requestedBy).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
