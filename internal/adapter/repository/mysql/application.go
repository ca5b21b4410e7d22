package mysql

import (
	"context"

	appDomain "loan-backoffice/internal/domain/application"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *appDomain.LoanApplication) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApplicationRepository) Save(ctx context.Context, a *appDomain.LoanApplication) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *ApplicationRepository) GetByApplicationID(ctx context.Context, applicationID string) (*appDomain.LoanApplication, error) {
	var out appDomain.LoanApplication
	res := r.db.WithContext(ctx).Where("application_id = ?", applicationID).First(&out)
	return &out, res.Error
}

func (r *ApplicationRepository) GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*appDomain.LoanApplication, error) {
	var out appDomain.LoanApplication
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("application_id = ?", applicationID).
		First(&out)
	return &out, res.Error
}

func (r *ApplicationRepository) ListByApplicant(ctx context.Context, applicantID string) ([]appDomain.LoanApplication, error) {
	var out []appDomain.LoanApplication
	res := r.db.WithContext(ctx).
		Where("applicant_id = ? AND is_deleted = ?", applicantID, false).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *ApplicationRepository) ListActive(ctx context.Context) ([]appDomain.LoanApplication, error) {
	var out []appDomain.LoanApplication
	res := r.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *ApplicationRepository) ListDeleted(ctx context.Context) ([]appDomain.LoanApplication, error) {
	var out []appDomain.LoanApplication
	res := r.db.WithContext(ctx).
		Where("is_deleted = ?", true).
		Order("deleted_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

// HardDelete removes the application row and its audit trail. The audit rows
// belong to the application record; nothing else references them.
func (r *ApplicationRepository) HardDelete(ctx context.Context, id uint64) error {
	if err := r.db.WithContext(ctx).
		Where("application_id = ?", id).
		Delete(&appDomain.StatusHistory{}).Error; err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&appDomain.LoanApplication{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ApplicationRepository) AppendHistory(ctx context.Context, h *appDomain.StatusHistory) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *ApplicationRepository) ListHistory(ctx context.Context, applicationID uint64) ([]appDomain.StatusHistory, error) {
	var out []appDomain.StatusHistory
	res := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
