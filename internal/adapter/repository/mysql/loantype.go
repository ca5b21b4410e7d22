package mysql

import (
	"context"

	ltDomain "loan-backoffice/internal/domain/loantype"

	"gorm.io/gorm"
)

type LoanTypeRepository struct{ db *gorm.DB }

func NewLoanTypeRepository(db *gorm.DB) *LoanTypeRepository {
	return &LoanTypeRepository{db: db}
}

func (r *LoanTypeRepository) GetByCode(ctx context.Context, code string) (*ltDomain.LoanType, error) {
	var out ltDomain.LoanType
	res := r.db.WithContext(ctx).Where("code = ?", code).First(&out)
	return &out, res.Error
}

func (r *LoanTypeRepository) ListActive(ctx context.Context) ([]ltDomain.LoanType, error) {
	var out []ltDomain.LoanType
	res := r.db.WithContext(ctx).Where("active = ?", true).Order("code ASC").Find(&out)
	return out, res.Error
}

// SeedDefaults installs the default catalog, skipping codes that already
// exist. Called once at startup.
func (r *LoanTypeRepository) SeedDefaults(ctx context.Context) error {
	for _, lt := range ltDomain.DefaultCatalog() {
		lt := lt
		if err := r.db.WithContext(ctx).
			Where("code = ?", lt.Code).
			FirstOrCreate(&lt).Error; err != nil {
			return err
		}
	}
	return nil
}
