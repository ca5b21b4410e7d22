package loantype

import "context"

type Repository interface {
	GetByCode(ctx context.Context, code string) (*LoanType, error)
	ListActive(ctx context.Context) ([]LoanType, error)
}
