package application

import (
	"time"
)

type Status string

const (
	StatusPending     Status = "pending"
	StatusUnderReview Status = "under_review"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
)

// transitions lists the statuses reachable from each status. pending is the
// only initial status; approved and rejected can be reopened for re-review,
// but nothing ever moves back to pending.
var transitions = map[Status][]Status{
	StatusPending:     {StatusUnderReview},
	StatusUnderReview: {StatusApproved, StatusRejected},
	StatusApproved:    {StatusUnderReview},
	StatusRejected:    {StatusUnderReview},
}

func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// ApprovalDetails holds underwriter-entered approval terms. The EMI is stored
// verbatim as supplied; it is business input, never re-derived here.
type ApprovalDetails struct {
	ApprovedAmount float64 `gorm:"column:approved_amount;type:decimal(18,2)" json:"approved_amount"`
	InterestRate   float64 `gorm:"column:interest_rate;type:decimal(6,4)" json:"interest_rate"`
	TenureMonths   int     `gorm:"column:tenure_months" json:"tenure_months"`
	EMI            float64 `gorm:"column:emi;type:decimal(18,2)" json:"emi"`
}

type LoanApplication struct {
	ID            uint64  `gorm:"primaryKey;column:id" json:"-"`
	ApplicationID string  `gorm:"size:32;uniqueIndex:ux_applications_application_id" json:"application_id"`
	ApplicantID   string  `gorm:"size:32;index:idx_applications_applicant" json:"applicant_id"`
	LoanTypeCode  string  `gorm:"size:32" json:"loan_type"`
	Amount        float64 `gorm:"type:decimal(18,2)" json:"amount"`
	Purpose       string  `gorm:"type:text" json:"purpose"`
	TenureMonths  int     `gorm:"column:tenure_months" json:"tenure_months"`

	Status            Status          `gorm:"type:enum('pending','under_review','approved','rejected');default:'pending'" json:"status"`
	DocumentsUploaded bool            `gorm:"column:documents_uploaded" json:"documents_uploaded"`
	Approval          ApprovalDetails `gorm:"embedded;embeddedPrefix:approval_" json:"-"`
	RejectionReason   string          `gorm:"type:text" json:"rejection_reason,omitempty"`

	// Soft-delete marker. Deliberately not gorm.DeletedAt: deleted rows must
	// stay queryable for the restoration workflow.
	IsDeleted bool       `gorm:"column:is_deleted;default:false" json:"is_deleted"`
	DeletedAt *time.Time `gorm:"column:deleted_at" json:"deleted_at,omitempty"`

	StatusUpdatedAt time.Time `gorm:"autoCreateTime" json:"status_updated_at"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (LoanApplication) TableName() string { return "loan_applications" }

// StatusHistory is one row of an application's append-only audit trail.
// Rows are only ever inserted; ordering is the insertion order (id ASC).
type StatusHistory struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"-"`
	ApplicationID uint64    `gorm:"column:application_id;index:idx_status_history_application" json:"-"`
	Status        Status    `gorm:"size:32" json:"status"`
	Timestamp     time.Time `gorm:"column:recorded_at" json:"timestamp"`
	Comment       string    `gorm:"type:text" json:"comment"`
	UpdatedBy     string    `gorm:"size:32" json:"updated_by"`
}

func (StatusHistory) TableName() string { return "application_status_history" }

// History comments written by the engine itself.
const (
	CommentSubmitted         = "Application submitted"
	CommentDocumentsComplete = "All documents uploaded, application under review"
	CommentDeleted           = "Application deleted"
)
