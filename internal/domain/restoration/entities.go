package restoration

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Reason length bounds for an underwriter's restoration request.
const (
	MinReasonLen = 10
	MaxReasonLen = 500
)

// Request is an underwriter's proposal to undo a soft delete, adjudicated by
// an administrator. ApplicationID holds the public application id as a weak
// reference: it can outlive the application itself if the application is
// hard-deleted while the request is pending, leaving the request orphaned.
type Request struct {
	ID            uint64 `gorm:"primaryKey;column:id" json:"-"`
	RequestID     string `gorm:"size:32;uniqueIndex:ux_restoration_requests_request_id" json:"request_id"`
	ApplicationID string `gorm:"size:32;index:idx_restoration_requests_application" json:"application_id"`
	RequestedBy   string `gorm:"size:32;index:idx_restoration_requests_requester" json:"requested_by"`
	Reason        string `gorm:"size:500" json:"reason"`

	Status      Status     `gorm:"size:16;default:'pending'" json:"status"`
	ReviewedBy  *string    `gorm:"size:32" json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`
	ReviewNotes string     `gorm:"size:500" json:"review_notes,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Request) TableName() string { return "restoration_requests" }
