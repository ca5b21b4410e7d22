package application

import (
	"time"

	"loan-backoffice/internal/domain/application"
)

type ApplicationDTO struct {
	ApplicationID     string                       `json:"application_id"`
	ApplicantID       string                       `json:"applicant_id"`
	LoanType          string                       `json:"loan_type"`
	Amount            float64                      `json:"amount"`
	Purpose           string                       `json:"purpose"`
	TenureMonths      int                          `json:"tenure_months"`
	Status            string                       `json:"status"`
	DocumentsUploaded bool                         `json:"documents_uploaded"`
	ApprovalDetails   *application.ApprovalDetails `json:"approval_details,omitempty"`
	RejectionReason   string                       `json:"rejection_reason,omitempty"`
	IsDeleted         bool                         `json:"is_deleted"`
	DeletedAt         *time.Time                   `json:"deleted_at,omitempty"`
	CreatedAt         time.Time                    `json:"created_at"`
}

type StatusHistoryDTO struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Comment   string    `json:"comment"`
	UpdatedBy string    `json:"updated_by"`
}

func toDTO(app *application.LoanApplication) *ApplicationDTO {
	dto := &ApplicationDTO{
		ApplicationID:     app.ApplicationID,
		ApplicantID:       app.ApplicantID,
		LoanType:          app.LoanTypeCode,
		Amount:            app.Amount,
		Purpose:           app.Purpose,
		TenureMonths:      app.TenureMonths,
		Status:            string(app.Status),
		DocumentsUploaded: app.DocumentsUploaded,
		IsDeleted:         app.IsDeleted,
		DeletedAt:         app.DeletedAt,
		CreatedAt:         app.CreatedAt,
	}
	// Approval terms are surfaced only while the application is approved.
	if app.Status == application.StatusApproved {
		a := app.Approval
		dto.ApprovalDetails = &a
	}
	if app.Status == application.StatusRejected {
		dto.RejectionReason = app.RejectionReason
	}
	return dto
}

func toDTOs(apps []application.LoanApplication) []ApplicationDTO {
	out := make([]ApplicationDTO, len(apps))
	for i := range apps {
		out[i] = *toDTO(&apps[i])
	}
	return out
}
