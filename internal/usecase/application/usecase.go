package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"loan-backoffice/internal/domain/application"
	"loan-backoffice/internal/domain/authz"
	"loan-backoffice/internal/domain/document"
	"loan-backoffice/internal/domain/loantype"
	"loan-backoffice/internal/domain/uow"
	"loan-backoffice/pkg/id"

	"gorm.io/gorm"
)

// Purpose length bounds for a new application.
const (
	minPurposeLen = 10
	maxPurposeLen = 500
)

type Usecase struct {
	repo      application.Repository
	loanTypes loantype.Repository
	uow       uow.UnitOfWork
}

func NewUsecase(apps application.Repository, types loantype.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: apps, loanTypes: types, uow: tx}
}

type SubmitInput struct {
	ApplicantID  string  `json:"applicant_id"`
	LoanTypeCode string  `json:"loan_type"`
	Amount       float64 `json:"amount"`
	Purpose      string  `json:"purpose"`
	TenureMonths int     `json:"tenure_months"`
}

// Submit creates a new application in pending and writes the initial audit
// entry, atomically. Input is validated against the loan-type catalog bounds.
func (u *Usecase) Submit(ctx context.Context, actor authz.Actor, in SubmitInput) (*ApplicationDTO, error) {
	if !actor.Can(authz.ActionSubmitApplication, in.ApplicantID) {
		return nil, application.ErrForbidden
	}

	if len(in.ApplicantID) != 32 {
		return nil, &application.ValidationError{Field: "applicant_id", Reason: "must be a 32-char id"}
	}
	purpose := strings.TrimSpace(in.Purpose)
	if len(purpose) < minPurposeLen {
		return nil, &application.ValidationError{Field: "purpose", Reason: "must be at least 10 characters"}
	}
	if len(purpose) > maxPurposeLen {
		return nil, &application.ValidationError{Field: "purpose", Reason: "must not exceed 500 characters"}
	}

	lt, err := u.loanTypes.GetByCode(ctx, in.LoanTypeCode)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, &application.ValidationError{Field: "loan_type", Reason: "is not a known loan type"}
	case err != nil:
		return nil, err
	case !lt.Active:
		return nil, &application.ValidationError{Field: "loan_type", Reason: "is currently not available"}
	}
	if in.Amount < lt.MinAmount {
		return nil, &application.ValidationError{Field: "amount", Reason: "is below the minimum for this loan type"}
	}
	if in.Amount > lt.MaxAmount {
		return nil, &application.ValidationError{Field: "amount", Reason: "exceeds the maximum for this loan type"}
	}
	if in.TenureMonths < lt.MinTenureMonths || in.TenureMonths > lt.MaxTenureMonths {
		return nil, &application.ValidationError{Field: "tenure_months", Reason: "is outside the bounds for this loan type"}
	}

	now := time.Now().UTC()
	app := &application.LoanApplication{
		ApplicationID:   id.NewID32(),
		ApplicantID:     in.ApplicantID,
		LoanTypeCode:    lt.Code,
		Amount:          in.Amount,
		Purpose:         purpose,
		TenureMonths:    in.TenureMonths,
		Status:          application.StatusPending,
		StatusUpdatedAt: now,
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Applications.Create(ctx, app); err != nil {
			return err
		}
		return r.Applications.AppendHistory(ctx, &application.StatusHistory{
			ApplicationID: app.ID,
			Status:        application.StatusPending,
			Timestamp:     now,
			Comment:       application.CommentSubmitted,
			UpdatedBy:     actor.ID,
		})
	})
	if err != nil {
		return nil, err
	}
	return toDTO(app), nil
}

// CompleteDocumentSubmission is the document-completeness gate: it moves a
// pending application to under_review once every required document type is
// present, or fails without touching state.
func (u *Usecase) CompleteDocumentSubmission(ctx context.Context, actor authz.Actor, applicationID string) (*ApplicationDTO, error) {
	var dto *ApplicationDTO
	err := u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, app *application.LoanApplication) error {
		if app.IsDeleted {
			return application.ErrNotFound
		}
		if !actor.Can(authz.ActionCompleteDocuments, app.ApplicantID) {
			return application.ErrForbidden
		}
		if app.Status != application.StatusPending {
			return application.ErrInvalidTransition
		}

		docs, err := r.Documents.ListByApplication(ctx, app.ID)
		if err != nil {
			return err
		}
		uploaded := make([]document.Type, len(docs))
		for i, d := range docs {
			uploaded[i] = d.Type
		}
		if missing := document.MissingRequired(uploaded); len(missing) > 0 {
			return &application.IncompleteDocumentsError{Missing: missing}
		}

		now := time.Now().UTC()
		app.DocumentsUploaded = true
		app.Status = application.StatusUnderReview
		app.StatusUpdatedAt = now
		if err := r.Applications.Save(ctx, app); err != nil {
			return err
		}
		if err := r.Applications.AppendHistory(ctx, &application.StatusHistory{
			ApplicationID: app.ID,
			Status:        application.StatusUnderReview,
			Timestamp:     now,
			Comment:       application.CommentDocumentsComplete,
			UpdatedBy:     actor.ID,
		}); err != nil {
			return err
		}
		dto = toDTO(app)
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err)
	}
	return dto, nil
}

type SetStatusInput struct {
	Status          application.Status           `json:"status"`
	Comment         string                       `json:"comment"`
	Approval        *application.ApprovalDetails `json:"approval_details"`
	RejectionReason string                       `json:"rejection_reason"`
}

// SetStatus applies an underwriter/admin decision. The transition must be
// legal from the current status; approval terms and rejection reasons are
// validated here, then stored verbatim.
func (u *Usecase) SetStatus(ctx context.Context, actor authz.Actor, applicationID string, in SetStatusInput) (*ApplicationDTO, error) {
	if !actor.Can(authz.ActionTransitionStatus, "") {
		return nil, application.ErrForbidden
	}
	if !in.Status.Valid() {
		return nil, &application.ValidationError{Field: "status", Reason: "is not a known status"}
	}

	var dto *ApplicationDTO
	err := u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, app *application.LoanApplication) error {
		if app.IsDeleted {
			return application.ErrNotFound
		}
		if !app.Status.CanTransitionTo(in.Status) {
			return application.ErrInvalidTransition
		}

		switch in.Status {
		case application.StatusApproved:
			if in.Approval == nil {
				return &application.ValidationError{Field: "approval_details", Reason: "are required when approving"}
			}
			if in.Approval.ApprovedAmount <= 0 {
				return &application.ValidationError{Field: "approved_amount", Reason: "must be positive"}
			}
			if in.Approval.TenureMonths <= 0 {
				return &application.ValidationError{Field: "tenure_months", Reason: "must be positive"}
			}
			app.Approval = *in.Approval
			app.RejectionReason = ""
		case application.StatusRejected:
			if strings.TrimSpace(in.RejectionReason) == "" {
				return &application.ValidationError{Field: "rejection_reason", Reason: "is required when rejecting"}
			}
			app.RejectionReason = strings.TrimSpace(in.RejectionReason)
			app.Approval = application.ApprovalDetails{}
		}

		now := time.Now().UTC()
		app.Status = in.Status
		app.StatusUpdatedAt = now
		if err := r.Applications.Save(ctx, app); err != nil {
			return err
		}
		if err := r.Applications.AppendHistory(ctx, &application.StatusHistory{
			ApplicationID: app.ID,
			Status:        in.Status,
			Timestamp:     now,
			Comment:       in.Comment,
			UpdatedBy:     actor.ID,
		}); err != nil {
			return err
		}
		dto = toDTO(app)
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err)
	}
	return dto, nil
}

// SoftDelete marks an application deleted without removing its data. An
// applicant may only delete their own non-approved applications; an admin may
// delete any active application.
func (u *Usecase) SoftDelete(ctx context.Context, actor authz.Actor, applicationID string) error {
	err := u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, app *application.LoanApplication) error {
		if app.IsDeleted {
			return application.ErrNotFound
		}
		if !actor.Can(authz.ActionSoftDelete, app.ApplicantID) {
			return application.ErrForbidden
		}
		if actor.Role == authz.RoleApplicant && app.Status == application.StatusApproved {
			return application.ErrInvalidTransition
		}

		now := time.Now().UTC()
		app.IsDeleted = true
		app.DeletedAt = &now
		if err := r.Applications.Save(ctx, app); err != nil {
			return err
		}
		// The status itself is unchanged; the history entry records the
		// deletion under the current status.
		return r.Applications.AppendHistory(ctx, &application.StatusHistory{
			ApplicationID: app.ID,
			Status:        app.Status,
			Timestamp:     now,
			Comment:       application.CommentDeleted,
			UpdatedBy:     actor.ID,
		})
	})
	return mapNotFound(err)
}

// Get returns one application. Soft-deleted applications are invisible to
// applicants but remain readable by underwriters and admins.
func (u *Usecase) Get(ctx context.Context, actor authz.Actor, applicationID string) (*ApplicationDTO, error) {
	app, err := u.repo.GetByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if !actor.Can(authz.ActionViewApplication, app.ApplicantID) {
		return nil, application.ErrForbidden
	}
	if app.IsDeleted && actor.Role == authz.RoleApplicant {
		return nil, application.ErrNotFound
	}
	return toDTO(app), nil
}

// GetHistory returns the full ordered audit trail of an application.
func (u *Usecase) GetHistory(ctx context.Context, actor authz.Actor, applicationID string) ([]StatusHistoryDTO, error) {
	app, err := u.repo.GetByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if !actor.Can(authz.ActionViewApplication, app.ApplicantID) {
		return nil, application.ErrForbidden
	}
	rows, err := u.repo.ListHistory(ctx, app.ID)
	if err != nil {
		return nil, err
	}
	out := make([]StatusHistoryDTO, len(rows))
	for i, h := range rows {
		out[i] = StatusHistoryDTO{
			Status:    string(h.Status),
			Timestamp: h.Timestamp,
			Comment:   h.Comment,
			UpdatedBy: h.UpdatedBy,
		}
	}
	return out, nil
}

// ListMine returns the actor's own active applications.
func (u *Usecase) ListMine(ctx context.Context, actor authz.Actor) ([]ApplicationDTO, error) {
	apps, err := u.repo.ListByApplicant(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return toDTOs(apps), nil
}

// ListAll returns every active application, for the review queue.
func (u *Usecase) ListAll(ctx context.Context, actor authz.Actor) ([]ApplicationDTO, error) {
	if !actor.Can(authz.ActionListAllApplications, "") {
		return nil, application.ErrForbidden
	}
	apps, err := u.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(apps), nil
}

// ListDeleted returns soft-deleted applications, for the restoration queue.
func (u *Usecase) ListDeleted(ctx context.Context, actor authz.Actor) ([]ApplicationDTO, error) {
	if !actor.Can(authz.ActionListDeletedApplications, "") {
		return nil, application.ErrForbidden
	}
	apps, err := u.repo.ListDeleted(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(apps), nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return application.ErrNotFound
	}
	return err
}
