package restoration

import (
	"context"
	"errors"
	"strings"
	"time"

	"loan-backoffice/internal/domain/application"
	"loan-backoffice/internal/domain/authz"
	"loan-backoffice/internal/domain/restoration"
	"loan-backoffice/internal/domain/uow"
	"loan-backoffice/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	requests restoration.Repository
	uow      uow.UnitOfWork
}

func NewUsecase(requests restoration.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{requests: requests, uow: tx}
}

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

type RequestDTO struct {
	RequestID     string     `json:"request_id"`
	ApplicationID string     `json:"application_id"`
	RequestedBy   string     `json:"requested_by"`
	Reason        string     `json:"reason"`
	Status        string     `json:"status"`
	ReviewedBy    *string    `json:"reviewed_by,omitempty"`
	ReviewedAt    *time.Time `json:"reviewed_at,omitempty"`
	ReviewNotes   string     `json:"review_notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Request files an underwriter's proposal to restore a soft-deleted
// application. At most one pending request may exist per application; the
// check-and-create runs under the application row lock.
func (u *Usecase) Request(ctx context.Context, actor authz.Actor, applicationID, reason string) (*RequestDTO, error) {
	if !actor.Can(authz.ActionRequestRestoration, "") {
		return nil, application.ErrForbidden
	}
	reason = strings.TrimSpace(reason)
	if len(reason) < restoration.MinReasonLen {
		return nil, &application.ValidationError{Field: "reason", Reason: "must be at least 10 characters"}
	}
	if len(reason) > restoration.MaxReasonLen {
		return nil, &application.ValidationError{Field: "reason", Reason: "must not exceed 500 characters"}
	}

	var dto *RequestDTO
	err := u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, app *application.LoanApplication) error {
		if !app.IsDeleted {
			return application.ErrNotFound
		}
		_, err := r.Restorations.GetPendingByApplicationID(ctx, app.ApplicationID)
		switch {
		case err == nil:
			return application.ErrConflict
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		req := &restoration.Request{
			RequestID:     id.NewID32(),
			ApplicationID: app.ApplicationID,
			RequestedBy:   actor.ID,
			Reason:        reason,
			Status:        restoration.StatusPending,
		}
		if err := r.Restorations.Create(ctx, req); err != nil {
			return err
		}
		dto = toDTO(req)
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err)
	}
	return dto, nil
}

// Review adjudicates a pending request. Approval restores the application to
// its last pre-deletion status; rejection requires notes and leaves the
// application deleted. If the application was hard-deleted in the meantime
// the request is orphaned and any review fails with not-found.
func (u *Usecase) Review(ctx context.Context, actor authz.Actor, requestID string, decision Decision, notes string) (*RequestDTO, error) {
	if !actor.Can(authz.ActionReviewRestoration, "") {
		return nil, application.ErrForbidden
	}
	if decision != DecisionApprove && decision != DecisionReject {
		return nil, &application.ValidationError{Field: "decision", Reason: "must be approve or reject"}
	}
	notes = strings.TrimSpace(notes)
	if decision == DecisionReject && notes == "" {
		return nil, &application.ValidationError{Field: "notes", Reason: "are required when rejecting"}
	}

	var dto *RequestDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		req, err := r.Restorations.GetByRequestID(ctx, requestID)
		if err != nil {
			return err
		}
		if req.Status != restoration.StatusPending {
			return application.ErrInvalidTransition
		}

		// Lock the target application; a hard-deleted target makes the
		// request unreviewable.
		app, err := r.Applications.GetByApplicationIDForUpdate(ctx, req.ApplicationID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		if decision == DecisionApprove {
			if !app.IsDeleted {
				// Already restored through some other path.
				return application.ErrNotFound
			}
			app.IsDeleted = false
			app.DeletedAt = nil
			if err := r.Applications.Save(ctx, app); err != nil {
				return err
			}
			if err := r.Applications.AppendHistory(ctx, &application.StatusHistory{
				ApplicationID: app.ID,
				Status:        app.Status,
				Timestamp:     now,
				Comment:       "Application restored by administrator. Reason: " + req.Reason,
				UpdatedBy:     actor.ID,
			}); err != nil {
				return err
			}
			req.Status = restoration.StatusApproved
		} else {
			req.Status = restoration.StatusRejected
		}

		reviewer := actor.ID
		req.ReviewedBy = &reviewer
		req.ReviewedAt = &now
		req.ReviewNotes = notes
		if err := r.Restorations.Save(ctx, req); err != nil {
			return err
		}
		dto = toDTO(req)
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err)
	}
	return dto, nil
}

// HardDelete permanently removes a soft-deleted application together with its
// documents and history. Restoration requests that point at it are left in
// place, orphaned.
func (u *Usecase) HardDelete(ctx context.Context, actor authz.Actor, applicationID string) error {
	if !actor.Can(authz.ActionHardDelete, "") {
		return application.ErrForbidden
	}
	err := u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, app *application.LoanApplication) error {
		// Irreversible removal is only permitted on already-soft-deleted rows.
		if !app.IsDeleted {
			return application.ErrInvalidTransition
		}
		if err := r.Documents.DeleteByApplication(ctx, app.ID); err != nil {
			return err
		}
		return r.Applications.HardDelete(ctx, app.ID)
	})
	return mapNotFound(err)
}

// ListRequests returns restoration requests for the admin queue, optionally
// filtered by status ("all" and "" mean no filter).
func (u *Usecase) ListRequests(ctx context.Context, actor authz.Actor, status string) ([]RequestDTO, error) {
	if !actor.Can(authz.ActionReviewRestoration, "") {
		return nil, application.ErrForbidden
	}
	var (
		rows []restoration.Request
		err  error
	)
	switch restoration.Status(status) {
	case restoration.StatusPending, restoration.StatusApproved, restoration.StatusRejected:
		rows, err = u.requests.ListByStatus(ctx, restoration.Status(status))
	default:
		if status != "" && status != "all" {
			return nil, &application.ValidationError{Field: "status", Reason: "is not a known request status"}
		}
		rows, err = u.requests.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	return toDTOs(rows), nil
}

// ListMine returns the requests filed by the calling underwriter.
func (u *Usecase) ListMine(ctx context.Context, actor authz.Actor) ([]RequestDTO, error) {
	if !actor.Can(authz.ActionRequestRestoration, "") {
		return nil, application.ErrForbidden
	}
	rows, err := u.requests.ListByRequester(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return toDTOs(rows), nil
}

func toDTO(r *restoration.Request) *RequestDTO {
	return &RequestDTO{
		RequestID:     r.RequestID,
		ApplicationID: r.ApplicationID,
		RequestedBy:   r.RequestedBy,
		Reason:        r.Reason,
		Status:        string(r.Status),
		ReviewedBy:    r.ReviewedBy,
		ReviewedAt:    r.ReviewedAt,
		ReviewNotes:   r.ReviewNotes,
		CreatedAt:     r.CreatedAt,
	}
}

func toDTOs(rows []restoration.Request) []RequestDTO {
	out := make([]RequestDTO, len(rows))
	for i := range rows {
		out[i] = *toDTO(&rows[i])
	}
	return out
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return application.ErrNotFound
	}
	return err
}
