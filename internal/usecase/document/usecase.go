package document

import (
	"context"
	"errors"
	"time"

	"loan-backoffice/internal/domain/application"
	"loan-backoffice/internal/domain/authz"
	"loan-backoffice/internal/domain/document"
	"loan-backoffice/internal/domain/uow"

	"gorm.io/gorm"
)

type Usecase struct {
	apps application.Repository
	docs document.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(apps application.Repository, docs document.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{apps: apps, docs: docs, uow: tx}
}

type UploadInput struct {
	Type     document.Type `json:"document_type"`
	FileRef  string        `json:"file_ref"`
	FileName string        `json:"file_name"`
}

type DocumentDTO struct {
	DocumentType string    `json:"document_type"`
	FileName     string    `json:"file_name"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

type RequirementDTO struct {
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	Required    bool       `json:"required"`
	Description string     `json:"description"`
	Uploaded    bool       `json:"uploaded"`
	UploadedAt  *time.Time `json:"uploaded_at,omitempty"`
}

// RecordUpload registers (or supersedes) the document of the given type for
// an application. It never flips the application's documents-uploaded flag;
// that happens only on the explicit complete-submission action.
func (u *Usecase) RecordUpload(ctx context.Context, actor authz.Actor, applicationID string, in UploadInput) (*DocumentDTO, error) {
	if !in.Type.Valid() {
		return nil, &application.ValidationError{Field: "document_type", Reason: "is not a known document type"}
	}
	if in.FileRef == "" {
		return nil, &application.ValidationError{Field: "file_ref", Reason: "is required"}
	}

	var dto *DocumentDTO
	err := u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, app *application.LoanApplication) error {
		if app.IsDeleted {
			return application.ErrNotFound
		}
		if !actor.Can(authz.ActionUploadDocument, app.ApplicantID) {
			return application.ErrForbidden
		}
		d := &document.Document{
			ApplicationID: app.ID,
			Type:          in.Type,
			FileRef:       in.FileRef,
			FileName:      in.FileName,
			UploadedAt:    time.Now().UTC(),
		}
		if err := r.Documents.Upsert(ctx, d); err != nil {
			return err
		}
		dto = &DocumentDTO{DocumentType: string(d.Type), FileName: d.FileName, UploadedAt: d.UploadedAt}
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err)
	}
	return dto, nil
}

// Remove deletes one document. Removing a required type clears the
// documents-uploaded flag, but the status is never regressed.
func (u *Usecase) Remove(ctx context.Context, actor authz.Actor, applicationID string, t document.Type) error {
	if !t.Valid() {
		return &application.ValidationError{Field: "document_type", Reason: "is not a known document type"}
	}
	err := u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, app *application.LoanApplication) error {
		if app.IsDeleted {
			return application.ErrNotFound
		}
		if !actor.Can(authz.ActionUploadDocument, app.ApplicantID) {
			return application.ErrForbidden
		}
		if app.Status == application.StatusApproved {
			return application.ErrInvalidTransition
		}
		if err := r.Documents.DeleteByType(ctx, app.ID, t); err != nil {
			return err
		}
		if t.IsRequired() && app.DocumentsUploaded {
			app.DocumentsUploaded = false
			return r.Applications.Save(ctx, app)
		}
		return nil
	})
	return mapNotFound(err)
}

// IsComplete reports whether every required document type is present, and
// which ones are missing. Pure query, no side effects.
func (u *Usecase) IsComplete(ctx context.Context, applicationID string) (bool, []document.Type, error) {
	app, err := u.apps.GetByApplicationID(ctx, applicationID)
	if err != nil {
		return false, nil, mapNotFound(err)
	}
	if app.IsDeleted {
		return false, nil, application.ErrNotFound
	}
	uploaded, err := u.uploadedTypes(ctx, app.ID)
	if err != nil {
		return false, nil, err
	}
	missing := document.MissingRequired(uploaded)
	return len(missing) == 0, missing, nil
}

// ListUploaded returns the documents currently present on an application.
func (u *Usecase) ListUploaded(ctx context.Context, actor authz.Actor, applicationID string) ([]DocumentDTO, error) {
	app, err := u.apps.GetByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if !actor.Can(authz.ActionViewApplication, app.ApplicantID) {
		return nil, application.ErrForbidden
	}
	docs, err := u.docs.ListByApplication(ctx, app.ID)
	if err != nil {
		return nil, err
	}
	out := make([]DocumentDTO, len(docs))
	for i, d := range docs {
		out[i] = DocumentDTO{DocumentType: string(d.Type), FileName: d.FileName, UploadedAt: d.UploadedAt}
	}
	return out, nil
}

// Requirements returns the full document checklist with upload progress, for
// display.
func (u *Usecase) Requirements(ctx context.Context, actor authz.Actor, applicationID string) ([]RequirementDTO, error) {
	app, err := u.apps.GetByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if !actor.Can(authz.ActionViewApplication, app.ApplicantID) {
		return nil, application.ErrForbidden
	}
	docs, err := u.docs.ListByApplication(ctx, app.ID)
	if err != nil {
		return nil, err
	}
	byType := make(map[document.Type]document.Document, len(docs))
	for _, d := range docs {
		byType[d.Type] = d
	}
	reqs := document.Requirements()
	out := make([]RequirementDTO, len(reqs))
	for i, req := range reqs {
		out[i] = RequirementDTO{
			Name:        req.Name,
			Type:        string(req.Type),
			Required:    req.Required,
			Description: req.Description,
		}
		if d, ok := byType[req.Type]; ok {
			out[i].Uploaded = true
			at := d.UploadedAt
			out[i].UploadedAt = &at
		}
	}
	return out, nil
}

func (u *Usecase) uploadedTypes(ctx context.Context, appID uint64) ([]document.Type, error) {
	docs, err := u.docs.ListByApplication(ctx, appID)
	if err != nil {
		return nil, err
	}
	types := make([]document.Type, len(docs))
	for i, d := range docs {
		types[i] = d.Type
	}
	return types, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return application.ErrNotFound
	}
	return err
}
