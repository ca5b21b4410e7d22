package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	domain "loan-backoffice/internal/domain/application"
	"loan-backoffice/internal/domain/authz"
	docdomain "loan-backoffice/internal/domain/document"
	"loan-backoffice/internal/domain/uow"
	"loan-backoffice/internal/testutil/appmock"
	"loan-backoffice/internal/testutil/docmock"
	"loan-backoffice/internal/testutil/loantypemock"
	"loan-backoffice/internal/testutil/uowmock"

	"gorm.io/gorm"
)

const (
	applicantID = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	otherID     = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
)

var (
	applicant   = authz.Actor{ID: applicantID, Role: authz.RoleApplicant}
	underwriter = authz.Actor{ID: "uw-1", Role: authz.RoleUnderwriter}
	admin       = authz.Actor{ID: "adm-1", Role: authz.RoleAdmin}
)

func validSubmit() SubmitInput {
	return SubmitInput{
		ApplicantID:  applicantID,
		LoanTypeCode: "personal",
		Amount:       250_000,
		Purpose:      "Home renovation and repairs",
		TenureMonths: 24,
	}
}

// fixture returns an application already persisted with DB id 1.
func fixture(status domain.Status) *domain.LoanApplication {
	return &domain.LoanApplication{
		ID:            1,
		ApplicationID: "cccccccccccccccccccccccccccccccc",
		ApplicantID:   applicantID,
		LoanTypeCode:  "personal",
		Amount:        250_000,
		Purpose:       "Home renovation and repairs",
		TenureMonths:  24,
		Status:        status,
	}
}

func allRequiredDocs() []docdomain.Document {
	types := docdomain.RequiredTypes()
	docs := make([]docdomain.Document, len(types))
	for i, t := range types {
		docs[i] = docdomain.Document{ApplicationID: 1, Type: t, FileRef: "s3://x"}
	}
	return docs
}

// harness wires the usecase against mocks, recording appended history.
type harness struct {
	uc      *Usecase
	apps    *appmock.Repo
	history []domain.StatusHistory
}

func newHarness(app *domain.LoanApplication, docs []docdomain.Document) *harness {
	h := &harness{apps: &appmock.Repo{}}
	h.apps.GetByApplicationIDFn = func(_ context.Context, id string) (*domain.LoanApplication, error) {
		if app != nil && id == app.ApplicationID {
			cp := *app
			return &cp, nil
		}
		return nil, gorm.ErrRecordNotFound
	}
	h.apps.GetByApplicationIDForUpdateFn = func(ctx context.Context, id string) (*domain.LoanApplication, error) {
		return h.apps.GetByApplicationIDFn(ctx, id)
	}
	h.apps.CreateFn = func(_ context.Context, a *domain.LoanApplication) error {
		a.ID = 1
		return nil
	}
	h.apps.SaveFn = func(_ context.Context, a *domain.LoanApplication) error {
		*app = *a
		return nil
	}
	h.apps.AppendHistoryFn = func(_ context.Context, row *domain.StatusHistory) error {
		h.history = append(h.history, *row)
		return nil
	}
	dm := &docmock.Repo{
		ListByApplicationFn: func(context.Context, uint64) ([]docdomain.Document, error) {
			return docs, nil
		},
	}
	repos := uow.Repos{Applications: h.apps, Documents: dm, LoanTypes: loantypemock.FromCatalog()}
	h.uc = NewUsecase(h.apps, repos.LoanTypes, uowmock.Passthrough(repos))
	return h
}

func TestSubmit_Success(t *testing.T) {
	h := newHarness(nil, nil)
	dto, err := h.uc.Submit(context.Background(), applicant, validSubmit())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(dto.ApplicationID) != 32 {
		t.Fatalf("application id length: %d", len(dto.ApplicationID))
	}
	if dto.Status != string(domain.StatusPending) {
		t.Fatalf("status=%s", dto.Status)
	}
	if dto.DocumentsUploaded {
		t.Fatal("documents_uploaded must start false")
	}
	if len(h.history) != 1 {
		t.Fatalf("history rows: %d", len(h.history))
	}
	if h.history[0].Comment != domain.CommentSubmitted || h.history[0].Status != domain.StatusPending {
		t.Fatalf("initial history row: %+v", h.history[0])
	}
}

func TestSubmit_Validation(t *testing.T) {
	cases := []struct {
		name  string
		mut   func(*SubmitInput)
		field string
	}{
		{"short purpose", func(in *SubmitInput) { in.Purpose = "too short" }, "purpose"},
		{"long purpose", func(in *SubmitInput) { in.Purpose = strings.Repeat("x", 501) }, "purpose"},
		{"unknown loan type", func(in *SubmitInput) { in.LoanTypeCode = "yacht" }, "loan_type"},
		{"amount below minimum", func(in *SubmitInput) { in.Amount = 500 }, "amount"},
		{"amount above maximum", func(in *SubmitInput) { in.Amount = 100_000_000 }, "amount"},
		{"tenure out of bounds", func(in *SubmitInput) { in.TenureMonths = 240 }, "tenure_months"},
		{"bad applicant id", func(in *SubmitInput) { in.ApplicantID = "short" }, "applicant_id"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(nil, nil)
			in := validSubmit()
			tc.mut(&in)
			// Keep ownership aligned so the guard does not mask validation.
			actor := authz.Actor{ID: in.ApplicantID, Role: authz.RoleApplicant}
			_, err := h.uc.Submit(context.Background(), actor, in)
			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("want ValidationError, got %v", err)
			}
			if ve.Field != tc.field {
				t.Fatalf("field: got %s, want %s", ve.Field, tc.field)
			}
		})
	}
}

func TestSubmit_ForbiddenForOtherApplicant(t *testing.T) {
	h := newHarness(nil, nil)
	in := validSubmit()
	in.ApplicantID = otherID
	if _, err := h.uc.Submit(context.Background(), applicant, in); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("want ErrForbidden, got %v", err)
	}
}

func TestSubmit_StaffMaySubmitForApplicant(t *testing.T) {
	h := newHarness(nil, nil)
	if _, err := h.uc.Submit(context.Background(), underwriter, validSubmit()); err != nil {
		t.Fatalf("underwriter submit: %v", err)
	}
}

func TestCompleteDocuments_Success(t *testing.T) {
	app := fixture(domain.StatusPending)
	h := newHarness(app, allRequiredDocs())

	dto, err := h.uc.CompleteDocumentSubmission(context.Background(), applicant, app.ApplicationID)
	if err != nil {
		t.Fatalf("CompleteDocumentSubmission: %v", err)
	}
	if dto.Status != string(domain.StatusUnderReview) {
		t.Fatalf("status=%s", dto.Status)
	}
	if !dto.DocumentsUploaded {
		t.Fatal("documents_uploaded must be set")
	}
	if len(h.history) != 1 || h.history[0].Comment != domain.CommentDocumentsComplete {
		t.Fatalf("history: %+v", h.history)
	}
}

func TestCompleteDocuments_MissingRequired(t *testing.T) {
	docs := allRequiredDocs()[:4] // photo and employment certificate absent
	app := fixture(domain.StatusPending)
	h := newHarness(app, docs)

	_, err := h.uc.CompleteDocumentSubmission(context.Background(), applicant, app.ApplicationID)
	var inc *domain.IncompleteDocumentsError
	if !errors.As(err, &inc) {
		t.Fatalf("want IncompleteDocumentsError, got %v", err)
	}
	if len(inc.Missing) != 2 {
		t.Fatalf("missing: %v", inc.Missing)
	}
	if app.Status != domain.StatusPending || app.DocumentsUploaded {
		t.Fatalf("state must be untouched on failure: %+v", app)
	}
	if len(h.history) != 0 {
		t.Fatal("no history on failed gate")
	}
}

func TestCompleteDocuments_OnlyFromPending(t *testing.T) {
	app := fixture(domain.StatusUnderReview)
	h := newHarness(app, allRequiredDocs())
	_, err := h.uc.CompleteDocumentSubmission(context.Background(), applicant, app.ApplicationID)
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("want ErrInvalidTransition, got %v", err)
	}
}

func TestCompleteDocuments_DeletedLooksAbsent(t *testing.T) {
	app := fixture(domain.StatusPending)
	app.IsDeleted = true
	h := newHarness(app, allRequiredDocs())
	_, err := h.uc.CompleteDocumentSubmission(context.Background(), applicant, app.ApplicationID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestSetStatus_ApplicantForbidden(t *testing.T) {
	app := fixture(domain.StatusUnderReview)
	h := newHarness(app, nil)
	_, err := h.uc.SetStatus(context.Background(), applicant, app.ApplicationID, SetStatusInput{Status: domain.StatusApproved})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("want ErrForbidden, got %v", err)
	}
}

func TestSetStatus_IllegalTransition(t *testing.T) {
	app := fixture(domain.StatusPending)
	h := newHarness(app, nil)
	_, err := h.uc.SetStatus(context.Background(), underwriter, app.ApplicationID, SetStatusInput{
		Status:   domain.StatusApproved,
		Approval: &domain.ApprovalDetails{ApprovedAmount: 250_000, TenureMonths: 24},
	})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("want ErrInvalidTransition, got %v", err)
	}
}

func TestSetStatus_ApproveRequiresDetails(t *testing.T) {
	app := fixture(domain.StatusUnderReview)
	h := newHarness(app, nil)
	_, err := h.uc.SetStatus(context.Background(), underwriter, app.ApplicationID, SetStatusInput{Status: domain.StatusApproved})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "approval_details" {
		t.Fatalf("want approval_details validation error, got %v", err)
	}
}

func TestSetStatus_Approve(t *testing.T) {
	app := fixture(domain.StatusUnderReview)
	h := newHarness(app, nil)
	terms := &domain.ApprovalDetails{ApprovedAmount: 200_000, InterestRate: 0.145, TenureMonths: 24, EMI: 9_700.50}
	dto, err := h.uc.SetStatus(context.Background(), underwriter, app.ApplicationID, SetStatusInput{
		Status:   domain.StatusApproved,
		Comment:  "meets criteria",
		Approval: terms,
	})
	if err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if dto.Status != string(domain.StatusApproved) {
		t.Fatalf("status=%s", dto.Status)
	}
	if dto.ApprovalDetails == nil || dto.ApprovalDetails.EMI != terms.EMI {
		t.Fatalf("approval details: %+v", dto.ApprovalDetails)
	}
	if len(h.history) != 1 || h.history[0].Comment != "meets criteria" || h.history[0].UpdatedBy != underwriter.ID {
		t.Fatalf("history: %+v", h.history)
	}
}

func TestSetStatus_RejectRequiresReason(t *testing.T) {
	app := fixture(domain.StatusUnderReview)
	h := newHarness(app, nil)
	_, err := h.uc.SetStatus(context.Background(), underwriter, app.ApplicationID, SetStatusInput{
		Status:          domain.StatusRejected,
		RejectionReason: "   ",
	})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "rejection_reason" {
		t.Fatalf("want rejection_reason validation error, got %v", err)
	}
}

func TestSetStatus_ReopenClearsDecisionFields(t *testing.T) {
	app := fixture(domain.StatusUnderReview)
	h := newHarness(app, nil)
	ctx := context.Background()

	if _, err := h.uc.SetStatus(ctx, underwriter, app.ApplicationID, SetStatusInput{
		Status:          domain.StatusRejected,
		RejectionReason: "insufficient income",
	}); err != nil {
		t.Fatalf("reject: %v", err)
	}
	dto, err := h.uc.SetStatus(ctx, admin, app.ApplicationID, SetStatusInput{Status: domain.StatusUnderReview, Comment: "reopened on appeal"})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if dto.Status != string(domain.StatusUnderReview) {
		t.Fatalf("status=%s", dto.Status)
	}
	// Rejection reason is no longer surfaced once the application left rejected.
	if dto.RejectionReason != "" {
		t.Fatalf("rejection reason leaked: %q", dto.RejectionReason)
	}
	if len(h.history) != 2 {
		t.Fatalf("history rows: %d", len(h.history))
	}
}

func TestSetStatus_DeletedLooksAbsent(t *testing.T) {
	app := fixture(domain.StatusUnderReview)
	app.IsDeleted = true
	h := newHarness(app, nil)
	_, err := h.uc.SetStatus(context.Background(), underwriter, app.ApplicationID, SetStatusInput{
		Status:          domain.StatusRejected,
		RejectionReason: "x y z reason",
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestSoftDelete_Applicant(t *testing.T) {
	app := fixture(domain.StatusPending)
	h := newHarness(app, nil)
	if err := h.uc.SoftDelete(context.Background(), applicant, app.ApplicationID); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}
	if !app.IsDeleted || app.DeletedAt == nil {
		t.Fatalf("deletion flags not set: %+v", app)
	}
	if app.Status != domain.StatusPending {
		t.Fatalf("status must be preserved, got %s", app.Status)
	}
	if len(h.history) != 1 || h.history[0].Comment != domain.CommentDeleted {
		t.Fatalf("history: %+v", h.history)
	}
}

func TestSoftDelete_ApplicantCannotDeleteApproved(t *testing.T) {
	app := fixture(domain.StatusApproved)
	h := newHarness(app, nil)
	if err := h.uc.SoftDelete(context.Background(), applicant, app.ApplicationID); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("want ErrInvalidTransition, got %v", err)
	}
	if app.IsDeleted {
		t.Fatal("application must stay active")
	}
}

func TestSoftDelete_AdminMayDeleteApproved(t *testing.T) {
	app := fixture(domain.StatusApproved)
	h := newHarness(app, nil)
	if err := h.uc.SoftDelete(context.Background(), admin, app.ApplicationID); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}
	if !app.IsDeleted {
		t.Fatal("application must be deleted")
	}
}

func TestSoftDelete_Idempotence(t *testing.T) {
	app := fixture(domain.StatusPending)
	app.IsDeleted = true
	h := newHarness(app, nil)
	if err := h.uc.SoftDelete(context.Background(), applicant, app.ApplicationID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second delete must be ErrNotFound, got %v", err)
	}
}

func TestSoftDelete_StrangerForbidden(t *testing.T) {
	app := fixture(domain.StatusPending)
	h := newHarness(app, nil)
	stranger := authz.Actor{ID: otherID, Role: authz.RoleApplicant}
	if err := h.uc.SoftDelete(context.Background(), stranger, app.ApplicationID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("want ErrForbidden, got %v", err)
	}
}

func TestGet_DeletedHiddenFromApplicant(t *testing.T) {
	app := fixture(domain.StatusPending)
	app.IsDeleted = true
	h := newHarness(app, nil)
	ctx := context.Background()

	if _, err := h.uc.Get(ctx, applicant, app.ApplicationID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("applicant: want ErrNotFound, got %v", err)
	}
	dto, err := h.uc.Get(ctx, underwriter, app.ApplicationID)
	if err != nil {
		t.Fatalf("underwriter: %v", err)
	}
	if !dto.IsDeleted {
		t.Fatal("underwriter view must show the deletion flag")
	}
}

func TestGet_UnknownID(t *testing.T) {
	h := newHarness(nil, nil)
	if _, err := h.uc.Get(context.Background(), underwriter, "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestGetHistory_OrderPreserved(t *testing.T) {
	app := fixture(domain.StatusUnderReview)
	h := newHarness(app, nil)
	h.apps.ListHistoryFn = func(context.Context, uint64) ([]domain.StatusHistory, error) {
		return []domain.StatusHistory{
			{Status: domain.StatusPending, Comment: domain.CommentSubmitted, Timestamp: time.Now().Add(-time.Hour)},
			{Status: domain.StatusUnderReview, Comment: domain.CommentDocumentsComplete, Timestamp: time.Now()},
		}, nil
	}
	rows, err := h.uc.GetHistory(context.Background(), applicant, app.ApplicationID)
	if err != nil {
		t.Fatalf("GetHistory: %v", err)
	}
	if len(rows) != 2 || rows[0].Status != string(domain.StatusPending) || rows[1].Status != string(domain.StatusUnderReview) {
		t.Fatalf("rows: %+v", rows)
	}
}

func TestListAll_ForbiddenForApplicant(t *testing.T) {
	h := newHarness(nil, nil)
	if _, err := h.uc.ListAll(context.Background(), applicant); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("want ErrForbidden, got %v", err)
	}
	if _, err := h.uc.ListDeleted(context.Background(), applicant); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("want ErrForbidden, got %v", err)
	}
}
