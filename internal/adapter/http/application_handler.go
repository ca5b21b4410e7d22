package http

import (
	"net/http"

	"loan-backoffice/internal/domain/application"
	appuc "loan-backoffice/internal/usecase/application"

	"github.com/labstack/echo/v4"
)

type ApplicationHandler struct{ uc *appuc.Usecase }

func NewApplicationHandler(uc *appuc.Usecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

type applyReq struct {
	// Applicants apply for themselves; staff submitting on an applicant's
	// behalf pass the applicant id explicitly.
	ApplicantID  string  `json:"applicant_id"  validate:"omitempty,hex32"`
	LoanType     string  `json:"loan_type"     validate:"required"`
	Amount       float64 `json:"amount"        validate:"required,gt=0,dec2"`
	Purpose      string  `json:"purpose"       validate:"required"`
	TenureMonths int     `json:"tenure_months" validate:"required,gt=0"`
}

func (h *ApplicationHandler) Apply(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req applyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	applicantID := req.ApplicantID
	if applicantID == "" {
		applicantID = actor.ID
	}
	dto, err := h.uc.Submit(c.Request().Context(), actor, appuc.SubmitInput{
		ApplicantID:  applicantID,
		LoanTypeCode: req.LoanType,
		Amount:       req.Amount,
		Purpose:      req.Purpose,
		TenureMonths: req.TenureMonths,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ApplicationHandler) MyApplications(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	dtos, err := h.uc.ListMine(c.Request().Context(), actor)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"applications": dtos})
}

func (h *ApplicationHandler) Details(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	dto, err := h.uc.Get(c.Request().Context(), actor, c.Param("application_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) History(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	rows, err := h.uc.GetHistory(c.Request().Context(), actor, c.Param("application_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"history": rows})
}

func (h *ApplicationHandler) Delete(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	if err := h.uc.SoftDelete(c.Request().Context(), actor, c.Param("application_id")); err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "application deleted"})
}

type updateStatusReq struct {
	Status          string                       `json:"status"           validate:"required,oneof=under_review approved rejected"`
	Comment         string                       `json:"comment"`
	ApprovalDetails *application.ApprovalDetails `json:"approval_details"`
	RejectionReason string                       `json:"rejection_reason"`
}

func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req updateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.SetStatus(c.Request().Context(), actor, c.Param("application_id"), appuc.SetStatusInput{
		Status:          application.Status(req.Status),
		Comment:         req.Comment,
		Approval:        req.ApprovalDetails,
		RejectionReason: req.RejectionReason,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) AllApplications(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	dtos, err := h.uc.ListAll(c.Request().Context(), actor)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"applications": dtos})
}

func (h *ApplicationHandler) DeletedApplications(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	dtos, err := h.uc.ListDeleted(c.Request().Context(), actor)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"applications": dtos})
}
