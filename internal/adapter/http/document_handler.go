package http

import (
	"net/http"

	"loan-backoffice/internal/domain/document"
	appuc "loan-backoffice/internal/usecase/application"
	docuc "loan-backoffice/internal/usecase/document"

	"github.com/labstack/echo/v4"
)

// DocumentHandler also carries the application usecase because marking
// document submission complete advances the application's status.
type DocumentHandler struct {
	docs *docuc.Usecase
	apps *appuc.Usecase
}

func NewDocumentHandler(docs *docuc.Usecase, apps *appuc.Usecase) *DocumentHandler {
	return &DocumentHandler{docs: docs, apps: apps}
}

type uploadReq struct {
	DocumentType string `json:"document_type" validate:"required"`
	FileRef      string `json:"file_ref"      validate:"required"`
	FileName     string `json:"file_name"`
}

func (h *DocumentHandler) Upload(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req uploadReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.docs.RecordUpload(c.Request().Context(), actor, c.Param("application_id"), docuc.UploadInput{
		Type:     document.Type(req.DocumentType),
		FileRef:  req.FileRef,
		FileName: req.FileName,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *DocumentHandler) Remove(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	t := document.Type(c.Param("document_type"))
	if err := h.docs.Remove(c.Request().Context(), actor, c.Param("application_id"), t); err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "document removed"})
}

func (h *DocumentHandler) Uploaded(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	dtos, err := h.docs.ListUploaded(c.Request().Context(), actor, c.Param("application_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"documents": dtos})
}

func (h *DocumentHandler) Requirements(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	reqs, err := h.docs.Requirements(c.Request().Context(), actor, c.Param("application_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"requirements": reqs})
}

func (h *DocumentHandler) Complete(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	dto, err := h.apps.CompleteDocumentSubmission(c.Request().Context(), actor, c.Param("application_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
