package http

import (
	"net/http"

	restuc "loan-backoffice/internal/usecase/restoration"

	"github.com/labstack/echo/v4"
)

type RestorationHandler struct{ uc *restuc.Usecase }

func NewRestorationHandler(uc *restuc.Usecase) *RestorationHandler {
	return &RestorationHandler{uc: uc}
}

type restorationReq struct {
	Reason string `json:"reason" validate:"required,min=10,max=500"`
}

func (h *RestorationHandler) RequestRestoration(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req restorationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Request(c.Request().Context(), actor, c.Param("application_id"), req.Reason)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *RestorationHandler) MyRequests(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	dtos, err := h.uc.ListMine(c.Request().Context(), actor)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"requests": dtos})
}

func (h *RestorationHandler) ListRequests(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	dtos, err := h.uc.ListRequests(c.Request().Context(), actor, c.QueryParam("status"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"requests": dtos})
}

type reviewReq struct {
	Notes string `json:"notes"`
}

func (h *RestorationHandler) Approve(c echo.Context) error {
	return h.review(c, restuc.DecisionApprove)
}

func (h *RestorationHandler) Reject(c echo.Context) error {
	return h.review(c, restuc.DecisionReject)
}

func (h *RestorationHandler) review(c echo.Context, d restuc.Decision) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req reviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Review(c.Request().Context(), actor, c.Param("request_id"), d, req.Notes)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *RestorationHandler) PermanentDelete(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	if err := h.uc.HardDelete(c.Request().Context(), actor, c.Param("application_id")); err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "application permanently deleted"})
}
