package http

import (
	"net/http"
	"time"

	appmw "loan-backoffice/internal/adapter/middleware"
	"loan-backoffice/internal/domain/authz"

	"github.com/labstack/echo/v4"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// actorFrom pulls the authenticated actor off the context; routes are always
// behind JWTAuth, so a miss means broken wiring, answered with 401.
func actorFrom(c echo.Context) (authz.Actor, error) {
	a, ok := appmw.ActorFrom(c)
	if !ok {
		return authz.Actor{}, c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}
	return a, nil
}

// Register wires every route. Authorization itself lives in the usecases;
// routes only authenticate and deduplicate retries.
func Register(e *echo.Echo, auth, idem echo.MiddlewareFunc, h *Handler, apps *ApplicationHandler, docs *DocumentHandler, rest *RestorationHandler) {
	e.GET("/health", h.Health)

	api := e.Group("/api", auth)

	loans := api.Group("/loans")
	loans.POST("/apply", apps.Apply, idem)
	loans.GET("/my-applications", apps.MyApplications)
	loans.GET("/details/:application_id", apps.Details)
	loans.GET("/history/:application_id", apps.History)
	loans.DELETE("/:application_id", apps.Delete, idem)

	uw := loans.Group("/underwriter")
	uw.GET("/all", apps.AllApplications)
	uw.GET("/deleted", apps.DeletedApplications)
	uw.PUT("/update-status/:application_id", apps.UpdateStatus, idem)
	uw.POST("/request-restoration/:application_id", rest.RequestRestoration, idem)
	uw.GET("/my-restoration-requests", rest.MyRequests)

	admin := loans.Group("/admin")
	admin.GET("/restoration-requests", rest.ListRequests)
	admin.POST("/restoration-requests/:request_id/approve", rest.Approve, idem)
	admin.POST("/restoration-requests/:request_id/reject", rest.Reject, idem)
	admin.DELETE("/permanent-delete/:application_id", rest.PermanentDelete, idem)

	documents := api.Group("/documents")
	documents.POST("/upload/:application_id", docs.Upload, idem)
	documents.DELETE("/delete/:application_id/:document_type", docs.Remove, idem)
	documents.GET("/uploaded/:application_id", docs.Uploaded)
	documents.GET("/requirements/:application_id", docs.Requirements)
	documents.POST("/complete/:application_id", docs.Complete, idem)
}
