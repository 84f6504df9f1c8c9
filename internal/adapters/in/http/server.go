// Package http exposes the read side of the service as a small JSON API.
// Mutations enter through the event listener only, so every route here is
// a GET.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"track/internal/core/application/usecases/queries"
	"track/internal/core/domain/model/kernel"
	"track/internal/core/domain/model/track"
	"track/internal/pkg/errs"
)

// Server handles HTTP requests by dispatching them to the query handlers.
type Server struct {
	getTrackByOrderIDHandler queries.GetTrackByOrderIDQueryHandler
	getTrackByIDHandler      queries.GetTrackByIDQueryHandler
	getTracksByHubHandler    queries.GetTracksByHubQueryHandler
	searchTracksHandler      queries.SearchTracksQueryHandler
}

// NewServer creates a new HTTP server with the required query handlers.
func NewServer(
	getTrackByOrderIDHandler queries.GetTrackByOrderIDQueryHandler,
	getTrackByIDHandler queries.GetTrackByIDQueryHandler,
	getTracksByHubHandler queries.GetTracksByHubQueryHandler,
	searchTracksHandler queries.SearchTracksQueryHandler,
) *Server {
	return &Server{
		getTrackByOrderIDHandler: getTrackByOrderIDHandler,
		getTrackByIDHandler:      getTrackByIDHandler,
		getTracksByHubHandler:    getTracksByHubHandler,
		searchTracksHandler:      searchTracksHandler,
	}
}

// RegisterRoutes mounts the read API under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1", IdentityMiddleware())
	api.GET("/tracks", s.SearchTracks)
	api.GET("/tracks/order/:orderId", s.GetTrackByOrderID)
	api.GET("/tracks/:trackId", s.GetTrackByID)
	api.GET("/hubs/:hubId/tracks", s.GetTracksByHub)
}

// GetTrackByOrderID handles GET /api/v1/tracks/order/:orderId. The caller
// must be identified through the gateway headers.
func (s *Server) GetTrackByOrderID(ctx echo.Context) error {
	if callerUserID(ctx) == "" {
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "Caller identity is required",
		})
	}

	query, err := queries.NewGetTrackByOrderIDQuery(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	detail, err := s.getTrackByOrderIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return queryError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newTrackDetailView(detail))
}

// GetTrackByID handles GET /api/v1/tracks/:trackId.
func (s *Server) GetTrackByID(ctx echo.Context) error {
	trackID, err := kernel.UUIDFromString(ctx.Param("trackId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetTrackByIDQuery(trackID)
	if err != nil {
		return badRequest(ctx, err)
	}

	detail, err := s.getTrackByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return queryError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newTrackDetailView(detail))
}

// GetTracksByHub handles GET /api/v1/hubs/:hubId/tracks with optional
// status, page and size parameters.
func (s *Server) GetTracksByHub(ctx echo.Context) error {
	status, err := statusParam(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	page, pageSize, err := pagingParams(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetTracksByHubQuery(ctx.Param("hubId"), status, page, pageSize)
	if err != nil {
		return badRequest(ctx, err)
	}

	tracks, err := s.getTracksByHubHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return queryError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newTrackViews(tracks))
}

// SearchTracks handles GET /api/v1/tracks with optional status, page and
// size parameters. The cross-hub listing is restricted to master callers.
func (s *Server) SearchTracks(ctx echo.Context) error {
	if callerRole(ctx) != RoleMaster {
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: "Master role is required",
		})
	}

	status, err := statusParam(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	page, pageSize, err := pagingParams(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewSearchTracksQuery(status, page, pageSize)
	if err != nil {
		return badRequest(ctx, err)
	}

	tracks, err := s.searchTracksHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return queryError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newTrackViews(tracks))
}

// statusParam parses the optional status filter, StatusUnknown when absent.
func statusParam(ctx echo.Context) (track.Status, error) {
	raw := ctx.QueryParam("status")
	if raw == "" {
		return track.StatusUnknown, nil
	}
	return track.StatusFromString(raw)
}

func pagingParams(ctx echo.Context) (page, pageSize int, err error) {
	if raw := ctx.QueryParam("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errs.NewValueIsInvalidErrorWithCause("page", err)
		}
	}
	if raw := ctx.QueryParam("size"); raw != "" {
		pageSize, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errs.NewValueIsInvalidErrorWithCause("size", err)
		}
	}
	return page, pageSize, nil
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// queryError maps handler failures onto HTTP statuses. Missing objects map
// to 404, caller mistakes to 400, everything else to 500.
func queryError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return badRequest(ctx, err)
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to process request",
		})
	}
}
