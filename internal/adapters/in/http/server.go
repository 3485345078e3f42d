package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/unit"
	"tracking/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	registerCheckpointHandler commands.RegisterCheckpointCommandHandler
	createUnitHandler         commands.CreateUnitCommandHandler

	getTrackingHistoryHandler queries.GetTrackingHistoryQueryHandler
	listUnitsByStatusHandler  queries.ListUnitsByStatusQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	registerCheckpointHandler commands.RegisterCheckpointCommandHandler,
	createUnitHandler commands.CreateUnitCommandHandler,
	getTrackingHistoryHandler queries.GetTrackingHistoryQueryHandler,
	listUnitsByStatusHandler queries.ListUnitsByStatusQueryHandler,
) *Server {
	return &Server{
		registerCheckpointHandler: registerCheckpointHandler,
		createUnitHandler:         createUnitHandler,
		getTrackingHistoryHandler: getTrackingHistoryHandler,
		listUnitsByStatusHandler:  listUnitsByStatusHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/units", s.CreateUnit)
	v1.POST("/checkpoints", s.RegisterCheckpoint)
	v1.GET("/tracking/:trackingId", s.GetTrackingHistory)
	v1.GET("/shipments", s.ListUnitsByStatus)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, SuccessEnvelope{
		Success: true,
		Data:    map[string]string{"status": "ok"},
	})
}

// CreateUnit handles POST /api/v1/units - registers a new shipment unit.
func (s *Server) CreateUnit(ctx echo.Context) error {
	var req CreateUnitRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateUnitCommand(req.TrackingID)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createUnitHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, SuccessEnvelope{
		Success: true,
		Data:    newShipmentUnitView(created),
	})
}

// RegisterCheckpoint handles POST /api/v1/checkpoints - records a tracking
// event against a shipment unit. The optional Idempotency-Key header marks
// the request as a retry candidate.
func (s *Server) RegisterCheckpoint(ctx echo.Context) error {
	var req RegisterCheckpointRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	unitID, err := kernel.UUIDFromString(req.UnitID)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("unitId", err))
	}

	status, err := unit.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	var timestamp time.Time
	if req.Timestamp != "" {
		timestamp, err = time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("timestamp", err))
		}
	}

	idempotencyKey := ctx.Request().Header.Get("Idempotency-Key")

	cmd, err := commands.NewRegisterCheckpointCommand(
		unitID, status, timestamp, req.Location, req.Notes, idempotencyKey)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.registerCheckpointHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, SuccessEnvelope{
		Success: true,
		Data: RegisterCheckpointView{
			Checkpoint: newCheckpointView(resp.Checkpoint),
			Unit:       newShipmentUnitView(resp.Unit),
		},
	})
}

// GetTrackingHistory handles GET /api/v1/tracking/:trackingId - returns a
// unit and its complete event history.
func (s *Server) GetTrackingHistory(ctx echo.Context) error {
	query, err := queries.NewGetTrackingHistoryQuery(ctx.Param("trackingId"))
	if err != nil {
		return writeError(ctx, err)
	}

	history, err := s.getTrackingHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	checkpoints := make([]CheckpointView, 0, len(history.Checkpoints))
	for _, checkpoint := range history.Checkpoints {
		checkpoints = append(checkpoints, newCheckpointView(checkpoint))
	}

	return ctx.JSON(http.StatusOK, SuccessEnvelope{
		Success: true,
		Data: TrackingHistoryView{
			Unit:        newShipmentUnitView(history.Unit),
			Checkpoints: checkpoints,
			Total:       history.Total,
		},
	})
}

// ListUnitsByStatus handles GET /api/v1/shipments - returns a page of units
// filtered by status.
func (s *Server) ListUnitsByStatus(ctx echo.Context) error {
	status, err := unit.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return writeError(ctx, err)
	}

	limit := parseIntParam(ctx.QueryParam("limit"))
	offset := parseIntParam(ctx.QueryParam("offset"))

	query, err := queries.NewListUnitsByStatusQuery(status, limit, offset)
	if err != nil {
		return writeError(ctx, err)
	}

	page, err := s.listUnitsByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	units := make([]ShipmentUnitView, 0, len(page.Units))
	for _, aggregate := range page.Units {
		units = append(units, newShipmentUnitView(aggregate))
	}

	return ctx.JSON(http.StatusOK, SuccessEnvelope{
		Success: true,
		Data: UnitListView{
			Units:   units,
			Total:   page.Total,
			Limit:   page.Limit,
			Offset:  page.Offset,
			HasMore: page.HasMore,
		},
	})
}

// parseIntParam parses an optional numeric query parameter. Malformed or
// missing values map to zero and are normalized by the query constructor.
func parseIntParam(raw string) int {
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorEnvelope{
		Success: false,
		Error:   "validation_error",
		Message: message,
	})
}

// writeError maps domain and application errors onto the HTTP error
// envelope. Unclassified errors surface as 500 with a generic message so
// internal details never leak to clients.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, ErrorEnvelope{
			Success: false,
			Error:   "validation_error",
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorEnvelope{
			Success: false,
			Error:   "not_found",
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return ctx.JSON(http.StatusConflict, ErrorEnvelope{
			Success: false,
			Error:   "already_exists",
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorEnvelope{
			Success: false,
			Error:   "internal_error",
			Message: "internal server error",
		})
	}
}
