// Package http exposes the work queue over a REST API built on echo.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"shopqueue/internal/core/application/usecases/commands"
	"shopqueue/internal/core/application/usecases/queries"
	"shopqueue/internal/core/domain/model/queueitem"
	"shopqueue/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	enqueueHandler           commands.EnqueueCommandHandler
	startDiagnosisHandler    commands.StartDiagnosisCommandHandler
	completeDiagnosisHandler commands.CompleteDiagnosisCommandHandler
	startRepairHandler       commands.StartRepairCommandHandler
	completeRepairHandler    commands.CompleteRepairCommandHandler
	changePriorityHandler    commands.ChangePriorityCommandHandler
	removeFromQueueHandler   commands.RemoveFromQueueCommandHandler

	getQueueItemHandler               queries.GetQueueItemQueryHandler
	getQueueItemByServiceOrderHandler queries.GetQueueItemByServiceOrderQueryHandler
	listQueueItemsHandler             queries.ListQueueItemsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	enqueueHandler commands.EnqueueCommandHandler,
	startDiagnosisHandler commands.StartDiagnosisCommandHandler,
	completeDiagnosisHandler commands.CompleteDiagnosisCommandHandler,
	startRepairHandler commands.StartRepairCommandHandler,
	completeRepairHandler commands.CompleteRepairCommandHandler,
	changePriorityHandler commands.ChangePriorityCommandHandler,
	removeFromQueueHandler commands.RemoveFromQueueCommandHandler,
	getQueueItemHandler queries.GetQueueItemQueryHandler,
	getQueueItemByServiceOrderHandler queries.GetQueueItemByServiceOrderQueryHandler,
	listQueueItemsHandler queries.ListQueueItemsQueryHandler,
) *Server {
	return &Server{
		enqueueHandler:                    enqueueHandler,
		startDiagnosisHandler:             startDiagnosisHandler,
		completeDiagnosisHandler:          completeDiagnosisHandler,
		startRepairHandler:                startRepairHandler,
		completeRepairHandler:             completeRepairHandler,
		changePriorityHandler:             changePriorityHandler,
		removeFromQueueHandler:            removeFromQueueHandler,
		getQueueItemHandler:               getQueueItemHandler,
		getQueueItemByServiceOrderHandler: getQueueItemByServiceOrderHandler,
		listQueueItemsHandler:             listQueueItemsHandler,
	}
}

// RegisterRoutes mounts the queue API on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	queue := e.Group("/api/v1/queue")
	queue.POST("", s.Enqueue)
	queue.GET("", s.ListQueueItems)
	queue.GET("/:id", s.GetQueueItem)
	queue.GET("/service-order/:serviceOrderID", s.GetQueueItemByServiceOrder)
	queue.POST("/:id/start-diagnosis", s.StartDiagnosis)
	queue.POST("/:id/complete-diagnosis", s.CompleteDiagnosis)
	queue.POST("/:id/start-repair", s.StartRepair)
	queue.POST("/:id/complete-repair", s.CompleteRepair)
	queue.PATCH("/:id/priority", s.ChangePriority)
	queue.DELETE("/:id", s.RemoveFromQueue)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Enqueue handles POST /api/v1/queue - adds a service order to the queue.
func (s *Server) Enqueue(ctx echo.Context) error {
	var req EnqueueRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	priority := queueitem.PriorityNormal
	if req.Priority != "" {
		parsed, err := queueitem.ParsePriority(req.Priority)
		if err != nil {
			return badRequest(ctx, "Invalid priority: "+req.Priority)
		}
		priority = parsed
	}

	cmd, err := commands.NewEnqueueCommand(req.ServiceOrderID, priority)
	if err != nil {
		return domainError(ctx, err)
	}

	item, err := s.enqueueHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, queries.NewQueueItemResponse(item))
}

// ListQueueItems handles GET /api/v1/queue - lists the queue in execution
// order, optionally filtered with ?status=.
func (s *Server) ListQueueItems(ctx echo.Context) error {
	query := queries.NewListQueueItemsQuery()

	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := queueitem.ParseStatus(raw)
		if err != nil {
			return badRequest(ctx, "Invalid status: "+raw)
		}
		query, err = queries.NewListQueueItemsQueryWithStatus(status)
		if err != nil {
			return domainError(ctx, err)
		}
	}

	items, err := s.listQueueItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, items)
}

// GetQueueItem handles GET /api/v1/queue/:id.
func (s *Server) GetQueueItem(ctx echo.Context) error {
	query, err := queries.NewGetQueueItemQuery(ctx.Param("id"))
	if err != nil {
		return domainError(ctx, err)
	}

	item, err := s.getQueueItemHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, item)
}

// GetQueueItemByServiceOrder handles GET /api/v1/queue/service-order/:serviceOrderID.
func (s *Server) GetQueueItemByServiceOrder(ctx echo.Context) error {
	serviceOrderID, err := parseServiceOrderID(ctx.Param("serviceOrderID"))
	if err != nil {
		return badRequest(ctx, "Invalid service order id")
	}

	query, err := queries.NewGetQueueItemByServiceOrderQuery(serviceOrderID)
	if err != nil {
		return domainError(ctx, err)
	}

	item, err := s.getQueueItemByServiceOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, item)
}

// StartDiagnosis handles POST /api/v1/queue/:id/start-diagnosis.
func (s *Server) StartDiagnosis(ctx echo.Context) error {
	var req StartDiagnosisRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewStartDiagnosisCommand(ctx.Param("id"), req.MechanicID)
	if err != nil {
		return domainError(ctx, err)
	}

	item, err := s.startDiagnosisHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, queries.NewQueueItemResponse(item))
}

// CompleteDiagnosis handles POST /api/v1/queue/:id/complete-diagnosis.
func (s *Server) CompleteDiagnosis(ctx echo.Context) error {
	var req CompleteDiagnosisRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCompleteDiagnosisCommand(ctx.Param("id"), req.DiagnosisNotes)
	if err != nil {
		return domainError(ctx, err)
	}

	item, err := s.completeDiagnosisHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, queries.NewQueueItemResponse(item))
}

// StartRepair handles POST /api/v1/queue/:id/start-repair.
func (s *Server) StartRepair(ctx echo.Context) error {
	var req StartRepairRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewStartRepairCommand(ctx.Param("id"), req.MechanicID)
	if err != nil {
		return domainError(ctx, err)
	}

	item, err := s.startRepairHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, queries.NewQueueItemResponse(item))
}

// CompleteRepair handles POST /api/v1/queue/:id/complete-repair.
func (s *Server) CompleteRepair(ctx echo.Context) error {
	var req CompleteRepairRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCompleteRepairCommand(ctx.Param("id"), req.RepairNotes)
	if err != nil {
		return domainError(ctx, err)
	}

	item, err := s.completeRepairHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, queries.NewQueueItemResponse(item))
}

// ChangePriority handles PATCH /api/v1/queue/:id/priority.
func (s *Server) ChangePriority(ctx echo.Context) error {
	var req ChangePriorityRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	priority, err := queueitem.ParsePriority(req.Priority)
	if err != nil {
		return badRequest(ctx, "Invalid priority: "+req.Priority)
	}

	cmd, err := commands.NewChangePriorityCommand(ctx.Param("id"), priority)
	if err != nil {
		return domainError(ctx, err)
	}

	item, err := s.changePriorityHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, queries.NewQueueItemResponse(item))
}

// RemoveFromQueue handles DELETE /api/v1/queue/:id - cancels a queued item.
func (s *Server) RemoveFromQueue(ctx echo.Context) error {
	cmd, err := commands.NewRemoveFromQueueCommand(ctx.Param("id"))
	if err != nil {
		return domainError(ctx, err)
	}

	if err := s.removeFromQueueHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func parseServiceOrderID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError translates use case failures to HTTP responses. Unexpected
// errors are reported as a bare 500 so internal detail never leaks.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Queue item not found",
		})
	case errors.Is(err, queueitem.ErrInvalidStatusTransition),
		errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
