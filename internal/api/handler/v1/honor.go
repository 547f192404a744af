package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/h3tools/hashtrack/internal/api/handler/v1/request"
	"github.com/h3tools/hashtrack/internal/api/handler/v1/response"
	"github.com/h3tools/hashtrack/internal/domain"
	"github.com/h3tools/hashtrack/internal/service"
)

type HonorService interface {
	HonorsDueForKennel(ctx context.Context, kennelID uint) ([]domain.HonorDue, error)
	HonorsDueForEvent(ctx context.Context, eventID uint) ([]domain.HonorDue, error)
	RecordDeliveries(ctx context.Context, deliveries []domain.HonorDelivery) []service.DeliveryResult
	CreateDef(ctx context.Context, def domain.HonorDef) (domain.HonorDef, error)
	ListDefsByKennel(ctx context.Context, kennelID uint) ([]domain.HonorDef, error)
}

type HonorHandler struct {
	svc HonorService
}

func NewHonorHandler(svc HonorService) *HonorHandler {
	return &HonorHandler{
		svc: svc,
	}
}

// HandleHonorsDueForKennel godoc
// @Summary      List honors earned but not yet delivered across a kennel
// @Description  A failed query is an error, never an empty report.
// @Tags         honors
// @Produce      json
// @Param        kennelID path int true "kennel ID"
// @Success      200 {array}  domain.HonorDue
// @Failure      400 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /kennels/{kennelID}/honors-due [get]
// @Security BearerAuth
func (h *HonorHandler) HandleHonorsDueForKennel(ctx *gin.Context) {
	kennelID, err := parseIDParam(ctx, "kennelID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	due, err := h.svc.HonorsDueForKennel(ctx.Request.Context(), kennelID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleHonorsDueForKennel -> h.svc.HonorsDueForKennel -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, due)
}

// HandleHonorsDueForEvent godoc
// @Summary      List honors due restricted to an event's roster
// @Tags         honors
// @Produce      json
// @Param        eventID path int true "event ID"
// @Success      200 {array}  domain.HonorDue
// @Failure      400 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /events/{eventID}/honors-due [get]
// @Security BearerAuth
func (h *HonorHandler) HandleHonorsDueForEvent(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	due, err := h.svc.HonorsDueForEvent(ctx.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "id", eventID))
			return
		}
		if errors.Is(err, service.ErrInvalidArgument) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleHonorsDueForEvent -> h.svc.HonorsDueForEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, due)
}

// HandleRecordDeliveries godoc
// @Summary      Record honor deliveries made at an event
// @Description  Items are applied independently; one bad item does not abort the rest.
// @Tags         honors
// @Accept       json
// @Produce      json
// @Param        eventID path int true "event ID"
// @Param        request body request.RecordDeliveriesRequest true "request body"
// @Success      200 {object} response.DeliveriesResponse
// @Failure      400 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /events/{eventID}/deliveries [post]
// @Security BearerAuth
func (h *HonorHandler) HandleRecordDeliveries(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.RecordDeliveriesRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	deliveries := make([]domain.HonorDelivery, len(req.Deliveries))
	for i, item := range req.Deliveries {
		deliveries[i] = domain.HonorDelivery{
			HonorID:  item.HonorID,
			HasherID: item.HasherID,
			EventID:  eventID,
		}
	}

	results := h.svc.RecordDeliveries(ctx.Request.Context(), deliveries)

	resp := response.DeliveriesResponse{
		Results: make([]response.DeliveryOutcome, len(results)),
	}
	for i, result := range results {
		outcome := response.DeliveryOutcome{
			HonorID:  deliveries[i].HonorID,
			HasherID: deliveries[i].HasherID,
			EventID:  deliveries[i].EventID,
		}
		if result.Err != nil {
			outcome.Error = result.Err.Error()
		} else {
			outcome.DeliveryID = result.Delivery.ID
		}
		resp.Results[i] = outcome
	}

	ctx.JSON(http.StatusOK, resp)
}

// HandleListHonorDefs godoc
// @Summary      List a kennel's award definitions
// @Tags         honors
// @Produce      json
// @Param        kennelID path int true "kennel ID"
// @Success      200 {array}  domain.HonorDef
// @Failure      400 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /kennels/{kennelID}/honor-defs [get]
// @Security BearerAuth
func (h *HonorHandler) HandleListHonorDefs(ctx *gin.Context) {
	kennelID, err := parseIDParam(ctx, "kennelID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	defs, err := h.svc.ListDefsByKennel(ctx.Request.Context(), kennelID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleListHonorDefs -> h.svc.ListDefsByKennel -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, defs)
}

// HandleCreateHonorDef godoc
// @Summary      Create an award definition
// @Description  Admin only; counts must strictly exceed the threshold to earn it.
// @Tags         honors
// @Accept       json
// @Produce      json
// @Param        kennelID path int true "kennel ID"
// @Param        request body request.CreateHonorDefRequest true "request body"
// @Success      201 {object} domain.HonorDef
// @Failure      400 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /kennels/{kennelID}/honor-defs [post]
// @Security BearerAuth
func (h *HonorHandler) HandleCreateHonorDef(ctx *gin.Context) {
	kennelID, err := parseIDParam(ctx, "kennelID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.CreateHonorDefRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateDef(ctx.Request.Context(), domain.HonorDef{
		KennelID:  kennelID,
		Category:  req.Category,
		Threshold: req.Threshold,
		Title:     req.Title,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleCreateHonorDef -> h.svc.CreateDef -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}
