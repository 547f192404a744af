package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/h3tools/hashtrack/internal/api/handler/v1/request"
	"github.com/h3tools/hashtrack/internal/api/handler/v1/response"
	"github.com/h3tools/hashtrack/internal/domain"
	"github.com/h3tools/hashtrack/internal/service"
)

type EventService interface {
	CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	GetEventRecord(ctx context.Context, id uint) (domain.EventRecord, error)
	SearchEvents(ctx context.Context, term string) ([]domain.Event, error)
	ListRecentEvents(ctx context.Context) ([]domain.Event, error)
	LinkHasherToEvent(ctx context.Context, link domain.Participation) error
	UnlinkHashers(ctx context.Context, hasherIDs []uint, eventID uint) error
}

type AbsenteeLister interface {
	ListHashersNotAtEvent(ctx context.Context, eventID uint) ([]domain.Hasher, error)
}

type EventHandler struct {
	svc       EventService
	hasherSvc AbsenteeLister
}

func NewEventHandler(svc EventService, hasherSvc AbsenteeLister) *EventHandler {
	return &EventHandler{
		svc:       svc,
		hasherSvc: hasherSvc,
	}
}

// HandleListRecentEvents godoc
// @Summary      List most recently edited events
// @Tags         events
// @Produce      json
// @Success      200 {array}  domain.Event
// @Failure      500 {object} response.Err
// @Router       /events [get]
// @Security BearerAuth
func (h *EventHandler) HandleListRecentEvents(ctx *gin.Context) {
	events, err := h.svc.ListRecentEvents(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListRecentEvents -> h.svc.ListRecentEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleSearchEvents godoc
// @Summary      Search events by title or location
// @Tags         events
// @Produce      json
// @Param        q query string true "search term"
// @Success      200 {array}  domain.Event
// @Failure      400 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /events/search [get]
// @Security BearerAuth
func (h *EventHandler) HandleSearchEvents(ctx *gin.Context) {
	req := request.SearchRequest{Search: ctx.Query("q")}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	events, err := h.svc.SearchEvents(ctx.Request.Context(), req.Search)
	if err != nil {
		err = fmt.Errorf("v1.HandleSearchEvents -> h.svc.SearchEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleCreateEvent godoc
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request body request.CreateEventRequest true "request body"
// @Success      201 {object} domain.Event
// @Failure      400 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /events [post]
// @Security BearerAuth
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	var req request.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	evDate, err := time.Parse("2006-01-02", req.EvDate)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateEvent(ctx.Request.Context(), domain.Event{
		Kennel:   domain.Kennel{ID: req.KennelID},
		Title:    req.Title,
		Number:   req.Number,
		EvDate:   evDate,
		Location: req.Location,
		Notes:    req.Notes,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleCreateEvent -> h.svc.CreateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleGetEvent godoc
// @Summary      Get an event's full record
// @Description  The event with kennel, roster and honor deliveries.
// @Tags         events
// @Produce      json
// @Param        eventID path int true "event ID"
// @Success      200 {object} domain.EventRecord
// @Failure      400 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /events/{eventID} [get]
// @Security BearerAuth
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	record, err := h.svc.GetEventRecord(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "id", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetEvent -> h.svc.GetEventRecord -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, record)
}

// HandleUpdateEvent godoc
// @Summary      Update an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        eventID path int true "event ID"
// @Param        request body request.UpdateEventRequest true "request body"
// @Success      200 {object} domain.Event
// @Failure      400 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /events/{eventID} [put]
// @Security BearerAuth
func (h *EventHandler) HandleUpdateEvent(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateEventRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	evDate, err := time.Parse("2006-01-02", req.EvDate)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateEvent(ctx.Request.Context(), domain.Event{
		ID:       id,
		Kennel:   domain.Kennel{ID: req.KennelID},
		Title:    req.Title,
		Number:   req.Number,
		EvDate:   evDate,
		Location: req.Location,
		Notes:    req.Notes,
	})
	if err != nil {
		if errors.Is(err, service.ErrNothingUpdated) || errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "id", id))
			return
		}
		if errors.Is(err, service.ErrInvalidArgument) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateEvent -> h.svc.UpdateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleLinkHasher godoc
// @Summary      Add a hasher to an event's roster
// @Description  Role flags must be real booleans; truthy strings are rejected.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        eventID path int true "event ID"
// @Param        request body request.LinkHasherRequest true "request body"
// @Success      201 {object} domain.Participation
// @Failure      400 {object} response.Err
// @Failure      409 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /events/{eventID}/hashers [post]
// @Security BearerAuth
func (h *EventHandler) HandleLinkHasher(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.LinkHasherRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	link := domain.Participation{
		EventID:  eventID,
		HasherID: req.HasherID,
		Hare:     *req.Hare,
		Jedi:     *req.Jedi,
	}

	if err = h.svc.LinkHasherToEvent(ctx.Request.Context(), link); err != nil {
		if errors.Is(err, service.ErrAlreadyLinked) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrAlreadyLinked))
			return
		}
		if errors.Is(err, service.ErrInvalidArgument) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleLinkHasher -> h.svc.LinkHasherToEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, link)
}

// HandleUnlinkHashers godoc
// @Summary      Remove hashers from an event's roster
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        eventID path int true "event ID"
// @Param        request body request.UnlinkHashersRequest true "request body"
// @Success      204
// @Failure      400 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /events/{eventID}/hashers [delete]
// @Security BearerAuth
func (h *EventHandler) HandleUnlinkHashers(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UnlinkHashersRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.UnlinkHashers(ctx.Request.Context(), req.HasherIDs, eventID); err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}
		if errors.Is(err, service.ErrNothingDeleted) {
			response.RenderErr(ctx, response.ErrNotFound("participation", "eventID", eventID))
			return
		}

		err = fmt.Errorf("v1.HandleUnlinkHashers -> h.svc.UnlinkHashers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListAbsentHashers godoc
// @Summary      List hashers missing from an event's roster
// @Tags         events
// @Produce      json
// @Param        eventID path int true "event ID"
// @Success      200 {array}  domain.Hasher
// @Failure      400 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /events/{eventID}/absent-hashers [get]
// @Security BearerAuth
func (h *EventHandler) HandleListAbsentHashers(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	hashers, err := h.hasherSvc.ListHashersNotAtEvent(ctx.Request.Context(), eventID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListAbsentHashers -> h.hasherSvc.ListHashersNotAtEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, hashers)
}
