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

type HasherService interface {
	CreateHasher(ctx context.Context, hasher domain.Hasher) (domain.Hasher, error)
	UpdateHasher(ctx context.Context, hasher domain.Hasher) (domain.Hasher, error)
	GetHasherRecord(ctx context.Context, id uint) (domain.HasherRecord, error)
	SearchHashers(ctx context.Context, term string) ([]domain.Hasher, error)
	ListRecentHashers(ctx context.Context) ([]domain.Hasher, error)
}

type HasherHandler struct {
	svc HasherService
}

func NewHasherHandler(svc HasherService) *HasherHandler {
	return &HasherHandler{
		svc: svc,
	}
}

// HandleListRecentHashers godoc
// @Summary      List most recently edited hashers
// @Tags         hashers
// @Produce      json
// @Success      200 {array}  domain.Hasher
// @Failure      500 {object} response.Err
// @Router       /hashers [get]
// @Security BearerAuth
func (h *HasherHandler) HandleListRecentHashers(ctx *gin.Context) {
	hashers, err := h.svc.ListRecentHashers(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListRecentHashers -> h.svc.ListRecentHashers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, hashers)
}

// HandleSearchHashers godoc
// @Summary      Search hashers by real or hash name
// @Tags         hashers
// @Produce      json
// @Param        q query string true "search term"
// @Success      200 {array}  domain.Hasher
// @Failure      400 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /hashers/search [get]
// @Security BearerAuth
func (h *HasherHandler) HandleSearchHashers(ctx *gin.Context) {
	req := request.SearchRequest{Search: ctx.Query("q")}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	hashers, err := h.svc.SearchHashers(ctx.Request.Context(), req.Search)
	if err != nil {
		err = fmt.Errorf("v1.HandleSearchHashers -> h.svc.SearchHashers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, hashers)
}

// HandleCreateHasher godoc
// @Summary      Create a hasher
// @Tags         hashers
// @Accept       json
// @Produce      json
// @Param        request body request.CreateHasherRequest true "request body"
// @Success      201 {object} domain.Hasher
// @Failure      400 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /hashers [post]
// @Security BearerAuth
func (h *HasherHandler) HandleCreateHasher(ctx *gin.Context) {
	var req request.CreateHasherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateHasher(ctx.Request.Context(), domain.Hasher{
		RealName: req.RealName,
		HashName: req.HashName,
		FBName:   req.FBName,
		FBURL:    req.FBURL,
		Kennel:   domain.Kennel{ID: req.KennelID},
		Notes:    req.Notes,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateHasher -> h.svc.CreateHasher -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleGetHasher godoc
// @Summary      Get a hasher's full record
// @Description  The hasher with kennel, attended events and received honors.
// @Tags         hashers
// @Produce      json
// @Param        hasherID path int true "hasher ID"
// @Success      200 {object} domain.HasherRecord
// @Failure      400 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /hashers/{hasherID} [get]
// @Security BearerAuth
func (h *HasherHandler) HandleGetHasher(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "hasherID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	record, err := h.svc.GetHasherRecord(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrHasherNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("hasher", "id", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetHasher -> h.svc.GetHasherRecord -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, record)
}

// HandleUpdateHasher godoc
// @Summary      Update a hasher
// @Tags         hashers
// @Accept       json
// @Produce      json
// @Param        hasherID path int true "hasher ID"
// @Param        request body request.UpdateHasherRequest true "request body"
// @Success      200 {object} domain.Hasher
// @Failure      400 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /hashers/{hasherID} [put]
// @Security BearerAuth
func (h *HasherHandler) HandleUpdateHasher(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "hasherID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateHasherRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateHasher(ctx.Request.Context(), domain.Hasher{
		ID:       id,
		RealName: req.RealName,
		HashName: req.HashName,
		FBName:   req.FBName,
		FBURL:    req.FBURL,
		Kennel:   domain.Kennel{ID: req.KennelID},
		Notes:    req.Notes,
	})
	if err != nil {
		if errors.Is(err, service.ErrNothingUpdated) || errors.Is(err, service.ErrHasherNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("hasher", "id", id))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateHasher -> h.svc.UpdateHasher -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}
