package sighting

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/catspotter/cat-tracker/application/usecases/sighting"
	"github.com/catspotter/cat-tracker/domain/repository"
	"github.com/catspotter/cat-tracker/presentation/middlewares"
	"github.com/gin-gonic/gin"
)

type SightingController interface {
	Create(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	List(ctx *gin.Context)
	RecentWithImages(ctx *gin.Context)
}

type sightingController struct {
	sightingUC sighting.SightingUseCase
}

func NewSightingController(sightingUC sighting.SightingUseCase) SightingController {
	return &sightingController{
		sightingUC: sightingUC,
	}
}

func (c *sightingController) Create(ctx *gin.Context) {
	var req CreateSightingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: middlewares.TranslateValidationError(err),
		})
		return
	}

	created, err := c.sightingUC.Create(ctx.Request.Context(), sighting.CreateSightingInput{
		Lat:         *req.Lat,
		Lng:         *req.Lng,
		Description: req.Description,
		CatName:     req.CatName,
		Address:     req.Address,
		ImageURL:    req.ImageURL,
		Source:      req.Source,
		SpottedAt:   req.SpottedAt,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "create_failed",
			Message: "failed to record sighting",
		})
		return
	}

	ctx.JSON(http.StatusCreated, NewSightingResponse(created))
}

func (c *sightingController) GetByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "sighting not found",
		})
		return
	}

	found, err := c.sightingUC.GetByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrSightingNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "not_found",
				Message: "sighting not found",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "fetch_failed",
			Message: "failed to fetch sighting",
		})
		return
	}

	ctx.JSON(http.StatusOK, NewSightingResponse(found))
}

func (c *sightingController) List(ctx *gin.Context) {
	var query ListSightingsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: middlewares.TranslateValidationError(err),
		})
		return
	}

	sightings, err := c.sightingUC.List(ctx.Request.Context(), repository.SightingFilter{
		Limit:  query.Limit,
		Source: query.Source,
		Since:  query.Since,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "fetch_failed",
			Message: "failed to list sightings",
		})
		return
	}

	ctx.JSON(http.StatusOK, NewSightingListResponse(sightings))
}

func (c *sightingController) RecentWithImages(ctx *gin.Context) {
	sightings, err := c.sightingUC.RecentWithImages(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "fetch_failed",
			Message: "failed to list recent sightings",
		})
		return
	}

	ctx.JSON(http.StatusOK, NewSightingListResponse(sightings))
}
