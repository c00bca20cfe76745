package upload

import (
	"errors"
	"net/http"

	"github.com/catspotter/cat-tracker/application/usecases/upload"
	"github.com/catspotter/cat-tracker/infrastructure/storage"
	"github.com/gin-gonic/gin"
)

type UploadController interface {
	Upload(ctx *gin.Context)
	Serve(ctx *gin.Context)
}

type uploadController struct {
	uploadUC     upload.UploadUseCase
	localStorage *storage.LocalStorage
}

func NewUploadController(uploadUC upload.UploadUseCase, localStorage *storage.LocalStorage) UploadController {
	return &uploadController{
		uploadUC:     uploadUC,
		localStorage: localStorage,
	}
}

func (c *uploadController) Upload(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "file is required",
		})
		return
	}

	imageURL, err := c.uploadUC.UploadImage(ctx.Request.Context(), fileHeader)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrFileTooLarge):
			ctx.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
				Error:   "file_too_large",
				Message: err.Error(),
			})
		case errors.Is(err, storage.ErrInvalidFileType):
			ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "invalid_file_type",
				Message: err.Error(),
			})
		default:
			ctx.JSON(http.StatusBadGateway, ErrorResponse{
				Error:   "storage_error",
				Message: "failed to store file",
			})
		}
		return
	}

	ctx.JSON(http.StatusCreated, UploadResponse{ImageURL: imageURL})
}

// Serve delivers locally stored uploads; it is the target of the URLs
// the local storage driver hands out.
func (c *uploadController) Serve(ctx *gin.Context) {
	filePath := ctx.Param("path")

	// Strip leading slash added by Gin's wildcard
	if len(filePath) > 0 && filePath[0] == '/' {
		filePath = filePath[1:]
	}

	if filePath == "" || !c.localStorage.FileExists(filePath) {
		ctx.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "file not found",
		})
		return
	}

	ctx.File(c.localStorage.GetFilePath(filePath))
}
