package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/news_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/news_management_app/internal/core/ports/services"
	"github.com/SscSPs/news_management_app/internal/dto"
	"github.com/SscSPs/news_management_app/internal/imagestore"
	"github.com/SscSPs/news_management_app/internal/middleware"
)

type imageHandler struct {
	images portssvc.ImageSvc
}

func registerImageRoutes(rg *gin.RouterGroup, images portssvc.ImageSvc) {
	h := &imageHandler{images: images}

	group := rg.Group("/images", middleware.RequireRole(domain.RoleAdmin, domain.RoleStaff))
	{
		group.POST("", h.upload)
		group.DELETE("/:publicId", h.delete)
	}
}

// upload godoc
// @Summary Upload an image
// @Description Stores a JPEG, PNG, GIF or WebP image of at most 5 MB and returns its public URL.
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 201 {object} dto.ImageUploadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /images [post]
func (h *imageHandler) upload(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, imagestore.MaxImageBytes+1<<20)
	header, err := c.FormFile("image")
	if err != nil {
		badRequest(c, "An image file is required in the 'image' field", err)
		return
	}
	if header.Size > imagestore.MaxImageBytes {
		badRequest(c, "Image exceeds the 5 MB limit", nil)
		return
	}

	file, err := header.Open()
	if err != nil {
		badRequest(c, "Failed to read uploaded image", err)
		return
	}
	defer file.Close()

	url, err := h.images.Upload(c.Request.Context(), header.Filename, file)
	if err != nil {
		respondError(c, err, "Failed to upload image")
		return
	}
	logger.Info("Image uploaded", slog.String("url", url))
	c.JSON(http.StatusCreated, dto.ImageUploadResponse{URL: url})
}

// delete godoc
// @Summary Delete an image
// @Tags images
// @Param publicId path string true "Public id of the image"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /images/{publicId} [delete]
func (h *imageHandler) delete(c *gin.Context) {
	removed, err := h.images.Delete(c.Request.Context(), c.Param("publicId"))
	if err != nil {
		respondError(c, err, "Failed to delete image")
		return
	}
	if !removed {
		c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{Error: "Image not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
