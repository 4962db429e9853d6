package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"degenlauncher/internal/domain"
	"degenlauncher/internal/pinning"
	"degenlauncher/internal/service"
)

// multipartOverhead is the slack allowed on top of the image limit for form encoding.
const multipartOverhead = 1 << 20

// ImageHandler handles image resolve endpoints.
type ImageHandler struct {
	imageService service.ImageService
}

// NewImageHandler creates a new ImageHandler.
func NewImageHandler(imageService service.ImageService) *ImageHandler {
	return &ImageHandler{imageService: imageService}
}

// Resolve handles POST /api/v1/images
// @Summary Resolve a token image to a URL
// @Description Validates an image (PNG, JPEG, GIF, WebP, max 5 MiB) and pins it to IPFS, falling back to an inline data URL
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image to upload"
// @Param prefer_remote formData bool false "Try pinning providers before inline encoding" default(true)
// @Success 201 {object} Response{data=ResolvedImageResponse} "Image resolved"
// @Failure 400 {object} ErrorResponseBody "Missing file or unsupported type"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 500 {object} ErrorResponseBody "Image could not be read"
// @Router /images [post]
func (h *ImageHandler) Resolve(c *gin.Context) {
	limit := domain.MaxImageSize + multipartOverhead
	if c.Request.ContentLength > limit {
		HandleError(c, domain.ErrImageTooLarge)
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			HandleError(c, domain.ErrImageTooLarge)
			return
		}
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	_ = file.Close()

	preferRemote := true
	if raw := c.PostForm("prefer_remote"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_PARAM", "prefer_remote must be a boolean")
			return
		}
		preferRemote = v
	}

	result, err := h.imageService.Resolve(c.Request.Context(), service.ResolveInput{
		Image:        candidateFromHeader(header),
		PreferRemote: preferRemote,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, ResolvedImageResponse{
		URL:        result.URL,
		Source:     string(result.Source),
		Recognized: pinning.IsRecognizedURL(result.URL),
	})
}

// DisplayURL handles GET /api/v1/images/display
// @Summary Get the browser-loadable form of an image URL
// @Tags images
// @Produce json
// @Param url query string true "Image URL"
// @Success 200 {object} Response{data=DisplayURLResponse} "Display URL"
// @Failure 400 {object} ErrorResponseBody "Missing url"
// @Router /images/display [get]
func (h *ImageHandler) DisplayURL(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		RespondError(c, http.StatusBadRequest, "MISSING_URL", "url query parameter is required")
		return
	}

	RespondOK(c, DisplayURLResponse{
		URL:        url,
		DisplayURL: pinning.DisplayURL(url),
		Recognized: pinning.IsRecognizedURL(url),
	})
}

// candidateFromHeader builds an image candidate from a multipart file header.
// The declared media type is the part's Content-Type.
func candidateFromHeader(header *multipart.FileHeader) *domain.ImageCandidate {
	return &domain.ImageCandidate{
		Name:      header.Filename,
		MediaType: header.Header.Get("Content-Type"),
		Size:      header.Size,
		Open: func() (io.ReadCloser, error) {
			return header.Open()
		},
	}
}
