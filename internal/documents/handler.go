package documents

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"brsr-backend/internal/shared/server/middleware"
	"brsr-backend/internal/shared/server/respond"
)

const maxUploadSize = 50 << 20 // 50MB across the whole request

// Handler wires document HTTP endpoints to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents/upload", h.upload)
	rg.GET("/documents", h.list)
	rg.GET("/documents/:id", h.detail)
	rg.POST("/documents/status", h.status)
}

func (h *Handler) upload(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	form, err := c.MultipartForm()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "multipart form is required", nil)
		return
	}

	// Both field names are accepted: `files` for batches, `file` single.
	headers := append([]*multipart.FileHeader{}, form.File["files"]...)
	headers = append(headers, form.File["file"]...)
	if len(headers) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "no files uploaded", nil)
		return
	}

	uploads := make([]Upload, 0, len(headers))
	for _, fh := range headers {
		data, err := readFile(fh)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file "+fh.Filename, nil)
			return
		}
		uploads = append(uploads, Upload{FileName: fh.Filename, Data: data})
	}

	docs, err := h.Svc.ProcessBatch(c.Request.Context(), userID, uploads)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to process upload", nil)
		}
		return
	}

	resp := UploadResponse{Message: "Files received", Documents: make([]UploadedDocument, 0, len(docs))}
	for _, doc := range docs {
		resp.Documents = append(resp.Documents, toUploaded(doc))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	docs, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list documents", nil)
		return
	}

	out := make([]DocumentSummary, 0, len(docs))
	for _, doc := range docs {
		out = append(out, toSummary(doc))
	}
	respond.JSON(c, http.StatusOK, out)
}

func (h *Handler) detail(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	doc, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load document", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toDetail(doc))
}

type statusRequest struct {
	DocumentIDs []string `json:"document_ids"`
}

func (h *Handler) status(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req statusRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusUnprocessableEntity, "malformed_payload", "invalid request body", nil)
			return
		}
	}

	docs, err := h.Svc.Status(c.Request.Context(), userID, req.DocumentIDs)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load document status", nil)
		return
	}

	out := make([]DocumentStatus, 0, len(docs))
	for _, doc := range docs {
		out = append(out, toStatus(doc))
	}
	respond.JSON(c, http.StatusOK, out)
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	file, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}
