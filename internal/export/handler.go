package export

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"brsr-backend/internal/shared/server/middleware"
	"brsr-backend/internal/shared/server/respond"
)

const (
	exportFileName = "section_a.xlsx"
	xlsxMIME       = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Handler wires the Excel export endpoint to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches export routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents/excel", h.generate)
}

type excelRequest struct {
	DocumentIDs []string `json:"document_ids"`
}

func (h *Handler) generate(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req excelRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusUnprocessableEntity, "malformed_payload", "invalid request body", nil)
			return
		}
	}

	workbook, err := h.Svc.BuildWorkbook(c.Request.Context(), userID, req.DocumentIDs)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoCompletedDocuments):
			respond.Error(c, http.StatusBadRequest, "validation_error", ErrNoCompletedDocuments.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate export", nil)
		}
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+exportFileName)
	c.Data(http.StatusOK, xlsxMIME, workbook)
}
