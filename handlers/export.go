package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stayhub/models"
	"stayhub/services/checkout"
	"stayhub/services/export"
	"stayhub/utils"
)

// ExportHandler serves the one-way confirmation outputs: PDF download and
// share payloads.
type ExportHandler struct {
	svc    checkout.CheckoutService
	logger *zap.Logger
}

// NewExportHandler constructs an ExportHandler.
func NewExportHandler(svc checkout.CheckoutService, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{svc: svc, logger: logger}
}

// confirmation fetches the session and requires it to be confirmed.
func (h *ExportHandler) confirmation(c *gin.Context) *models.ConfirmationRecord {
	view, err := h.svc.GetSession(c.Param("sessionID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "checkout session not found or expired", "sessionNotFound")
		return nil
	}
	if view.Confirmation == nil {
		utils.JSONError(c, http.StatusConflict, "session has no confirmation yet", "notConfirmed")
		return nil
	}
	return view.Confirmation
}

// ConfirmationPDF streams the printable confirmation document.
func (h *ExportHandler) ConfirmationPDF(c *gin.Context) {
	rec := h.confirmation(c)
	if rec == nil {
		return
	}
	data, filename, err := export.BuildConfirmationPDF(*rec)
	if err != nil {
		h.logger.Error("failed to build confirmation pdf",
			zap.String("bookingId", rec.BookingID),
			zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to render confirmation", "pdfError")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// ConfirmationShare returns the composed share outputs.
func (h *ExportHandler) ConfirmationShare(c *gin.Context) {
	rec := h.confirmation(c)
	if rec == nil {
		return
	}
	c.JSON(http.StatusOK, export.BuildSharePayload(*rec))
}
