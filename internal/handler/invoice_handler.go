package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"omsbridge/internal/domain"
	"omsbridge/internal/service"
)

// InvoiceHandler handles invoice ingestion endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Insert handles POST /api/v1/invoices. The body must decode into the
// submission shape; all field-level rules are the engine's responsibility,
// so a decode failure here is the only error this layer produces itself.
func (h *InvoiceHandler) Insert(c *gin.Context) {
	var sub domain.InvoiceSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON")
		return
	}

	result, err := h.invoiceService.Ingest(c.Request.Context(), &sub)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}
