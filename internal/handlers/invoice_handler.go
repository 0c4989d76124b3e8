package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Anuragkundu/WorkFlowHQ/internal/models"
	"github.com/Anuragkundu/WorkFlowHQ/internal/query"
	"github.com/Anuragkundu/WorkFlowHQ/internal/services"
	"github.com/Anuragkundu/WorkFlowHQ/pkg/responses"
)

type InvoiceHandler struct {
	invoices *services.InvoiceService
}

func NewInvoiceHandler(invoices *services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices}
}

// ListInvoices returns the owner's invoices, optionally filtered by
// ?search= over client name and invoice number.
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	invoices, err := h.invoices.Load(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "load invoices")
		return
	}

	filtered := query.SearchInvoices(invoices, c.Query("search"))
	c.JSON(http.StatusOK, responses.NewSuccessResponse("Invoices retrieved successfully", filtered))
}

func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req services.InvoiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Invalid request format", err.Error()))
		return
	}

	invoice, err := h.invoices.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "create invoice")
		return
	}

	c.JSON(http.StatusCreated, responses.NewSuccessResponse("Invoice created successfully", invoice))
}

func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	invoiceID, ok := parseIDParam(c, "invoiceId")
	if !ok {
		return
	}

	var req services.InvoicePatch
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Invalid request format", err.Error()))
		return
	}

	invoice, err := h.invoices.Update(c.Request.Context(), userID, invoiceID, req)
	if err != nil {
		respondError(c, err, "update invoice")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Invoice updated successfully", invoice))
}

// UpdateInvoiceStatus moves an invoice forward through its lifecycle.
func (h *InvoiceHandler) UpdateInvoiceStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	invoiceID, ok := parseIDParam(c, "invoiceId")
	if !ok {
		return
	}

	var req struct {
		Status models.InvoiceStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Invalid request format", err.Error()))
		return
	}

	invoice, err := h.invoices.UpdateStatus(c.Request.Context(), userID, invoiceID, req.Status)
	if err != nil {
		respondError(c, err, "update invoice status")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Invoice status updated", invoice))
}

func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	invoiceID, ok := parseIDParam(c, "invoiceId")
	if !ok {
		return
	}

	if err := h.invoices.Delete(c.Request.Context(), userID, invoiceID); err != nil {
		respondError(c, err, "delete invoice")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Invoice deleted successfully", nil))
}

func (h *InvoiceHandler) InvoiceStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	invoices, err := h.invoices.Load(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "load invoices")
		return
	}

	stats := query.ComputeInvoiceStats(invoices)
	c.JSON(http.StatusOK, responses.NewSuccessResponse("Invoice stats computed", stats))
}

// ExportInvoicePDF is not implemented server-side; rendering stays with
// the client for now.
func (h *InvoiceHandler) ExportInvoicePDF(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, responses.NewErrorResponse("PDF export is not available", ""))
}
