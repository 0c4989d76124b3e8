package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Anuragkundu/WorkFlowHQ/internal/handlers"
)

// InvoiceRoutes defines routes for invoice management
func InvoiceRoutes(rg *gin.RouterGroup, invoiceHandler *handlers.InvoiceHandler) {
	invoices := rg.Group("/invoices")
	{
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.GET("/stats", invoiceHandler.InvoiceStats)
		invoices.PUT("/:invoiceId", invoiceHandler.UpdateInvoice)
		invoices.PATCH("/:invoiceId/status", invoiceHandler.UpdateInvoiceStatus)
		invoices.GET("/:invoiceId/pdf", invoiceHandler.ExportInvoicePDF)
		invoices.DELETE("/:invoiceId", invoiceHandler.DeleteInvoice)
	}
}
