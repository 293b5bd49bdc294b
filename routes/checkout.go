package routes

import (
	"github.com/gin-gonic/gin"

	"stayhub/handlers"
)

// RegisterCheckoutRoutes registers all endpoints for the checkout flow.
func RegisterCheckoutRoutes(r *gin.Engine, h *handlers.CheckoutHandler, e *handlers.ExportHandler) {
	co := r.Group("/api/checkout")
	{
		co.POST("/session", h.StartSession)                           // Step 0: enter the flow
		co.GET("/session/:sessionID", h.GetSession)                   // Snapshot for any step
		co.POST("/session/:sessionID/guest", h.SubmitGuestInfo)       // Step 1: guest info
		co.POST("/session/:sessionID/back", h.Back)                   // Edit-then-resubmit
		co.PUT("/session/:sessionID/payment-method", h.SelectPaymentMethod)
		co.PUT("/session/:sessionID/card", h.AttachCardFields)
		co.POST("/session/:sessionID/discount", h.ApplyDiscount)
		co.DELETE("/session/:sessionID/discount", h.RemoveDiscount)
		co.POST("/session/:sessionID/pay", h.SubmitPayment)           // Step 2: settle
		co.POST("/session/:sessionID/hold/extend", h.ExtendHold)
		co.POST("/session/:sessionID/qr/regenerate", h.RegenerateQR)
		co.POST("/session/:sessionID/abandon", h.Abandon)

		// Step 3: one-way confirmation outputs.
		co.GET("/session/:sessionID/confirmation/pdf", e.ConfirmationPDF)
		co.GET("/session/:sessionID/confirmation/share", e.ConfirmationShare)
	}
}
