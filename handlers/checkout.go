package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stayhub/models"
	"stayhub/services/checkout"
	"stayhub/utils"
)

// CheckoutHandler exposes the checkout session flow over HTTP.
type CheckoutHandler struct {
	svc    checkout.CheckoutService
	logger *zap.Logger
}

// NewCheckoutHandler constructs a CheckoutHandler.
func NewCheckoutHandler(svc checkout.CheckoutService, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{svc: svc, logger: logger}
}

// bookingDraftInput is the wire form of a draft; dates arrive as YYYY-MM-DD.
type bookingDraftInput struct {
	HotelID           string `json:"hotelId"`
	HotelName         string `json:"hotelName"`
	RoomName          string `json:"roomName"`
	RoomPricePerNight int64  `json:"roomPricePerNight"`
	CheckIn           string `json:"checkIn"`
	CheckOut          string `json:"checkOut"`
	RoomsCount        int    `json:"roomsCount"`
	AdultsCount       int    `json:"adultsCount"`
	ChildrenCount     int    `json:"childrenCount"`
}

// toModel parses the wire draft. A date that fails to parse yields nil so
// the service falls back to the demo draft instead of failing the page.
func (in *bookingDraftInput) toModel() *models.BookingDraft {
	if in == nil {
		return nil
	}
	checkIn, err := time.Parse("2006-01-02", in.CheckIn)
	if err != nil {
		return nil
	}
	checkOut, err := time.Parse("2006-01-02", in.CheckOut)
	if err != nil {
		return nil
	}
	return &models.BookingDraft{
		HotelID:           in.HotelID,
		HotelName:         in.HotelName,
		RoomName:          in.RoomName,
		RoomPricePerNight: in.RoomPricePerNight,
		CheckIn:           checkIn,
		CheckOut:          checkOut,
		RoomsCount:        in.RoomsCount,
		AdultsCount:       in.AdultsCount,
		ChildrenCount:     in.ChildrenCount,
	}
}

// StartSession creates a new checkout session. The draft is optional; a
// missing or malformed one falls back to the demo draft.
func (h *CheckoutHandler) StartSession(c *gin.Context) {
	var input struct {
		Draft *bookingDraftInput `json:"draft"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		input.Draft = nil
	}
	view := h.svc.StartSession(input.Draft.toModel())
	c.JSON(http.StatusOK, view)
}

// GetSession returns the current session snapshot.
func (h *CheckoutHandler) GetSession(c *gin.Context) {
	view, err := h.svc.GetSession(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SubmitGuestInfo validates step one and advances to payment.
func (h *CheckoutHandler) SubmitGuestInfo(c *gin.Context) {
	var guest models.GuestInfo
	if err := c.ShouldBindJSON(&guest); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid guest info payload", "badRequest")
		return
	}
	view, err := h.svc.SubmitGuestInfo(c.Param("sessionID"), guest)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Back returns to the guest step for edit-then-resubmit.
func (h *CheckoutHandler) Back(c *gin.Context) {
	view, err := h.svc.Back(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SelectPaymentMethod switches the payment method.
func (h *CheckoutHandler) SelectPaymentMethod(c *gin.Context) {
	var input struct {
		Method models.PaymentMethod `json:"method"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payment method payload", "badRequest")
		return
	}
	view, err := h.svc.SelectPaymentMethod(c.Param("sessionID"), input.Method)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// AttachCardFields captures the card form for the card method.
func (h *CheckoutHandler) AttachCardFields(c *gin.Context) {
	var fields models.CardFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid card payload", "badRequest")
		return
	}
	view, err := h.svc.AttachCardFields(c.Param("sessionID"), fields)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ApplyDiscount validates and attaches a promo code.
func (h *CheckoutHandler) ApplyDiscount(c *gin.Context) {
	var input struct {
		Code string `json:"code"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid discount payload", "badRequest")
		return
	}
	view, err := h.svc.ApplyDiscount(c.Param("sessionID"), input.Code)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// RemoveDiscount clears the applied promo code.
func (h *CheckoutHandler) RemoveDiscount(c *gin.Context) {
	view, err := h.svc.RemoveDiscount(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SubmitPayment runs settlement and finalizes the booking.
func (h *CheckoutHandler) SubmitPayment(c *gin.Context) {
	view, err := h.svc.SubmitPayment(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ExtendHold re-arms an expired (or running) price hold.
func (h *CheckoutHandler) ExtendHold(c *gin.Context) {
	view, err := h.svc.ExtendHold(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// RegenerateQR issues a fresh QR payload for QR-based methods.
func (h *CheckoutHandler) RegenerateQR(c *gin.Context) {
	view, err := h.svc.RegenerateQR(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Abandon discards the session.
func (h *CheckoutHandler) Abandon(c *gin.Context) {
	if err := h.svc.Abandon(c.Param("sessionID")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"abandoned": true})
}

// respondError maps checkout errors onto HTTP statuses.
func (h *CheckoutHandler) respondError(c *gin.Context, err error) {
	var guestErr *checkout.GuestValidationError
	if errors.As(err, &guestErr) {
		utils.JSONFieldError(c, http.StatusUnprocessableEntity, "guest info validation failed", guestErr.Fields)
		return
	}
	var cardErr *checkout.CardValidationError
	if errors.As(err, &cardErr) {
		utils.JSONFieldError(c, http.StatusUnprocessableEntity, "card validation failed", cardErr.Fields)
		return
	}
	var discountErr *checkout.DiscountError
	if errors.As(err, &discountErr) {
		utils.JSONError(c, http.StatusUnprocessableEntity, discountErr.Message, discountErr.Code)
		return
	}
	var flowErr *checkout.FlowError
	if errors.As(err, &flowErr) {
		status := http.StatusConflict
		switch flowErr.Code {
		case "sessionNotFound":
			status = http.StatusNotFound
		case "invalidMethod", "methodRequired", "notPayable":
			status = http.StatusUnprocessableEntity
		case "settlementFailed":
			status = http.StatusBadGateway
		}
		utils.JSONError(c, status, flowErr.Message, flowErr.Code)
		return
	}
	h.logger.Error("unexpected checkout error", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "unexpected error", "internal")
}
