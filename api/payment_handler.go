package api

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quickcourt/facility-booking-backend/booking"
)

// PaymentHandler folds the two reconciliation entry points over the same
// booking service: the client's confirmation call and the provider
// webhook. Both are safe to receive more than once.
type PaymentHandler struct {
	service       BookingService
	webhookSecret string
}

func NewPaymentHandler(service BookingService, webhookSecret string) *PaymentHandler {
	return &PaymentHandler{service: service, webhookSecret: webhookSecret}
}

type paymentOutcomeBody struct {
	IntentID string `json:"intentId"`
	Outcome  string `json:"outcome"`
}

func (h *PaymentHandler) Confirm(c *gin.Context) {
	var body paymentOutcomeBody

	if err := c.BindJSON(&body); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	h.reconcile(c, body)
}

// Webhook authenticates with a shared secret instead of a session, the
// provider is not a user.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	secret := c.GetHeader("X-Webhook-Secret")

	if subtle.ConstantTimeCompare([]byte(secret), []byte(h.webhookSecret)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid webhook secret"})
		return
	}

	var body paymentOutcomeBody

	if err := c.BindJSON(&body); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	h.reconcile(c, body)
}

func (h *PaymentHandler) reconcile(c *gin.Context, body paymentOutcomeBody) {
	err := h.service.ConfirmPayment(c.Request.Context(), body.IntentID, body.Outcome)

	if err != nil {
		c.Error(err)
		if errors.Is(err, booking.ErrUnknownOutcome) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown payment outcome"})
		} else if errors.Is(err, booking.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no booking for this payment intent"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to apply payment outcome"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "payment outcome applied"})
}
