package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quickcourt/facility-booking-backend/booking"
	fc "github.com/quickcourt/facility-booking-backend/facility"
	"github.com/quickcourt/facility-booking-backend/payment"
	"github.com/quickcourt/facility-booking-backend/user"
)

//go:generate mockgen -source=booking_handler.go -destination=mocks/booking_service_mock.go -package=mocks

type BookingService interface {
	RequestBooking(ctx context.Context, actor user.User, req booking.BookingRequest) (booking.Booking, error)
	ConfirmPayment(ctx context.Context, intentID, outcome string) error
	CancelBooking(ctx context.Context, actor user.User, id string) error
	FindBookingByID(ctx context.Context, actor user.User, id string) (booking.Booking, error)
	FindBookingsPerUser(ctx context.Context, userID string) ([]booking.Booking, error)
	FindBookingsForFacilityDate(ctx context.Context, actor user.User, facilityID string, date time.Time) ([]booking.Booking, error)
}

type BookingHandler struct {
	service BookingService
}

func NewBookingHandler(service BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.RequestBooking)
	rg.GET("", h.ListMine)
	rg.GET("/:id", h.GetByID)
	rg.PUT("/:id/cancel", h.Cancel)
}

type bookingRequestBody struct {
	FacilityID string       `json:"facilityId"`
	Date       string       `json:"date"`
	Start      fc.TimeOfDay `json:"startTime"`
	End        fc.TimeOfDay `json:"endTime"`
	Notes      string       `json:"notes"`
}

func (h *BookingHandler) RequestBooking(c *gin.Context) {
	actor := c.MustGet("user").(user.User)

	var body bookingRequestBody

	if err := c.BindJSON(&body); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	date, err := time.Parse(time.DateOnly, body.Date)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted as YYYY-MM-DD"})
		return
	}

	b, err := h.service.RequestBooking(c.Request.Context(), actor, booking.BookingRequest{
		FacilityID: body.FacilityID,
		Date:       date,
		Start:      body.Start,
		End:        body.End,
		Notes:      body.Notes,
	})

	if err != nil {
		c.Error(err)
		if errors.Is(err, fc.ErrFacilityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "facility not found"})
		} else if errors.Is(err, booking.ErrFacilityNotBookable) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "facility is not open for bookings"})
		} else if errors.Is(err, booking.ErrInvalidTimeRange) || errors.Is(err, booking.ErrOutsideOperatingHours) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "requested slot is not valid for this facility"})
		} else if errors.Is(err, booking.ErrSlotConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "slot is already taken"})
		} else if errors.Is(err, payment.ErrProviderUnavailable) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "payment provider unavailable, booking released"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		}

		return
	}

	c.JSON(http.StatusCreated, b)
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	actor := c.MustGet("user").(user.User)

	bookings, err := h.service.FindBookingsPerUser(c.Request.Context(), actor.ID)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve bookings"})
		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	actor := c.MustGet("user").(user.User)
	id := c.Param("id")

	b, err := h.service.FindBookingByID(c.Request.Context(), actor, id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, booking.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		} else if errors.Is(err, booking.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to view this booking"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch booking"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, b)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	actor := c.MustGet("user").(user.User)
	id := c.Param("id")

	err := h.service.CancelBooking(c.Request.Context(), actor, id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, booking.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		} else if errors.Is(err, booking.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to cancel this booking"})
		} else if errors.Is(err, booking.ErrInvalidBookingState) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "booking is already cancelled"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel booking"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "booking cancelled"})
}

// FacilityCalendar lists a facility's bookings for one date. Registered
// under the facilities group so the route reads as a sub-resource.
func (h *BookingHandler) FacilityCalendar(c *gin.Context) {
	actor := c.MustGet("user").(user.User)
	facilityID := c.Param("id")

	date, err := time.Parse(time.DateOnly, c.Query("date"))

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter must be formatted as YYYY-MM-DD"})
		return
	}

	bookings, err := h.service.FindBookingsForFacilityDate(c.Request.Context(), actor, facilityID, date)

	if err != nil {
		c.Error(err)
		if errors.Is(err, fc.ErrFacilityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "facility not found"})
		} else if errors.Is(err, booking.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to view this facility's bookings"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve bookings"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}
