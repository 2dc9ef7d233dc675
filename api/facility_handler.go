package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	fc "github.com/quickcourt/facility-booking-backend/facility"
	"github.com/quickcourt/facility-booking-backend/user"
)

type FacilityService interface {
	FindFacilityByID(ctx context.Context, id string) (fc.Facility, error)
	ListPublic(ctx context.Context) ([]fc.Facility, error)
	ListByOwner(ctx context.Context, ownerID string) ([]fc.Facility, error)
	Submit(ctx context.Context, actor user.User, sub fc.FacilitySubmission) (fc.Facility, error)
	ToggleVisibility(ctx context.Context, actor user.User, id string, active bool) error
}

type FacilityHandler struct {
	service FacilityService
}

func NewFacilityHandler(service FacilityService) *FacilityHandler {
	return &FacilityHandler{service: service}
}

// Register wires the facility routes. Browsing is anonymous, anything
// that writes or lists an owner's portfolio goes through auth.
func (h *FacilityHandler) Register(rg *gin.RouterGroup, auth gin.HandlerFunc) {
	rg.GET("", h.ListPublic)
	rg.GET("/mine", auth, h.ListMine)
	rg.GET("/:id", h.GetByID)
	rg.POST("", auth, h.Submit)
	rg.PATCH("/:id/visibility", auth, h.ToggleVisibility)
}

func (h *FacilityHandler) ListPublic(c *gin.Context) {
	if facilities, err := h.service.ListPublic(c.Request.Context()); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to retrieve facilities",
		})
	} else {
		c.IndentedJSON(http.StatusOK, facilities)
	}
}

func (h *FacilityHandler) ListMine(c *gin.Context) {
	actor := c.MustGet("user").(user.User)

	facilities, err := h.service.ListByOwner(c.Request.Context(), actor.ID)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve facilities"})
		return
	}

	c.IndentedJSON(http.StatusOK, facilities)
}

func (h *FacilityHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	f, err := h.service.FindFacilityByID(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, fc.ErrFacilityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "facility not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to fetch facility",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, f)
}

func (h *FacilityHandler) Submit(c *gin.Context) {
	actor := c.MustGet("user").(user.User)

	var sub fc.FacilitySubmission

	if err := c.BindJSON(&sub); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	created, err := h.service.Submit(c.Request.Context(), actor, sub)

	if err != nil {
		c.Error(err)
		if errors.Is(err, fc.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to submit facilities"})
		} else if errors.Is(err, fc.ErrInvalidFacility) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid facility submission"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create facility"})
		}

		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *FacilityHandler) ToggleVisibility(c *gin.Context) {
	actor := c.MustGet("user").(user.User)
	id := c.Param("id")

	var body struct {
		IsActive bool `json:"isActive"`
	}

	if err := c.BindJSON(&body); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	err := h.service.ToggleVisibility(c.Request.Context(), actor, id, body.IsActive)

	if err != nil {
		c.Error(err)
		if errors.Is(err, fc.ErrFacilityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "facility not found"})
		} else if errors.Is(err, fc.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to change facility visibility"})
		} else if errors.Is(err, fc.ErrNotApproved) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "facility is not approved"})
		} else if errors.Is(err, fc.ErrStaleVersion) {
			c.JSON(http.StatusConflict, gin.H{"error": "facility was modified concurrently, retry"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to change facility visibility"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "facility visibility updated"})
}
