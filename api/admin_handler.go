package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	fc "github.com/quickcourt/facility-booking-backend/facility"
	"github.com/quickcourt/facility-booking-backend/user"
)

type ModerationService interface {
	ListByStatus(ctx context.Context, actor user.User, status string) ([]fc.Facility, error)
	Approve(ctx context.Context, actor user.User, id string) error
	Reject(ctx context.Context, actor user.User, id, reason string) error
}

type UserService interface {
	ListUsers(ctx context.Context, actor user.User) ([]user.User, error)
	UpdateUser(ctx context.Context, actor user.User, targetID string, update user.UserUpdate) (user.User, error)
	SetBanned(ctx context.Context, actor user.User, targetID string, banned bool) error
}

// AdminHandler serves the moderation queue and user administration. All
// of its routes sit behind the AdminOnly middleware; services still
// enforce the same checks so the rules hold without the HTTP layer.
type AdminHandler struct {
	moderation ModerationService
	users      UserService
}

func NewAdminHandler(moderation ModerationService, users UserService) *AdminHandler {
	return &AdminHandler{moderation: moderation, users: users}
}

func (h *AdminHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/facilities", h.ListFacilitiesByStatus)
	rg.PATCH("/facilities/:id/approve", h.ModerateFacility)
	rg.GET("/users", h.ListUsers)
	rg.PATCH("/users/:id", h.UpdateUser)
	rg.PUT("/users/:id/ban", h.BanUser)
	rg.PUT("/users/:id/unban", h.UnbanUser)
}

func (h *AdminHandler) ListFacilitiesByStatus(c *gin.Context) {
	actor := c.MustGet("user").(user.User)
	status := c.DefaultQuery("status", fc.StatusPending)

	facilities, err := h.moderation.ListByStatus(c.Request.Context(), actor, status)

	if err != nil {
		c.Error(err)
		if errors.Is(err, fc.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to list the moderation queue"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve facilities"})
		return
	}

	c.IndentedJSON(http.StatusOK, facilities)
}

type moderationDecisionBody struct {
	IsApproved      bool   `json:"isApproved"`
	RejectionReason string `json:"rejectionReason"`
}

func (h *AdminHandler) ModerateFacility(c *gin.Context) {
	actor := c.MustGet("user").(user.User)
	id := c.Param("id")

	var body moderationDecisionBody

	if err := c.BindJSON(&body); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	var err error

	if body.IsApproved {
		err = h.moderation.Approve(c.Request.Context(), actor, id)
	} else {
		err = h.moderation.Reject(c.Request.Context(), actor, id, body.RejectionReason)
	}

	if err != nil {
		c.Error(err)
		if errors.Is(err, fc.ErrFacilityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "facility not found"})
		} else if errors.Is(err, fc.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to moderate facilities"})
		} else if errors.Is(err, fc.ErrEmptyReason) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "rejection requires a reason"})
		} else if errors.Is(err, fc.ErrStaleVersion) {
			c.JSON(http.StatusConflict, gin.H{"error": "facility was modified concurrently, retry"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to moderate facility"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "moderation decision applied"})
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	actor := c.MustGet("user").(user.User)

	users, err := h.users.ListUsers(c.Request.Context(), actor)

	if err != nil {
		c.Error(err)
		if errors.Is(err, user.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to list users"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve users"})
		return
	}

	c.IndentedJSON(http.StatusOK, users)
}

func (h *AdminHandler) UpdateUser(c *gin.Context) {
	actor := c.MustGet("user").(user.User)
	id := c.Param("id")

	var update user.UserUpdate

	if err := c.BindJSON(&update); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	updated, err := h.users.UpdateUser(c.Request.Context(), actor, id, update)

	if err != nil {
		c.Error(err)
		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		} else if errors.Is(err, user.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to edit this user"})
		} else if errors.Is(err, user.ErrInvalidRole) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, updated)
}

func (h *AdminHandler) BanUser(c *gin.Context) {
	h.setBanned(c, true)
}

func (h *AdminHandler) UnbanUser(c *gin.Context) {
	h.setBanned(c, false)
}

func (h *AdminHandler) setBanned(c *gin.Context, banned bool) {
	actor := c.MustGet("user").(user.User)
	id := c.Param("id")

	err := h.users.SetBanned(c.Request.Context(), actor, id, banned)

	if err != nil {
		c.Error(err)
		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		} else if errors.Is(err, user.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to change this user's ban state"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to change ban state"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "ban state updated"})
}
