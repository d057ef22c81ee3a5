package handlers

import (
	"net/http"

	"github.com/babuyoga/project-cost-dashboard/internal/auth"
	"github.com/babuyoga/project-cost-dashboard/internal/database/model"
	"github.com/gin-gonic/gin"
)

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.svc.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *Handler) GetUser(c *gin.Context) {
	user, err := h.svc.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, auth.Validation("Invalid request body"))
		return
	}

	user, err := h.svc.CreateUser(c.Request.Context(), auth.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Enabled:  req.Enabled,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, auth.Validation("Invalid request body"))
		return
	}

	patch := model.UserPatch{
		Email:   req.Email,
		Enabled: req.Enabled,
		IsAdmin: req.IsAdmin,
	}
	if req.Username != "" {
		patch.Username = &req.Username
	}

	user, err := h.svc.UpdateUser(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) EnableUser(c *gin.Context) {
	h.setUserEnabled(c, true)
}

func (h *Handler) DisableUser(c *gin.Context) {
	h.setUserEnabled(c, false)
}

func (h *Handler) setUserEnabled(c *gin.Context, enabled bool) {
	id := c.Param("id")
	if err := h.svc.SetUserEnabled(c.Request.Context(), id, enabled); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "enabled": enabled})
}

func (h *Handler) ResetUserPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, auth.Validation("Invalid request body"))
		return
	}

	if err := h.svc.ResetPassword(c.Request.Context(), c.Param("id"), req.Password); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	if err := h.svc.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) InvalidateUserSessions(c *gin.Context) {
	count, err := h.svc.InvalidateUserSessions(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
