package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bakery_storefront/internal/notification"
	"bakery_storefront/internal/services"
	"bakery_storefront/internal/session"
)

type SessionHandler struct {
	authService services.AuthService
	log         *zap.Logger
}

func NewSessionHandler(authService services.AuthService, log *zap.Logger) *SessionHandler {
	return &SessionHandler{authService: authService, log: log}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func sessionView(s *session.Session) gin.H {
	view := gin.H{
		"session_id":    s.ID,
		"authenticated": false,
		"is_admin":      false,
		"cart_count":    s.Cart.Totals().ItemCount,
	}
	if user, ok := s.Identity.User(); ok {
		view["authenticated"] = true
		view["is_admin"] = user.IsAdmin
		view["user"] = user
	}
	return view
}

// CreateSession starts a session. The middleware has already assigned one,
// so this only reports it.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	c.JSON(http.StatusCreated, sessionView(currentSession(c)))
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, sessionView(currentSession(c)))
}

func (h *SessionHandler) Login(c *gin.Context) {
	s := currentSession(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	user, err := h.authService.Login(req.Username, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		s.Inbox.Notify(notification.Toast{
			Title:       "Login Failed",
			Description: "Invalid username or password.",
			Variant:     notification.VariantDestructive,
		})
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	if err := s.Identity.Login(c.Request.Context(), *user); err != nil {
		h.log.Error("failed to store session user", zap.String("session_id", s.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}
	if user.IsAdmin {
		s.Inbox.Notify(notification.Toast{Title: "Admin Access", Description: "You are now logged in as admin."})
	} else {
		s.Inbox.Notify(notification.Toast{Title: "Success!", Description: "You are now logged in."})
	}

	c.JSON(http.StatusOK, sessionView(s))
}

func (h *SessionHandler) Signup(c *gin.Context) {
	s := currentSession(c)

	var req services.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	user, err := h.authService.Signup(req)
	switch {
	case errors.Is(err, services.ErrSignupIncomplete):
		s.Inbox.Notify(notification.Toast{Title: "Signup Failed", Description: "Please fill out all fields.", Variant: notification.VariantDestructive})
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill out all fields"})
		return
	case errors.Is(err, services.ErrPasswordMismatch):
		s.Inbox.Notify(notification.Toast{Title: "Signup Failed", Description: "Passwords do not match.", Variant: notification.VariantDestructive})
		c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign up"})
		return
	}

	if err := s.Identity.Login(c.Request.Context(), *user); err != nil {
		h.log.Error("failed to store session user", zap.String("session_id", s.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign up"})
		return
	}
	s.Inbox.Notify(notification.Toast{Title: "Account Created!", Description: "You are now logged in."})

	c.JSON(http.StatusCreated, sessionView(s))
}

func (h *SessionHandler) Logout(c *gin.Context) {
	s := currentSession(c)
	if err := s.Identity.Logout(c.Request.Context()); err != nil {
		h.log.Error("failed to clear session user", zap.String("session_id", s.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
		return
	}
	c.JSON(http.StatusOK, sessionView(s))
}

// Notifications lists the toasts of the session that have not expired yet.
func (h *SessionHandler) Notifications(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notifications": currentSession(c).Inbox.Active()})
}

func (h *SessionHandler) DismissNotification(c *gin.Context) {
	currentSession(c).Inbox.Dismiss(c.Param("id"))
	c.Status(http.StatusNoContent)
}
