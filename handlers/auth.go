package handlers

import (
	"errors"
	"net/http"
	"time"

	kvRepo "salonadmin/database/repository/kv"
	"salonadmin/middleware"
	"salonadmin/services/auth"
	"salonadmin/services/notification"
	"salonadmin/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const msgNotAdmin = "This user ID does not have admin access"

// AuthHandler serves sign in and sign out for both the HTML view and the JSON API.
type AuthHandler struct {
	viewSupport
	Store      kvRepo.Store
	Checker    *auth.Checker
	SessionTTL time.Duration
}

func (h *AuthHandler) session(c *gin.Context) *auth.Session {
	return auth.NewSession(middleware.SessionID(c), h.Store).WithTTL(h.SessionTTL)
}

// login stores the entered id and reports the resulting auth state.
func (h *AuthHandler) login(c *gin.Context, input string) (*auth.Guard, error) {
	session := h.session(c)
	guard := auth.NewGuard(h.Checker, session)

	_, err := auth.Login(c.Request.Context(), session, input, func(userID int64) {
		state := guard.Refresh(c.Request.Context())
		h.Logger.Info("Sign in attempt",
			zap.Int64("userID", userID),
			zap.Bool("admin", state.Authenticated))
	})
	if err != nil {
		return nil, err
	}
	return guard, nil
}

// LoginHandler handles the sign in form.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	input := c.PostForm("userId")

	guard, err := h.login(c, input)
	var validationErr *auth.ValidationError
	switch {
	case errors.As(err, &validationErr):
		h.renderLogin(c, http.StatusBadRequest, input, validationErr.Message)
		return
	case err != nil:
		h.Logger.Error("Failed to sign in", zap.Error(err))
		h.renderLogin(c, http.StatusInternalServerError, input, "Failed to sign in. Please try again.")
		return
	case !guard.State().Authenticated:
		h.renderLogin(c, http.StatusForbidden, input, msgNotAdmin)
		return
	}

	h.push(c, notification.Success("Signed in"))
	c.Redirect(http.StatusSeeOther, "/")
}

// LogoutHandler handles the sign out button.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	if err := h.session(c).Logout(c.Request.Context()); err != nil {
		h.Logger.Error("Failed to sign out", zap.Error(err))
		h.push(c, notification.Error("Failed to sign out. Please try again."))
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// APILoginHandler is the JSON variant of LoginHandler.
func (h *AuthHandler) APILoginHandler(c *gin.Context) {
	var req struct {
		UserID string `json:"userId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	guard, err := h.login(c, req.UserID)
	var validationErr *auth.ValidationError
	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, validationErr.Message, validationErr.Field)
		return
	case err != nil:
		h.Logger.Error("Failed to sign in", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to sign in", err.Error())
		return
	case !guard.State().Authenticated:
		utils.JSONError(c, http.StatusForbidden, msgNotAdmin, "")
		return
	}
	c.JSON(http.StatusOK, guard.State())
}

// APILogoutHandler is the JSON variant of LogoutHandler.
func (h *AuthHandler) APILogoutHandler(c *gin.Context) {
	if err := h.session(c).Logout(c.Request.Context()); err != nil {
		h.Logger.Error("Failed to sign out", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to sign out", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// SessionStateHandler reports the caller's auth state.
func (h *AuthHandler) SessionStateHandler(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.AuthState(c))
}
