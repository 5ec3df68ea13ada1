package auth

import (
	"net/http"
	"time"

	autherrors "go-attendo/internal/auth/errors"
	"go-attendo/internal/middleware"
	"go-attendo/internal/shared/apperror"
	"go-attendo/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	refreshTokenCookie = "refresh_token"
	clientTypeHeader   = "X-Client-Type"
	clientTypeWeb      = "web"
)

type Handler struct {
	service      Service
	secureCookie bool
	now          func() time.Time
	logger       *zap.Logger
}

// NewHandler builds the auth handler. secureCookie marks session cookies
// Secure and is expected to be on in production.
func NewHandler(s Service, secureCookie bool, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: s, secureCookie: secureCookie, now: time.Now, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("auth request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func isWebClient(c *gin.Context) bool {
	return c.GetHeader(clientTypeHeader) == clientTypeWeb
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.BindError(err))
		return
	}

	pair, resp, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.writeSession(c, http.StatusCreated, pair, resp)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.BindError(err))
		return
	}

	pair, resp, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.writeSession(c, http.StatusOK, pair, resp)
}

func (h *Handler) RefreshToken(c *gin.Context) {
	var refreshToken string
	if isWebClient(c) {
		cookie, err := c.Cookie(refreshTokenCookie)
		if err != nil || cookie == "" {
			h.writeServiceError(c, autherrors.ErrTokenNotFound)
			return
		}
		refreshToken = cookie
	} else {
		var req RefreshRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.writeServiceError(c, apperror.BindError(err))
			return
		}
		refreshToken = req.RefreshToken
	}

	pair, resp, err := h.service.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.writeSession(c, http.StatusOK, pair, resp)
}

func (h *Handler) Me(c *gin.Context) {
	employeeID := c.GetString("employee_id")
	if employeeID == "" {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	resp, err := h.service.GetMe(c.Request.Context(), employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Logout(c *gin.Context) {
	h.setCookie(c, middleware.AccessTokenCookie, "", -1)
	h.setCookie(c, refreshTokenCookie, "", -1)

	response.Success(c, http.StatusOK, gin.H{"logged_out": true}, nil)
}

func (h *Handler) writeSession(c *gin.Context, status int, pair TokenPair, resp AuthResponse) {
	if isWebClient(c) {
		now := h.now()
		h.setCookie(c, middleware.AccessTokenCookie, pair.AccessToken, maxAge(pair.AccessExpiresAt, now))
		h.setCookie(c, refreshTokenCookie, pair.RefreshToken, maxAge(pair.RefreshExpiresAt, now))
	}

	response.Success(c, status, gin.H{
		"user":          resp,
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
		"expires_at":    pair.AccessExpiresAt.UTC().Format(time.RFC3339),
	}, nil)
}

func (h *Handler) setCookie(c *gin.Context, name, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func maxAge(expiresAt, now time.Time) int {
	secs := int(expiresAt.Sub(now).Seconds())
	if secs < 1 {
		return -1
	}
	return secs
}
