package identity

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beheryahmed1991/subscription-tracker/internal/apperr"
)

// Handler exposes HTTP handlers for accounts and authentication.
type Handler struct {
	svc Service
	log *slog.Logger
}

func NewHandler(svc Service, log *slog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// RegisterRoutes mounts /users and /auth. requireAuth guards the routes that
// need a verified token.
func (h *Handler) RegisterRoutes(router gin.IRouter, requireAuth gin.HandlerFunc) {
	users := router.Group("/users")
	users.POST("", h.register)
	users.GET("", requireAuth, h.list)

	auth := router.Group("/auth")
	auth.POST("/login", h.login)
	auth.GET("/validate", requireAuth, h.validate)
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// register godoc
// @Summary Create an account
// @Tags users
// @Accept json
// @Produce json
// @Param body body registerRequest true "Account"
// @Success 201 {object} Account
// @Failure 400 {object} map[string]string
// @Router /users [post]
func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, h.log, apperr.Validation("invalid request body"))
		return
	}

	acc, err := h.svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	h.log.Info("account registered", "user_id", acc.ID)
	c.JSON(http.StatusCreated, acc)
}

// list godoc
// @Summary List accounts
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} Account
// @Failure 401 {object} map[string]string
// @Router /users [get]
func (h *Handler) list(c *gin.Context) {
	accounts, err := h.svc.List(c.Request.Context())
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// login godoc
// @Summary Exchange credentials for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "Credentials"
// @Success 200 {object} LoginResult
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, h.log, apperr.Validation("invalid request body"))
		return
	}

	res, err := h.svc.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// validate godoc
// @Summary Check a bearer token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/validate [get]
func (h *Handler) validate(c *gin.Context) {
	p, ok := PrincipalFrom(c)
	if !ok {
		apperr.Respond(c, h.log, apperr.Unauthorized(ErrMissingToken))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "You are logged in.",
		"user_id": p.AccountID,
		"email":   p.Email,
	})
}
