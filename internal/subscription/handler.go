package subscription

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/beheryahmed1991/subscription-tracker/internal/apperr"
	"github.com/beheryahmed1991/subscription-tracker/internal/identity"
)

const layoutFullDate = "2006-01-02"

// Handler exposes HTTP handlers for subscription resources.
type Handler struct {
	svc Service
	log *slog.Logger
	now func() time.Time
}

func NewHandler(svc Service, log *slog.Logger) *Handler {
	return &Handler{svc: svc, log: log, now: time.Now}
}

// RegisterRoutes mounts /subscriptions behind requireAuth.
func (h *Handler) RegisterRoutes(router gin.IRouter, requireAuth gin.HandlerFunc) {
	group := router.Group("/subscriptions", requireAuth)
	group.POST("", h.create)
	group.GET("", h.list)
	group.GET("/upcoming", h.upcoming)
	group.GET("/:id", h.getByID)
	group.PUT("/:id", h.update)
	group.DELETE("/:id", h.delete)
}

type subscriptionRequest struct {
	ServiceName  string  `json:"service_name"`
	Cost         float64 `json:"cost"`
	Currency     string  `json:"currency"`
	BillingCycle string  `json:"billing_cycle"`
	StartDate    string  `json:"start_date"`
	Status       string  `json:"status"`
	Category     string  `json:"category"`
	FreeTrial    bool    `json:"free_trial"`
	TrialEndDate *string `json:"trial_end_date"`
	ReminderDays int     `json:"reminder_days"`
	Color        string  `json:"color"`
}

// subscriptionView is a stored subscription plus renewal data derived at
// response time.
type subscriptionView struct {
	Subscription
	NextRenewalDate  time.Time `json:"next_renewal_date"`
	DaysUntilRenewal int       `json:"days_until_renewal"`
}

// create godoc
// @Summary Create a subscription
// @Tags subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body subscriptionRequest true "Subscription"
// @Success 201 {object} Subscription
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /subscriptions [post]
func (h *Handler) create(c *gin.Context) {
	owner, ok := h.owner(c)
	if !ok {
		return
	}

	in, err := h.bindInput(c)
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	sub, err := h.svc.Create(c.Request.Context(), owner, in)
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	h.log.Info("subscription created", "user_id", owner, "subscription_id", sub.ID)
	c.JSON(http.StatusCreated, sub)
}

// list godoc
// @Summary List the caller's subscriptions
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} subscriptionView
// @Failure 401 {object} map[string]string
// @Router /subscriptions [get]
func (h *Handler) list(c *gin.Context) {
	owner, ok := h.owner(c)
	if !ok {
		return
	}

	subs, err := h.svc.List(c.Request.Context(), owner)
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	now := h.now()
	views := make([]subscriptionView, 0, len(subs))
	for _, sub := range subs {
		views = append(views, annotate(sub, now))
	}
	c.JSON(http.StatusOK, views)
}

// upcoming godoc
// @Summary List active subscriptions renewing within their reminder window
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} subscriptionView
// @Failure 401 {object} map[string]string
// @Router /subscriptions/upcoming [get]
func (h *Handler) upcoming(c *gin.Context) {
	owner, ok := h.owner(c)
	if !ok {
		return
	}

	subs, err := h.svc.List(c.Request.Context(), owner)
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	now := h.now()
	views := []subscriptionView{}
	for _, sub := range subs {
		if ReminderDue(sub, now) {
			views = append(views, annotate(sub, now))
		}
	}
	c.JSON(http.StatusOK, views)
}

// getByID godoc
// @Summary Get one subscription
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subscription ID"
// @Success 200 {object} subscriptionView
// @Failure 404 {object} map[string]string
// @Router /subscriptions/{id} [get]
func (h *Handler) getByID(c *gin.Context) {
	owner, ok := h.owner(c)
	if !ok {
		return
	}
	id, ok := h.subscriptionID(c)
	if !ok {
		return
	}

	sub, err := h.svc.Get(c.Request.Context(), owner, id)
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, annotate(sub, h.now()))
}

// update godoc
// @Summary Replace a subscription's editable fields
// @Tags subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subscription ID"
// @Param body body subscriptionRequest true "Subscription"
// @Success 200 {object} Subscription
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /subscriptions/{id} [put]
func (h *Handler) update(c *gin.Context) {
	owner, ok := h.owner(c)
	if !ok {
		return
	}
	id, ok := h.subscriptionID(c)
	if !ok {
		return
	}

	in, err := h.bindInput(c)
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	sub, err := h.svc.Update(c.Request.Context(), owner, id, in)
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// delete godoc
// @Summary Delete a subscription
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subscription ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /subscriptions/{id} [delete]
func (h *Handler) delete(c *gin.Context) {
	owner, ok := h.owner(c)
	if !ok {
		return
	}
	id, ok := h.subscriptionID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), owner, id); err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	h.log.Info("subscription deleted", "user_id", owner, "subscription_id", id)
	c.JSON(http.StatusOK, gin.H{"message": "Subscription deleted"})
}

func (h *Handler) owner(c *gin.Context) (uuid.UUID, bool) {
	p, ok := identity.PrincipalFrom(c)
	if !ok {
		apperr.Respond(c, h.log, apperr.Unauthorized(identity.ErrMissingToken))
		return uuid.Nil, false
	}
	return p.AccountID, true
}

// subscriptionID parses :id. A malformed id cannot name a stored row, so it
// is reported as not found.
func (h *Handler) subscriptionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apperr.Respond(c, h.log, apperr.NotFound("subscription"))
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) bindInput(c *gin.Context) (Input, error) {
	var req subscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return Input{}, apperr.Validation("invalid request body")
	}

	in := Input{
		ServiceName:  req.ServiceName,
		Cost:         req.Cost,
		Currency:     Currency(strings.TrimSpace(req.Currency)),
		BillingCycle: BillingCycle(strings.TrimSpace(req.BillingCycle)),
		Status:       Status(strings.TrimSpace(req.Status)),
		Category:     Category(strings.TrimSpace(req.Category)),
		FreeTrial:    req.FreeTrial,
		ReminderDays: req.ReminderDays,
		Color:        req.Color,
	}

	if strings.TrimSpace(req.StartDate) != "" {
		start, err := parseDate(req.StartDate)
		if err != nil {
			return Input{}, apperr.Validation("start_date must be YYYY-MM-DD or RFC 3339")
		}
		in.StartDate = start
	}

	if req.TrialEndDate != nil && strings.TrimSpace(*req.TrialEndDate) != "" {
		end, err := parseDate(*req.TrialEndDate)
		if err != nil {
			return Input{}, apperr.Validation("trial_end_date must be YYYY-MM-DD or RFC 3339")
		}
		in.TrialEndDate = &end
	}

	return in, nil
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(layoutFullDate, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func annotate(sub Subscription, now time.Time) subscriptionView {
	next := NextRenewal(sub.StartDate, sub.BillingCycle)
	return subscriptionView{
		Subscription:     sub,
		NextRenewalDate:  next,
		DaysUntilRenewal: DaysUntil(next, now),
	}
}
