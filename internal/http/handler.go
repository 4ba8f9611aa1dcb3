package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yerzhan-a/charter-market/internal/auth"
	"github.com/yerzhan-a/charter-market/internal/http/middleware"
	"github.com/yerzhan-a/charter-market/internal/service"
)

type Handler struct {
	accounts *service.AccountService
	authn    *service.AuthService
	charters *service.CharterService
	tokens   *auth.Issuer
	timeout  time.Duration
	log      zerolog.Logger
}

func NewHandler(
	accounts *service.AccountService,
	authn *service.AuthService,
	charters *service.CharterService,
	tokens *auth.Issuer,
	timeout time.Duration,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		accounts: accounts,
		authn:    authn,
		charters: charters,
		tokens:   tokens,
		timeout:  timeout,
		log:      log,
	}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	router.POST("/auth/signup", h.signUp)
	router.POST("/auth/login", h.logIn)

	protected := router.Group("/")
	protected.Use(authMiddleware)
	protected.GET("/profile", h.profile)
	protected.GET("/profile/fields", h.profileFields)
	protected.GET("/profile/orders", h.orders)
	protected.GET("/profile/orders/export", h.exportOrders)
	protected.GET("/profile/contracts", h.contracts)
	protected.GET("/profile/contracts/:id/document", h.contractDocument)
}

type signUpRequest struct {
	Email    string `json:"email" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	Company  string `json:"company"`
	Role     string `json:"role" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) signUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	userID, err := h.accounts.Register(ctx, service.RegisterInput{
		Email:    req.Email,
		FullName: req.FullName,
		Company:  req.Company,
		Role:     req.Role,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user_id": userID})
}

type logInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) logIn(c *gin.Context) {
	var req logInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	principal, err := h.authn.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	token, err := h.tokens.Issue(principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"user_id":   principal.UserID,
		"full_name": principal.FullName,
	})
}

func (h *Handler) profile(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	projection, err := h.accounts.Fields(ctx, principal.UserID, []string{"fullName", "email", "company"})
	if err != nil {
		h.handleError(c, err)
		return
	}

	body := gin.H{}
	for _, field := range projection {
		body[field.Name] = field.Value
	}
	c.JSON(http.StatusOK, body)
}

func (h *Handler) profileFields(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var fields []string
	if raw := strings.TrimSpace(c.Query("fields")); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				fields = append(fields, name)
			}
		}
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	projection, err := h.accounts.Fields(ctx, principal.UserID, fields)
	if err != nil {
		h.handleError(c, err)
		return
	}

	items := make([]gin.H, 0, len(projection))
	for _, field := range projection {
		items = append(items, gin.H{"name": field.Name, "value": field.Value})
	}
	c.JSON(http.StatusOK, gin.H{"fields": items})
}

func (h *Handler) orders(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	orders, err := h.charters.Orders(ctx, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *Handler) exportOrders(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	result, err := h.charters.ExportOrders(ctx, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	contentType := "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, contentType, result.Content)
}

func (h *Handler) contracts(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	contracts, err := h.charters.Contracts(ctx, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"contracts": contracts})
}

func (h *Handler) contractDocument(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	contractID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contract id"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	result, err := h.charters.ContractDocument(ctx, principal, contractID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}

func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": service.ErrDuplicateEmail.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": service.ErrInvalidCredentials.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": service.ErrPermissionDenied.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": service.ErrNotFound.Error()})
	default:
		h.log.Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
