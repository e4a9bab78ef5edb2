// Package http exposes the application use cases as a JSON API served
// by echo. Public routes cover registration, login and tracking; order
// management requires a bearer token and the back-office routes an
// admin role on top.
package http

import (
	"net/http"
	"strconv"

	"haulix/internal/core/application/usecases/commands"
	"haulix/internal/core/application/usecases/queries"
	"haulix/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerHandler     commands.RegisterAccountCommandHandler
	verifyHandler       commands.VerifyAccountCommandHandler
	loginHandler        commands.LoginCommandHandler
	forgotHandler       commands.RequestPasswordResetCommandHandler
	verifyResetHandler  commands.VerifyResetCodeCommandHandler
	resetHandler        commands.ResetPasswordCommandHandler
	createOrderHandler  commands.CreateOrderCommandHandler
	updateStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	trackOrderHandler     queries.TrackOrderQueryHandler
	getOwnerOrdersHandler queries.GetOwnerOrdersQueryHandler
	listOrdersHandler     queries.ListOrdersQueryHandler

	tokens ports.TokenIssuer
}

// NewServer creates a new HTTP server with the required command and
// query handlers.
func NewServer(
	registerHandler commands.RegisterAccountCommandHandler,
	verifyHandler commands.VerifyAccountCommandHandler,
	loginHandler commands.LoginCommandHandler,
	forgotHandler commands.RequestPasswordResetCommandHandler,
	verifyResetHandler commands.VerifyResetCodeCommandHandler,
	resetHandler commands.ResetPasswordCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	getOwnerOrdersHandler queries.GetOwnerOrdersQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	tokens ports.TokenIssuer,
) *Server {
	return &Server{
		registerHandler:       registerHandler,
		verifyHandler:         verifyHandler,
		loginHandler:          loginHandler,
		forgotHandler:         forgotHandler,
		verifyResetHandler:    verifyResetHandler,
		resetHandler:          resetHandler,
		createOrderHandler:    createOrderHandler,
		updateStatusHandler:   updateStatusHandler,
		trackOrderHandler:     trackOrderHandler,
		getOwnerOrdersHandler: getOwnerOrdersHandler,
		listOrdersHandler:     listOrdersHandler,
		tokens:                tokens,
	}
}

// RegisterRoutes mounts every API route on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", s.Register)
	auth.POST("/verify", s.Verify)
	auth.POST("/login", s.Login)
	auth.POST("/forgot-password", s.ForgotPassword)
	auth.POST("/verify-reset-code", s.VerifyResetCode)
	auth.POST("/reset-password", s.ResetPassword)

	api.GET("/track/:trackingNumber", s.TrackOrder)

	orders := api.Group("/orders", Authenticate(s.tokens))
	orders.POST("", s.CreateOrder)
	orders.GET("", s.GetOwnOrders)

	admin := api.Group("/admin", Authenticate(s.tokens), RequireAdmin())
	admin.GET("/orders", s.ListOrders)
	admin.PUT("/orders/:ref/status", s.UpdateOrderStatus)
}

// Register handles POST /api/v1/auth/register - creates an unverified
// account and emails its verification code.
func (s *Server) Register(ctx echo.Context) error {
	var req RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterAccountCommand(req.Email, req.Password, req.FirstName, req.LastName, req.Phone)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.registerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, MessageResponse{
		Message: "Verification code sent to your email",
	})
}

// Verify handles POST /api/v1/auth/verify - redeems a verification code.
func (s *Server) Verify(ctx echo.Context) error {
	var req VerifyRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewVerifyAccountCommand(req.Email, req.Code)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.verifyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MessageResponse{Message: "Account verified"})
}

// Login handles POST /api/v1/auth/login - checks credentials and issues a
// bearer token.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewLoginCommand(req.Email, req.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	session, err := s.loginHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		Token:     session.Token,
		AccountID: session.AccountID,
		Role:      session.Role.String(),
		FirstName: session.FirstName,
		LastName:  session.LastName,
		Email:     session.Email,
	})
}

// ForgotPassword handles POST /api/v1/auth/forgot-password. The response is
// the same whether or not the email belongs to an account.
func (s *Server) ForgotPassword(ctx echo.Context) error {
	var req ForgotPasswordRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRequestPasswordResetCommand(req.Email)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.forgotHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MessageResponse{
		Message: "If the email exists, a reset code has been sent",
	})
}

// VerifyResetCode handles POST /api/v1/auth/verify-reset-code - checks that
// a reset code is still redeemable before the new password is submitted.
func (s *Server) VerifyResetCode(ctx echo.Context) error {
	var req VerifyResetCodeRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewVerifyResetCodeCommand(req.Email, req.Code)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.verifyResetHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MessageResponse{Message: "Code is valid"})
}

// ResetPassword handles POST /api/v1/auth/reset-password - redeems a reset
// code for a new password.
func (s *Server) ResetPassword(ctx echo.Context) error {
	var req ResetPasswordRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewResetPasswordCommand(req.Email, req.Code, req.NewPassword)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.resetHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MessageResponse{Message: "Password updated"})
}

// TrackOrder handles GET /api/v1/track/:trackingNumber - the public
// tracking lookup.
func (s *Server) TrackOrder(ctx echo.Context) error {
	query, err := queries.NewTrackOrderQuery(ctx.Param("trackingNumber"))
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrder(resp))
}

// CreateOrder handles POST /api/v1/orders - creates a shipment order for
// the authenticated account.
func (s *Server) CreateOrder(ctx echo.Context) error {
	ownerID, ok := principalID(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "missing bearer token",
		})
	}

	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(
		ownerID,
		commandContact(req.Sender),
		commandContact(req.Recipient),
		commandPackage(req.Package),
		req.ServiceTier,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newOrder(queries.NewOrderResponse(created)))
}

// GetOwnOrders handles GET /api/v1/orders - lists the authenticated
// account's orders newest first.
func (s *Server) GetOwnOrders(ctx echo.Context) error {
	ownerID, ok := principalID(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "missing bearer token",
		})
	}

	query, err := queries.NewGetOwnerOrdersQuery(ownerID)
	if err != nil {
		return respondError(ctx, err)
	}

	responses, err := s.getOwnerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrders(responses))
}

// ListOrders handles GET /api/v1/admin/orders - the back-office listing
// with filtering, search, pagination and dashboard stats.
func (s *Server) ListOrders(ctx echo.Context) error {
	page, err := queryInt(ctx, "page")
	if err != nil {
		return respondBadRequest(ctx, "Invalid page parameter")
	}
	size, err := queryInt(ctx, "size")
	if err != nil {
		return respondBadRequest(ctx, "Invalid size parameter")
	}

	query, err := queries.NewListOrdersQuery(
		ctx.QueryParam("status"),
		ctx.QueryParam("search"),
		page,
		size,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderListResponse{
		Orders: newOrders(result.Orders),
		Total:  result.Total,
		Page:   result.Page,
		Size:   result.Size,
		Stats:  newOrderStats(result.Stats),
	})
}

// UpdateOrderStatus handles PUT /api/v1/admin/orders/:ref/status. The ref
// path segment accepts either an order id or a tracking number.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	var req UpdateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	notifyOwner := true
	if req.NotifyOwner != nil {
		notifyOwner = *req.NotifyOwner
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(
		ctx.Param("ref"),
		req.Status,
		req.PaymentStatus,
		req.Location,
		req.Note,
		notifyOwner,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrder(queries.NewOrderResponse(updated)))
}

func queryInt(ctx echo.Context, name string) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
