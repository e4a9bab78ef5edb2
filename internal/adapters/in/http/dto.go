package http

import (
	"time"

	"haulix/internal/core/application/usecases/commands"
	"haulix/internal/core/application/usecases/queries"
	"haulix/internal/core/domain/services"
)

// Error is the uniform JSON error envelope.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RegisterRequest carries the sign-up form.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

// VerifyRequest redeems an emailed verification code.
type VerifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// LoginRequest carries the credentials form.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse returns the bearer token and the signed-in profile.
type LoginResponse struct {
	Token     string `json:"token"`
	AccountID string `json:"accountId"`
	Role      string `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// ForgotPasswordRequest asks for a reset code to be emailed.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// VerifyResetCodeRequest checks a reset code without consuming it.
type VerifyResetCodeRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// ResetPasswordRequest redeems a reset code for a new password.
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"newPassword"`
}

// MessageResponse acknowledges an operation that returns no data.
type MessageResponse struct {
	Message string `json:"message"`
}

// ContactInput is the sender or recipient block of an order form.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// PackageInput is the package block of an order form.
type PackageInput struct {
	WeightGrams   int      `json:"weightGrams"`
	LengthCm      int      `json:"lengthCm"`
	WidthCm       int      `json:"widthCm"`
	HeightCm      int      `json:"heightCm"`
	Description   string   `json:"description"`
	DeclaredValue int64    `json:"declaredValue"`
	Category      string   `json:"category"`
	Images        []string `json:"images"`
}

// CreateOrderRequest carries the shipment order form.
type CreateOrderRequest struct {
	Sender      ContactInput `json:"sender"`
	Recipient   ContactInput `json:"recipient"`
	Package     PackageInput `json:"package"`
	ServiceTier string       `json:"serviceTier"`
}

// UpdateStatusRequest carries a back-office status change. Ref in the
// path may be an order id or a tracking number. NotifyOwner defaults to
// true when absent from the body.
type UpdateStatusRequest struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
	Location      string `json:"location"`
	Note          string `json:"note"`
	NotifyOwner   *bool  `json:"notifyOwner"`
}

// Contact mirrors ContactInput on the way out.
type Contact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// Package mirrors PackageInput on the way out.
type Package struct {
	WeightGrams   int      `json:"weightGrams"`
	LengthCm      int      `json:"lengthCm"`
	WidthCm       int      `json:"widthCm"`
	HeightCm      int      `json:"heightCm"`
	Description   string   `json:"description"`
	DeclaredValue int64    `json:"declaredValue"`
	Category      string   `json:"category"`
	Images        []string `json:"images"`
}

// HistoryEntry is one append-only tracking event.
type HistoryEntry struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Location  string    `json:"location"`
	Note      string    `json:"note"`
}

// Order is the full order representation returned to clients.
type Order struct {
	ID                string         `json:"id"`
	TrackingNumber    string         `json:"trackingNumber"`
	Status            string         `json:"status"`
	PaymentStatus     string         `json:"paymentStatus"`
	Sender            Contact        `json:"sender"`
	Recipient         Contact        `json:"recipient"`
	Package           Package        `json:"package"`
	ServiceTier       string         `json:"serviceTier"`
	CostCents         int64          `json:"costCents"`
	EstimatedDelivery time.Time      `json:"estimatedDelivery"`
	DeliveredAt       *time.Time     `json:"deliveredAt,omitempty"`
	History           []HistoryEntry `json:"history"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

// OrderStats is the back-office dashboard counters block.
type OrderStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	InTransit int `json:"inTransit"`
	Delivered int `json:"delivered"`
}

// OrderListResponse is one back-office listing page.
type OrderListResponse struct {
	Orders []Order    `json:"orders"`
	Total  int        `json:"total"`
	Page   int        `json:"page"`
	Size   int        `json:"size"`
	Stats  OrderStats `json:"stats"`
}

func newOrder(resp queries.OrderResponse) Order {
	history := make([]HistoryEntry, 0, len(resp.History))
	for _, e := range resp.History {
		history = append(history, HistoryEntry{
			Status:    e.Status,
			Timestamp: e.Timestamp,
			Location:  e.Location,
			Note:      e.Note,
		})
	}

	return Order{
		ID:                resp.ID,
		TrackingNumber:    resp.TrackingNumber,
		Status:            resp.Status,
		PaymentStatus:     resp.PaymentStatus,
		Sender:            newContact(resp.Sender),
		Recipient:         newContact(resp.Recipient),
		Package:           newPackage(resp.Package),
		ServiceTier:       resp.ServiceTier,
		CostCents:         resp.CostCents,
		EstimatedDelivery: resp.EstimatedDelivery,
		DeliveredAt:       resp.DeliveredAt,
		History:           history,
		CreatedAt:         resp.CreatedAt,
		UpdatedAt:         resp.UpdatedAt,
	}
}

func newOrders(responses []queries.OrderResponse) []Order {
	orders := make([]Order, 0, len(responses))
	for _, resp := range responses {
		orders = append(orders, newOrder(resp))
	}
	return orders
}

func newContact(resp queries.ContactResponse) Contact {
	return Contact{
		Name:    resp.Name,
		Email:   resp.Email,
		Phone:   resp.Phone,
		Street:  resp.Street,
		City:    resp.City,
		State:   resp.State,
		ZipCode: resp.ZipCode,
		Country: resp.Country,
	}
}

func newPackage(resp queries.PackageResponse) Package {
	return Package{
		WeightGrams:   resp.WeightGrams,
		LengthCm:      resp.LengthCm,
		WidthCm:       resp.WidthCm,
		HeightCm:      resp.HeightCm,
		Description:   resp.Description,
		DeclaredValue: resp.DeclaredValue,
		Category:      resp.Category,
		Images:        resp.Images,
	}
}

func newOrderStats(stats services.OrderStats) OrderStats {
	return OrderStats{
		Total:     stats.Total,
		Pending:   stats.Pending,
		InTransit: stats.InTransit,
		Delivered: stats.Delivered,
	}
}

func commandContact(input ContactInput) commands.ContactInput {
	return commands.ContactInput{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Street:  input.Street,
		City:    input.City,
		State:   input.State,
		ZipCode: input.ZipCode,
		Country: input.Country,
	}
}

func commandPackage(input PackageInput) commands.PackageInput {
	return commands.PackageInput{
		WeightGrams:   input.WeightGrams,
		LengthCm:      input.LengthCm,
		WidthCm:       input.WidthCm,
		HeightCm:      input.HeightCm,
		Description:   input.Description,
		DeclaredValue: input.DeclaredValue,
		Category:      input.Category,
		Images:        input.Images,
	}
}
