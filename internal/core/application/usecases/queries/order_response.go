package queries

import (
	"time"

	"haulix/internal/core/domain/model/order"
)

// OrderResponse is the flat projection of an order aggregate handed to
// the transport layer. Money amounts are in cents.
type OrderResponse struct {
	ID                string
	TrackingNumber    string
	Status            string
	PaymentStatus     string
	Sender            ContactResponse
	Recipient         ContactResponse
	Package           PackageResponse
	ServiceTier       string
	CostCents         int64
	EstimatedDelivery time.Time
	DeliveredAt       *time.Time
	History           []HistoryEntryResponse
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ContactResponse projects a sender or recipient.
type ContactResponse struct {
	Name    string
	Email   string
	Phone   string
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

// PackageResponse projects the package details.
type PackageResponse struct {
	WeightGrams   int
	LengthCm      int
	WidthCm       int
	HeightCm      int
	Description   string
	DeclaredValue int64
	Category      string
	Images        []string
}

// HistoryEntryResponse projects one append-only history entry.
type HistoryEntryResponse struct {
	Status    string
	Timestamp time.Time
	Location  string
	Note      string
}

// NewOrderResponse projects an order aggregate into its response form.
func NewOrderResponse(o *order.Order) OrderResponse {
	history := o.History()
	entries := make([]HistoryEntryResponse, 0, len(history))
	for _, e := range history {
		entries = append(entries, HistoryEntryResponse{
			Status:    e.Status().String(),
			Timestamp: e.Timestamp(),
			Location:  e.Location(),
			Note:      e.Note(),
		})
	}

	return OrderResponse{
		ID:                o.ID().String(),
		TrackingNumber:    o.TrackingNumber(),
		Status:            o.Status().String(),
		PaymentStatus:     o.PaymentStatus().String(),
		Sender:            newContactResponse(o.Sender()),
		Recipient:         newContactResponse(o.Recipient()),
		Package:           newPackageResponse(o.Package()),
		ServiceTier:       o.Shipping().Tier().String(),
		CostCents:         o.Shipping().Cost(),
		EstimatedDelivery: o.Shipping().EstimatedDelivery(),
		DeliveredAt:       o.DeliveredAt(),
		History:           entries,
		CreatedAt:         o.CreatedAt(),
		UpdatedAt:         o.UpdatedAt(),
	}
}

func newContactResponse(c order.ContactDetails) ContactResponse {
	return ContactResponse{
		Name:    c.Name(),
		Email:   c.Email(),
		Phone:   c.Phone(),
		Street:  c.Address().Street(),
		City:    c.Address().City(),
		State:   c.Address().State(),
		ZipCode: c.Address().ZipCode(),
		Country: c.Address().Country(),
	}
}

func newPackageResponse(p order.PackageDetails) PackageResponse {
	return PackageResponse{
		WeightGrams:   p.WeightGrams(),
		LengthCm:      p.LengthCm(),
		WidthCm:       p.WidthCm(),
		HeightCm:      p.HeightCm(),
		Description:   p.Description(),
		DeclaredValue: p.DeclaredValue(),
		Category:      p.Category().String(),
		Images:        p.Images(),
	}
}
