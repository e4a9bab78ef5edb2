// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. Statuses, tiers and categories are stored in
// their wire string form so the tables stay readable; the append-only
// status history lives in a jsonb column.
package orderrepo

import (
	"time"

	"haulix/internal/core/domain/model/kernel"
	"haulix/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The version column backs optimistic concurrency control.
type OrderDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerID        uuid.UUID  `gorm:"type:uuid;index"`
	TrackingNumber string     `gorm:"uniqueIndex;size:13"`
	Sender         ContactDTO `gorm:"embedded;embeddedPrefix:sender_"`
	Recipient      ContactDTO `gorm:"embedded;embeddedPrefix:recipient_"`

	WeightGrams   int
	LengthCm      int
	WidthCm       int
	HeightCm      int
	Description   string
	DeclaredValue int64
	Category      string
	Images        pq.StringArray `gorm:"type:text[]"`

	ServiceTier       string
	CostCents         int64
	EstimatedDelivery time.Time

	Status        string `gorm:"index"`
	PaymentStatus string
	StatusHistory []HistoryEntryDTO `gorm:"serializer:json;type:jsonb"`
	DeliveredAt   *time.Time

	CreatedAt time.Time `gorm:"autoCreateTime:false;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
	Version   int64
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ContactDTO represents an embedded sender or recipient block within the
// orders table.
type ContactDTO struct {
	Name    string
	Email   string
	Phone   string
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

// HistoryEntryDTO is one status history entry as serialized into jsonb.
type HistoryEntryDTO struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Location  string    `json:"location"`
	Note      string    `json:"note"`
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	history := aggregate.History()
	entries := make([]HistoryEntryDTO, 0, len(history))
	for _, e := range history {
		entries = append(entries, HistoryEntryDTO{
			Status:    e.Status().String(),
			Timestamp: e.Timestamp(),
			Location:  e.Location(),
			Note:      e.Note(),
		})
	}

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		OwnerID:        aggregate.OwnerID().Bytes(),
		TrackingNumber: aggregate.TrackingNumber(),
		Sender:         contactFromDomain(aggregate.Sender()),
		Recipient:      contactFromDomain(aggregate.Recipient()),

		WeightGrams:   aggregate.Package().WeightGrams(),
		LengthCm:      aggregate.Package().LengthCm(),
		WidthCm:       aggregate.Package().WidthCm(),
		HeightCm:      aggregate.Package().HeightCm(),
		Description:   aggregate.Package().Description(),
		DeclaredValue: aggregate.Package().DeclaredValue(),
		Category:      aggregate.Package().Category().String(),
		Images:        pq.StringArray(aggregate.Package().Images()),

		ServiceTier:       aggregate.Shipping().Tier().String(),
		CostCents:         aggregate.Shipping().Cost(),
		EstimatedDelivery: aggregate.Shipping().EstimatedDelivery(),

		Status:        aggregate.Status().String(),
		PaymentStatus: aggregate.PaymentStatus().String(),
		StatusHistory: entries,
		DeliveredAt:   aggregate.DeliveredAt(),

		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
		Version:   aggregate.Version(),
	}
}

func contactFromDomain(c order.ContactDetails) ContactDTO {
	return ContactDTO{
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

// toDomain converts a database DTO back into an order aggregate via
// RestoreOrder, re-running the domain validation on the way.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	sender, err := contactToDomain(dto.Sender)
	if err != nil {
		return nil, err
	}
	recipient, err := contactToDomain(dto.Recipient)
	if err != nil {
		return nil, err
	}

	category, err := order.PackageCategoryFromString(dto.Category)
	if err != nil {
		return nil, err
	}
	pkg, err := order.NewPackageDetails(
		dto.WeightGrams, dto.LengthCm, dto.WidthCm, dto.HeightCm,
		dto.Description, dto.DeclaredValue, category, dto.Images,
	)
	if err != nil {
		return nil, err
	}

	tier, err := order.ServiceTierFromString(dto.ServiceTier)
	if err != nil {
		return nil, err
	}
	shipping, err := order.NewShippingDetails(tier, dto.CostCents, dto.EstimatedDelivery)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	history := make([]order.HistoryEntry, 0, len(dto.StatusHistory))
	for _, e := range dto.StatusHistory {
		entryStatus, entryErr := order.StatusFromString(e.Status)
		if entryErr != nil {
			return nil, entryErr
		}
		entry, entryErr := order.NewHistoryEntry(entryStatus, e.Timestamp, e.Location, e.Note)
		if entryErr != nil {
			return nil, entryErr
		}
		history = append(history, entry)
	}

	return order.RestoreOrder(
		id, ownerID, dto.TrackingNumber,
		sender, recipient, pkg, shipping,
		status, paymentStatus, history,
		dto.DeliveredAt, dto.CreatedAt, dto.UpdatedAt, dto.Version,
	)
}

func contactToDomain(dto ContactDTO) (order.ContactDetails, error) {
	address, err := order.NewAddress(dto.Street, dto.City, dto.State, dto.ZipCode, dto.Country)
	if err != nil {
		return order.ContactDetails{}, err
	}
	return order.NewContactDetails(dto.Name, dto.Email, dto.Phone, address)
}
