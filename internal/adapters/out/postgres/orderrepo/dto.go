// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its lowercase string form, indexed together with the
// owner for the listing filters.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID          int64     `gorm:"index"`
	Status          string    `gorm:"type:varchar(16);index"`
	ShippingAddress string    `gorm:"type:varchar(255)"`
	Phone           string    `gorm:"type:varchar(16)"`
	Comment         string    `gorm:"type:varchar(500)"`
	CancelReason    string    `gorm:"type:varchar(300)"`
	CreatedAt       time.Time `gorm:"index;autoCreateTime:false"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime:false"`

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one frozen order line. The snapshot is flattened
// into columns so subtotals can be summed in SQL; money columns are
// fixed-point decimals.
type OrderItemDTO struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID       `gorm:"type:uuid;index"`
	ProductID  int64           `gorm:"index"`
	Name       string          `gorm:"type:varchar(255)"`
	Price      decimal.Decimal `gorm:"type:decimal(12,2)"`
	ImageURL   *string         `gorm:"type:varchar(500)"`
	CategoryID int64
	Quantity   int
	Subtotal   decimal.Decimal `gorm:"type:decimal(14,2)"`
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation,
// including all line items.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))

	for _, item := range items {
		snapshot := item.Snapshot()
		itemDTOs = append(itemDTOs, OrderItemDTO{
			OrderID:    aggregate.ID().Bytes(),
			ProductID:  snapshot.ProductID(),
			Name:       snapshot.Name(),
			Price:      snapshot.Price(),
			ImageURL:   snapshot.ImageURL(),
			CategoryID: snapshot.CategoryID(),
			Quantity:   item.Quantity(),
			Subtotal:   item.Subtotal(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		UserID:          aggregate.UserID(),
		Status:          aggregate.Status().String(),
		ShippingAddress: aggregate.ShippingAddress().String(),
		Phone:           aggregate.Phone().String(),
		Comment:         aggregate.Comment(),
		CancelReason:    aggregate.CancelReason(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
		Items:           itemDTOs,
	}
}

// toDomain converts database DTOs back into an order domain aggregate.
// Reconstructs the complete aggregate including frozen items using RestoreOrder.
func toDomain(dto OrderDTO, itemDTOs []OrderItemDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	shippingAddress, err := kernel.NewShippingAddress(dto.ShippingAddress)
	if err != nil {
		return nil, err
	}

	phone, err := kernel.NewPhone(dto.Phone)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		snapshot, snapErr := order.NewSnapshot(
			itemDTO.ProductID,
			itemDTO.Name,
			itemDTO.Price,
			itemDTO.ImageURL,
			itemDTO.CategoryID,
		)
		if snapErr != nil {
			return nil, snapErr
		}

		item, itemErr := order.RestoreItem(snapshot, itemDTO.Quantity, itemDTO.Subtotal)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.UserID,
		status,
		shippingAddress,
		phone,
		dto.Comment,
		dto.CancelReason,
		dto.CreatedAt,
		dto.UpdatedAt,
		items,
	)
}
