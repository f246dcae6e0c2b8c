// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. The order root and its per-shop parts live in separate
// tables linked by a foreign key; line items travel inside the shop order row
// as a JSON document since they are never queried individually.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Address       string         `gorm:"type:varchar(512);not null"`
	Latitude      float64        `gorm:"type:double precision;not null"`
	Longitude     float64        `gorm:"type:double precision;not null"`
	PaymentMethod string         `gorm:"type:varchar(16);not null"`
	TotalAmount   float64        `gorm:"type:numeric;not null"`
	CreatedAt     time.Time      `gorm:"autoCreateTime;index"`
	ShopOrders    []ShopOrderDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ShopOrderDTO represents the database structure for persisting the per-shop
// parts of an order. Stage is stored in its text form.
type ShopOrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	ShopID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	MerchantID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Subtotal     float64    `gorm:"type:numeric;not null"`
	Items        []ItemDTO  `gorm:"serializer:json;type:jsonb"`
	Stage        string     `gorm:"type:varchar(32);not null"`
	AssignmentID *uuid.UUID `gorm:"type:uuid;index"`
	CourierID    *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for shop order entities.
func (ShopOrderDTO) TableName() string {
	return "shop_orders"
}

// ItemDTO is the JSON shape of one line item inside a shop order row.
type ItemDTO struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	ImageURL string  `json:"imageUrl"`
	FoodType string  `json:"foodType"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	shopOrders := make([]ShopOrderDTO, 0, len(aggregate.ShopOrders()))

	for _, so := range aggregate.ShopOrders() {
		items := make([]ItemDTO, 0, len(so.Items()))
		for _, item := range so.Items() {
			items = append(items, ItemDTO{
				Name:     item.Name(),
				Price:    item.Price(),
				Quantity: item.Quantity(),
				ImageURL: item.ImageURL(),
				FoodType: string(item.FoodType()),
			})
		}

		var assignmentID, courierID *uuid.UUID
		if so.AssignmentID() != nil {
			raw := so.AssignmentID().Bytes()
			assignmentID = &raw
		}
		if so.CourierID() != nil {
			raw := so.CourierID().Bytes()
			courierID = &raw
		}

		shopOrders = append(shopOrders, ShopOrderDTO{
			ID:           so.ID().Bytes(),
			OrderID:      orderID,
			ShopID:       so.ShopID().Bytes(),
			MerchantID:   so.MerchantID().Bytes(),
			Subtotal:     so.Subtotal(),
			Items:        items,
			Stage:        so.Stage().String(),
			AssignmentID: assignmentID,
			CourierID:    courierID,
		})
	}

	return OrderDTO{
		ID:            orderID,
		CustomerID:    aggregate.CustomerID().Bytes(),
		Address:       aggregate.Address(),
		Latitude:      aggregate.Destination().Latitude(),
		Longitude:     aggregate.Destination().Longitude(),
		PaymentMethod: string(aggregate.PaymentMethod()),
		TotalAmount:   aggregate.TotalAmount(),
		ShopOrders:    shopOrders,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	destination, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	shopOrders := make([]*order.ShopOrder, 0, len(dto.ShopOrders))
	for _, soDto := range dto.ShopOrders {
		so, soErr := shopOrderToDomain(soDto)
		if soErr != nil {
			return nil, soErr
		}
		shopOrders = append(shopOrders, so)
	}

	return order.RestoreOrder(
		id,
		customerID,
		dto.Address,
		destination,
		order.PaymentMethod(dto.PaymentMethod),
		dto.TotalAmount,
		shopOrders,
	)
}

// shopOrderToDomain converts a shop order DTO to its domain entity.
func shopOrderToDomain(dto ShopOrderDTO) (*order.ShopOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shopID, err := kernel.UUIDFromBytes(dto.ShopID[:])
	if err != nil {
		return nil, err
	}

	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}

	stage, err := order.StageFromString(dto.Stage)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := order.NewItem(
			itemDto.Name,
			itemDto.Price,
			itemDto.Quantity,
			itemDto.ImageURL,
			order.FoodType(itemDto.FoodType),
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var assignmentID, courierID *kernel.UUID
	if dto.AssignmentID != nil {
		aID, aErr := kernel.UUIDFromBytes((*dto.AssignmentID)[:])
		if aErr != nil {
			return nil, aErr
		}
		assignmentID = &aID
	}
	if dto.CourierID != nil {
		cID, cErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if cErr != nil {
			return nil, cErr
		}
		courierID = &cID
	}

	return order.RestoreShopOrder(id, shopID, merchantID, dto.Subtotal, items, stage, assignmentID, courierID)
}
