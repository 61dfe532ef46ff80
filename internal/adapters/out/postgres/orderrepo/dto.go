// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Nested collections are stored as JSONB documents; lookups go through the
// unique order number, the state index, and the updated_at index used by
// the abandoned-checkout sweep.
type OrderDTO struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Number         string         `gorm:"uniqueIndex"`
	Email          string
	State          string         `gorm:"index"`
	Steps          []string       `gorm:"serializer:json;type:jsonb"`
	LineItems      []LineItemDTO  `gorm:"serializer:json;type:jsonb"`
	BillAddress    *AddressDTO    `gorm:"serializer:json;type:jsonb"`
	ShipAddress    *AddressDTO    `gorm:"serializer:json;type:jsonb"`
	Payments       []PaymentDTO   `gorm:"serializer:json;type:jsonb"`
	PaymentMethods []string       `gorm:"serializer:json;type:jsonb"`
	Shipments      []ShipmentDTO  `gorm:"serializer:json;type:jsonb"`
	CouponCode     string
	UserID         *uuid.UUID     `gorm:"type:uuid;index"`
	TotalCents     int64
	Currency       string
	UpdatedAt      time.Time      `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO is the JSON shape of one order position.
type LineItemDTO struct {
	SKU            string `json:"sku"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	AvailableQty   int    `json:"available_qty"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Currency       string `json:"currency"`
	Shippable      bool   `json:"shippable"`
}

// AddressDTO is the JSON shape of a billing or shipping address.
type AddressDTO struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Street    string `json:"street"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
}

// PaymentDTO is the JSON shape of a recorded payment attempt.
type PaymentDTO struct {
	MethodID    string         `json:"method_id"`
	AmountCents int64          `json:"amount_cents"`
	Currency    string         `json:"currency"`
	Source      map[string]any `json:"source,omitempty"`
}

// ShipmentDTO is the JSON shape of a proposed shipment.
type ShipmentDTO struct {
	SKUs []string `json:"skus"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var userID *uuid.UUID
	if id := aggregate.UserID(); id != nil {
		raw := id.Value()
		userID = &raw
	}

	steps := make([]string, 0)
	for _, s := range aggregate.StepSet().Steps() {
		steps = append(steps, s.String())
	}

	lineItems := make([]LineItemDTO, 0)
	for _, li := range aggregate.LineItems() {
		lineItems = append(lineItems, LineItemDTO{
			SKU:            li.SKU(),
			Name:           li.Name(),
			Quantity:       li.Quantity(),
			AvailableQty:   li.AvailableQuantity(),
			UnitPriceCents: li.UnitPrice().Cents(),
			Currency:       li.UnitPrice().Currency(),
			Shippable:      li.IsShippable(),
		})
	}

	payments := make([]PaymentDTO, 0)
	for _, p := range aggregate.Payments() {
		payments = append(payments, PaymentDTO{
			MethodID:    p.MethodID(),
			AmountCents: p.Amount().Cents(),
			Currency:    p.Amount().Currency(),
			Source:      p.Source(),
		})
	}

	shipments := make([]ShipmentDTO, 0)
	for _, s := range aggregate.Shipments() {
		shipments = append(shipments, ShipmentDTO{SKUs: s.SKUs()})
	}

	return OrderDTO{
		ID:             aggregate.ID().Value(),
		Number:         aggregate.Number(),
		Email:          aggregate.Email(),
		State:          aggregate.State().String(),
		Steps:          steps,
		LineItems:      lineItems,
		BillAddress:    addressToDTO(aggregate.BillAddress()),
		ShipAddress:    addressToDTO(aggregate.ShipAddress()),
		Payments:       payments,
		PaymentMethods: aggregate.PaymentMethods(),
		Shipments:      shipments,
		CouponCode:     aggregate.CouponCode(),
		UserID:         userID,
		TotalCents:     aggregate.Total().Cents(),
		Currency:       aggregate.Total().Currency(),
		UpdatedAt:      aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate via RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	steps := make([]order.CheckoutState, 0, len(dto.Steps))
	for _, s := range dto.Steps {
		steps = append(steps, order.CheckoutState(s))
	}
	stepSet, err := order.NewStepSet(steps...)
	if err != nil {
		return nil, err
	}

	lineItems := make([]order.LineItem, 0, len(dto.LineItems))
	for _, liDTO := range dto.LineItems {
		unitPrice, priceErr := kernel.NewMoney(liDTO.UnitPriceCents, liDTO.Currency)
		if priceErr != nil {
			return nil, priceErr
		}
		li, liErr := order.NewLineItem(
			liDTO.SKU, liDTO.Name, liDTO.Quantity, liDTO.AvailableQty, unitPrice, liDTO.Shippable,
		)
		if liErr != nil {
			return nil, liErr
		}
		lineItems = append(lineItems, li)
	}

	billAddress, err := addressFromDTO(dto.BillAddress)
	if err != nil {
		return nil, err
	}
	shipAddress, err := addressFromDTO(dto.ShipAddress)
	if err != nil {
		return nil, err
	}

	payments := make([]order.Payment, 0, len(dto.Payments))
	for _, pDTO := range dto.Payments {
		amount, amountErr := kernel.NewMoney(pDTO.AmountCents, pDTO.Currency)
		if amountErr != nil {
			return nil, amountErr
		}
		p, pErr := order.NewPayment(pDTO.MethodID, amount, pDTO.Source)
		if pErr != nil {
			return nil, pErr
		}
		payments = append(payments, p)
	}

	shipments := make([]order.Shipment, 0, len(dto.Shipments))
	for _, sDTO := range dto.Shipments {
		s, sErr := order.NewShipment(sDTO.SKUs)
		if sErr != nil {
			return nil, sErr
		}
		shipments = append(shipments, s)
	}

	var userID *kernel.UUID
	if dto.UserID != nil {
		uID, userErr := kernel.UUIDFromBytes((*dto.UserID)[:])
		if userErr != nil {
			return nil, userErr
		}
		userID = &uID
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:             id,
		Number:         dto.Number,
		Email:          dto.Email,
		State:          order.CheckoutState(dto.State),
		StepSet:        stepSet,
		LineItems:      lineItems,
		BillAddress:    billAddress,
		ShipAddress:    shipAddress,
		Payments:       payments,
		PaymentMethods: dto.PaymentMethods,
		Shipments:      shipments,
		CouponCode:     dto.CouponCode,
		UserID:         userID,
		UpdatedAt:      dto.UpdatedAt,
	})
}

func addressToDTO(address *order.Address) *AddressDTO {
	if address == nil {
		return nil
	}
	return &AddressDTO{
		FirstName: address.FirstName(),
		LastName:  address.LastName(),
		Street:    address.Street(),
		City:      address.City(),
		Zip:       address.Zip(),
		Country:   address.Country(),
	}
}

func addressFromDTO(dto *AddressDTO) (*order.Address, error) {
	if dto == nil {
		return nil, nil
	}
	address, err := order.NewAddress(dto.FirstName, dto.LastName, dto.Street, dto.City, dto.Zip, dto.Country)
	if err != nil {
		return nil, err
	}
	return &address, nil
}
