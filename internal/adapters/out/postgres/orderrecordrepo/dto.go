// Package orderrecordrepo persists order records in PostgreSQL, implementing
// the conditional-write contract with row-level locking. Each record is keyed
// by the (record_type, order_id) composite, one consistent scheme for every
// flow.
package orderrecordrepo

import (
	"time"

	"ordermanager/internal/core/domain/model/kernel"
	"ordermanager/internal/core/domain/model/order"

	"github.com/lib/pq"
)

// OrderRecordDTO is the database representation of an order record.
type OrderRecordDTO struct {
	RecordType    string         `gorm:"primaryKey;size:32"`
	OrderID       string         `gorm:"primaryKey;size:128"`
	UserID        string         `gorm:"size:128;index"`
	Drink         string         `gorm:"size:128"`
	Modifiers     pq.StringArray `gorm:"type:text[]"`
	State         int
	BaristaUserID *string `gorm:"size:128"`
	CallbackToken string  `gorm:"size:128"`
	SuspendedAt   time.Time
	LastUpdated   time.Time
}

// TableName overrides GORM's default naming to use "order_records".
func (OrderRecordDTO) TableName() string {
	return "order_records"
}

func fromDomain(recordType string, record *order.Order) OrderRecordDTO {
	var baristaID *string
	if barista := record.Barista(); barista != nil {
		raw := barista.String()
		baristaID = &raw
	}

	drinkOrder := record.DrinkOrder()
	return OrderRecordDTO{
		RecordType:    recordType,
		OrderID:       record.ID().String(),
		UserID:        record.UserID().String(),
		Drink:         drinkOrder.Drink(),
		Modifiers:     pq.StringArray(drinkOrder.Modifiers()),
		State:         int(record.State()),
		BaristaUserID: baristaID,
		CallbackToken: record.CallbackToken().String(),
		SuspendedAt:   record.SuspendedAt(),
		LastUpdated:   record.LastUpdated(),
	}
}

func toDomain(dto OrderRecordDTO) (*order.Order, error) {
	id, err := kernel.NewOrderID(dto.OrderID)
	if err != nil {
		return nil, err
	}

	userID, err := kernel.NewUserID(dto.UserID)
	if err != nil {
		return nil, err
	}

	drinkOrder, err := order.NewDrinkOrder(dto.Drink, dto.Modifiers)
	if err != nil {
		return nil, err
	}

	var baristaID *kernel.UserID
	if dto.BaristaUserID != nil {
		bID, baristaErr := kernel.NewUserID(*dto.BaristaUserID)
		if baristaErr != nil {
			return nil, baristaErr
		}
		baristaID = &bID
	}

	// A consumed or never-issued token is stored as the empty string and
	// restores to the meaningful zero value.
	var token kernel.CallbackToken
	if dto.CallbackToken != "" {
		token, err = kernel.NewCallbackToken(dto.CallbackToken)
		if err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(id, userID, drinkOrder, order.State(dto.State),
		baristaID, token, dto.SuspendedAt, dto.LastUpdated)
}
