package orderrecordrepo

import (
	"context"
	"errors"

	"ordermanager/internal/core/domain/model/order"
	"ordermanager/internal/core/ports"
	"ordermanager/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const pgUniqueViolation = "23505"

// GormOrderRecordStore implements ports.OrderRecordStore using GORM.
// Conditional updates run in a transaction holding a FOR UPDATE row lock, so
// predicate evaluation and mutation are one critical section per record.
type GormOrderRecordStore struct {
	db *gorm.DB
}

// NewGormOrderRecordStore creates a new GORM order record store.
func NewGormOrderRecordStore(db *gorm.DB) *GormOrderRecordStore {
	return &GormOrderRecordStore{db: db}
}

// Get retrieves the record for the key.
func (r *GormOrderRecordStore) Get(ctx context.Context, key ports.RecordKey) (*order.Order, error) {
	if err := key.OrderID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderRecordDTO
	err := r.db.WithContext(ctx).
		First(&dto, "record_type = ? AND order_id = ?", key.RecordType, key.OrderID.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", key.OrderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Create persists a brand new record. The composite primary key turns a
// concurrent create race into a unique violation, reported as a conflict.
func (r *GormOrderRecordStore) Create(ctx context.Context, record *order.Order) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(ports.OrderRecordType, record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isDuplicateKey(err) {
			return errs.NewPreconditionFailedErrorWithCause(
				record.ID().String(), "record does not already exist", err)
		}
		return err
	}

	return nil
}

// ConditionalUpdate locks the row, evaluates the predicate, applies the
// mutation through the aggregate, and writes the result back. The returned
// record is the post-update state, no second round trip.
func (r *GormOrderRecordStore) ConditionalUpdate(
	ctx context.Context,
	key ports.RecordKey,
	predicate ports.Predicate,
	mutation ports.Mutation,
) (*order.Order, error) {
	if err := key.OrderID.Validate(); err != nil {
		return nil, err
	}

	var updated *order.Order
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dto OrderRecordDTO
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&dto, "record_type = ? AND order_id = ?", key.RecordType, key.OrderID.String()).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewObjectNotFoundError("orderId", key.OrderID.String())
			}
			return err
		}

		record, err := toDomain(dto)
		if err != nil {
			return err
		}

		if err := predicate.Evaluate(record); err != nil {
			return err
		}
		if err := mutation.Apply(record); err != nil {
			return err
		}

		next := fromDomain(key.RecordType, record)
		err = tx.Model(&OrderRecordDTO{}).
			Where("record_type = ? AND order_id = ?", key.RecordType, key.OrderID.String()).
			Select("*").Updates(&next).Error
		if err != nil {
			return err
		}

		updated = record
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
