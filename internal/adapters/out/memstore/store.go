// Package memstore implements the order record store in memory. It honors
// the same conditional-write contract as the PostgreSQL adapter and backs
// local runs and tests that do not need a database.
package memstore

import (
	"context"
	"sync"

	"ordermanager/internal/core/domain/model/order"
	"ordermanager/internal/core/ports"
	"ordermanager/internal/pkg/errs"
)

// Store keeps order records in a map guarded by one mutex. The mutex is the
// critical section conditional writes need; records are snapshotted on every
// read and write so callers never share mutable aggregate state.
type Store struct {
	mu      sync.Mutex
	records map[ports.RecordKey]*order.Order
}

// NewStore creates an empty in-memory order record store.
func NewStore() *Store {
	return &Store{records: make(map[ports.RecordKey]*order.Order)}
}

// Get retrieves the record for the key.
func (s *Store) Get(_ context.Context, key ports.RecordKey) (*order.Order, error) {
	if err := key.OrderID.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[key]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", key.OrderID.String())
	}

	return snapshot(record)
}

// Create persists a brand new record; an existing record for the same key is
// reported as a conflict, never overwritten.
func (s *Store) Create(_ context.Context, record *order.Order) error {
	if err := record.Validate(); err != nil {
		return err
	}

	key := ports.NewOrderKey(record.ID())

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[key]; ok {
		return errs.NewPreconditionFailedError(record.ID().String(), "record does not already exist")
	}

	stored, err := snapshot(record)
	if err != nil {
		return err
	}
	s.records[key] = stored
	return nil
}

// ConditionalUpdate evaluates the predicate and applies the mutation under
// the store lock, returning the post-update record.
func (s *Store) ConditionalUpdate(
	_ context.Context,
	key ports.RecordKey,
	predicate ports.Predicate,
	mutation ports.Mutation,
) (*order.Order, error) {
	if err := key.OrderID.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.records[key]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", key.OrderID.String())
	}

	// Mutate a snapshot so a failed predicate or transition leaves the
	// stored record untouched.
	next, err := snapshot(current)
	if err != nil {
		return nil, err
	}

	if err := predicate.Evaluate(next); err != nil {
		return nil, err
	}
	if err := mutation.Apply(next); err != nil {
		return nil, err
	}

	s.records[key] = next
	return snapshot(next)
}

func snapshot(record *order.Order) (*order.Order, error) {
	barista := record.Barista()
	if barista != nil {
		copied := *barista
		barista = &copied
	}

	return order.RestoreOrder(
		record.ID(),
		record.UserID(),
		record.DrinkOrder(),
		record.State(),
		barista,
		record.CallbackToken(),
		record.SuspendedAt(),
		record.LastUpdated(),
	)
}
