package outbound

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ib-77/outbound/pkg/rop"
	"github.com/ib-77/outbound/pkg/rop/solo"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("shipment_status", func(fl validator.FieldLevel) bool {
		s, ok := fl.Field().Interface().(Status)
		return ok && s.Valid()
	})
	return v
}

// ValidateShipment checks ids, quantities and status of a shipment.
func ValidateShipment(s Shipment) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("shipment %d: %w", s.ID, err)
	}
	return nil
}

// Store is an in-memory Lookup. Readers may run concurrently.
type Store struct {
	mu        sync.RWMutex
	shipments map[int64]Shipment
}

func NewStore(shipments ...Shipment) (*Store, error) {
	s := &Store{shipments: make(map[int64]Shipment, len(shipments))}
	for _, sh := range shipments {
		if err := s.Put(sh); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Put validates and stores a copy of sh, replacing any shipment with the same id.
func (s *Store) Put(sh Shipment) error {
	if err := ValidateShipment(sh); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shipments[sh.ID] = sh.clone()
	return nil
}

func (s *Store) Find(_ context.Context, id int64) rop.Result[Shipment] {
	s.mu.RLock()
	sh, ok := s.shipments[id]
	s.mu.RUnlock()
	if !ok {
		return rop.Fail[Shipment](newCause(KindNotFound, id, "shipment %d not found", id))
	}
	return rop.Success(sh.clone())
}

// IDs returns the stored ids in ascending order.
func (s *Store) IDs() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]int64, 0, len(s.shipments))
	for id := range s.shipments {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.shipments)
}

type fixtureFile struct {
	Shipments []Shipment `yaml:"shipments"`
}

// LoadFixtures decodes a YAML document of the form
//
//	shipments:
//	  - id: 2
//	    status: Allocated
//	    items:
//	      - {product_id: 100, quantity: 5, location_id: 1}
//
// and reports every invalid or duplicated shipment at once.
func LoadFixtures(ctx context.Context, r io.Reader) rop.Result[[]Shipment] {
	decoded := solo.Try(ctx, rop.Success(r), func(_ context.Context, r io.Reader) ([]Shipment, error) {
		var f fixtureFile
		if err := yaml.NewDecoder(r).Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode fixtures: %w", err)
		}
		return f.Shipments, nil
	})
	if !decoded.IsSuccess() {
		return decoded
	}

	shipments := decoded.Result()
	seen := make(map[int64]bool, len(shipments))
	checks := make([]func(ctx context.Context, in rop.Result[[]Shipment]) rop.Result[[]Shipment], 0, len(shipments))
	for _, sh := range shipments {
		sh := sh
		duplicate := seen[sh.ID]
		seen[sh.ID] = true
		checks = append(checks, func(_ context.Context, _ rop.Result[[]Shipment]) rop.Result[[]Shipment] {
			if duplicate {
				return rop.Fail[[]Shipment](fmt.Errorf("shipment %d: duplicate id", sh.ID))
			}
			if err := ValidateShipment(sh); err != nil {
				return rop.Fail[[]Shipment](err)
			}
			return rop.Success(shipments)
		})
	}
	return solo.ValidateAll(ctx, decoded, false, checks...)
}

// DemoShipments is the sample data set used by the CLI and examples when no
// fixture file is configured.
func DemoShipments() []Shipment {
	return []Shipment{
		{ID: 1, Status: StatusScheduled, Items: []LineItem{}},
		{ID: 2, Status: StatusAllocated, Items: []LineItem{{ProductID: 100, Quantity: 5, LocationID: 1}}},
		{ID: 3, Status: StatusPickComplete, Items: []LineItem{{ProductID: 200, Quantity: 3, LocationID: 2}}},
		{ID: 4, Status: StatusShipped, Items: []LineItem{}},
		{ID: 123, Status: StatusAllocated, Items: []LineItem{{ProductID: 100, Quantity: 5, LocationID: 1}}},
	}
}
