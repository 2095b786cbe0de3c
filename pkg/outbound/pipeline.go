package outbound

import (
	"context"

	"github.com/ib-77/outbound/pkg/rop"
	"github.com/ib-77/outbound/pkg/rop/chain"
)

// Lookup finds a shipment by id, failing with ErrNotFound when absent.
type Lookup interface {
	Find(ctx context.Context, id int64) rop.Result[Shipment]
}

// LookupFunc adapts a plain function to Lookup.
type LookupFunc func(ctx context.Context, id int64) rop.Result[Shipment]

func (f LookupFunc) Find(ctx context.Context, id int64) rop.Result[Shipment] {
	return f(ctx, id)
}

// IdentifierValidator checks a raw shipment id before lookup.
type IdentifierValidator func(ctx context.Context, id int64) rop.Result[int64]

// Canceller runs validate -> lookup -> gate -> derive. Each step sees only a
// successful predecessor; the first failure is returned as is.
type Canceller struct {
	validate IdentifierValidator
	lookup   Lookup
	gate     func(ctx context.Context, s Shipment) rop.Result[Shipment]
	derive   func(ctx context.Context, s Shipment) rop.Result[[]Event]
}

type Option func(*Canceller)

// WithIdentifierValidator replaces ValidateIdentifier.
func WithIdentifierValidator(v IdentifierValidator) Option {
	return func(c *Canceller) {
		if v != nil {
			c.validate = v
		}
	}
}

func NewCanceller(lookup Lookup, opts ...Option) *Canceller {
	c := &Canceller{
		validate: ValidateIdentifier,
		lookup:   lookup,
		gate:     CheckCancelable,
		derive:   DeriveCancellationEvents,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Canceller) Cancel(ctx context.Context, id int64) rop.Result[[]Event] {
	validated := chain.Start(ctx, c.validate(ctx, id))
	found := chain.Then(validated, func(ctx context.Context, id int64) rop.Result[Shipment] {
		return c.lookup.Find(ctx, id)
	})
	cancelable := chain.Then(found, c.gate)
	return chain.Then(cancelable, c.derive).Result()
}

// CancelShipment is the one-shot form of NewCanceller(lookup).Cancel(ctx, id).
func CancelShipment(ctx context.Context, lookup Lookup, id int64) rop.Result[[]Event] {
	return NewCanceller(lookup).Cancel(ctx, id)
}

// CancelImperative computes the same outcome with early returns instead of a
// chain. It stays as the reference the chained form is tested against.
func CancelImperative(ctx context.Context, lookup Lookup, id int64) ([]Event, error) {
	if _, err := ValidateIdentifier(ctx, id).Get(); err != nil {
		return nil, err
	}
	s, err := lookup.Find(ctx, id).Get()
	if err != nil {
		return nil, err
	}
	if s.Status == StatusShipped {
		return nil, alreadyShipped(s.ID)
	}
	return DeriveCancellationEvents(ctx, s).Get()
}
