package outbound

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ib-77/outbound/pkg/rop"
)

// ParseIdentifier reads an id as it arrives in a request path or on a command
// line. Only the syntax is checked; ValidateIdentifier still owns the range.
func ParseIdentifier(_ context.Context, raw string) rop.Result[int64] {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return rop.Fail[int64](newCause(KindInvalidIdentifier, 0, "shipment id %q is not an integer", raw))
	}
	return rop.Success(id)
}

// ValidateIdentifier accepts only positive ids.
func ValidateIdentifier(_ context.Context, id int64) rop.Result[int64] {
	if id <= 0 {
		return rop.Fail[int64](newCause(KindInvalidIdentifier, id, "shipment id must be positive, got %d", id))
	}
	return rop.Success(id)
}

// CheckCancelable lets every shipment through unchanged except a shipped one.
func CheckCancelable(_ context.Context, s Shipment) rop.Result[Shipment] {
	if s.Status == StatusShipped {
		return rop.Fail[Shipment](alreadyShipped(s.ID))
	}
	return rop.Success(s)
}

// DeriveCancellationEvents maps the shipment status to the ordered
// compensating events. Picking only flags the shipment: an in-progress pick
// runs to completion, so no inventory transfer is cancelled there.
func DeriveCancellationEvents(_ context.Context, s Shipment) rop.Result[[]Event] {
	switch s.Status {
	case StatusScheduled:
		return rop.Success([]Event{
			ShipmentCancelled{ShipmentID: s.ID},
		})
	case StatusAllocated:
		return rop.Success([]Event{
			ShipmentCancelled{ShipmentID: s.ID},
			InventoryTransferCancelled{ShipmentID: s.ID},
		})
	case StatusPicking:
		return rop.Success([]Event{
			ShipmentCancelled{ShipmentID: s.ID},
		})
	case StatusPickComplete:
		return rop.Success([]Event{
			ShipmentCancelled{ShipmentID: s.ID},
			RestoreInstructionCreated{ShipmentID: s.ID, Items: copyItems(s.Items)},
		})
	case StatusShipped:
		return rop.Fail[[]Event](alreadyShipped(s.ID))
	default:
		// Store and ParseStatus reject unknown statuses; reaching here is a bug.
		panic(fmt.Sprintf("outbound: unhandled shipment status %v", s.Status))
	}
}

func alreadyShipped(id int64) *Cause {
	return newCause(KindAlreadyShipped, id, "shipment %d has already shipped and cannot be cancelled", id)
}
