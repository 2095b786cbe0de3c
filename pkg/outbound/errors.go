package outbound

import (
	"errors"
	"fmt"
)

// Sentinel causes of a failed cancellation. Match with errors.Is:
//
//	if errors.Is(res.Err(), outbound.ErrAlreadyShipped) { ... }
var (
	// ErrInvalidIdentifier is the caller's fault: the id is not positive.
	ErrInvalidIdentifier = errors.New("invalid shipment identifier")

	// ErrNotFound means the lookup has no shipment for the id.
	ErrNotFound = errors.New("shipment not found")

	// ErrAlreadyShipped means the cancellation window is closed.
	ErrAlreadyShipped = errors.New("shipment already shipped")
)

// Kind classifies a cancellation failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidIdentifier
	KindNotFound
	KindAlreadyShipped
)

func (k Kind) String() string {
	switch k {
	case KindInvalidIdentifier:
		return "InvalidIdentifier"
	case KindNotFound:
		return "NotFound"
	case KindAlreadyShipped:
		return "AlreadyShipped"
	default:
		return "Unknown"
	}
}

var kindToSentinel = map[Kind]error{
	KindInvalidIdentifier: ErrInvalidIdentifier,
	KindNotFound:          ErrNotFound,
	KindAlreadyShipped:    ErrAlreadyShipped,
}

// Cause is the failure carried by a cancellation Result.
type Cause struct {
	Kind       Kind
	ShipmentID int64
	Message    string
}

func newCause(kind Kind, id int64, format string, args ...any) *Cause {
	return &Cause{Kind: kind, ShipmentID: id, Message: fmt.Sprintf(format, args...)}
}

func (c *Cause) Error() string {
	return c.Message
}

// Is lets errors.Is match a Cause against its sentinel.
func (c *Cause) Is(target error) bool {
	sentinel, ok := kindToSentinel[c.Kind]
	return ok && target == sentinel
}

// KindOf walks the error chain and reports the first known kind.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var cause *Cause
	if errors.As(err, &cause) {
		return cause.Kind
	}
	for _, k := range []Kind{KindInvalidIdentifier, KindNotFound, KindAlreadyShipped} {
		if errors.Is(err, kindToSentinel[k]) {
			return k
		}
	}
	return KindUnknown
}
