package outbound

import (
	"fmt"
	"strings"
)

// Status is the workflow position of an outbound shipment. Later statuses
// mean more warehouse work has already been done.
type Status int

const (
	StatusScheduled Status = iota + 1
	StatusAllocated
	StatusPicking
	StatusPickComplete
	StatusShipped
)

var statusNames = map[Status]string{
	StatusScheduled:    "Scheduled",
	StatusAllocated:    "Allocated",
	StatusPicking:      "Picking",
	StatusPickComplete: "PickComplete",
	StatusShipped:      "Shipped",
}

// Statuses lists every status in workflow order.
func Statuses() []Status {
	return []Status{StatusScheduled, StatusAllocated, StatusPicking, StatusPickComplete, StatusShipped}
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

func (s Status) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

// ParseStatus accepts the canonical names case-insensitively, ignoring
// '_', '-' and spaces, so PICK_COMPLETE and pick-complete both parse.
func ParseStatus(raw string) (Status, error) {
	key := strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(raw))
	for _, s := range Statuses() {
		if strings.ToLower(s.String()) == key {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown shipment status %q", raw)
}

func (s Status) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid shipment status %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// LineItem is one product line of a shipment.
type LineItem struct {
	ProductID  int64 `json:"product_id" yaml:"product_id" validate:"gt=0"`
	Quantity   int   `json:"quantity" yaml:"quantity" validate:"gt=0"`
	LocationID int64 `json:"location_id" yaml:"location_id" validate:"gt=0"`
}

func (i LineItem) String() string {
	return fmt.Sprintf("%dx%d@%d", i.ProductID, i.Quantity, i.LocationID)
}

// Shipment is an outbound order evaluated for cancellation.
type Shipment struct {
	ID     int64      `json:"id" yaml:"id" validate:"gt=0"`
	Status Status     `json:"status" yaml:"status" validate:"shipment_status"`
	Items  []LineItem `json:"items" yaml:"items" validate:"dive"`
}

func copyItems(items []LineItem) []LineItem {
	if items == nil {
		return nil
	}
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}

func (s Shipment) clone() Shipment {
	s.Items = copyItems(s.Items)
	return s
}
