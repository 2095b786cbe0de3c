package outbound

import (
	"fmt"
	"strings"
)

type EventType string

const (
	TypeShipmentCancelled          EventType = "ShipmentCancelled"
	TypeInventoryTransferCancelled EventType = "InventoryTransferCancelled"
	TypeRestoreInstructionCreated  EventType = "RestoreInstructionCreated"
)

// Event is a compensating fact derived from a cancellation. The set of
// implementations is closed to this package.
type Event interface {
	Type() EventType
	ForShipment() int64
	isEvent()
}

// ShipmentCancelled flags the shipment itself as cancelled.
type ShipmentCancelled struct {
	ShipmentID int64
}

// InventoryTransferCancelled frees the inventory reserved for the shipment.
type InventoryTransferCancelled struct {
	ShipmentID int64
}

// RestoreInstructionCreated asks the floor to put picked stock back.
type RestoreInstructionCreated struct {
	ShipmentID int64
	Items      []LineItem
}

func (ShipmentCancelled) Type() EventType          { return TypeShipmentCancelled }
func (InventoryTransferCancelled) Type() EventType { return TypeInventoryTransferCancelled }
func (RestoreInstructionCreated) Type() EventType  { return TypeRestoreInstructionCreated }

func (e ShipmentCancelled) ForShipment() int64          { return e.ShipmentID }
func (e InventoryTransferCancelled) ForShipment() int64 { return e.ShipmentID }
func (e RestoreInstructionCreated) ForShipment() int64  { return e.ShipmentID }

func (ShipmentCancelled) isEvent()          {}
func (InventoryTransferCancelled) isEvent() {}
func (RestoreInstructionCreated) isEvent()  {}

func (e ShipmentCancelled) String() string {
	return fmt.Sprintf("%s(shipment=%d)", e.Type(), e.ShipmentID)
}

func (e InventoryTransferCancelled) String() string {
	return fmt.Sprintf("%s(shipment=%d)", e.Type(), e.ShipmentID)
}

func (e RestoreInstructionCreated) String() string {
	items := make([]string, 0, len(e.Items))
	for _, it := range e.Items {
		items = append(items, it.String())
	}
	return fmt.Sprintf("%s(shipment=%d, items=[%s])", e.Type(), e.ShipmentID, strings.Join(items, " "))
}
