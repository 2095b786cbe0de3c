// Package outbound decides what must happen when an in-flight outbound
// shipment is cancelled.
//
// Cancel validates the id, looks the shipment up, refuses shipped shipments
// and derives the compensating events for the current status:
//
//	Scheduled     ShipmentCancelled
//	Allocated     ShipmentCancelled, InventoryTransferCancelled
//	Picking       ShipmentCancelled
//	PickComplete  ShipmentCancelled, RestoreInstructionCreated(items)
//	Shipped       fails with ErrAlreadyShipped
//
// Events are only derived, never delivered. Every step returns a rop.Result
// and the first failure ends the pipeline.
package outbound
