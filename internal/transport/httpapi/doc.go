// Package httpapi exposes shipment cancellation over HTTP with gin.
//
//	POST /shipments/:id/cancel  200 events | 400 | 404 | 409
//	GET  /healthz
//	GET  /metrics
package httpapi
