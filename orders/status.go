package orders

import "backoffice/models"

// statusRank orders the forward chain pending -> processing -> shipped ->
// delivered. Cancelled sits outside the chain and is reachable only from
// pending.
var statusRank = map[models.OrderStatus]int{
	models.OrderStatusPending:    0,
	models.OrderStatusProcessing: 1,
	models.OrderStatusShipped:    2,
	models.OrderStatusDelivered:  3,
}

// CanTransition reports whether an order may move from one status to
// another. Only forward moves along the chain are allowed, plus
// pending -> cancelled. Delivered and cancelled are terminal.
func CanTransition(from, to models.OrderStatus) bool {
	if to == models.OrderStatusCancelled {
		return from == models.OrderStatusPending
	}
	fromRank, ok := statusRank[from]
	if !ok {
		return false
	}
	toRank, ok := statusRank[to]
	if !ok {
		return false
	}
	return toRank > fromRank
}

// IsTerminal reports whether no further status changes are possible.
func IsTerminal(status models.OrderStatus) bool {
	return status == models.OrderStatusDelivered || status == models.OrderStatusCancelled
}
