package orders

import "backoffice/models"

// Actor identifies who is performing a lifecycle operation. It is passed
// explicitly into every call; there is no ambient "current user".
type Actor struct {
	ID    uint
	Admin bool
}

// Owns reports whether the actor is the order's owner.
func (a Actor) Owns(order *models.Order) bool {
	return order.UserID != nil && *order.UserID == a.ID
}

// CanView: owners see their own orders, admins see all.
func (a Actor) CanView(order *models.Order) bool {
	return a.Admin || a.Owns(order)
}

// CanModifyItems gates item add/update/remove. Status gating (pending only)
// is enforced separately by the lifecycle operations themselves.
func (a Actor) CanModifyItems(order *models.Order) bool {
	return a.Admin || a.Owns(order)
}

// CanUpdateStatus: forcing a status transition is an admin operation.
func (a Actor) CanUpdateStatus() bool {
	return a.Admin
}

// CanDelete: owners may delete their own pending orders, admins any order
// (the pending-only rule still applies either way).
func (a Actor) CanDelete(order *models.Order) bool {
	return a.Admin || a.Owns(order)
}
