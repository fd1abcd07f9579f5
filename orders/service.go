package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"backoffice/models"
)

// Service implements the order lifecycle. Every mutation runs inside one
// database transaction: stock adjustments, item writes and the totals
// refresh commit together or not at all.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// LineInput is one requested product-quantity pair.
type LineInput struct {
	ProductID uint
	Quantity  int
}

// CreateOrderInput carries everything needed to place a new order. The
// request shape is validated before it reaches the service.
type CreateOrderInput struct {
	Items           []LineInput
	ShippingName    string
	ShippingAddress string
	ShippingCity    string
	ShippingState   string
	ShippingZip     string
	ShippingCountry string
	Notes           string
}

// ListFilter narrows and pages an order listing.
type ListFilter struct {
	Status  models.OrderStatus
	Page    int
	PerPage int
}

// NewOrderNumber returns an opaque unique order token, e.g. ORD-3F9A1C04BD.
func NewOrderNumber() string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "ORD-" + token[:10]
}

// CreateOrder places a new pending order owned by the actor. Each requested
// line reserves stock and snapshots the product's name, sku and price at
// this instant. Any failure rolls back every reservation already taken.
func (s *Service) CreateOrder(ctx context.Context, actor Actor, in CreateOrderInput) (*models.Order, error) {
	var created *models.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ownerID := actor.ID
		order := models.Order{
			OrderNumber:     NewOrderNumber(),
			UserID:          &ownerID,
			Status:          models.OrderStatusPending,
			ShippingName:    in.ShippingName,
			ShippingAddress: in.ShippingAddress,
			ShippingCity:    in.ShippingCity,
			ShippingState:   in.ShippingState,
			ShippingZip:     in.ShippingZip,
			ShippingCountry: in.ShippingCountry,
			Notes:           in.Notes,
		}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		for _, line := range in.Items {
			var product models.Product
			if err := tx.First(&product, line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &ProductNotFoundError{ProductID: line.ProductID}
				}
				return fmt.Errorf("load product: %w", err)
			}

			if err := Reserve(tx, product.Id, line.Quantity); err != nil {
				return err
			}

			item := models.OrderItem{
				OrderID:    order.Id,
				ProductID:  product.Id,
				Quantity:   line.Quantity,
				UnitPrice:  product.Price,
				TotalPrice: product.Price * float64(line.Quantity),
				ProductDetails: models.ProductSnapshot{
					Name:  product.Name,
					SKU:   product.SKU,
					Price: product.Price,
				},
			}
			if err := tx.Create(&item).Error; err != nil {
				return fmt.Errorf("create order item: %w", err)
			}
		}

		if err := s.refreshTotals(tx, &order); err != nil {
			return err
		}
		created = &order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// AddItem adds quantity units of a product to a pending order. If the
// product is already a line on the order the quantities merge, keeping the
// original price snapshot.
func (s *Service) AddItem(ctx context.Context, orderID, productID uint, quantity int) (*models.Order, error) {
	var updated *models.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := findOrder(tx, orderID)
		if err != nil {
			return err
		}
		if order.Status != models.OrderStatusPending {
			return &InvalidTransitionError{Current: order.Status, Op: "adding items"}
		}

		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &ProductNotFoundError{ProductID: productID}
			}
			return fmt.Errorf("load product: %w", err)
		}

		var existing models.OrderItem
		err = tx.Where("order_id = ? AND product_id = ?", order.Id, product.Id).First(&existing).Error
		switch {
		case err == nil:
			newQuantity := existing.Quantity + quantity
			updates := map[string]interface{}{
				"quantity":    newQuantity,
				"total_price": existing.UnitPrice * float64(newQuantity),
			}
			if err := tx.Model(&existing).Updates(updates).Error; err != nil {
				return fmt.Errorf("merge order item: %w", err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			item := models.OrderItem{
				OrderID:    order.Id,
				ProductID:  product.Id,
				Quantity:   quantity,
				UnitPrice:  product.Price,
				TotalPrice: product.Price * float64(quantity),
				ProductDetails: models.ProductSnapshot{
					Name:  product.Name,
					SKU:   product.SKU,
					Price: product.Price,
				},
			}
			if err := tx.Create(&item).Error; err != nil {
				return fmt.Errorf("create order item: %w", err)
			}
		default:
			return fmt.Errorf("load order item: %w", err)
		}

		if err := Reserve(tx, product.Id, quantity); err != nil {
			return err
		}
		if err := s.refreshTotals(tx, order); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateItemQuantity sets a new quantity on an existing line of a pending
// order. A positive delta reserves the extra units, a negative delta
// releases them, zero is a no-op. The price snapshot never changes.
func (s *Service) UpdateItemQuantity(ctx context.Context, orderID, itemID uint, newQuantity int) (*models.Order, error) {
	var updated *models.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := findOrder(tx, orderID)
		if err != nil {
			return err
		}
		if order.Status != models.OrderStatusPending {
			return &InvalidTransitionError{Current: order.Status, Op: "updating items"}
		}

		item, err := findItem(tx, order.Id, itemID)
		if err != nil {
			return err
		}

		delta := newQuantity - item.Quantity
		switch {
		case delta > 0:
			if err := Reserve(tx, item.ProductID, delta); err != nil {
				return err
			}
		case delta < 0:
			if err := Release(tx, item.ProductID, -delta); err != nil {
				return err
			}
		}

		updates := map[string]interface{}{
			"quantity":    newQuantity,
			"total_price": item.UnitPrice * float64(newQuantity),
		}
		if err := tx.Model(item).Updates(updates).Error; err != nil {
			return fmt.Errorf("update order item: %w", err)
		}

		if err := s.refreshTotals(tx, order); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// RemoveItem deletes a line from a pending order and returns its full
// reserved quantity to stock.
func (s *Service) RemoveItem(ctx context.Context, orderID, itemID uint) (*models.Order, error) {
	var updated *models.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := findOrder(tx, orderID)
		if err != nil {
			return err
		}
		if order.Status != models.OrderStatusPending {
			return &InvalidTransitionError{Current: order.Status, Op: "removing items"}
		}

		item, err := findItem(tx, order.Id, itemID)
		if err != nil {
			return err
		}

		if err := Release(tx, item.ProductID, item.Quantity); err != nil {
			return err
		}
		if err := tx.Delete(item).Error; err != nil {
			return fmt.Errorf("delete order item: %w", err)
		}

		if err := s.refreshTotals(tx, order); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateStatus moves the order along the lifecycle chain. Status changes
// never touch stock or totals.
func (s *Service) UpdateStatus(ctx context.Context, orderID uint, newStatus models.OrderStatus) (*models.Order, error) {
	var updated *models.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := findOrder(tx, orderID)
		if err != nil {
			return err
		}
		if !CanTransition(order.Status, newStatus) {
			return &InvalidTransitionError{Current: order.Status, Requested: newStatus}
		}
		if err := tx.Model(order).Update("status", newStatus).Error; err != nil {
			return fmt.Errorf("update order status: %w", err)
		}
		order.Status = newStatus
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteOrder removes a pending order and its items as one unit, releasing
// every unit of stock its lines had reserved.
func (s *Service) DeleteOrder(ctx context.Context, orderID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := findOrder(tx, orderID)
		if err != nil {
			return err
		}
		if order.Status != models.OrderStatusPending {
			return &InvalidTransitionError{Current: order.Status, Op: "deleting the order"}
		}

		var items []models.OrderItem
		if err := tx.Where("order_id = ?", order.Id).Find(&items).Error; err != nil {
			return fmt.Errorf("load order items: %w", err)
		}
		for _, item := range items {
			if err := Release(tx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		if err := tx.Where("order_id = ?", order.Id).Delete(&models.OrderItem{}).Error; err != nil {
			return fmt.Errorf("delete order items: %w", err)
		}
		if err := tx.Delete(order).Error; err != nil {
			return fmt.Errorf("delete order: %w", err)
		}
		return nil
	})
}

// GetOrder loads one order with its items.
func (s *Service) GetOrder(ctx context.Context, orderID uint) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).Preload("Items").First(&order, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load order: %w", err)
	}
	return &order, nil
}

// ListOrders returns a page of orders, newest first. Non-admin actors only
// see their own orders.
func (s *Service) ListOrders(ctx context.Context, actor Actor, filter ListFilter) ([]models.Order, int64, error) {
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage <= 0 {
		perPage = 15
	} else if perPage > 100 {
		perPage = 100
	}

	query := s.db.WithContext(ctx).Model(&models.Order{})
	if !actor.Admin {
		query = query.Where("user_id = ?", actor.ID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	var list []models.Order
	err := query.Preload("Items").
		Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&list).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	return list, total, nil
}

// findOrder loads an order inside the caller's transaction.
func findOrder(tx *gorm.DB, orderID uint) (*models.Order, error) {
	var order models.Order
	err := tx.First(&order, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load order: %w", err)
	}
	return &order, nil
}

func findItem(tx *gorm.DB, orderID, itemID uint) (*models.OrderItem, error) {
	var item models.OrderItem
	err := tx.Where("id = ? AND order_id = ?", itemID, orderID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &ItemNotInOrderError{OrderID: orderID, ItemID: itemID}
	}
	if err != nil {
		return nil, fmt.Errorf("load order item: %w", err)
	}
	return &item, nil
}

// refreshTotals reloads the order's items inside the transaction, derives
// the totals and persists them. Called exactly once at the end of every
// item-mutating operation.
func (s *Service) refreshTotals(tx *gorm.DB, order *models.Order) error {
	var items []models.OrderItem
	if err := tx.Where("order_id = ?", order.Id).Find(&items).Error; err != nil {
		return fmt.Errorf("load order items: %w", err)
	}

	totals := ComputeTotals(items)
	updates := map[string]interface{}{
		"subtotal":      totals.Subtotal,
		"shipping_cost": totals.ShippingCost,
		"tax":           totals.Tax,
		"total":         totals.Total,
	}
	if err := tx.Model(order).Updates(updates).Error; err != nil {
		return fmt.Errorf("update order totals: %w", err)
	}

	order.Subtotal = totals.Subtotal
	order.ShippingCost = totals.ShippingCost
	order.Tax = totals.Tax
	order.Total = totals.Total
	order.Items = items
	return nil
}
