package orders

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"backoffice/models"
)

// Reserve atomically decrements a product's stock by quantity. The guarded
// UPDATE only matches when enough stock remains, so two concurrent
// reservations can never drive the counter negative: the row lock taken by
// the engine linearizes them and the loser sees zero rows affected.
//
// Must be called inside the transaction that records the matching item
// change, so a later failure rolls the decrement back.
func Reserve(tx *gorm.DB, productID uint, quantity int) error {
	res := tx.Model(&models.Product{}).
		Where("id = ? AND stock_quantity >= ?", productID, quantity).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", quantity))
	if res.Error != nil {
		return fmt.Errorf("reserve stock: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		var product models.Product
		err := tx.Select("id", "name", "stock_quantity").First(&product, productID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ProductNotFoundError{ProductID: productID}
		}
		if err != nil {
			return fmt.Errorf("reserve stock: %w", err)
		}
		return &InsufficientStockError{
			ProductID: product.Id,
			Name:      product.Name,
			Requested: quantity,
			Available: product.StockQuantity,
		}
	}
	return nil
}

// Release atomically returns quantity units to a product's stock. It reaches
// soft-deleted products too: deleting a pending order must restore stock
// even if the product was retired after the order was placed. A product that
// no longer exists at all is skipped rather than treated as a failure.
func Release(tx *gorm.DB, productID uint, quantity int) error {
	res := tx.Unscoped().Model(&models.Product{}).
		Where("id = ?", productID).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity + ?", quantity))
	if res.Error != nil {
		return fmt.Errorf("release stock: %w", res.Error)
	}
	return nil
}
