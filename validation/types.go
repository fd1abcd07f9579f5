package validation

// OrderItemRequest is a single requested product-quantity line.
type OrderItemRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,min=1"`
}

// CreateOrderRequest is the payload for POST /orders.
type CreateOrderRequest struct {
	CustomerName    string             `json:"customer_name" validate:"required,max=255"`
	CustomerEmail   string             `json:"customer_email" validate:"required,email,max=255"`
	ShippingAddress string             `json:"shipping_address" validate:"required"`
	ShippingCity    string             `json:"shipping_city" validate:"required,max=100"`
	ShippingState   string             `json:"shipping_state" validate:"required,max=100"`
	ShippingZip     string             `json:"shipping_zip" validate:"required,max=20"`
	ShippingCountry string             `json:"shipping_country" validate:"required,max=100"`
	Notes           string             `json:"notes" validate:"omitempty"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// AddItemRequest is the payload for POST /orders/:id/items.
type AddItemRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,min=1"`
}

// UpdateItemRequest is the payload for PUT /orders/:id/items/:item.
type UpdateItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// UpdateStatusRequest is the payload for POST /orders/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
}

// CreateProductRequest is the payload for POST /products.
type CreateProductRequest struct {
	Name          string  `json:"name" validate:"required,max=255"`
	Description   string  `json:"description" validate:"omitempty"`
	SKU           string  `json:"sku" validate:"required,max=100"`
	Price         float64 `json:"price" validate:"required,gte=0"`
	StockQuantity int     `json:"stock_quantity" validate:"gte=0"`
	IsActive      *bool   `json:"is_active" validate:"omitempty"`
}

// UpdateProductRequest is the payload for PUT /products/:id. All fields are
// optional; only provided ones are applied.
type UpdateProductRequest struct {
	Name          *string  `json:"name" validate:"omitempty,max=255"`
	Description   *string  `json:"description" validate:"omitempty"`
	SKU           *string  `json:"sku" validate:"omitempty,max=100"`
	Price         *float64 `json:"price" validate:"omitempty,gte=0"`
	StockQuantity *int     `json:"stock_quantity" validate:"omitempty,gte=0"`
	IsActive      *bool    `json:"is_active" validate:"omitempty"`
}

// RegisterRequest is the payload for POST /register.
type RegisterRequest struct {
	Username string `json:"username" validate:"omitempty,max=100"`
	Name     string `json:"name" validate:"omitempty,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest is the payload for POST /login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordRequest is the payload for POST /forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest is the payload for POST /reset-password.
type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}
