package orderControllers

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/syedzainalii/noosh-tuft/middleware"
	"github.com/syedzainalii/noosh-tuft/models"
	"github.com/syedzainalii/noosh-tuft/services"
)

type OrderItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type PlaceOrderRequest struct {
	ShippingAddress    string           `json:"shipping_address" binding:"required"`
	ShippingCity       string           `json:"shipping_city" binding:"required"`
	ShippingPostalCode string           `json:"shipping_postal_code" binding:"required"`
	ShippingCountry    string           `json:"shipping_country" binding:"required"`
	CustomerName       string           `json:"customer_name" binding:"required"`
	CustomerEmail      string           `json:"customer_email" binding:"required,email"`
	CustomerPhone      string           `json:"customer_phone"`
	Notes              string           `json:"notes"`
	Items              []OrderItemInput `json:"items" binding:"dive"`
}

const (
	orderNumberCharset  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	orderNumberLength   = 10
	orderNumberAttempts = 5
)

func generateOrderNumber() string {
	b := make([]byte, orderNumberLength)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	for i := range b {
		b[i] = orderNumberCharset[int(b[i])%len(orderNumberCharset)]
	}
	return string(b)
}

// buildOrderItems is the validation phase of order placement. Lines are
// checked strictly in the order the client sent them: resolve the product,
// reject inactive, reject insufficient stock. The unit price is captured
// from the product's current price and the running total is accumulated.
// No state is mutated here.
func buildOrderItems(resolve func(productID uint) (*models.Product, error), items []OrderItemInput) ([]models.OrderItem, decimal.Decimal, error) {
	if len(items) == 0 {
		return nil, decimal.Zero, fmt.Errorf("order must contain at least one item: %w", models.ErrInvalidRequest)
	}

	orderItems := make([]models.OrderItem, 0, len(items))
	total := decimal.Zero

	for _, line := range items {
		product, err := resolve(line.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, decimal.Zero, fmt.Errorf("product %d: %w", line.ProductID, models.ErrNotFound)
			}
			return nil, decimal.Zero, err
		}
		if !product.IsActive {
			return nil, decimal.Zero, fmt.Errorf("product %q: %w", product.Name, models.ErrProductUnavailable)
		}
		if product.StockQuantity < line.Quantity {
			return nil, decimal.Zero, fmt.Errorf("product %q: %w", product.Name, models.ErrInsufficientStock)
		}

		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		orderItems = append(orderItems, models.OrderItem{
			ProductID: product.ID,
			Quantity:  line.Quantity,
			Price:     product.Price,
		})
	}

	return orderItems, total, nil
}

// PlaceOrder turns a checkout request into a durable order, or fails with no
// partial effects. Validation runs fully before any mutation; the mutation
// itself is one transaction creating the order and its items, decrementing
// stock with a conditional update that re-checks availability at commit time,
// and clearing the user's cart.
func PlaceOrder(db *gorm.DB, user *models.User, req PlaceOrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item: %w", models.ErrInvalidRequest)
	}

	resolved := make(map[uint]*models.Product, len(req.Items))
	resolve := func(productID uint) (*models.Product, error) {
		if product, ok := resolved[productID]; ok {
			return product, nil
		}
		var product models.Product
		if err := db.First(&product, productID).Error; err != nil {
			return nil, err
		}
		resolved[productID] = &product
		return &product, nil
	}

	orderItems, total, err := buildOrderItems(resolve, req.Items)
	if err != nil {
		return nil, err
	}

	order := models.Order{
		UserID:             user.ID,
		Status:             models.OrderStatusPending,
		TotalAmount:        total,
		ShippingAddress:    req.ShippingAddress,
		ShippingCity:       req.ShippingCity,
		ShippingPostalCode: req.ShippingPostalCode,
		ShippingCountry:    req.ShippingCountry,
		CustomerName:       req.CustomerName,
		CustomerEmail:      req.CustomerEmail,
		CustomerPhone:      req.CustomerPhone,
		Notes:              req.Notes,
	}

	// An order-number collision fails the whole transaction, so the retry
	// wraps the transaction and regenerates the number.
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		order.OrderNumber = generateOrderNumber()
		order.ID = 0
		order.Items = make([]models.OrderItem, len(orderItems))
		copy(order.Items, orderItems)

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&order).Error; err != nil {
				return err
			}

			// Conditional decrement re-validates stock under the
			// transaction; zero affected rows means a concurrent
			// checkout got there first.
			for _, item := range order.Items {
				res := tx.Model(&models.Product{}).
					Where("id = ? AND stock_quantity >= ?", item.ProductID, item.Quantity).
					UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", item.Quantity))
				if res.Error != nil {
					return res.Error
				}
				if res.RowsAffected == 0 {
					return fmt.Errorf("product %d: %w", item.ProductID, models.ErrInsufficientStock)
				}
			}

			// The cart is cleared unconditionally on a successful order.
			return tx.Where("user_id = ?", user.ID).Delete(&models.CartItem{}).Error
		})

		if err == nil {
			return &order, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("order number: %w", models.ErrConflict)
}

func statusForOrderError(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, models.ErrInvalidRequest),
		errors.Is(err, models.ErrProductUnavailable),
		errors.Is(err, models.ErrInsufficientStock):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// POST /api/orders
func PlaceOrderHandler(db *gorm.DB, mailer services.Mailer, feed *Feed) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := PlaceOrder(db, user, req)
		if err != nil {
			status := statusForOrderError(err)
			if status == http.StatusInternalServerError {
				c.JSON(status, gin.H{"error": "Failed to place order"})
				return
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		// Confirmation mail is fire-and-forget; a failure never fails
		// the committed order.
		if err := mailer.SendOrderConfirmation(order.CustomerEmail, order.OrderNumber, order.TotalAmount); err != nil {
			log.Printf("⚠️ Failed to send order confirmation for %s: %v", order.OrderNumber, err)
		}

		feed.Broadcast(OrderEvent{Type: "order_created", Order: order})

		if err := db.Preload("Items.Product").First(order, order.ID).Error; err != nil {
			log.Printf("⚠️ Failed to reload order %s after placement: %v", order.OrderNumber, err)
		}
		c.JSON(http.StatusCreated, order)
	}
}

// GET /api/orders
func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

		query := db.Model(&models.Order{}).Preload("Items.Product")
		if user.Role != models.RoleAdmin {
			query = query.Where("user_id = ?", user.ID)
		}

		if filter := c.Query("status"); filter != "" {
			status, ok := models.ParseOrderStatus(filter)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
				return
			}
			query = query.Where("status = ?", status)
		}

		var orders []models.Order
		if err := query.Order("created_at DESC").Offset(skip).Limit(limit).Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/orders/:id
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var order models.Order
		if err := db.Preload("Items.Product").First(&order, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		if user.Role != models.RoleAdmin && order.UserID != user.ID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to view this order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /api/orders/:id (admin)
//
// Only status and notes are mutable after creation; status changes must
// follow the legal-transition table.
func UpdateOrder(db *gorm.DB, feed *Feed) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.Preload("Items.Product").First(&order, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		var patch models.OrderPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if patch.Status != nil {
			if _, ok := models.ParseOrderStatus(string(*patch.Status)); !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order status"})
				return
			}
			if *patch.Status != order.Status && !models.CanTransition(order.Status, *patch.Status) {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": fmt.Sprintf("Cannot change order status from %s to %s", order.Status, *patch.Status),
				})
				return
			}
		}

		statusChanged := patch.Status != nil && *patch.Status != order.Status
		patch.Apply(&order)

		if err := db.Save(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}

		if statusChanged {
			feed.Broadcast(OrderEvent{Type: "order_status", Order: &order})
		}
		c.JSON(http.StatusOK, order)
	}
}

// DELETE /api/orders/:id (admin)
func DeleteOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.First(&order, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&order).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
