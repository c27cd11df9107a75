package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lumina-dine/table-order/models"
	"github.com/lumina-dine/table-order/utils"
)

// OrderService owns the order lifecycle: creation, status/payment transitions
// and the read projections both viewers poll. Every mutation is a single
// atomic read-check-write unit against the store, so concurrent callers can
// never interleave a check against stale state with a write.
type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

type OrderItemRequest struct {
	MenuItemID uint   `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
	Notes      string `json:"notes"`
}

type OrderUpdateRequest struct {
	Status        *string `json:"status"`
	PaymentStatus *string `json:"paymentStatus"`
}

// CreateOrder resolves the table QR code and every menu item, snapshots the
// total as the sum of price×quantity at submission time, and persists the
// order with all its items in one transaction. If any line fails, nothing is
// persisted.
func (s *OrderService) CreateOrder(tableCode string, items []OrderItemRequest) (*models.Order, error) {
	if len(items) == 0 {
		return nil, utils.InvalidInputf("order must contain at least one item")
	}
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, utils.InvalidInputf("quantity must be positive for menu item %d", it.MenuItemID)
		}
	}

	var order models.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.Where("qr_code = ?", tableCode).First(&table).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFoundf("table not found: %s", tableCode)
			}
			return utils.StoreFault(err)
		}

		total := decimal.Zero
		orderItems := make([]models.OrderItem, 0, len(items))
		for _, it := range items {
			var menuItem models.MenuItem
			if err := tx.First(&menuItem, it.MenuItemID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return utils.NotFoundf("menu item not found: %d", it.MenuItemID)
				}
				return utils.StoreFault(err)
			}
			total = total.Add(menuItem.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
			orderItems = append(orderItems, models.OrderItem{
				MenuItemID: menuItem.ID,
				Quantity:   it.Quantity,
				Notes:      it.Notes,
			})
		}

		order = models.Order{
			TableID:       table.ID,
			Status:        models.StatusPending,
			PaymentStatus: models.PaymentUnpaid,
			Total:         total,
			Items:         orderItems,
		}
		if err := tx.Create(&order).Error; err != nil {
			return utils.StoreFault(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.OrderByID(order.ID)
}

// UpdateOrder applies a lifecycle transition. Legal moves:
//   - paymentStatus=PAID archives the order in the same write, from any
//     non-archived status ("payment implies done");
//   - status may advance to its immediate successor only;
//   - status=ARCHIVED without payment is kitchen cleanup of COMPLETED orders.
//
// Each branch is one conditional UPDATE keyed on the current persisted
// status; a racing second caller matches zero rows and is rejected instead of
// double-advancing.
func (s *OrderService) UpdateOrder(id uint, req OrderUpdateRequest) (*models.Order, error) {
	switch {
	case req.PaymentStatus != nil && *req.PaymentStatus == models.PaymentPaid:
		res := s.DB.Model(&models.Order{}).
			Where("id = ? AND status <> ?", id, models.StatusArchived).
			Updates(map[string]interface{}{
				"payment_status": models.PaymentPaid,
				"status":         models.StatusArchived,
			})
		if res.Error != nil {
			return nil, utils.StoreFault(res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, s.rejectUpdate(id, models.StatusArchived)
		}

	case req.Status != nil && models.ValidStatus(*req.Status):
		target := *req.Status
		var from string
		if target == models.StatusArchived {
			// Unpaid archiving is restricted to completed orders.
			from = models.StatusCompleted
		} else {
			prev, ok := models.PrevStatus(target)
			if !ok {
				return nil, utils.InvalidTransitionf("order %d cannot move to %s", id, target)
			}
			from = prev
		}
		res := s.DB.Model(&models.Order{}).
			Where("id = ? AND status = ?", id, from).
			Update("status", target)
		if res.Error != nil {
			return nil, utils.StoreFault(res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, s.rejectUpdate(id, target)
		}

	default:
		return nil, utils.InvalidInputf("update must set a known status or paymentStatus PAID")
	}

	return s.OrderByID(id)
}

// rejectUpdate distinguishes a missing order from an illegal transition after
// a conditional update matched no rows.
func (s *OrderService) rejectUpdate(id uint, target string) error {
	var order models.Order
	if err := s.DB.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFoundf("order not found: %d", id)
		}
		return utils.StoreFault(err)
	}
	return utils.InvalidTransitionf("order %d is %s, cannot move to %s", id, order.Status, target)
}

// OrderByID returns one order hydrated with its items, menu detail and table.
func (s *OrderService) OrderByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.hydrated().First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("order not found: %d", id)
		}
		return nil, utils.StoreFault(err)
	}
	return &order, nil
}

// AllOrders is the kitchen projection: every order, newest first. Bucketing
// by status (and exclusion of ARCHIVED) is the viewer's concern.
func (s *OrderService) AllOrders() ([]models.Order, error) {
	var orders []models.Order
	if err := s.hydrated().
		Order("created_at DESC, id DESC").
		Find(&orders).Error; err != nil {
		return nil, utils.StoreFault(err)
	}
	return orders, nil
}

// OrdersByTableCode is the customer projection. An unresolved code reads as
// "no orders yet", not a fault.
func (s *OrderService) OrdersByTableCode(code string) ([]models.Order, error) {
	var table models.Table
	if err := s.DB.Where("qr_code = ?", code).First(&table).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.Order{}, nil
		}
		return nil, utils.StoreFault(err)
	}

	var orders []models.Order
	if err := s.hydrated().
		Where("table_id = ?", table.ID).
		Order("created_at DESC, id DESC").
		Find(&orders).Error; err != nil {
		return nil, utils.StoreFault(err)
	}
	return orders, nil
}

func (s *OrderService) hydrated() *gorm.DB {
	return s.DB.Preload("Items.MenuItem").Preload("Table")
}
