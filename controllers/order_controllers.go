package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lumina-dine/table-order/services"
	"github.com/lumina-dine/table-order/utils"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{Orders: services.NewOrderService(db)}
}

// ListOrders -> all orders (kitchen view), or orders for one table when
// ?tableId=<qr code> is given. An unknown code yields an empty list.
func (oc *OrderController) ListOrders(c *gin.Context) {
	code := c.Query("tableId")

	var err error
	var orders interface{}
	if code == "" {
		orders, err = oc.Orders.AllOrders()
	} else {
		orders, err = oc.Orders.OrdersByTableCode(code)
	}
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// CreateOrder -> place a new order for a table (status=PENDING, UNPAID)
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var body struct {
		TableID string                      `json:"tableId"`
		Items   []services.OrderItemRequest `json:"items"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, utils.InvalidInputf("invalid request body: %v", err))
		return
	}

	order, err := oc.Orders.CreateOrder(body.TableID, body.Items)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("Order %d created for table %s (total %s)",
		order.ID, order.Table.QRCode, order.Total.String())
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// UpdateOrder -> advance status or mark paid (which archives in the same write)
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, utils.InvalidInputf("invalid order id: %s", c.Param("order_id")))
		return
	}

	var req services.OrderUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.InvalidInputf("invalid request body: %v", err))
		return
	}

	order, err := oc.Orders.UpdateOrder(uint(id), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("Order %d is now %s/%s", order.ID, order.Status, order.PaymentStatus)
	utils.RespondJSON(c, http.StatusOK, "Order updated", order)
}
