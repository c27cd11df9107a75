package main

import (
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lumina-dine/table-order/client"
	"github.com/lumina-dine/table-order/database"
	"github.com/lumina-dine/table-order/models"
	"github.com/lumina-dine/table-order/router"
	"github.com/lumina-dine/table-order/services"
	"github.com/lumina-dine/table-order/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	os.Exit(m.Run())
}

func newIntegrationServer(t *testing.T, name string) (*httptest.Server, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	autoMigrate(db)
	if err := database.Seed(db); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}

	srv := httptest.NewServer(router.SetupRouter(db))
	t.Cleanup(srv.Close)
	return srv, db
}

func strptr(s string) *string { return &s }

// Walks a full dinner service through the public API the way the two real
// viewers do: customer browses and orders, kitchen advances the ticket,
// customer calls for help and pays, order disappears from the board.
func TestDinnerServiceEndToEnd(t *testing.T) {
	srv, _ := newIntegrationServer(t, "integration_service")
	api := client.New(srv.URL)

	// Customer scans table-1 and browses the menu.
	table, err := api.GetTable("table-1")
	assert.NoError(t, err)
	assert.False(t, table.NeedsAssistance)

	menu, err := api.GetMenu()
	assert.NoError(t, err)
	assert.Len(t, menu, 4)

	var pizza, cola models.MenuItem
	for _, item := range menu {
		switch item.Name {
		case "Margherita Pizza":
			pizza = item
		case "Coca Cola":
			cola = item
		}
	}
	assert.NotZero(t, pizza.ID)
	assert.NotZero(t, cola.ID)

	// Builds a cart and submits it.
	cart := client.NewCart()
	cart.Add(pizza, 1, "well done")
	cart.Add(cola, 2, "")
	assert.True(t, cart.Total().Equal(decimal.RequireFromString("17.00")),
		"want cart total 17.00, got %s", cart.Total())

	order, err := api.SubmitCart("table-1", cart)
	assert.NoError(t, err)
	assert.Empty(t, cart.Lines())
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, models.PaymentUnpaid, order.PaymentStatus)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("17.00")),
		"want order total 17.00, got %s", order.Total)

	// The kitchen board sees the ticket in the pending lane.
	all, err := api.GetOrders("")
	assert.NoError(t, err)
	cols := client.BucketByStatus(all)
	assert.Len(t, cols.Pending, 1)
	assert.Equal(t, "table-1", cols.Pending[0].Table.QRCode)
	assert.Len(t, cols.Pending[0].Items, 2)

	// Kitchen works the ticket one step at a time; skipping is refused.
	_, err = api.UpdateOrder(order.ID, services.OrderUpdateRequest{Status: strptr(models.StatusCompleted)})
	assert.Error(t, err)

	for _, status := range []string{models.StatusPreparing, models.StatusReady, models.StatusCompleted} {
		updated, err := api.UpdateOrder(order.ID, services.OrderUpdateRequest{Status: strptr(status)})
		assert.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}

	// Customer flags the table for service; the kitchen list shows it.
	flaggedTable, err := api.RequestAssistance("table-1", true)
	assert.NoError(t, err)
	assert.True(t, flaggedTable.NeedsAssistance)

	tables, err := api.GetTables()
	assert.NoError(t, err)
	flagged := client.AssistanceRequests(tables)
	assert.Len(t, flagged, 1)
	assert.Equal(t, "table-1", flagged[0].QRCode)

	// Staff clears the flag after stopping by.
	clearedTable, err := api.RequestAssistance("table-1", false)
	assert.NoError(t, err)
	assert.False(t, clearedTable.NeedsAssistance)

	// Payment settles and archives in one step.
	paid, err := api.UpdateOrder(order.ID, services.OrderUpdateRequest{PaymentStatus: strptr(models.PaymentPaid)})
	assert.NoError(t, err)
	assert.Equal(t, models.StatusArchived, paid.Status)
	assert.Equal(t, models.PaymentPaid, paid.PaymentStatus)

	// Archived tickets vanish from the board but stay in the table history.
	all, err = api.GetOrders("")
	assert.NoError(t, err)
	cols = client.BucketByStatus(all)
	assert.Empty(t, cols.Pending)
	assert.Empty(t, cols.Completed)

	history, err := api.GetOrders("table-1")
	assert.NoError(t, err)
	assert.Len(t, history, 1)
	assert.Equal(t, models.StatusArchived, history[0].Status)
}

func TestSeparateTablesSeeSeparateBills(t *testing.T) {
	srv, _ := newIntegrationServer(t, "integration_scoping")
	api := client.New(srv.URL)

	menu, err := api.GetMenu()
	assert.NoError(t, err)
	assert.NotEmpty(t, menu)

	_, err = api.CreateOrder("table-1", []services.OrderItemRequest{
		{MenuItemID: menu[0].ID, Quantity: 1},
	})
	assert.NoError(t, err)

	ours, err := api.GetOrders("table-1")
	assert.NoError(t, err)
	assert.Len(t, ours, 1)

	theirs, err := api.GetOrders("table-2")
	assert.NoError(t, err)
	assert.Empty(t, theirs)
}
