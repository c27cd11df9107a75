package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lumina-dine/table-order/services"
	"github.com/lumina-dine/table-order/utils"
)

type TableController struct {
	Tables *services.TableService
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{Tables: services.NewTableService(db)}
}

// GetAllTables -> every table, ordered by QR code
func (tc *TableController) GetAllTables(c *gin.Context) {
	tables, err := tc.Tables.AllTables()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

// GetTableByCode -> one table by QR code. Pollers read the assistance flag
// through this endpoint, so responses must never be cached.
func (tc *TableController) GetTableByCode(c *gin.Context) {
	table, err := tc.Tables.TableByCode(c.Param("code"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.Header("Cache-Control", "no-store, no-cache, must-revalidate, proxy-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// UpdateAssistance -> set or clear the needs-assistance flag
func (tc *TableController) UpdateAssistance(c *gin.Context) {
	var body struct {
		NeedsAssistance *bool `json:"needsAssistance" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, utils.InvalidInputf("invalid request body: %v", err))
		return
	}

	table, err := tc.Tables.SetAssistance(c.Param("code"), *body.NeedsAssistance)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("Table %s assistance set to %t", table.QRCode, table.NeedsAssistance)
	utils.RespondJSON(c, http.StatusOK, "Table assistance updated", table)
}
