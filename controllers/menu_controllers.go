package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lumina-dine/table-order/models"
	"github.com/lumina-dine/table-order/utils"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetMenu -> list available menu items, grouped for display by category
func (mc *MenuController) GetMenu(c *gin.Context) {
	var items []models.MenuItem
	if err := mc.DB.
		Where("is_available = ?", true).
		Order("category asc").
		Find(&items).Error; err != nil {
		utils.RespondError(c, utils.StoreFault(err))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}
