package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lumina-dine/table-order/controllers"
	"github.com/lumina-dine/table-order/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	menuCtrl := controllers.NewMenuController(db)
	tableCtrl := controllers.NewTableController(db)
	orderCtrl := controllers.NewOrderController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// -- CUSTOMER --
	r.GET("/menu", menuCtrl.GetMenu)
	r.GET("/tables/:code", tableCtrl.GetTableByCode)
	r.PATCH("/tables/:code", tableCtrl.UpdateAssistance)
	r.POST("/orders", orderCtrl.CreateOrder)

	// -- SHARED (customer bill view + kitchen display) --
	r.GET("/orders", orderCtrl.ListOrders)

	// -- KITCHEN --
	r.GET("/tables", tableCtrl.GetAllTables)
	r.PATCH("/orders/:order_id", orderCtrl.UpdateOrder)

	return r
}
