// 📁 internals/features/shop/route/shop_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	shopController "palhope_backend/internals/features/shop/controller"
	authMiddleware "palhope_backend/internals/middlewares/auth"
)

func ShopRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := shopController.NewShopController(db)

	shop := api.Group("/shop")

	// katalog publik
	shop.Get("/items", ctrl.GetAllItems)
	shop.Get("/items/:type", ctrl.GetItemsByType)
	shop.Get("/user/:user_id/:type", ctrl.GetPurchasedByType)

	// beli: harus login
	shop.Post("/buy", authMiddleware.AuthMiddleware(db), ctrl.BuyItem)
}
