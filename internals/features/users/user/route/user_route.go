// 📁 internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "palhope_backend/internals/features/users/user/controller"
	authMiddleware "palhope_backend/internals/middlewares/auth"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	user := api.Group("/users")

	// publik
	user.Get("/profile/:user_id", ctrl.GetProfile)
	user.Get("/tokens/:user_id", ctrl.GetUserTokens)

	// butuh login
	me := user.Group("/me", authMiddleware.AuthMiddleware(db))
	me.Get("/", ctrl.GetMe)
	me.Put("/", ctrl.UpdateProfile)
}
