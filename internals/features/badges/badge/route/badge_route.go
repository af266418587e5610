// 📁 internals/features/badges/badge/route/badge_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"palhope_backend/internals/constants"
	badgeController "palhope_backend/internals/features/badges/badge/controller"
	authMiddleware "palhope_backend/internals/middlewares/auth"
)

func BadgeRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := badgeController.NewBadgeController(db)

	badge := api.Group("/badges")

	// publik: daftar badge milik user
	badge.Get("/user-badges/:user_id", ctrl.GetUserBadges)

	// admin: trigger evaluasi badge
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("mengevaluasi badge"), constants.AdminOnly...)
	badge.Post("/check-badges", authMiddleware.AuthMiddleware(db), adminOnly, ctrl.CheckBadgesAll)
	badge.Post("/check-badges/:user_id", authMiddleware.AuthMiddleware(db), adminOnly, ctrl.CheckBadgesUser)
}
