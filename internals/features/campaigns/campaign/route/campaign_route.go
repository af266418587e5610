// 📁 internals/features/campaigns/campaign/route/campaign_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"palhope_backend/internals/constants"
	campaignController "palhope_backend/internals/features/campaigns/campaign/controller"
	authMiddleware "palhope_backend/internals/middlewares/auth"
)

func CampaignRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := campaignController.NewCampaignController(db)

	campaign := api.Group("/campaigns")

	// publik
	campaign.Get("/", ctrl.GetAllCampaigns)
	campaign.Get("/search", ctrl.SearchCampaigns)
	campaign.Get("/:campaign_id", ctrl.GetCampaignByID)

	// favorit: milik user yang login
	auth := authMiddleware.AuthMiddleware(db)
	campaign.Get("/favorites/me", auth, ctrl.GetFavorites)
	campaign.Post("/:campaign_id/favorite", auth, ctrl.AddFavorite)
	campaign.Delete("/:campaign_id/favorite", auth, ctrl.RemoveFavorite)

	// pengelolaan: organization/admin
	ownerOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorOrganization("mengelola campaign"),
		constants.CampaignOwnerRoles...,
	)
	campaign.Post("/", auth, ownerOnly, ctrl.CreateCampaign)
	campaign.Post("/:campaign_id/news", auth, ownerOnly, ctrl.AddNews)
	campaign.Delete("/:campaign_id/news/:index", auth, ownerOnly, ctrl.DeleteNewsByIndex)
}
