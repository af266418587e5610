// 📁 internals/features/campaigns/subcampaign/route/subcampaign_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"palhope_backend/internals/constants"
	subController "palhope_backend/internals/features/campaigns/subcampaign/controller"
	authMiddleware "palhope_backend/internals/middlewares/auth"
)

func SubCampaignRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := subController.NewSubCampaignController(db)

	sub := api.Group("/sub-campaigns")

	// publik
	sub.Get("/", ctrl.GetAllSubCampaigns)
	sub.Get("/campaign/:campaign_id", ctrl.GetByParentCampaign)
	sub.Get("/influencer/:influencer_id", ctrl.GetByInfluencer)
	sub.Get("/:sub_campaign_id", ctrl.GetSubCampaignByID)

	// influencer/admin: buka sub-campaign
	auth := authMiddleware.AuthMiddleware(db)
	sub.Post("/", auth,
		authMiddleware.OnlyRoles(
			constants.RoleErrorInfluencer("membuka sub-campaign"),
			constants.SubCampaignOwnerRoles...,
		),
		ctrl.CreateSubCampaign,
	)

	// admin: approve
	sub.Post("/:sub_campaign_id/approve", auth,
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("menyetujui sub-campaign"), constants.AdminOnly...),
		ctrl.ApproveSubCampaign,
	)
}
