package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"palhope_backend/internals/constants"
	donationController "palhope_backend/internals/features/donations/donation/controller"
	"palhope_backend/internals/features/donations/donation/service"
	"palhope_backend/internals/middlewares"
	authMiddleware "palhope_backend/internals/middlewares/auth"
)

// DonationRoutes mendaftarkan seluruh endpoint donasi di bawah /api.
// Endpoint donate memakai auth opsional: login → identitas dari token,
// tanpa login → jalur tamu. Leaderboard menempel di path campaign /
// sub-campaign, sisanya di /donations.
func DonationRoutes(api fiber.Router, db *gorm.DB, notifier service.Notifier) {
	donationCtrl := donationController.NewDonationController(db, notifier)

	donateLimiter := middlewares.DonationRateLimiter()
	api.Post("/donations/donate", donateLimiter, authMiddleware.OptionalAuthMiddleware(db), donationCtrl.Donate)
	api.Post("/donations/donate/sub-campaign", donateLimiter, authMiddleware.OptionalAuthMiddleware(db), donationCtrl.DonateToSubCampaign)
	api.Post("/donations/donate-non-registered", donateLimiter, donationCtrl.DonateNonRegistered)

	// read-side
	api.Get("/campaigns/:campaign_id/leaderboard", donationCtrl.GetCampaignLeaderboard)
	api.Get("/sub-campaigns/:sub_campaign_id/leaderboard", donationCtrl.GetSubCampaignLeaderboard)
	api.Get("/donations/user/:user_id", donationCtrl.GetDonationsByUserID)

	// admin
	api.Get("/donations",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("daftar donasi"), constants.AdminOnly...),
		donationCtrl.GetAllDonations,
	)
	api.Post("/donations/merge-donations",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("merge donasi"), constants.AdminOnly...),
		donationCtrl.MergeDonations,
	)
}
