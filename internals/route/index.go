// 📁 internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	badgeRoute "palhope_backend/internals/features/badges/badge/route"
	campaignRoute "palhope_backend/internals/features/campaigns/campaign/route"
	subCampaignRoute "palhope_backend/internals/features/campaigns/subcampaign/route"
	donationRoute "palhope_backend/internals/features/donations/donation/route"
	donationService "palhope_backend/internals/features/donations/donation/service"
	shopRoute "palhope_backend/internals/features/shop/route"
	authRoute "palhope_backend/internals/features/users/auth/route"
	userRoute "palhope_backend/internals/features/users/user/route"
)

var startTime time.Time

// SetupRoutes mendaftarkan seluruh endpoint aplikasi di bawah /api.
func SetupRoutes(app *fiber.App, db *gorm.DB, notifier donationService.Notifier) {
	startTime = time.Now()

	api := app.Group("/api")

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(api, db)

	log.Println("[INFO] Setting up UserRoutes...")
	userRoute.UserRoutes(api, db)

	log.Println("[INFO] Setting up CampaignRoutes...")
	campaignRoute.CampaignRoutes(api, db)

	log.Println("[INFO] Setting up SubCampaignRoutes...")
	subCampaignRoute.SubCampaignRoutes(api, db)

	log.Println("[INFO] Setting up DonationRoutes...")
	donationRoute.DonationRoutes(api, db, notifier)

	log.Println("[INFO] Setting up BadgeRoutes...")
	badgeRoute.BadgeRoutes(api, db)

	log.Println("[INFO] Setting up ShopRoutes...")
	shopRoute.ShopRoutes(api, db)
}
