// 📁 internals/seeds/runner.go
package seeds

import (
	"gorm.io/gorm"

	campaignSeeds "palhope_backend/internals/seeds/campaigns"
	userSeeds "palhope_backend/internals/seeds/users"
)

// RunAllSeeds memuat data awal (akun + campaign demo).
// Dipanggil dari main saat RUN_SEEDS=true; tiap seeder dedup sendiri.
func RunAllSeeds(db *gorm.DB) {
	userSeeds.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
	campaignSeeds.SeedCampaignsFromJSON(db, "internals/seeds/campaigns/data_campaigns.json")
}
