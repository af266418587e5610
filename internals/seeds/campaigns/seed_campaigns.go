// 📁 internals/seeds/campaigns/seed_campaigns.go
package campaigns

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"gorm.io/gorm"

	"palhope_backend/internals/features/campaigns/campaign/model"
)

type CampaignSeed struct {
	Name             string `json:"name"`
	Image            string `json:"image"`
	OrganizationName string `json:"organization_name"`
	GoalAmount       int64  `json:"goal_amount"`
	StartDate        string `json:"start_date"` // RFC3339
	EndDate          string `json:"end_date"`
	Description      string `json:"description"`
}

// SeedCampaignsFromJSON memuat campaign demo dari file JSON.
// Dedup per nama, aman dijalankan berulang.
func SeedCampaignsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file campaign:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Gagal membaca file JSON: %v", err)
		return
	}

	var inputs []CampaignSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Printf("❌ Gagal decode JSON: %v", err)
		return
	}

	for _, data := range inputs {
		var existing model.CampaignModel
		err := db.Where("campaign_name = ?", data.Name).First(&existing).Error
		if err == nil {
			log.Printf("⏭️ Campaign %q sudah ada, skip", data.Name)
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Printf("❌ Gagal cek campaign %q: %v", data.Name, err)
			continue
		}

		start, err := time.Parse(time.RFC3339, data.StartDate)
		if err != nil {
			log.Printf("❌ start_date %q tidak valid: %v", data.StartDate, err)
			continue
		}
		end, err := time.Parse(time.RFC3339, data.EndDate)
		if err != nil {
			log.Printf("❌ end_date %q tidak valid: %v", data.EndDate, err)
			continue
		}

		campaign := model.CampaignModel{
			CampaignName:             data.Name,
			CampaignImage:            data.Image,
			CampaignOrganizationName: data.OrganizationName,
			CampaignGoalAmount:       data.GoalAmount,
			CampaignStatus:           model.StatusActive,
			CampaignStartDate:        start,
			CampaignEndDate:          end,
			CampaignDescription:      data.Description,
		}

		if err := db.Create(&campaign).Error; err != nil {
			log.Printf("❌ Gagal seed campaign %q: %v", data.Name, err)
			continue
		}
		log.Printf("✅ Campaign %q berhasil di-seed", data.Name)
	}
}
