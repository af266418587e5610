// 📁 internals/features/donations/donation/service/leaderboard.go
package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	subModel "palhope_backend/internals/features/campaigns/subcampaign/model"
)

const DefaultLeaderboardLimit = 10

// LeaderboardRow satu baris leaderboard yang sudah di-resolve namanya.
type LeaderboardRow struct {
	UserID      uuid.UUID `json:"user_id"`
	UserName    string    `json:"user_name"`
	TotalAmount int64     `json:"total_amount"`
}

// LeaderboardQuery sisi baca, tanpa side effect, aman dipanggil berulang.
//
// Dua jalur sengaja beda (mengikuti desain aslinya):
//   - campaign     : agregasi on-demand dari ledger
//   - sub-campaign : baca cache top-10 yang dipelihara inline
//
// Dua-duanya menghapus donor anonim dan donor yang usernya sudah tidak ada.
type LeaderboardQuery struct {
	Ledger    LedgerStore
	Campaigns CampaignStore
	Subs      SubCampaignStore
	Users     UserStore
}

// Campaign menghitung top-N donor bernama sebuah campaign dari ledger.
func (q *LeaderboardQuery) Campaign(campaignID uuid.UUID, limit int) ([]LeaderboardRow, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}

	if _, err := q.Campaigns.Get(campaignID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Campaign tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat campaign")
	}

	totals, err := q.Ledger.TotalsByDonor(campaignID, limit)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil leaderboard")
	}

	rows := make([]LeaderboardRow, 0, len(totals))
	for _, t := range totals {
		user, err := q.Users.Get(t.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// user sudah dihapus: baris di-drop, tidak ditampilkan "Unknown"
				continue
			}
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat data donor")
		}
		rows = append(rows, LeaderboardRow{
			UserID:      t.UserID,
			UserName:    user.UserName,
			TotalAmount: t.Total,
		})
	}
	return rows, nil
}

// SubCampaign membaca cache leaderboard sub-campaign lalu resolve nama donor.
func (q *LeaderboardQuery) SubCampaign(subID uuid.UUID) ([]LeaderboardRow, error) {
	sub, err := q.Subs.Get(subID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Sub-campaign tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat sub-campaign")
	}

	entries := subModel.LeaderboardFromJSON(sub.SubCampaignLeaderboard)
	rows := make([]LeaderboardRow, 0, len(entries))
	for _, e := range entries {
		user, err := q.Users.Get(e.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat data donor")
		}
		rows = append(rows, LeaderboardRow{
			UserID:      e.UserID,
			UserName:    user.UserName,
			TotalAmount: e.Amount,
		})
	}
	return rows, nil
}
