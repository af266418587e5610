// 📁 internals/features/donations/donation/service/stores.go
//
// Kontrak collaborator pipeline donasi. Implementasi GORM ada di
// package repository; test pakai fake in-memory.
package service

import (
	"github.com/google/uuid"

	badgeModel "palhope_backend/internals/features/badges/badge/model"
	campaignModel "palhope_backend/internals/features/campaigns/campaign/model"
	subModel "palhope_backend/internals/features/campaigns/subcampaign/model"
	donationModel "palhope_backend/internals/features/donations/donation/model"
	userModel "palhope_backend/internals/features/users/user/model"
)

// DonorTotal hasil agregasi ledger per donor.
type DonorTotal struct {
	UserID uuid.UUID
	Total  int64
}

// LedgerStore: catatan donasi append-only, source of truth nominal & token.
type LedgerStore interface {
	Create(d *donationModel.DonationModel) error

	// TotalsByDonor agregasi donasi bernama sebuah campaign
	// (donor anonim & non-registered tidak ikut), desc by total.
	TotalsByDonor(campaignID uuid.UUID, limit int) ([]DonorTotal, error)

	// SumForSubCampaign total seluruh nominal donasi sebuah sub-campaign.
	SumForSubCampaign(subCampaignID uuid.UUID) (int64, error)

	// SumTokensForUser hitung ulang total token user dari ledger.
	SumTokensForUser(userID uuid.UUID) (int64, error)
}

type CampaignStore interface {
	Get(id uuid.UUID) (*campaignModel.CampaignModel, error)

	// IncrementAmount menambah current_amount secara atomik di DB.
	IncrementAmount(id uuid.UUID, delta int64) error
}

type SubCampaignStore interface {
	Get(id uuid.UUID) (*subModel.SubCampaignModel, error)

	// ApplyDonation menambah current_amount + update cache leaderboard
	// (donorID nil = tidak masuk leaderboard). Mengembalikan kondisi terbaru.
	ApplyDonation(id uuid.UUID, donorID *uuid.UUID, amount int64) (*subModel.SubCampaignModel, error)

	// EndIfActive flip status Active → Ended sekali saja.
	// true hanya untuk pemanggil yang berhasil flip (guard anti double-cascade).
	EndIfActive(id uuid.UUID) (bool, error)
}

type UserStore interface {
	Get(id uuid.UUID) (*userModel.UserModel, error)

	// CreditTokens menambah saldo token atomik, mengembalikan saldo baru.
	CreditTokens(id uuid.UUID, tokens int64) (int64, error)
}

// BadgeAwarder dipanggil tiap kali token user bertambah.
// Implementasi wajib idempoten per (user, badge).
type BadgeAwarder interface {
	AwardBadges(userID uuid.UUID, totalTokens int64) ([]badgeModel.BadgeModel, error)
}

// Notifier kirim konfirmasi donasi. Selalu best-effort.
type Notifier interface {
	Send(to, subject, body string) error
}
