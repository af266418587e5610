// 📁 internals/features/donations/donation/service/pipeline.go
package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	badgeModel "palhope_backend/internals/features/badges/badge/model"
	donationModel "palhope_backend/internals/features/donations/donation/model"
	"palhope_backend/internals/features/donations/rewards"
	userModel "palhope_backend/internals/features/users/user/model"
)

// DonateInput satu request donasi yang sudah dinormalisasi controller.
type DonateInput struct {
	UserID        *uuid.UUID // nil = non-registered
	Anonymous     bool
	Amount        int64
	PaymentMethod string
}

// DonationResult terminal state Success dari pipeline.
type DonationResult struct {
	Donation  *donationModel.DonationModel `json:"donation"`
	NewBadges []badgeModel.BadgeModel      `json:"new_badges,omitempty"`
}

// Pipeline mengurutkan: tulis ledger → update aggregate → kredit token →
// evaluasi badge → kirim notifikasi (best-effort).
//
// Setelah ledger tertulis, kegagalan langkah berikutnya TIDAK di-rollback:
// ledger adalah source of truth dan uangnya sudah diterima, jadi baris
// donasi harus tetap ada; aggregate/token/badge bisa dihitung ulang dari
// ledger. Error tetap dikembalikan ke caller sebagai 500. Tiap langkah
// sendiri atomik di level store.
type Pipeline struct {
	Ledger   LedgerStore
	Users    UserStore
	Updater  *AggregateUpdater
	Awarder  BadgeAwarder
	Notifier Notifier
}

// DonateToCampaign memproses donasi ke campaign utama.
func (p *Pipeline) DonateToCampaign(campaignID uuid.UUID, in DonateInput) (*DonationResult, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	// Pre-check sebelum ada mutasi: target & user harus ada.
	campaign, err := p.Updater.Campaigns.Get(campaignID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Campaign tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat campaign")
	}
	user, err := p.lookupDonor(in)
	if err != nil {
		return nil, err
	}

	donation := p.buildLedgerEntry(in)
	donation.DonationCampaignID = &campaignID
	if err := p.Ledger.Create(donation); err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan donasi")
	}

	if err := p.Updater.ApplyToCampaign(campaignID, in.Amount); err != nil {
		return nil, err
	}

	newBadges, err := p.creditAndAward(in, donation)
	if err != nil {
		return nil, err
	}

	p.notify(user, in, campaign.CampaignName)

	return &DonationResult{Donation: donation, NewBadges: newBadges}, nil
}

// DonateToSubCampaign memproses donasi ke sub-campaign influencer,
// termasuk cascade ke parent saat goal tercapai.
func (p *Pipeline) DonateToSubCampaign(subID uuid.UUID, in DonateInput) (*DonationResult, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	sub, err := p.Updater.Subs.Get(subID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Sub-campaign tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat sub-campaign")
	}
	user, err := p.lookupDonor(in)
	if err != nil {
		return nil, err
	}

	donation := p.buildLedgerEntry(in)
	donation.DonationSubCampaignID = &subID
	if err := p.Ledger.Create(donation); err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan donasi")
	}

	// Leaderboard sub-campaign hanya untuk donor bernama.
	var leaderboardDonor *uuid.UUID
	if in.UserID != nil && !in.Anonymous {
		leaderboardDonor = in.UserID
	}
	if _, err := p.Updater.ApplyToSubCampaign(subID, leaderboardDonor, in.Amount); err != nil {
		return nil, err
	}

	newBadges, err := p.creditAndAward(in, donation)
	if err != nil {
		return nil, err
	}

	p.notify(user, in, sub.SubCampaignName)

	return &DonationResult{Donation: donation, NewBadges: newBadges}, nil
}

/* ===============================
   Langkah-langkah internal
=================================*/

func validateInput(in DonateInput) error {
	if in.Amount <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Jumlah donasi harus lebih dari 0")
	}
	return nil
}

// lookupDonor memuat user kalau request membawa identitas.
// Non-registered (UserID nil) lolos tanpa lookup.
func (p *Pipeline) lookupDonor(in DonateInput) (*userModel.UserModel, error) {
	if in.UserID == nil {
		return nil, nil
	}
	user, err := p.Users.Get(*in.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat user")
	}
	return user, nil
}

// buildLedgerEntry menyusun baris ledger sesuai varian donor.
// Token dihitung saat tulis dan tidak pernah diubah lagi.
func (p *Pipeline) buildLedgerEntry(in DonateInput) *donationModel.DonationModel {
	d := &donationModel.DonationModel{
		DonationAmount:        in.Amount,
		DonationAnonymous:     in.Anonymous,
		DonationPaymentMethod: in.PaymentMethod,
	}
	if in.UserID != nil {
		// Registered maupun anonim-berlogin tetap dapat token; baris anonim
		// disembunyikan dari tampilan publik via flag, bukan via user id.
		id := *in.UserID
		d.DonationUserID = &id
		d.DonationTokens = rewards.TokensForAmount(in.Amount)
	}
	return d
}

// creditAndAward: kredit saldo token (atomik) lalu evaluasi badge
// dengan saldo terbaru. Non-registered dilewati seluruhnya.
func (p *Pipeline) creditAndAward(in DonateInput, d *donationModel.DonationModel) ([]badgeModel.BadgeModel, error) {
	if in.UserID == nil {
		return nil, nil
	}

	newTotal, err := p.Users.CreditTokens(*in.UserID, d.DonationTokens)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menambah token user")
	}

	newBadges, err := p.Awarder.AwardBadges(*in.UserID, newTotal)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal evaluasi badge")
	}
	return newBadges, nil
}

// notify kirim email konfirmasi di goroutine terpisah: tidak pernah
// memblokir atau menggagalkan response donasi.
func (p *Pipeline) notify(user *userModel.UserModel, in DonateInput, targetName string) {
	if p.Notifier == nil || user == nil || user.UserEmail == "" {
		return
	}

	greeting := user.UserName
	if in.Anonymous {
		greeting = "Anonymous Donor"
	}
	subject := "Thank You for Your Donation"
	body := fmt.Sprintf(
		"Dear %s,\n\nThank you for your generous donation of $%d to the %s campaign. Your support is greatly appreciated.\n\nBest regards,\nPalHope Team",
		greeting, in.Amount, targetName,
	)

	to := user.UserEmail
	go func() {
		if err := p.Notifier.Send(to, subject, body); err != nil {
			log.Printf("[WARN] Gagal kirim email konfirmasi donasi ke %s: %v", to, err)
		}
	}()
}
