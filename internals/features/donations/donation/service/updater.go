// 📁 internals/features/donations/donation/service/updater.go
package service

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	subModel "palhope_backend/internals/features/campaigns/subcampaign/model"
)

// AggregateUpdater menerapkan efek satu donasi ke aggregate target
// (campaign / sub-campaign) termasuk cascade sub-campaign → parent.
type AggregateUpdater struct {
	Campaigns CampaignStore
	Subs      SubCampaignStore
	Ledger    LedgerStore
}

// ApplyToCampaign menambah current_amount campaign secara atomik.
// Leaderboard campaign TIDAK dipelihara inline: dihitung on-demand oleh
// LeaderboardQuery dari ledger.
func (u *AggregateUpdater) ApplyToCampaign(campaignID uuid.UUID, amount int64) error {
	if _, err := u.Campaigns.Get(campaignID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Campaign tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat campaign")
	}
	if err := u.Campaigns.IncrementAmount(campaignID, amount); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui total campaign")
	}
	return nil
}

// ApplyToSubCampaign menambah current_amount + cache leaderboard sub-campaign,
// lalu jalankan cascade sekali saja kalau goal tercapai.
// donorID nil (anonim / non-registered) tidak masuk leaderboard.
func (u *AggregateUpdater) ApplyToSubCampaign(subID uuid.UUID, donorID *uuid.UUID, amount int64) (*subModel.SubCampaignModel, error) {
	_, err := u.Subs.Get(subID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Sub-campaign tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat sub-campaign")
	}

	updated, err := u.Subs.ApplyDonation(subID, donorID, amount)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui sub-campaign")
	}

	// Cascade: goal tercapai → Ended + total sub ditambahkan ke parent.
	// EndIfActive atomik, jadi donasi berikutnya ke sub yang sudah Ended
	// tidak akan men-cascade dua kali.
	if updated.SubCampaignCurrentAmount >= updated.SubCampaignGoalAmount {
		if err := u.cascade(updated); err != nil {
			return nil, err
		}
	}

	return updated, nil
}

// MergeIntoParent: trigger cascade manual (endpoint merge-donations).
// Pakai guard yang sama dengan cascade otomatis, jadi aman dipanggil ulang.
func (u *AggregateUpdater) MergeIntoParent(subID uuid.UUID) error {
	sub, err := u.Subs.Get(subID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Sub-campaign tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat sub-campaign")
	}
	if sub.SubCampaignStatus != subModel.StatusActive {
		return fiber.NewError(fiber.StatusConflict, "Donasi sub-campaign sudah pernah digabung ke parent")
	}
	return u.cascade(sub)
}

func (u *AggregateUpdater) cascade(sub *subModel.SubCampaignModel) error {
	flipped, err := u.Subs.EndIfActive(sub.SubCampaignID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menutup sub-campaign")
	}
	if !flipped {
		// sudah Ended oleh request lain, cascade sudah terjadi
		return nil
	}

	if _, err := u.Campaigns.Get(sub.SubCampaignParentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Parent campaign tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat parent campaign")
	}

	total, err := u.Ledger.SumForSubCampaign(sub.SubCampaignID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung total donasi sub-campaign")
	}
	if err := u.Campaigns.IncrementAmount(sub.SubCampaignParentID, total); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui total parent campaign")
	}

	log.Printf("🎯 Sub-campaign %s mencapai goal, %d digabung ke parent %s",
		sub.SubCampaignID, total, sub.SubCampaignParentID)
	return nil
}
