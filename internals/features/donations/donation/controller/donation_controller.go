// 📁 internals/features/donations/donation/controller/donation_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	badgeRepository "palhope_backend/internals/features/badges/badge/repository"
	badgeService "palhope_backend/internals/features/badges/badge/service"
	"palhope_backend/internals/features/donations/donation/dto"
	donationModel "palhope_backend/internals/features/donations/donation/model"
	"palhope_backend/internals/features/donations/donation/repository"
	"palhope_backend/internals/features/donations/donation/service"
	helper "palhope_backend/internals/helpers"
)

var validate = validator.New()

type DonationController struct {
	DB          *gorm.DB
	Pipeline    *service.Pipeline
	Leaderboard *service.LeaderboardQuery
}

// NewDonationController merangkai pipeline dari store GORM + awarder + notifier.
func NewDonationController(db *gorm.DB, notifier service.Notifier) *DonationController {
	ledger := repository.NewLedgerStore(db)
	campaigns := repository.NewCampaignStore(db)
	subs := repository.NewSubCampaignStore(db)
	users := repository.NewUserStore(db)

	updater := &service.AggregateUpdater{
		Campaigns: campaigns,
		Subs:      subs,
		Ledger:    ledger,
	}

	return &DonationController{
		DB: db,
		Pipeline: &service.Pipeline{
			Ledger:   ledger,
			Users:    users,
			Updater:  updater,
			Awarder:  badgeService.NewAwarder(badgeRepository.NewBadgeStore(db)),
			Notifier: notifier,
		},
		Leaderboard: &service.LeaderboardQuery{
			Ledger:    ledger,
			Campaigns: campaigns,
			Subs:      subs,
			Users:     users,
		},
	}
}

// 🟢 DONATE: donasi ke campaign utama. Boleh tanpa login (tamu) atau
// dengan login (token dihitung, bisa anonim).
func (ctrl *DonationController) Donate(c *fiber.Ctx) error {
	var body dto.DonateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	campaignID, err := uuid.Parse(body.CampaignID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "campaign_id tidak valid")
	}

	result, err := ctrl.Pipeline.DonateToCampaign(campaignID, service.DonateInput{
		UserID:        helper.GetUserIDFromTokenOptional(c),
		Anonymous:     body.Anonymous,
		Amount:        body.Amount,
		PaymentMethod: body.PaymentMethod,
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Donasi berhasil dicatat", result)
}

// 🟢 DONATE SUB-CAMPAIGN: donasi ke sub-campaign influencer
// (termasuk cascade ke parent saat goal tercapai).
func (ctrl *DonationController) DonateToSubCampaign(c *fiber.Ctx) error {
	var body dto.DonateSubCampaignRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	subID, err := uuid.Parse(body.SubCampaignID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "sub_campaign_id tidak valid")
	}

	result, err := ctrl.Pipeline.DonateToSubCampaign(subID, service.DonateInput{
		UserID:        helper.GetUserIDFromTokenOptional(c),
		Anonymous:     body.Anonymous,
		Amount:        body.Amount,
		PaymentMethod: body.PaymentMethod,
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Donasi sub-campaign berhasil dicatat", result)
}

// 🟢 DONATE NON-REGISTERED: donasi tamu eksplisit. Identitas (kalaupun
// request bawa token) diabaikan: tidak ada token reward, tidak ada badge.
func (ctrl *DonationController) DonateNonRegistered(c *fiber.Ctx) error {
	var body dto.DonateNonRegisteredRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	campaignID, err := uuid.Parse(body.CampaignID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "campaign_id tidak valid")
	}

	result, err := ctrl.Pipeline.DonateToCampaign(campaignID, service.DonateInput{
		UserID:        nil,
		Amount:        body.Amount,
		PaymentMethod: body.PaymentMethod,
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// konfirmasi minimal saja untuk tamu
	return helper.JsonCreated(c, "Donasi berhasil dicatat", fiber.Map{
		"donation_id": result.Donation.DonationID,
		"amount":      result.Donation.DonationAmount,
	})
}

// 🟢 MERGE DONATIONS: trigger manual cascade sub-campaign → parent (admin).
func (ctrl *DonationController) MergeDonations(c *fiber.Ctx) error {
	var body dto.MergeDonationsRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	subID, err := uuid.Parse(body.SubCampaignID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "sub_campaign_id tidak valid")
	}

	if err := ctrl.Pipeline.Updater.MergeIntoParent(subID); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Donasi sub-campaign berhasil digabung ke parent", nil)
}

// 🟢 GET CAMPAIGN LEADERBOARD: top donor bernama sebuah campaign.
func (ctrl *DonationController) GetCampaignLeaderboard(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("campaign_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "campaign_id tidak valid")
	}

	limit := c.QueryInt("limit", service.DefaultLeaderboardLimit)
	rows, err := ctrl.Leaderboard.Campaign(campaignID, limit)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "OK", fiber.Map{"leaderboard": rows})
}

// 🟢 GET SUB-CAMPAIGN LEADERBOARD: baca cache top-10 sub-campaign.
func (ctrl *DonationController) GetSubCampaignLeaderboard(c *fiber.Ctx) error {
	subID, err := uuid.Parse(c.Params("sub_campaign_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "sub_campaign_id tidak valid")
	}

	rows, err := ctrl.Leaderboard.SubCampaign(subID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "OK", fiber.Map{"leaderboard": rows})
}

// 🟢 GET ALL DONATIONS: seluruh ledger, terbaru dulu (admin).
func (ctrl *DonationController) GetAllDonations(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	var total int64
	if err := ctrl.DB.Model(&donationModel.DonationModel{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data donasi")
	}

	var donations []donationModel.DonationModel
	if err := ctrl.DB.
		Order("created_at desc").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&donations).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data donasi")
	}

	return helper.Success(c, "OK", fiber.Map{
		"donations":  donations,
		"pagination": helper.BuildPagination(paging, total, len(donations)),
	})
}

// 🟢 GET DONATIONS BY USER: riwayat donasi bernama milik satu user.
// Baris anonim tidak pernah muncul di sini.
func (ctrl *DonationController) GetDonationsByUserID(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "user_id tidak valid")
	}

	var donations []donationModel.DonationModel
	if err := ctrl.DB.
		Where("donation_user_id = ? AND donation_anonymous = FALSE", userID).
		Order("created_at desc").
		Find(&donations).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data donasi user")
	}

	return helper.Success(c, "OK", fiber.Map{"donations": donations})
}
