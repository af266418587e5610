// 📁 internals/features/campaigns/subcampaign/controller/subcampaign_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	campaignModel "palhope_backend/internals/features/campaigns/campaign/model"
	subDTO "palhope_backend/internals/features/campaigns/subcampaign/dto"
	subModel "palhope_backend/internals/features/campaigns/subcampaign/model"
	donationRepository "palhope_backend/internals/features/donations/donation/repository"
	donationService "palhope_backend/internals/features/donations/donation/service"
	helper "palhope_backend/internals/helpers"
)

var validate = validator.New()

type SubCampaignController struct {
	DB          *gorm.DB
	Leaderboard *donationService.LeaderboardQuery
}

func NewSubCampaignController(db *gorm.DB) *SubCampaignController {
	return &SubCampaignController{
		DB: db,
		Leaderboard: &donationService.LeaderboardQuery{
			Ledger:    donationRepository.NewLedgerStore(db),
			Campaigns: donationRepository.NewCampaignStore(db),
			Subs:      donationRepository.NewSubCampaignStore(db),
			Users:     donationRepository.NewUserStore(db),
		},
	}
}

// 🟢 CREATE: influencer membuka sub-campaign di bawah campaign induk.
// Induk harus ada dan masih Active.
func (ctrl *SubCampaignController) CreateSubCampaign(c *fiber.Ctx) error {
	influencerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req subDTO.CreateSubCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !req.SubCampaignEndDate.After(req.SubCampaignStartDate) {
		return helper.Error(c, fiber.StatusBadRequest, "Tanggal selesai harus setelah tanggal mulai")
	}

	parentID, err := uuid.Parse(req.SubCampaignParentID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "sub_campaign_parent_id tidak valid")
	}

	var parent campaignModel.CampaignModel
	if err := ctrl.DB.Where("campaign_id = ?", parentID).First(&parent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Campaign induk tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat campaign induk")
	}
	if parent.CampaignStatus != campaignModel.StatusActive {
		return helper.Error(c, fiber.StatusConflict, "Campaign induk sudah tidak aktif")
	}

	sub := subModel.SubCampaignModel{
		SubCampaignParentID:     parentID,
		SubCampaignInfluencerID: influencerID,
		SubCampaignName:         req.SubCampaignName,
		SubCampaignDescription:  req.SubCampaignDescription,
		SubCampaignGoalAmount:   req.SubCampaignGoalAmount,
		SubCampaignStatus:       subModel.StatusActive,
		SubCampaignStartDate:    req.SubCampaignStartDate,
		SubCampaignEndDate:      req.SubCampaignEndDate,
	}

	if err := ctrl.DB.Create(&sub).Error; err != nil {
		log.Printf("❌ Gagal membuat sub-campaign: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat sub-campaign")
	}

	return helper.JsonCreated(c, "Sub-campaign berhasil dibuat", sub)
}

// 🟢 GET ALL: daftar sub-campaign (paged).
func (ctrl *SubCampaignController) GetAllSubCampaigns(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 50)

	var total int64
	if err := ctrl.DB.Model(&subModel.SubCampaignModel{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung sub-campaign")
	}

	var subs []subModel.SubCampaignModel
	if err := ctrl.DB.
		Order("sub_campaign_start_date desc").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&subs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil sub-campaign")
	}

	return helper.Success(c, "OK", fiber.Map{
		"sub_campaigns": subs,
		"pagination":    helper.BuildPagination(paging, total, len(subs)),
	})
}

// 🟢 GET BY ID: detail sub-campaign + leaderboard (dari cache).
func (ctrl *SubCampaignController) GetSubCampaignByID(c *fiber.Ctx) error {
	subID, err := uuid.Parse(c.Params("sub_campaign_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "sub_campaign_id tidak valid")
	}

	var sub subModel.SubCampaignModel
	if err := ctrl.DB.Where("sub_campaign_id = ?", subID).First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Sub-campaign tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat sub-campaign")
	}

	leaderboard, err := ctrl.Leaderboard.SubCampaign(subID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "OK", fiber.Map{
		"sub_campaign": sub,
		"leaderboard":  leaderboard,
	})
}

// 🟢 GET BY PARENT: semua sub-campaign milik satu campaign induk.
func (ctrl *SubCampaignController) GetByParentCampaign(c *fiber.Ctx) error {
	parentID, err := uuid.Parse(c.Params("campaign_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "campaign_id tidak valid")
	}

	var subs []subModel.SubCampaignModel
	if err := ctrl.DB.
		Where("sub_campaign_parent_id = ?", parentID).
		Order("sub_campaign_start_date desc").
		Find(&subs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil sub-campaign")
	}

	return helper.Success(c, "OK", fiber.Map{"sub_campaigns": subs})
}

// 🟢 GET BY INFLUENCER: semua sub-campaign milik satu influencer.
func (ctrl *SubCampaignController) GetByInfluencer(c *fiber.Ctx) error {
	influencerID, err := uuid.Parse(c.Params("influencer_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "influencer_id tidak valid")
	}

	var subs []subModel.SubCampaignModel
	if err := ctrl.DB.
		Where("sub_campaign_influencer_id = ?", influencerID).
		Order("sub_campaign_start_date desc").
		Find(&subs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil sub-campaign")
	}

	return helper.Success(c, "OK", fiber.Map{"sub_campaigns": subs})
}

// 🟢 APPROVE: admin menyetujui sub-campaign.
func (ctrl *SubCampaignController) ApproveSubCampaign(c *fiber.Ctx) error {
	subID, err := uuid.Parse(c.Params("sub_campaign_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "sub_campaign_id tidak valid")
	}

	res := ctrl.DB.Model(&subModel.SubCampaignModel{}).
		Where("sub_campaign_id = ? AND sub_campaign_approved = FALSE", subID).
		Update("sub_campaign_approved", true)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyetujui sub-campaign")
	}
	if res.RowsAffected == 0 {
		var count int64
		ctrl.DB.Model(&subModel.SubCampaignModel{}).
			Where("sub_campaign_id = ?", subID).Count(&count)
		if count == 0 {
			return helper.Error(c, fiber.StatusNotFound, "Sub-campaign tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusConflict, "Sub-campaign sudah disetujui")
	}

	return helper.Success(c, "Sub-campaign berhasil disetujui", nil)
}
