// 📁 internals/features/campaigns/campaign/controller/campaign_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	campaignDTO "palhope_backend/internals/features/campaigns/campaign/dto"
	campaignModel "palhope_backend/internals/features/campaigns/campaign/model"
	donationModel "palhope_backend/internals/features/donations/donation/model"
	donationRepository "palhope_backend/internals/features/donations/donation/repository"
	donationService "palhope_backend/internals/features/donations/donation/service"
	userModel "palhope_backend/internals/features/users/user/model"
	helper "palhope_backend/internals/helpers"
)

var validate = validator.New()

type CampaignController struct {
	DB          *gorm.DB
	Leaderboard *donationService.LeaderboardQuery
}

func NewCampaignController(db *gorm.DB) *CampaignController {
	return &CampaignController{
		DB: db,
		Leaderboard: &donationService.LeaderboardQuery{
			Ledger:    donationRepository.NewLedgerStore(db),
			Campaigns: donationRepository.NewCampaignStore(db),
			Subs:      donationRepository.NewSubCampaignStore(db),
			Users:     donationRepository.NewUserStore(db),
		},
	}
}

// 🟢 CREATE: buat campaign baru (organization/admin).
func (ctrl *CampaignController) CreateCampaign(c *fiber.Ctx) error {
	var req campaignDTO.CreateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !req.CampaignEndDate.After(req.CampaignStartDate) {
		return helper.Error(c, fiber.StatusBadRequest, "Tanggal selesai harus setelah tanggal mulai")
	}

	campaign := campaignModel.CampaignModel{
		CampaignName:             req.CampaignName,
		CampaignImage:            req.CampaignImage,
		CampaignOrganizationName: req.CampaignOrganizationName,
		CampaignGoalAmount:       req.CampaignGoalAmount,
		CampaignStatus:           campaignModel.StatusActive,
		CampaignStartDate:        req.CampaignStartDate,
		CampaignEndDate:          req.CampaignEndDate,
		CampaignDescription:      req.CampaignDescription,
	}

	if err := ctrl.DB.Create(&campaign).Error; err != nil {
		log.Printf("❌ Gagal membuat campaign: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat campaign")
	}

	return helper.JsonCreated(c, "Campaign berhasil dibuat", campaign)
}

// 🟢 GET ALL: daftar campaign (paged). Leaderboard tidak ikut di list,
// dihitung on-demand hanya di detail.
func (ctrl *CampaignController) GetAllCampaigns(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 50)

	var total int64
	if err := ctrl.DB.Model(&campaignModel.CampaignModel{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung campaign")
	}

	var campaigns []campaignModel.CampaignModel
	if err := ctrl.DB.
		Order("campaign_start_date desc").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&campaigns).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil campaign")
	}

	return helper.Success(c, "OK", fiber.Map{
		"campaigns":  campaigns,
		"pagination": helper.BuildPagination(paging, total, len(campaigns)),
	})
}

// 🟢 SEARCH: cari campaign berdasarkan nama (case-insensitive).
func (ctrl *CampaignController) SearchCampaigns(c *fiber.Ctx) error {
	q := c.Query("name")
	if q == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter name wajib diisi")
	}

	var campaigns []campaignModel.CampaignModel
	if err := ctrl.DB.
		Where("campaign_name ILIKE ?", "%"+q+"%").
		Order("campaign_start_date desc").
		Limit(50).
		Find(&campaigns).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mencari campaign")
	}

	return helper.Success(c, "OK", fiber.Map{"campaigns": campaigns})
}

// 🟢 GET BY ID: detail campaign + donasi (anonim dimasking) + leaderboard.
func (ctrl *CampaignController) GetCampaignByID(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("campaign_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "campaign_id tidak valid")
	}

	var campaign campaignModel.CampaignModel
	if err := ctrl.DB.Where("campaign_id = ?", campaignID).First(&campaign).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Campaign tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat campaign")
	}

	var donations []donationModel.DonationModel
	if err := ctrl.DB.
		Where("donation_campaign_id = ?", campaignID).
		Order("donation_date desc").
		Find(&donations).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat donasi campaign")
	}

	publicDonations, err := ctrl.maskDonations(donations)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat data donor")
	}

	leaderboard, err := ctrl.Leaderboard.Campaign(campaignID, donationService.DefaultLeaderboardLimit)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "OK", fiber.Map{
		"campaign":    campaign,
		"donations":   publicDonations,
		"leaderboard": leaderboard,
	})
}

// maskDonations mengubah baris ledger jadi bentuk publik.
// Identitas donor anonim (atau yang usernya sudah dihapus) tidak bocor.
func (ctrl *CampaignController) maskDonations(donations []donationModel.DonationModel) ([]campaignDTO.PublicDonation, error) {
	out := make([]campaignDTO.PublicDonation, 0, len(donations))
	names := map[uuid.UUID]string{}

	for _, d := range donations {
		pub := campaignDTO.PublicDonation{
			DonationID:    d.DonationID,
			DonorName:     "Anonymous",
			Amount:        d.DonationAmount,
			PaymentMethod: d.DonationPaymentMethod,
			DonationDate:  d.DonationDate,
		}

		if d.DonationUserID != nil && !d.DonationAnonymous {
			id := *d.DonationUserID
			name, ok := names[id]
			if !ok {
				var user userModel.UserModel
				err := ctrl.DB.Select("user_name").Where("user_id = ?", id).First(&user).Error
				switch {
				case err == nil:
					name = user.UserName
				case errors.Is(err, gorm.ErrRecordNotFound):
					name = "" // user sudah dihapus, tampilkan anonim
				default:
					return nil, err
				}
				names[id] = name
			}
			if name != "" {
				pub.DonorID = &id
				pub.DonorName = name
			}
		}

		out = append(out, pub)
	}
	return out, nil
}

// 🟢 ADD NEWS: tambah pengumuman ke dashboard campaign.
func (ctrl *CampaignController) AddNews(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("campaign_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "campaign_id tidak valid")
	}

	var req campaignDTO.AddNewsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctrl.DB.Model(&campaignModel.CampaignModel{}).
		Where("campaign_id = ?", campaignID).
		Update("campaign_news_dashboard",
			gorm.Expr("array_append(COALESCE(campaign_news_dashboard, '{}'), ?)", req.News))
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menambah berita")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Campaign tidak ditemukan")
	}

	return helper.Success(c, "Berita berhasil ditambahkan", nil)
}

// 🟢 DELETE NEWS: hapus pengumuman berdasarkan index (0-based).
func (ctrl *CampaignController) DeleteNewsByIndex(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("campaign_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "campaign_id tidak valid")
	}
	index, err := c.ParamsInt("index")
	if err != nil || index < 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Index tidak valid")
	}

	var campaign campaignModel.CampaignModel
	if err := ctrl.DB.Where("campaign_id = ?", campaignID).First(&campaign).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Campaign tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat campaign")
	}
	if index >= len(campaign.CampaignNewsDashboard) {
		return helper.Error(c, fiber.StatusBadRequest, "Index melebihi jumlah berita")
	}

	news := append(campaign.CampaignNewsDashboard[:index],
		campaign.CampaignNewsDashboard[index+1:]...)
	if err := ctrl.DB.Model(&campaign).
		Update("campaign_news_dashboard", news).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus berita")
	}

	return helper.Success(c, "Berita berhasil dihapus", fiber.Map{
		"campaign_news_dashboard": news,
	})
}

// 🟢 ADD FAVORITE: tandai campaign sebagai favorit user yang login.
func (ctrl *CampaignController) AddFavorite(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	campaignID, err := uuid.Parse(c.Params("campaign_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "campaign_id tidak valid")
	}

	var count int64
	if err := ctrl.DB.Model(&campaignModel.CampaignModel{}).
		Where("campaign_id = ?", campaignID).
		Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa campaign")
	}
	if count == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Campaign tidak ditemukan")
	}

	// array_append hanya kalau belum ada, supaya idempoten
	res := ctrl.DB.Model(&userModel.UserModel{}).
		Where("user_id = ? AND NOT (? = ANY(COALESCE(user_favorites, '{}')))",
			userID, campaignID.String()).
		Update("user_favorites",
			gorm.Expr("array_append(COALESCE(user_favorites, '{}'), ?)", campaignID.String()))
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menambah favorit")
	}

	return helper.Success(c, "Campaign ditambahkan ke favorit", nil)
}

// 🟢 REMOVE FAVORITE: hapus campaign dari favorit user yang login.
func (ctrl *CampaignController) RemoveFavorite(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	campaignID, err := uuid.Parse(c.Params("campaign_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "campaign_id tidak valid")
	}

	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("user_id = ?", userID).
		Update("user_favorites",
			gorm.Expr("array_remove(COALESCE(user_favorites, '{}'), ?)", campaignID.String())).
		Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus favorit")
	}

	return helper.Success(c, "Campaign dihapus dari favorit", nil)
}

// 🟢 GET FAVORITES: daftar campaign favorit user yang login.
func (ctrl *CampaignController) GetFavorites(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user userModel.UserModel
	if err := ctrl.DB.Select("user_favorites").
		Where("user_id = ?", userID).
		First(&user).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat user")
	}

	if len(user.UserFavorites) == 0 {
		return helper.Success(c, "OK", fiber.Map{"campaigns": []campaignModel.CampaignModel{}})
	}

	var campaigns []campaignModel.CampaignModel
	if err := ctrl.DB.
		Where("campaign_id::text IN ?", []string(user.UserFavorites)).
		Find(&campaigns).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat campaign favorit")
	}

	return helper.Success(c, "OK", fiber.Map{"campaigns": campaigns})
}
