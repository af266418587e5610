// 📁 internals/features/badges/badge/controller/badge_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	badgeRepository "palhope_backend/internals/features/badges/badge/repository"
	badgeService "palhope_backend/internals/features/badges/badge/service"
	donationRepository "palhope_backend/internals/features/donations/donation/repository"
	userModel "palhope_backend/internals/features/users/user/model"
	helper "palhope_backend/internals/helpers"
)

type BadgeController struct {
	DB      *gorm.DB
	Awarder *badgeService.Awarder
	Badges  *badgeRepository.BadgeStore
	Ledger  *donationRepository.LedgerStore
}

func NewBadgeController(db *gorm.DB) *BadgeController {
	badges := badgeRepository.NewBadgeStore(db)
	return &BadgeController{
		DB:      db,
		Awarder: badgeService.NewAwarder(badges),
		Badges:  badges,
		Ledger:  donationRepository.NewLedgerStore(db),
	}
}

// 🟢 CHECK BADGES (ALL): evaluasi badge untuk semua user (admin).
// Total token dihitung ulang dari ledger, bukan dari field saldo,
// supaya hasil evaluasi tidak terpengaruh drift.
func (ctrl *BadgeController) CheckBadgesAll(c *fiber.Ctx) error {
	var users []userModel.UserModel
	if err := ctrl.DB.Select("user_id").Find(&users).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar user")
	}

	awarded := 0
	for _, u := range users {
		total, err := ctrl.Ledger.SumTokensForUser(u.UserID)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung token user")
		}
		newly, err := ctrl.Awarder.AwardBadges(u.UserID, total)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal evaluasi badge")
		}
		awarded += len(newly)
	}

	log.Printf("🏅 Badge check selesai: %d user, %d badge baru", len(users), awarded)
	return helper.Success(c, "Badge check selesai", fiber.Map{
		"users_checked": len(users),
		"new_badges":    awarded,
	})
}

// 🟢 CHECK BADGES (USER): evaluasi badge untuk satu user.
func (ctrl *BadgeController) CheckBadgesUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "user_id tidak valid")
	}

	var user userModel.UserModel
	if err := ctrl.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat user")
	}

	total, err := ctrl.Ledger.SumTokensForUser(userID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung token user")
	}

	newly, err := ctrl.Awarder.AwardBadges(userID, total)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal evaluasi badge")
	}

	return helper.Success(c, "Badge check selesai untuk user", fiber.Map{
		"total_tokens": total,
		"new_badges":   newly,
	})
}

// 🟢 GET USER BADGES: semua badge milik satu user.
func (ctrl *BadgeController) GetUserBadges(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "user_id tidak valid")
	}

	badges, err := ctrl.Badges.ListByUser(userID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil badge user")
	}

	return helper.Success(c, "OK", fiber.Map{"user_badges": badges})
}
