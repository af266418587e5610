// 📁 internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	badgeRepository "palhope_backend/internals/features/badges/badge/repository"
	donationModel "palhope_backend/internals/features/donations/donation/model"
	donationRepository "palhope_backend/internals/features/donations/donation/repository"
	userDTO "palhope_backend/internals/features/users/user/dto"
	userModel "palhope_backend/internals/features/users/user/model"
	helper "palhope_backend/internals/helpers"
)

var validate = validator.New()

type UserController struct {
	DB     *gorm.DB
	Ledger *donationRepository.LedgerStore
	Badges *badgeRepository.BadgeStore
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{
		DB:     db,
		Ledger: donationRepository.NewLedgerStore(db),
		Badges: badgeRepository.NewBadgeStore(db),
	}
}

func (ctrl *UserController) findUser(userID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := ctrl.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// 🟢 GET PROFILE: data user + donasi bernama + badge.
// Donasi anonim tidak pernah muncul di profil, sekalipun milik sendiri.
func (ctrl *UserController) GetProfile(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "user_id tidak valid")
	}

	user, err := ctrl.findUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat user")
	}

	var donations []donationModel.DonationModel
	if err := ctrl.DB.
		Where("donation_user_id = ? AND donation_anonymous = FALSE", userID).
		Order("donation_date desc").
		Find(&donations).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat donasi user")
	}

	badges, err := ctrl.Badges.ListByUser(userID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat badge user")
	}

	return helper.Success(c, "OK", fiber.Map{
		"user":      user,
		"donations": donations,
		"badges":    badges,
	})
}

// 🟢 GET ME: profil user yang sedang login.
func (ctrl *UserController) GetMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	user, err := ctrl.findUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat user")
	}

	return helper.Success(c, "OK", user)
}

// 🟢 GET TOKENS: total token user, dihitung ulang dari ledger donasi.
// Saldo di kolom user_token ikut dikembalikan untuk perbandingan.
func (ctrl *UserController) GetUserTokens(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "user_id tidak valid")
	}

	user, err := ctrl.findUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat user")
	}

	total, err := ctrl.Ledger.SumTokensForUser(userID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung token")
	}

	return helper.Success(c, "OK", fiber.Map{
		"user_id":       userID,
		"total_tokens":  total,
		"token_balance": user.UserToken,
	})
}

// 🟢 UPDATE PROFILE: user hanya bisa mengubah profilnya sendiri.
func (ctrl *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req userDTO.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.UserName != nil {
		updates["user_name"] = *req.UserName
	}
	if req.UserAddress != nil {
		updates["user_address"] = *req.UserAddress
	}
	if req.UserPhoneNumber != nil {
		updates["user_phone_number"] = *req.UserPhoneNumber
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	res := ctrl.DB.Model(&userModel.UserModel{}).
		Where("user_id = ?", userID).
		Updates(updates)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui profil")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helper.Success(c, "Profil berhasil diperbarui", nil)
}
