// 📁 internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"palhope_backend/internals/configs"
	"palhope_backend/internals/constants"
	authDTO "palhope_backend/internals/features/users/auth/dto"
	userModel "palhope_backend/internals/features/users/user/model"
	helper "palhope_backend/internals/helpers"
)

var validate = validator.New()

// Masa berlaku access token
const tokenTTL = 24 * time.Hour

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// 🟢 REGISTER: buat akun baru (donor/organization/influencer).
// Admin tidak bisa register lewat endpoint publik.
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Email harus unik (case-insensitive)
	var count int64
	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("LOWER(user_email) = LOWER(?)", req.UserEmail).
		Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa email")
	}
	if count > 0 {
		return helper.Error(c, fiber.StatusConflict, "Email sudah terdaftar")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := userModel.UserModel{
		UserName:        req.UserName,
		UserEmail:       req.UserEmail,
		UserPassword:    string(hashed),
		UserRole:        req.UserRole,
		UserAddress:     req.UserAddress,
		UserPhoneNumber: req.UserPhoneNumber,
	}
	user.SetDefaultValues()

	if !constants.IsValidRole(user.UserRole) || user.UserRole == constants.RoleAdmin {
		return helper.Error(c, fiber.StatusBadRequest, "Role tidak valid")
	}
	if len(req.RolePayload) > 0 {
		user.UserRolePayload = datatypes.JSON(req.RolePayload)
	}

	if err := ctrl.DB.Create(&user).Error; err != nil {
		log.Printf("❌ Register gagal: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat akun")
	}

	return helper.JsonCreated(c, "Registrasi berhasil", fiber.Map{
		"user_id":   user.UserID,
		"user_name": user.UserName,
		"user_role": user.UserRole,
	})
}

// 🟢 LOGIN: verifikasi kredensial lalu terbitkan JWT.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctrl.DB.
		Where("LOWER(user_email) = LOWER(?)", req.UserEmail).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.UserPassword)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.UserID.String(),
		"iat":     now.Unix(),
		"exp":     now.Add(tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	// Cookie + body: frontend web pakai cookie, client lain pakai body.
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  now.Add(tokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return helper.Success(c, "Login berhasil", fiber.Map{
		"access_token": token,
		"user": fiber.Map{
			"user_id":   user.UserID,
			"user_name": user.UserName,
			"user_role": user.UserRole,
		},
	})
}

// 🟢 LOGOUT: hapus cookie access token.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.Success(c, "Logout berhasil", nil)
}
