// 📁 internals/features/shop/controller/shop_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	shopDTO "palhope_backend/internals/features/shop/dto"
	shopModel "palhope_backend/internals/features/shop/model"
	userModel "palhope_backend/internals/features/users/user/model"
	helper "palhope_backend/internals/helpers"
)

var validate = validator.New()

type ShopController struct {
	DB *gorm.DB
}

func NewShopController(db *gorm.DB) *ShopController {
	return &ShopController{DB: db}
}

// 🟢 GET ITEMS: katalog per tipe (font/picture/background/border).
func (ctrl *ShopController) GetItemsByType(c *fiber.Ctx) error {
	itemType := c.Params("type")
	if !shopModel.IsValidType(itemType) {
		return helper.Error(c, fiber.StatusBadRequest, "Tipe item tidak dikenal")
	}
	return helper.Success(c, "OK", fiber.Map{"items": shopModel.ItemsByType(itemType)})
}

// 🟢 GET ALL ITEMS: seluruh katalog.
func (ctrl *ShopController) GetAllItems(c *fiber.Ctx) error {
	return helper.Success(c, "OK", fiber.Map{"items": shopModel.AllItems()})
}

// 🟢 BUY ITEM: tukar token dengan item kosmetik.
// Debit token + append purchased item dalam satu UPDATE kondisional,
// supaya dua pembelian bersamaan tidak bisa bikin saldo negatif
// atau item dobel.
func (ctrl *ShopController) BuyItem(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req shopDTO.BuyItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	item := shopModel.FindItem(req.ItemID)
	if item == nil {
		return helper.Error(c, fiber.StatusNotFound, "Item tidak ditemukan")
	}

	res := ctrl.DB.Model(&userModel.UserModel{}).
		Where("user_id = ? AND user_token >= ? AND NOT (? = ANY(COALESCE(user_purchased_items, '{}')))",
			userID, item.Price, item.ID).
		Updates(map[string]interface{}{
			"user_token": gorm.Expr("user_token - ?", item.Price),
			"user_purchased_items": gorm.Expr(
				"array_append(COALESCE(user_purchased_items, '{}'), ?)", item.ID),
		})
	if res.Error != nil {
		log.Printf("❌ Pembelian item %s gagal: %v", item.ID, res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses pembelian")
	}

	if res.RowsAffected == 0 {
		// Update tidak kena: cari tahu alasannya buat pesan error yang jelas.
		var user userModel.UserModel
		if err := ctrl.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
			}
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat user")
		}
		if user.HasPurchased(item.ID) {
			return helper.Error(c, fiber.StatusBadRequest, "Item ini sudah pernah dibeli")
		}
		return helper.Error(c, fiber.StatusBadRequest, "Token tidak cukup untuk membeli item ini")
	}

	var user userModel.UserModel
	if err := ctrl.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat user")
	}

	return helper.Success(c, "Item berhasil dibeli", fiber.Map{
		"user": fiber.Map{
			"user_id":              user.UserID,
			"user_name":            user.UserName,
			"user_token":           user.UserToken,
			"user_purchased_items": user.UserPurchasedItems,
		},
		"item": fiber.Map{
			"id":    item.ID,
			"name":  item.Name,
			"type":  item.Type,
			"price": item.Price,
		},
	})
}

// 🟢 GET PURCHASED: item yang sudah dibeli user, difilter per tipe.
func (ctrl *ShopController) GetPurchasedByType(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "user_id tidak valid")
	}
	itemType := c.Params("type")
	if !shopModel.IsValidType(itemType) {
		return helper.Error(c, fiber.StatusBadRequest, "Tipe item tidak dikenal")
	}

	var user userModel.UserModel
	if err := ctrl.DB.Select("user_purchased_items").
		Where("user_id = ?", userID).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat user")
	}

	var owned []shopModel.ShopItem
	for _, item := range shopModel.ItemsByType(itemType) {
		if user.HasPurchased(item.ID) {
			owned = append(owned, item)
		}
	}

	return helper.Success(c, "OK", fiber.Map{"items": owned})
}
