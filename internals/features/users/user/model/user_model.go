package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"palhope_backend/internals/constants"
)

// UserModel merepresentasikan tabel users.
// Satu tabel untuk semua varian (donor/organization/influencer/admin):
// dispatch lewat user_role, field khusus per role disimpan di user_role_payload.
type UserModel struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`

	UserName     string `gorm:"column:user_name;size:100;not null" json:"user_name"`
	UserEmail    string `gorm:"column:user_email;size:255;unique;not null" json:"user_email"`
	UserPassword string `gorm:"column:user_password;not null" json:"-"`

	UserRole        string         `gorm:"column:user_role;type:varchar(20);not null;default:'donor'" json:"user_role"`
	UserRolePayload datatypes.JSON `gorm:"column:user_role_payload;type:jsonb" json:"user_role_payload,omitempty"`

	// Saldo token virtual, hanya bertambah dari donasi milik sendiri.
	UserToken int64 `gorm:"column:user_token;not null;default:0;check:user_token >= 0" json:"user_token"`

	UserAddress     string     `gorm:"column:user_address;size:255" json:"user_address,omitempty"`
	UserPhoneNumber string     `gorm:"column:user_phone_number;size:30" json:"user_phone_number,omitempty"`
	UserAge         *time.Time `gorm:"column:user_age" json:"user_age,omitempty"`

	// Daftar id item kosmetik yang sudah dibeli di shop.
	UserPurchasedItems pq.StringArray `gorm:"column:user_purchased_items;type:text[]" json:"user_purchased_items"`

	// Id campaign favorit (array string, mengikuti bentuk data lama).
	UserFavorites pq.StringArray `gorm:"column:user_favorites;type:text[]" json:"user_favorites"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}

// SetDefaultValues memastikan nilai default sebelum simpan
func (u *UserModel) SetDefaultValues() {
	if u.UserRole == "" {
		u.UserRole = constants.RoleDonor
	}
}

// HasPurchased cek apakah item shop sudah pernah dibeli
func (u *UserModel) HasPurchased(itemID string) bool {
	for _, id := range u.UserPurchasedItems {
		if id == itemID {
			return true
		}
	}
	return false
}

// HasFavorite cek apakah campaign sudah ada di daftar favorit
func (u *UserModel) HasFavorite(campaignID string) bool {
	for _, id := range u.UserFavorites {
		if id == campaignID {
			return true
		}
	}
	return false
}
