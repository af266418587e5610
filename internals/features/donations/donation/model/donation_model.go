// 📁 internals/features/donations/donation/model/donation_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DonationModel adalah ledger donasi: append-only, tidak pernah diubah
// setelah token dihitung saat insert.
//
// Varian donor:
//   - registered      : user id terisi, anonymous=false
//   - anonymous       : user id terisi, anonymous=true (disembunyikan dari
//     tampilan publik & leaderboard, token tetap dihitung)
//   - non-registered  : user id kosong, token 0
type DonationModel struct {
	DonationID uuid.UUID `gorm:"column:donation_id;type:uuid;default:gen_random_uuid();primaryKey" json:"donation_id"`

	DonationUserID *uuid.UUID `gorm:"column:donation_user_id;type:uuid;index" json:"donation_user_id,omitempty"`

	// Target tepat satu: campaign ATAU sub-campaign.
	DonationCampaignID    *uuid.UUID `gorm:"column:donation_campaign_id;type:uuid;index" json:"donation_campaign_id,omitempty"`
	DonationSubCampaignID *uuid.UUID `gorm:"column:donation_sub_campaign_id;type:uuid;index" json:"donation_sub_campaign_id,omitempty"`

	DonationAmount int64 `gorm:"column:donation_amount;not null;check:donation_amount > 0" json:"donation_amount"`

	// donation_tokens == donation_amount * 10 untuk donor yang bisa dapat
	// token; 0 untuk non-registered.
	DonationTokens int64 `gorm:"column:donation_tokens;not null;default:0" json:"donation_tokens"`

	DonationAnonymous bool `gorm:"column:donation_anonymous;not null;default:false" json:"donation_anonymous"`

	DonationPaymentMethod string `gorm:"column:donation_payment_method;size:50" json:"donation_payment_method,omitempty"`

	DonationDate time.Time `gorm:"column:donation_date;autoCreateTime" json:"donation_date"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (DonationModel) TableName() string {
	return "donations"
}
