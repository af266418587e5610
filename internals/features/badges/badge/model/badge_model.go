package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BadgeModel satu badge milik satu user. Unik per (user, badge_name)
// supaya pemberian badge idempoten walau dicek bersamaan.
type BadgeModel struct {
	BadgeID uuid.UUID `gorm:"column:badge_id;type:uuid;default:gen_random_uuid();primaryKey" json:"badge_id"`

	BadgeUserID uuid.UUID `gorm:"column:badge_user_id;type:uuid;not null;uniqueIndex:uq_badges_user_name" json:"badge_user_id"`
	BadgeName   string    `gorm:"column:badge_name;size:50;not null;uniqueIndex:uq_badges_user_name" json:"badge_name"`

	BadgePic         string `gorm:"column:badge_pic;type:text;not null" json:"badge_pic"`
	BadgeDescription string `gorm:"column:badge_description;type:text;not null" json:"badge_description"`

	BadgeAcquired bool      `gorm:"column:badge_acquired;not null;default:true" json:"badge_acquired"`
	BadgeDate     time.Time `gorm:"column:badge_date;autoCreateTime" json:"badge_date"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (BadgeModel) TableName() string {
	return "badges"
}
