package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Status campaign. Transisi sekali jalan (Active → Suspended/Ended).
const (
	StatusActive    = "Active"
	StatusSuspended = "Suspended"
	StatusEnded     = "Ended"
)

type CampaignModel struct {
	CampaignID uuid.UUID `gorm:"column:campaign_id;type:uuid;default:gen_random_uuid();primaryKey" json:"campaign_id"`

	CampaignName             string `gorm:"column:campaign_name;size:100;not null" json:"campaign_name"`
	CampaignImage            string `gorm:"column:campaign_image;type:text" json:"campaign_image"`
	CampaignOrganizationName string `gorm:"column:campaign_organization_name;size:100;not null" json:"campaign_organization_name"`

	CampaignGoalAmount int64 `gorm:"column:campaign_goal_amount;not null;check:campaign_goal_amount > 0" json:"campaign_goal_amount"`

	// Running total: hanya bertambah lewat increment atomik di store,
	// jangan pernah read-modify-write dari handler.
	CampaignCurrentAmount int64 `gorm:"column:campaign_current_amount;not null;default:0" json:"campaign_current_amount"`

	CampaignStatus string `gorm:"column:campaign_status;type:varchar(20);not null;default:'Active'" json:"campaign_status"`

	CampaignStartDate time.Time `gorm:"column:campaign_start_date;not null" json:"campaign_start_date"`
	CampaignEndDate   time.Time `gorm:"column:campaign_end_date;not null" json:"campaign_end_date"`

	CampaignDescription string `gorm:"column:campaign_description;type:text" json:"campaign_description,omitempty"`

	// Pengumuman campaign, urut sesuai insert.
	CampaignNewsDashboard pq.StringArray `gorm:"column:campaign_news_dashboard;type:text[]" json:"campaign_news_dashboard"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (CampaignModel) TableName() string {
	return "campaigns"
}
