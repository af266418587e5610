package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	StatusActive = "Active"
	StatusEnded  = "Ended"
)

type SubCampaignModel struct {
	SubCampaignID uuid.UUID `gorm:"column:sub_campaign_id;type:uuid;default:gen_random_uuid();primaryKey" json:"sub_campaign_id"`

	SubCampaignParentID     uuid.UUID `gorm:"column:sub_campaign_parent_id;type:uuid;not null;index" json:"sub_campaign_parent_id"`
	SubCampaignInfluencerID uuid.UUID `gorm:"column:sub_campaign_influencer_id;type:uuid;not null;index" json:"sub_campaign_influencer_id"`

	SubCampaignName        string `gorm:"column:sub_campaign_name;size:100;not null" json:"sub_campaign_name"`
	SubCampaignDescription string `gorm:"column:sub_campaign_description;type:text;not null" json:"sub_campaign_description"`

	SubCampaignGoalAmount    int64 `gorm:"column:sub_campaign_goal_amount;not null;check:sub_campaign_goal_amount > 0" json:"sub_campaign_goal_amount"`
	SubCampaignCurrentAmount int64 `gorm:"column:sub_campaign_current_amount;not null;default:0" json:"sub_campaign_current_amount"`

	// Active → Ended sekali jalan saat goal tercapai (cascade ke parent).
	SubCampaignStatus string `gorm:"column:sub_campaign_status;type:varchar(20);not null;default:'Active'" json:"sub_campaign_status"`

	SubCampaignStartDate time.Time `gorm:"column:sub_campaign_start_date;not null" json:"sub_campaign_start_date"`
	SubCampaignEndDate   time.Time `gorm:"column:sub_campaign_end_date;not null" json:"sub_campaign_end_date"`

	// Gate approval admin, default false sampai disetujui.
	SubCampaignApproved bool `gorm:"column:sub_campaign_approved;not null;default:false" json:"sub_campaign_approved"`

	// Cache leaderboard top-10 (array {user_id, amount}, desc by amount).
	SubCampaignLeaderboard datatypes.JSON `gorm:"column:sub_campaign_leaderboard;type:jsonb" json:"sub_campaign_leaderboard"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (SubCampaignModel) TableName() string {
	return "sub_campaigns"
}

/* ===============================
   Leaderboard cache helpers
=================================*/

const LeaderboardCap = 10

// LeaderboardEntry satu baris cache leaderboard sub-campaign.
type LeaderboardEntry struct {
	UserID uuid.UUID `json:"user_id"`
	Amount int64     `json:"amount"`
}

// LeaderboardFromJSON decode kolom jsonb ke slice entri (nil-safe).
func LeaderboardFromJSON(raw datatypes.JSON) []LeaderboardEntry {
	if len(raw) == 0 {
		return nil
	}
	var entries []LeaderboardEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}
	return entries
}

// LeaderboardToJSON encode slice entri ke jsonb ([] kalau kosong).
func LeaderboardToJSON(entries []LeaderboardEntry) datatypes.JSON {
	if len(entries) == 0 {
		return datatypes.JSON([]byte("[]"))
	}
	b, err := json.Marshal(entries)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(b)
}

// UpsertLeaderboard menaikkan amount donor kalau sudah ada, atau menambah
// entri baru, lalu sort desc dan potong ke top-10.
func UpsertLeaderboard(entries []LeaderboardEntry, donorID uuid.UUID, amount int64) []LeaderboardEntry {
	found := false
	for i := range entries {
		if entries[i].UserID == donorID {
			entries[i].Amount += amount
			found = true
			break
		}
	}
	if !found {
		entries = append(entries, LeaderboardEntry{UserID: donorID, Amount: amount})
	}

	// insertion sort kecil saja, entri maksimal 11
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j].Amount > entries[j-1].Amount; j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}

	if len(entries) > LeaderboardCap {
		entries = entries[:LeaderboardCap]
	}
	return entries
}
