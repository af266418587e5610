// 📁 internals/features/donations/donation/repository/gorm_stores.go
//
// Implementasi GORM (PostgreSQL) untuk store pipeline donasi.
// Aturan penting: semua penambahan nominal/token lewat increment atomik
// di SQL, bukan read-modify-write, supaya aman diakses paralel.
package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	campaignModel "palhope_backend/internals/features/campaigns/campaign/model"
	subModel "palhope_backend/internals/features/campaigns/subcampaign/model"
	donationModel "palhope_backend/internals/features/donations/donation/model"
	"palhope_backend/internals/features/donations/donation/service"
	userModel "palhope_backend/internals/features/users/user/model"

	"github.com/google/uuid"
)

/* ===============================
   Ledger store
=================================*/

type LedgerStore struct {
	DB *gorm.DB
}

func NewLedgerStore(db *gorm.DB) *LedgerStore {
	return &LedgerStore{DB: db}
}

func (s *LedgerStore) Create(d *donationModel.DonationModel) error {
	return s.DB.Create(d).Error
}

func (s *LedgerStore) TotalsByDonor(campaignID uuid.UUID, limit int) ([]service.DonorTotal, error) {
	var rows []service.DonorTotal
	err := s.DB.Model(&donationModel.DonationModel{}).
		Select("donation_user_id AS user_id, SUM(donation_amount) AS total").
		Where("donation_campaign_id = ?", campaignID).
		Where("donation_user_id IS NOT NULL").
		Where("donation_anonymous = FALSE").
		Group("donation_user_id").
		Order("total DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (s *LedgerStore) SumForSubCampaign(subCampaignID uuid.UUID) (int64, error) {
	var total int64
	err := s.DB.Model(&donationModel.DonationModel{}).
		Select("COALESCE(SUM(donation_amount), 0)").
		Where("donation_sub_campaign_id = ?", subCampaignID).
		Scan(&total).Error
	return total, err
}

func (s *LedgerStore) SumTokensForUser(userID uuid.UUID) (int64, error) {
	var total int64
	err := s.DB.Model(&donationModel.DonationModel{}).
		Select("COALESCE(SUM(donation_tokens), 0)").
		Where("donation_user_id = ?", userID).
		Scan(&total).Error
	return total, err
}

/* ===============================
   Campaign store
=================================*/

type CampaignStore struct {
	DB *gorm.DB
}

func NewCampaignStore(db *gorm.DB) *CampaignStore {
	return &CampaignStore{DB: db}
}

func (s *CampaignStore) Get(id uuid.UUID) (*campaignModel.CampaignModel, error) {
	var campaign campaignModel.CampaignModel
	if err := s.DB.Where("campaign_id = ?", id).First(&campaign).Error; err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (s *CampaignStore) IncrementAmount(id uuid.UUID, delta int64) error {
	res := s.DB.Model(&campaignModel.CampaignModel{}).
		Where("campaign_id = ?", id).
		Update("campaign_current_amount", gorm.Expr("campaign_current_amount + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

/* ===============================
   Sub-campaign store
=================================*/

type SubCampaignStore struct {
	DB *gorm.DB
}

func NewSubCampaignStore(db *gorm.DB) *SubCampaignStore {
	return &SubCampaignStore{DB: db}
}

func (s *SubCampaignStore) Get(id uuid.UUID) (*subModel.SubCampaignModel, error) {
	var sub subModel.SubCampaignModel
	if err := s.DB.Where("sub_campaign_id = ?", id).First(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

// ApplyDonation: current_amount + cache leaderboard di satu transaksi
// dengan row lock, karena update leaderboard tidak bisa diekspresikan
// sebagai increment tunggal.
func (s *SubCampaignStore) ApplyDonation(id uuid.UUID, donorID *uuid.UUID, amount int64) (*subModel.SubCampaignModel, error) {
	var updated subModel.SubCampaignModel

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var sub subModel.SubCampaignModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("sub_campaign_id = ?", id).
			First(&sub).Error; err != nil {
			return err
		}

		sub.SubCampaignCurrentAmount += amount
		changes := map[string]interface{}{
			"sub_campaign_current_amount": sub.SubCampaignCurrentAmount,
		}

		if donorID != nil {
			entries := subModel.LeaderboardFromJSON(sub.SubCampaignLeaderboard)
			entries = subModel.UpsertLeaderboard(entries, *donorID, amount)
			sub.SubCampaignLeaderboard = subModel.LeaderboardToJSON(entries)
			changes["sub_campaign_leaderboard"] = sub.SubCampaignLeaderboard
		}

		if err := tx.Model(&subModel.SubCampaignModel{}).
			Where("sub_campaign_id = ?", id).
			Updates(changes).Error; err != nil {
			return err
		}

		updated = sub
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// EndIfActive: flip status sekali saja. RowsAffected == 0 berarti sudah
// Ended (cascade sudah pernah jalan).
func (s *SubCampaignStore) EndIfActive(id uuid.UUID) (bool, error) {
	res := s.DB.Model(&subModel.SubCampaignModel{}).
		Where("sub_campaign_id = ? AND sub_campaign_status = ?", id, subModel.StatusActive).
		Update("sub_campaign_status", subModel.StatusEnded)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

/* ===============================
   User store
=================================*/

type UserStore struct {
	DB *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{DB: db}
}

func (s *UserStore) Get(id uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := s.DB.Where("user_id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreditTokens: UPDATE ... RETURNING supaya saldo baru yang dipakai
// evaluasi badge bebas dari race antar-request.
func (s *UserStore) CreditTokens(id uuid.UUID, tokens int64) (int64, error) {
	var newTotal int64
	res := s.DB.Raw(`
		UPDATE users
		SET user_token = user_token + ?, updated_at = NOW()
		WHERE user_id = ? AND deleted_at IS NULL
		RETURNING user_token
	`, tokens, id).Scan(&newTotal)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return newTotal, nil
}
