// 📁 internals/features/badges/badge/repository/gorm_badge_store.go
package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	badgeModel "palhope_backend/internals/features/badges/badge/model"

	"github.com/google/uuid"
)

type BadgeStore struct {
	DB *gorm.DB
}

func NewBadgeStore(db *gorm.DB) *BadgeStore {
	return &BadgeStore{DB: db}
}

// CreateIfAbsent: insert dengan ON CONFLICT DO NOTHING di unique index
// (badge_user_id, badge_name). Check-then-insert biasa bisa dobel kalau
// dua donasi menembus threshold bersamaan.
func (s *BadgeStore) CreateIfAbsent(b *badgeModel.BadgeModel) (bool, error) {
	res := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "badge_user_id"}, {Name: "badge_name"}},
		DoNothing: true,
	}).Create(b)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *BadgeStore) ListByUser(userID uuid.UUID) ([]badgeModel.BadgeModel, error) {
	var badges []badgeModel.BadgeModel
	err := s.DB.
		Where("badge_user_id = ?", userID).
		Order("badge_date asc").
		Find(&badges).Error
	return badges, err
}
