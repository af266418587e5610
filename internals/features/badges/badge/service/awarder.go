// 📁 internals/features/badges/badge/service/awarder.go
package service

import (
	"log"

	"github.com/google/uuid"

	badgeModel "palhope_backend/internals/features/badges/badge/model"
	"palhope_backend/internals/features/donations/rewards"
)

// BadgeStore kontrak persistensi badge.
type BadgeStore interface {
	// CreateIfAbsent insert badge kalau (user, nama) belum ada.
	// true kalau baris baru benar-benar dibuat.
	CreateIfAbsent(b *badgeModel.BadgeModel) (bool, error)

	ListByUser(userID uuid.UUID) ([]badgeModel.BadgeModel, error)
}

// Awarder mengevaluasi ambang katalog badge terhadap total token user
// dan memberikan badge yang belum dimiliki. Idempoten: dipanggil dua kali
// dengan input sama tidak menghasilkan badge duplikat — duplikat ditekan
// oleh unique index (user, badge_name), bukan di-surface sebagai error.
type Awarder struct {
	Badges BadgeStore
}

func NewAwarder(badges BadgeStore) *Awarder {
	return &Awarder{Badges: badges}
}

// AwardBadges memberikan semua badge yang thresholdnya <= totalTokens
// dan belum dimiliki user. Mengembalikan badge yang baru dibuat saja.
func (a *Awarder) AwardBadges(userID uuid.UUID, totalTokens int64) ([]badgeModel.BadgeModel, error) {
	var newly []badgeModel.BadgeModel

	for _, bt := range rewards.BadgesEarned(totalTokens) {
		badge := &badgeModel.BadgeModel{
			BadgeUserID:      userID,
			BadgeName:        bt.Name,
			BadgePic:         rewards.BadgePictureURL(bt.Name),
			BadgeDescription: bt.Description,
			BadgeAcquired:    true,
		}

		created, err := a.Badges.CreateIfAbsent(badge)
		if err != nil {
			return nil, err
		}
		if created {
			log.Printf("🏅 Badge %q diberikan ke user %s", bt.Name, userID)
			newly = append(newly, *badge)
		}
	}

	return newly, nil
}
