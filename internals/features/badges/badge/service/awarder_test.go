package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	badgeModel "palhope_backend/internals/features/badges/badge/model"
)

// fakeBadgeStore meniru semantik unique index (user, badge_name).
type fakeBadgeStore struct {
	rows map[string]badgeModel.BadgeModel
}

func newFakeBadgeStore() *fakeBadgeStore {
	return &fakeBadgeStore{rows: map[string]badgeModel.BadgeModel{}}
}

func (f *fakeBadgeStore) key(userID uuid.UUID, name string) string {
	return userID.String() + "/" + name
}

func (f *fakeBadgeStore) CreateIfAbsent(b *badgeModel.BadgeModel) (bool, error) {
	k := f.key(b.BadgeUserID, b.BadgeName)
	if _, exists := f.rows[k]; exists {
		return false, nil
	}
	f.rows[k] = *b
	return true, nil
}

func (f *fakeBadgeStore) ListByUser(userID uuid.UUID) ([]badgeModel.BadgeModel, error) {
	var out []badgeModel.BadgeModel
	for _, b := range f.rows {
		if b.BadgeUserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func TestAwardBadges_BelowThreshold(t *testing.T) {
	awarder := NewAwarder(newFakeBadgeStore())

	newly, err := awarder.AwardBadges(uuid.New(), 99)
	require.NoError(t, err)
	assert.Empty(t, newly)
}

func TestAwardBadges_SilverThenBronze(t *testing.T) {
	store := newFakeBadgeStore()
	awarder := NewAwarder(store)
	userID := uuid.New()

	newly, err := awarder.AwardBadges(userID, 100)
	require.NoError(t, err)
	require.Len(t, newly, 1)
	assert.Equal(t, "Silver Contributor", newly[0].BadgeName)
	assert.NotEqual(t, "No Badge", newly[0].BadgePic)

	// total naik melewati threshold kedua: hanya badge baru yang kembali
	newly, err = awarder.AwardBadges(userID, 5000)
	require.NoError(t, err)
	require.Len(t, newly, 1)
	assert.Equal(t, "Bronze Contributor", newly[0].BadgeName)

	all, err := store.ListByUser(userID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAwardBadges_Idempotent(t *testing.T) {
	store := newFakeBadgeStore()
	awarder := NewAwarder(store)
	userID := uuid.New()

	newly, err := awarder.AwardBadges(userID, 5000)
	require.NoError(t, err)
	assert.Len(t, newly, 2)

	// evaluasi ulang dengan total sama: tidak ada badge dobel
	newly, err = awarder.AwardBadges(userID, 5000)
	require.NoError(t, err)
	assert.Empty(t, newly)

	all, err := store.ListByUser(userID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
