package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestLeaderboardFromJSON(t *testing.T) {
	assert.Nil(t, LeaderboardFromJSON(nil))
	assert.Nil(t, LeaderboardFromJSON(datatypes.JSON([]byte(""))))
	assert.Nil(t, LeaderboardFromJSON(datatypes.JSON([]byte("not json"))))

	id := uuid.New()
	raw := LeaderboardToJSON([]LeaderboardEntry{{UserID: id, Amount: 42}})
	entries := LeaderboardFromJSON(raw)
	require.Len(t, entries, 1)
	assert.Equal(t, id, entries[0].UserID)
	assert.Equal(t, int64(42), entries[0].Amount)
}

func TestUpsertLeaderboard_NewAndExistingDonor(t *testing.T) {
	donor := uuid.New()

	entries := UpsertLeaderboard(nil, donor, 100)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(100), entries[0].Amount)

	// donor sama lagi: amount diakumulasi, bukan entri baru
	entries = UpsertLeaderboard(entries, donor, 50)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(150), entries[0].Amount)
}

func TestUpsertLeaderboard_SortedDesc(t *testing.T) {
	small, big, mid := uuid.New(), uuid.New(), uuid.New()

	entries := UpsertLeaderboard(nil, small, 10)
	entries = UpsertLeaderboard(entries, big, 300)
	entries = UpsertLeaderboard(entries, mid, 100)

	require.Len(t, entries, 3)
	assert.Equal(t, big, entries[0].UserID)
	assert.Equal(t, mid, entries[1].UserID)
	assert.Equal(t, small, entries[2].UserID)
}

func TestUpsertLeaderboard_CappedAtTen(t *testing.T) {
	var entries []LeaderboardEntry
	for i := 1; i <= 12; i++ {
		entries = UpsertLeaderboard(entries, uuid.New(), int64(i*10))
	}

	require.Len(t, entries, LeaderboardCap)
	// yang bertahan adalah 10 terbesar (30..120), urut desc
	assert.Equal(t, int64(120), entries[0].Amount)
	assert.Equal(t, int64(30), entries[LeaderboardCap-1].Amount)
}
