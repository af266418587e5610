package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	campaignModel "palhope_backend/internals/features/campaigns/campaign/model"
	subModel "palhope_backend/internals/features/campaigns/subcampaign/model"
	userModel "palhope_backend/internals/features/users/user/model"
)

func newLeaderboardQuery(env *testEnv) *LeaderboardQuery {
	return &LeaderboardQuery{
		Ledger:    env.ledger,
		Campaigns: env.campaigns,
		Subs:      env.subs,
		Users:     env.users,
	}
}

func TestLeaderboardCampaign_RanksNamedDonors(t *testing.T) {
	campaign := activeCampaign(1_000_000)
	alice := donor("Alice", "alice@example.com")
	bob := donor("Bob", "bob@example.com")
	env := newTestEnv([]*campaignModel.CampaignModel{campaign}, nil,
		[]*userModel.UserModel{alice, bob})

	for _, d := range []struct {
		user   *userModel.UserModel
		amount int64
		anon   bool
	}{
		{alice, 100, false},
		{bob, 300, false},
		{alice, 50, false},
		{bob, 999, true}, // anonim: tidak boleh terhitung
	} {
		_, err := env.pipeline.DonateToCampaign(campaign.CampaignID, DonateInput{
			UserID:    &d.user.UserID,
			Anonymous: d.anon,
			Amount:    d.amount,
		})
		require.NoError(t, err)
	}
	// non-registered juga tidak terhitung
	_, err := env.pipeline.DonateToCampaign(campaign.CampaignID, DonateInput{Amount: 500})
	require.NoError(t, err)

	rows, err := newLeaderboardQuery(env).Campaign(campaign.CampaignID, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Bob", rows[0].UserName)
	assert.Equal(t, int64(300), rows[0].TotalAmount)
	assert.Equal(t, "Alice", rows[1].UserName)
	assert.Equal(t, int64(150), rows[1].TotalAmount)

	// read-only: panggilan kedua hasilnya sama
	again, err := newLeaderboardQuery(env).Campaign(campaign.CampaignID, 10)
	require.NoError(t, err)
	assert.Equal(t, rows, again)
}

func TestLeaderboardCampaign_DropsDeletedUsers(t *testing.T) {
	campaign := activeCampaign(1_000_000)
	alice := donor("Alice", "alice@example.com")
	ghost := donor("Ghost", "ghost@example.com")
	env := newTestEnv([]*campaignModel.CampaignModel{campaign}, nil,
		[]*userModel.UserModel{alice, ghost})

	for _, u := range []*userModel.UserModel{alice, ghost} {
		_, err := env.pipeline.DonateToCampaign(campaign.CampaignID, DonateInput{
			UserID: &u.UserID,
			Amount: 100,
		})
		require.NoError(t, err)
	}

	// user dihapus setelah donasi: barisnya di-drop, bukan "Unknown"
	delete(env.users.byID, ghost.UserID)

	rows, err := newLeaderboardQuery(env).Campaign(campaign.CampaignID, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Alice", rows[0].UserName)
}

func TestLeaderboardCampaign_NotFound(t *testing.T) {
	env := newTestEnv(nil, nil, nil)

	_, err := newLeaderboardQuery(env).Campaign(uuid.New(), 10)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestLeaderboardSubCampaign_ReadsCache(t *testing.T) {
	parent := activeCampaign(1_000_000)
	sub := activeSubCampaign(parent.CampaignID, 10_000)
	alice := donor("Alice", "alice@example.com")
	bob := donor("Bob", "bob@example.com")
	env := newTestEnv([]*campaignModel.CampaignModel{parent},
		[]*subModel.SubCampaignModel{sub}, []*userModel.UserModel{alice, bob})

	for _, d := range []struct {
		user   *userModel.UserModel
		amount int64
	}{{alice, 20}, {bob, 80}, {alice, 30}} {
		_, err := env.pipeline.DonateToSubCampaign(sub.SubCampaignID, DonateInput{
			UserID: &d.user.UserID,
			Amount: d.amount,
		})
		require.NoError(t, err)
	}

	rows, err := newLeaderboardQuery(env).SubCampaign(sub.SubCampaignID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Bob", rows[0].UserName)
	assert.Equal(t, int64(80), rows[0].TotalAmount)
	assert.Equal(t, "Alice", rows[1].UserName)
	assert.Equal(t, int64(50), rows[1].TotalAmount)
}
