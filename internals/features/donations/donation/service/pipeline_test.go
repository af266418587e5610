package service

import (
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	campaignModel "palhope_backend/internals/features/campaigns/campaign/model"
	subModel "palhope_backend/internals/features/campaigns/subcampaign/model"
	userModel "palhope_backend/internals/features/users/user/model"
)

func waitNotified(t *testing.T, n *fakeNotifier) {
	t.Helper()
	select {
	case <-n.done:
	case <-time.After(2 * time.Second):
		t.Fatal("notifikasi tidak terkirim")
	}
}

func TestDonateToCampaign_Registered(t *testing.T) {
	campaign := activeCampaign(100_000)
	user := donor("Alice", "alice@example.com")
	env := newTestEnv([]*campaignModel.CampaignModel{campaign}, nil, []*userModel.UserModel{user})

	res, err := env.pipeline.DonateToCampaign(campaign.CampaignID, DonateInput{
		UserID:        &user.UserID,
		Amount:        10,
		PaymentMethod: "card",
	})
	require.NoError(t, err)

	// ledger: satu baris, token 10x nominal
	require.Len(t, env.ledger.rows, 1)
	row := env.ledger.rows[0]
	assert.Equal(t, int64(10), row.DonationAmount)
	assert.Equal(t, int64(100), row.DonationTokens)
	assert.False(t, row.DonationAnonymous)
	require.NotNil(t, row.DonationCampaignID)
	assert.Equal(t, campaign.CampaignID, *row.DonationCampaignID)

	// aggregate naik
	assert.Equal(t, int64(10), campaign.CampaignCurrentAmount)

	// token dikredit, badge Silver (threshold 100) langsung didapat
	assert.Equal(t, int64(100), user.UserToken)
	require.Len(t, res.NewBadges, 1)
	assert.Equal(t, "Silver Contributor", res.NewBadges[0].BadgeName)

	waitNotified(t, env.notifier)
	assert.Equal(t, []string{"alice@example.com"}, env.notifier.sentTo())
}

func TestDonateToCampaign_AnonymousLoggedIn(t *testing.T) {
	campaign := activeCampaign(100_000)
	user := donor("Bob", "bob@example.com")
	env := newTestEnv([]*campaignModel.CampaignModel{campaign}, nil, []*userModel.UserModel{user})

	_, err := env.pipeline.DonateToCampaign(campaign.CampaignID, DonateInput{
		UserID:    &user.UserID,
		Anonymous: true,
		Amount:    50,
	})
	require.NoError(t, err)

	// Anonim tetap dapat token dan baris ledger membawa user id,
	// tapi ditandai anonim sehingga tidak pernah tampil publik.
	row := env.ledger.rows[0]
	assert.True(t, row.DonationAnonymous)
	require.NotNil(t, row.DonationUserID)
	assert.Equal(t, int64(500), user.UserToken)

	// tidak ikut agregasi leaderboard campaign
	totals, err := env.ledger.TotalsByDonor(campaign.CampaignID, 10)
	require.NoError(t, err)
	assert.Empty(t, totals)
}

func TestDonateToCampaign_NonRegistered(t *testing.T) {
	campaign := activeCampaign(100_000)
	env := newTestEnv([]*campaignModel.CampaignModel{campaign}, nil, nil)

	res, err := env.pipeline.DonateToCampaign(campaign.CampaignID, DonateInput{Amount: 25})
	require.NoError(t, err)

	// tanpa identitas: tidak ada token, badge, maupun email
	row := env.ledger.rows[0]
	assert.Nil(t, row.DonationUserID)
	assert.Zero(t, row.DonationTokens)
	assert.Empty(t, res.NewBadges)
	assert.Empty(t, env.notifier.sentTo())

	// nominal tetap masuk aggregate
	assert.Equal(t, int64(25), campaign.CampaignCurrentAmount)
}

func TestDonateToCampaign_InvalidAmount(t *testing.T) {
	campaign := activeCampaign(100_000)
	env := newTestEnv([]*campaignModel.CampaignModel{campaign}, nil, nil)

	for _, amount := range []int64{0, -5} {
		_, err := env.pipeline.DonateToCampaign(campaign.CampaignID, DonateInput{Amount: amount})
		var fe *fiber.Error
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	}
	assert.Empty(t, env.ledger.rows)
}

func TestDonateToCampaign_TargetNotFound(t *testing.T) {
	env := newTestEnv(nil, nil, nil)

	_, err := env.pipeline.DonateToCampaign(uuid.New(), DonateInput{Amount: 10})
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)

	// tidak ada mutasi sama sekali sebelum pre-check lolos
	assert.Empty(t, env.ledger.rows)
}

func TestDonateToCampaign_UnknownUser(t *testing.T) {
	campaign := activeCampaign(100_000)
	env := newTestEnv([]*campaignModel.CampaignModel{campaign}, nil, nil)

	ghost := uuid.New()
	_, err := env.pipeline.DonateToCampaign(campaign.CampaignID, DonateInput{UserID: &ghost, Amount: 10})
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
	assert.Empty(t, env.ledger.rows)
	assert.Zero(t, campaign.CampaignCurrentAmount)
}

func TestDonateToSubCampaign_LeaderboardAndCascade(t *testing.T) {
	parent := activeCampaign(1_000_000)
	sub := activeSubCampaign(parent.CampaignID, 100)
	user := donor("Cindy", "cindy@example.com")
	env := newTestEnv([]*campaignModel.CampaignModel{parent},
		[]*subModel.SubCampaignModel{sub}, []*userModel.UserModel{user})

	// donasi pertama: belum sampai goal
	_, err := env.pipeline.DonateToSubCampaign(sub.SubCampaignID, DonateInput{
		UserID: &user.UserID,
		Amount: 60,
	})
	require.NoError(t, err)
	assert.Equal(t, subModel.StatusActive, sub.SubCampaignStatus)
	assert.Zero(t, parent.CampaignCurrentAmount)

	entries := subModel.LeaderboardFromJSON(sub.SubCampaignLeaderboard)
	require.Len(t, entries, 1)
	assert.Equal(t, user.UserID, entries[0].UserID)
	assert.Equal(t, int64(60), entries[0].Amount)

	// donasi kedua menembus goal: sub Ended, total dipindah ke parent
	_, err = env.pipeline.DonateToSubCampaign(sub.SubCampaignID, DonateInput{
		UserID: &user.UserID,
		Amount: 40,
	})
	require.NoError(t, err)
	assert.Equal(t, subModel.StatusEnded, sub.SubCampaignStatus)
	assert.Equal(t, int64(100), sub.SubCampaignCurrentAmount)
	assert.Equal(t, int64(100), parent.CampaignCurrentAmount)
}

func TestDonateToSubCampaign_CascadeOnlyOnce(t *testing.T) {
	parent := activeCampaign(1_000_000)
	sub := activeSubCampaign(parent.CampaignID, 100)
	env := newTestEnv([]*campaignModel.CampaignModel{parent},
		[]*subModel.SubCampaignModel{sub}, nil)

	_, err := env.pipeline.DonateToSubCampaign(sub.SubCampaignID, DonateInput{Amount: 150})
	require.NoError(t, err)
	assert.Equal(t, int64(150), parent.CampaignCurrentAmount)

	// donasi ke sub yang sudah Ended tidak boleh men-cascade ulang
	_, err = env.pipeline.DonateToSubCampaign(sub.SubCampaignID, DonateInput{Amount: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(150), parent.CampaignCurrentAmount)
	assert.Equal(t, int64(160), sub.SubCampaignCurrentAmount)
}

func TestDonateToSubCampaign_AnonymousSkipsLeaderboard(t *testing.T) {
	parent := activeCampaign(1_000_000)
	sub := activeSubCampaign(parent.CampaignID, 10_000)
	user := donor("Dian", "dian@example.com")
	env := newTestEnv([]*campaignModel.CampaignModel{parent},
		[]*subModel.SubCampaignModel{sub}, []*userModel.UserModel{user})

	_, err := env.pipeline.DonateToSubCampaign(sub.SubCampaignID, DonateInput{
		UserID:    &user.UserID,
		Anonymous: true,
		Amount:    75,
	})
	require.NoError(t, err)

	assert.Empty(t, subModel.LeaderboardFromJSON(sub.SubCampaignLeaderboard))
	assert.Equal(t, int64(75), sub.SubCampaignCurrentAmount)
	assert.Equal(t, int64(750), user.UserToken)
}

func TestDonateToCampaign_AggregateFailureKeepsLedgerRow(t *testing.T) {
	campaign := activeCampaign(100_000)
	user := donor("Fajar", "fajar@example.com")
	env := newTestEnv([]*campaignModel.CampaignModel{campaign}, nil, []*userModel.UserModel{user})
	env.campaigns.incrementErr = errors.New("db putus")

	_, err := env.pipeline.DonateToCampaign(campaign.CampaignID, DonateInput{
		UserID: &user.UserID,
		Amount: 10,
	})
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusInternalServerError, fe.Code)

	// ledger sudah tertulis sebelum aggregate gagal, dan tidak di-rollback
	require.Len(t, env.ledger.rows, 1)
	assert.Equal(t, int64(10), env.ledger.rows[0].DonationAmount)
	assert.Zero(t, campaign.CampaignCurrentAmount)
}

func TestDonateToCampaign_CreditTokensFailureKeepsLedgerRow(t *testing.T) {
	campaign := activeCampaign(100_000)
	user := donor("Gita", "gita@example.com")
	env := newTestEnv([]*campaignModel.CampaignModel{campaign}, nil, []*userModel.UserModel{user})
	env.users.creditErr = errors.New("db putus")

	_, err := env.pipeline.DonateToCampaign(campaign.CampaignID, DonateInput{
		UserID: &user.UserID,
		Amount: 10,
	})
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusInternalServerError, fe.Code)

	// ledger dan aggregate tetap: langkah sebelum kredit token sudah final
	require.Len(t, env.ledger.rows, 1)
	assert.Equal(t, int64(10), campaign.CampaignCurrentAmount)
	assert.Zero(t, user.UserToken)
}

func TestDonate_NotifierFailureDoesNotFailDonation(t *testing.T) {
	campaign := activeCampaign(100_000)
	user := donor("Eka", "eka@example.com")
	env := newTestEnv([]*campaignModel.CampaignModel{campaign}, nil, []*userModel.UserModel{user})
	env.notifier.errs = errors.New("smtp down")

	res, err := env.pipeline.DonateToCampaign(campaign.CampaignID, DonateInput{
		UserID: &user.UserID,
		Amount: 10,
	})
	require.NoError(t, err)
	require.NotNil(t, res.Donation)

	// email tetap dicoba, kegagalannya hanya dicatat
	waitNotified(t, env.notifier)
	assert.Equal(t, []string{"eka@example.com"}, env.notifier.sentTo())
}

func TestMergeIntoParent_Manual(t *testing.T) {
	parent := activeCampaign(1_000_000)
	sub := activeSubCampaign(parent.CampaignID, 10_000)
	env := newTestEnv([]*campaignModel.CampaignModel{parent},
		[]*subModel.SubCampaignModel{sub}, nil)

	_, err := env.pipeline.DonateToSubCampaign(sub.SubCampaignID, DonateInput{Amount: 30})
	require.NoError(t, err)

	// admin menutup manual walau goal belum tercapai
	require.NoError(t, env.pipeline.Updater.MergeIntoParent(sub.SubCampaignID))
	assert.Equal(t, subModel.StatusEnded, sub.SubCampaignStatus)
	assert.Equal(t, int64(30), parent.CampaignCurrentAmount)

	// merge kedua ditolak
	err = env.pipeline.Updater.MergeIntoParent(sub.SubCampaignID)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusConflict, fe.Code)
	assert.Equal(t, int64(30), parent.CampaignCurrentAmount)
}
