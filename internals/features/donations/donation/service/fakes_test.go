package service

import (
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	badgeModel "palhope_backend/internals/features/badges/badge/model"
	campaignModel "palhope_backend/internals/features/campaigns/campaign/model"
	subModel "palhope_backend/internals/features/campaigns/subcampaign/model"
	donationModel "palhope_backend/internals/features/donations/donation/model"
	"palhope_backend/internals/features/donations/rewards"
	userModel "palhope_backend/internals/features/users/user/model"
)

/* ===============================
   Fake stores in-memory untuk test
=================================*/

type fakeLedger struct {
	rows []*donationModel.DonationModel
}

func (f *fakeLedger) Create(d *donationModel.DonationModel) error {
	if d.DonationID == uuid.Nil {
		d.DonationID = uuid.New()
	}
	f.rows = append(f.rows, d)
	return nil
}

func (f *fakeLedger) TotalsByDonor(campaignID uuid.UUID, limit int) ([]DonorTotal, error) {
	sums := map[uuid.UUID]int64{}
	order := []uuid.UUID{}
	for _, d := range f.rows {
		if d.DonationCampaignID == nil || *d.DonationCampaignID != campaignID {
			continue
		}
		if d.DonationUserID == nil || d.DonationAnonymous {
			continue
		}
		if _, seen := sums[*d.DonationUserID]; !seen {
			order = append(order, *d.DonationUserID)
		}
		sums[*d.DonationUserID] += d.DonationAmount
	}

	totals := make([]DonorTotal, 0, len(order))
	for _, id := range order {
		totals = append(totals, DonorTotal{UserID: id, Total: sums[id]})
	}
	// sort desc (selection sort, cukup untuk ukuran test)
	for i := 0; i < len(totals); i++ {
		for j := i + 1; j < len(totals); j++ {
			if totals[j].Total > totals[i].Total {
				totals[i], totals[j] = totals[j], totals[i]
			}
		}
	}
	if limit > 0 && len(totals) > limit {
		totals = totals[:limit]
	}
	return totals, nil
}

func (f *fakeLedger) SumForSubCampaign(subID uuid.UUID) (int64, error) {
	var sum int64
	for _, d := range f.rows {
		if d.DonationSubCampaignID != nil && *d.DonationSubCampaignID == subID {
			sum += d.DonationAmount
		}
	}
	return sum, nil
}

func (f *fakeLedger) SumTokensForUser(userID uuid.UUID) (int64, error) {
	var sum int64
	for _, d := range f.rows {
		if d.DonationUserID != nil && *d.DonationUserID == userID {
			sum += d.DonationTokens
		}
	}
	return sum, nil
}

type fakeCampaigns struct {
	byID         map[uuid.UUID]*campaignModel.CampaignModel
	incrementErr error // kalau diset, IncrementAmount selalu gagal
}

func newFakeCampaigns(cs ...*campaignModel.CampaignModel) *fakeCampaigns {
	f := &fakeCampaigns{byID: map[uuid.UUID]*campaignModel.CampaignModel{}}
	for _, c := range cs {
		f.byID[c.CampaignID] = c
	}
	return f
}

func (f *fakeCampaigns) Get(id uuid.UUID) (*campaignModel.CampaignModel, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeCampaigns) IncrementAmount(id uuid.UUID, delta int64) error {
	if f.incrementErr != nil {
		return f.incrementErr
	}
	c, ok := f.byID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.CampaignCurrentAmount += delta
	return nil
}

type fakeSubs struct {
	byID map[uuid.UUID]*subModel.SubCampaignModel
}

func newFakeSubs(subs ...*subModel.SubCampaignModel) *fakeSubs {
	f := &fakeSubs{byID: map[uuid.UUID]*subModel.SubCampaignModel{}}
	for _, s := range subs {
		f.byID[s.SubCampaignID] = s
	}
	return f
}

func (f *fakeSubs) Get(id uuid.UUID) (*subModel.SubCampaignModel, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (f *fakeSubs) ApplyDonation(id uuid.UUID, donorID *uuid.UUID, amount int64) (*subModel.SubCampaignModel, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	s.SubCampaignCurrentAmount += amount
	if donorID != nil {
		entries := subModel.LeaderboardFromJSON(s.SubCampaignLeaderboard)
		entries = subModel.UpsertLeaderboard(entries, *donorID, amount)
		s.SubCampaignLeaderboard = subModel.LeaderboardToJSON(entries)
	}
	return s, nil
}

func (f *fakeSubs) EndIfActive(id uuid.UUID) (bool, error) {
	s, ok := f.byID[id]
	if !ok {
		return false, gorm.ErrRecordNotFound
	}
	if s.SubCampaignStatus != subModel.StatusActive {
		return false, nil
	}
	s.SubCampaignStatus = subModel.StatusEnded
	return true, nil
}

type fakeUsers struct {
	byID      map[uuid.UUID]*userModel.UserModel
	creditErr error // kalau diset, CreditTokens selalu gagal
}

func newFakeUsers(users ...*userModel.UserModel) *fakeUsers {
	f := &fakeUsers{byID: map[uuid.UUID]*userModel.UserModel{}}
	for _, u := range users {
		f.byID[u.UserID] = u
	}
	return f
}

func (f *fakeUsers) Get(id uuid.UUID) (*userModel.UserModel, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeUsers) CreditTokens(id uuid.UUID, tokens int64) (int64, error) {
	if f.creditErr != nil {
		return 0, f.creditErr
	}
	u, ok := f.byID[id]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}
	u.UserToken += tokens
	return u.UserToken, nil
}

// fakeAwarder meniru kontrak idempoten awarder beneran.
type fakeAwarder struct {
	given map[string]bool
}

func newFakeAwarder() *fakeAwarder {
	return &fakeAwarder{given: map[string]bool{}}
}

func (f *fakeAwarder) AwardBadges(userID uuid.UUID, totalTokens int64) ([]badgeModel.BadgeModel, error) {
	var newly []badgeModel.BadgeModel
	for _, bt := range rewards.BadgesEarned(totalTokens) {
		key := userID.String() + "/" + bt.Name
		if f.given[key] {
			continue
		}
		f.given[key] = true
		newly = append(newly, badgeModel.BadgeModel{
			BadgeUserID: userID,
			BadgeName:   bt.Name,
		})
	}
	return newly, nil
}

// fakeNotifier merekam pengiriman; sent di-close-kan lewat channel supaya
// test bisa menunggu goroutine notify selesai.
type fakeNotifier struct {
	mu   sync.Mutex
	sent []string
	errs error
	done chan struct{}
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{done: make(chan struct{}, 10)}
}

func (f *fakeNotifier) Send(to, subject, body string) error {
	f.mu.Lock()
	f.sent = append(f.sent, to)
	f.mu.Unlock()
	f.done <- struct{}{}
	return f.errs
}

func (f *fakeNotifier) sentTo() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.sent))
	copy(out, f.sent)
	return out
}

/* ===============================
   Helper perakit pipeline test
=================================*/

type testEnv struct {
	ledger    *fakeLedger
	campaigns *fakeCampaigns
	subs      *fakeSubs
	users     *fakeUsers
	awarder   *fakeAwarder
	notifier  *fakeNotifier
	pipeline  *Pipeline
}

func newTestEnv(campaigns []*campaignModel.CampaignModel, subs []*subModel.SubCampaignModel, users []*userModel.UserModel) *testEnv {
	env := &testEnv{
		ledger:    &fakeLedger{},
		campaigns: newFakeCampaigns(campaigns...),
		subs:      newFakeSubs(subs...),
		users:     newFakeUsers(users...),
		awarder:   newFakeAwarder(),
		notifier:  newFakeNotifier(),
	}
	env.pipeline = &Pipeline{
		Ledger: env.ledger,
		Users:  env.users,
		Updater: &AggregateUpdater{
			Campaigns: env.campaigns,
			Subs:      env.subs,
			Ledger:    env.ledger,
		},
		Awarder:  env.awarder,
		Notifier: env.notifier,
	}
	return env
}

func activeCampaign(goal int64) *campaignModel.CampaignModel {
	return &campaignModel.CampaignModel{
		CampaignID:         uuid.New(),
		CampaignName:       "Water for All",
		CampaignGoalAmount: goal,
		CampaignStatus:     campaignModel.StatusActive,
	}
}

func activeSubCampaign(parent uuid.UUID, goal int64) *subModel.SubCampaignModel {
	return &subModel.SubCampaignModel{
		SubCampaignID:           uuid.New(),
		SubCampaignParentID:     parent,
		SubCampaignInfluencerID: uuid.New(),
		SubCampaignName:         "Creator Drive",
		SubCampaignGoalAmount:   goal,
		SubCampaignStatus:       subModel.StatusActive,
	}
}

func donor(name, email string) *userModel.UserModel {
	return &userModel.UserModel{
		UserID:    uuid.New(),
		UserName:  name,
		UserEmail: email,
	}
}
