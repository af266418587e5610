package dto

// DonateRequest body untuk donasi ke campaign utama.
// Identitas donor diambil dari token (opsional), bukan dari body.
type DonateRequest struct {
	CampaignID string `json:"campaign_id" validate:"required,uuid"`
	Amount     int64  `json:"amount" validate:"required,gt=0"`

	// true = identitas disembunyikan dari tampilan publik & leaderboard
	Anonymous bool `json:"anonymous"`

	PaymentMethod string `json:"payment_method" validate:"omitempty,max=50"`
}

// DonateSubCampaignRequest body untuk donasi ke sub-campaign influencer.
type DonateSubCampaignRequest struct {
	SubCampaignID string `json:"sub_campaign_id" validate:"required,uuid"`
	Amount        int64  `json:"amount" validate:"required,gt=0"`
	Anonymous     bool   `json:"anonymous"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,max=50"`
}

// DonateNonRegisteredRequest donasi tamu: tanpa identitas, tanpa token reward.
type DonateNonRegisteredRequest struct {
	CampaignID    string `json:"campaign_id" validate:"required,uuid"`
	Amount        int64  `json:"amount" validate:"required,gt=0"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,max=50"`
}

// MergeDonationsRequest trigger manual penggabungan donasi sub-campaign
// ke parent campaign.
type MergeDonationsRequest struct {
	SubCampaignID string `json:"sub_campaign_id" validate:"required,uuid"`
}
