// 📁 internals/features/campaigns/campaign/dto/campaign_response_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// PublicDonation bentuk donasi yang aman ditampilkan di detail campaign.
// Donasi anonim tidak membawa identitas donor sama sekali.
type PublicDonation struct {
	DonationID    uuid.UUID  `json:"donation_id"`
	DonorID       *uuid.UUID `json:"donor_id,omitempty"`
	DonorName     string     `json:"donor_name"`
	Amount        int64      `json:"amount"`
	PaymentMethod string     `json:"payment_method"`
	DonationDate  time.Time  `json:"donation_date"`
}
