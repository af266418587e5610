// 📁 internals/features/campaigns/campaign/dto/campaign_request_dto.go
package dto

import "time"

type CreateCampaignRequest struct {
	CampaignName             string    `json:"campaign_name" validate:"required,min=3,max=100"`
	CampaignImage            string    `json:"campaign_image" validate:"omitempty,url"`
	CampaignOrganizationName string    `json:"campaign_organization_name" validate:"required,max=100"`
	CampaignGoalAmount       int64     `json:"campaign_goal_amount" validate:"required,gt=0"`
	CampaignStartDate        time.Time `json:"campaign_start_date" validate:"required"`
	CampaignEndDate          time.Time `json:"campaign_end_date" validate:"required"`
	CampaignDescription      string    `json:"campaign_description" validate:"omitempty"`
}

type AddNewsRequest struct {
	News string `json:"news" validate:"required,min=1"`
}

type FavoriteRequest struct {
	CampaignID string `json:"campaign_id" validate:"required,uuid"`
}
