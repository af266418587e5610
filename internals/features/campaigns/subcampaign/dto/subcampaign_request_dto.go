// 📁 internals/features/campaigns/subcampaign/dto/subcampaign_request_dto.go
package dto

import "time"

type CreateSubCampaignRequest struct {
	SubCampaignParentID    string    `json:"sub_campaign_parent_id" validate:"required,uuid"`
	SubCampaignName        string    `json:"sub_campaign_name" validate:"required,min=3,max=100"`
	SubCampaignDescription string    `json:"sub_campaign_description" validate:"required"`
	SubCampaignGoalAmount  int64     `json:"sub_campaign_goal_amount" validate:"required,gt=0"`
	SubCampaignStartDate   time.Time `json:"sub_campaign_start_date" validate:"required"`
	SubCampaignEndDate     time.Time `json:"sub_campaign_end_date" validate:"required"`
}
