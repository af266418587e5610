// 📁 internals/features/shop/dto/shop_request_dto.go
package dto

type BuyItemRequest struct {
	ItemID string `json:"item_id" validate:"required"`
}
