// 📁 internals/features/users/user/dto/user_request_dto.go
package dto

type UpdateProfileRequest struct {
	UserName        *string `json:"user_name" validate:"omitempty,min=3,max=100"`
	UserAddress     *string `json:"user_address" validate:"omitempty,max=255"`
	UserPhoneNumber *string `json:"user_phone_number" validate:"omitempty,max=30"`
}
