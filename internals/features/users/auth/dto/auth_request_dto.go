// 📁 internals/features/users/auth/dto/auth_request_dto.go
package dto

import "encoding/json"

type RegisterRequest struct {
	UserName     string          `json:"user_name" validate:"required,min=3,max=100"`
	UserEmail    string          `json:"user_email" validate:"required,email"`
	UserPassword string          `json:"user_password" validate:"required,min=8"`
	UserRole     string          `json:"user_role" validate:"omitempty,oneof=donor organization influencer"`
	RolePayload  json.RawMessage `json:"role_payload,omitempty"`

	UserAddress     string `json:"user_address" validate:"omitempty,max=255"`
	UserPhoneNumber string `json:"user_phone_number" validate:"omitempty,max=30"`
}

type LoginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}
