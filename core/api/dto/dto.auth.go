// Package dto defines the request payloads accepted by the HTTP handlers.
// Create inputs carry value fields with validate tags; update inputs carry
// pointer fields so absent and zero values stay distinguishable.
package dto

import (
	models "github.com/arjunsharma6622/galaxygrow-server/core/api/models/mongodb"
)

// UserRegisterInput is the payload for user self registration.
type UserRegisterInput struct {
	Name     string `json:"name" validate:"required,no_xss"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strong_password"`
	Phone    string `json:"phone" validate:"required,len=10,numeric"`
	Gender   string `json:"gender,omitempty"`
	Place    string `json:"place,omitempty"`
	Image    string `json:"image,omitempty"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=user vendor admin"`
}

// ToModel converts the input into a User document. The password is hashed
// by the service, not here.
func (i *UserRegisterInput) ToModel() models.User {
	role := i.Role
	if role == "" {
		role = models.RoleUser
	}
	return models.User{
		Name:   i.Name,
		Email:  i.Email,
		Phone:  i.Phone,
		Gender: i.Gender,
		Place:  i.Place,
		Image:  i.Image,
		Role:   role,
	}
}

// VendorRegisterInput is the payload for vendor self registration.
type VendorRegisterInput struct {
	Name     string `json:"name" validate:"required,no_xss"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strong_password"`
	Phone    string `json:"phone" validate:"required,len=10,numeric"`
	Gender   string `json:"gender,omitempty"`
	Image    string `json:"image,omitempty"`
}

// ToModel converts the input into a Vendor document.
func (i *VendorRegisterInput) ToModel() models.Vendor {
	return models.Vendor{
		Name:   i.Name,
		Email:  i.Email,
		Phone:  i.Phone,
		Gender: i.Gender,
		Image:  i.Image,
	}
}

// LoginInput is the payload for user login. The email field also accepts
// a 10 digit phone number.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RequestOTPInput asks for a fresh OTP to be sent to a phone number.
type RequestOTPInput struct {
	Phone string `json:"phone" validate:"required,len=10,numeric"`
}

// VerifyOTPInput is the payload for OTP verification.
type VerifyOTPInput struct {
	Phone string `json:"phone" validate:"required,len=10,numeric"`
	OTP   string `json:"otp" validate:"required,len=4,numeric"`
}

// ResetPasswordInput carries the reset ticket minted by a successful OTP
// verification together with the new password.
type ResetPasswordInput struct {
	Phone       string `json:"phone" validate:"required,len=10,numeric"`
	Ticket      string `json:"ticket" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,strong_password"`
}
