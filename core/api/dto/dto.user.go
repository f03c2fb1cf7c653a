package dto

// UserUpdateInput is the payload for updating the authenticated user's
// own profile. Only these fields may change.
type UserUpdateInput struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,no_xss"`
	Place    *string `json:"place,omitempty"`
	Password *string `json:"password,omitempty" validate:"omitempty,strong_password"`
	Image    *string `json:"image,omitempty"`
}

// VendorUpdateInput is the payload for updating the authenticated
// vendor's own profile.
type VendorUpdateInput struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,no_xss"`
	Password *string `json:"password,omitempty" validate:"omitempty,strong_password"`
	Image    *string `json:"image,omitempty"`
}
