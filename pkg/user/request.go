package user

import "github.com/go-playground/validator/v10"

var validate = validator.New(validator.WithRequiredStructEnabled())

// RegisterRequest is the body of POST /users/register.
// InviteCode is checked by the service after the caller's identity and wallet.
type RegisterRequest struct {
	InviteCode string `json:"invite_code"`
}

// ChallengeRequest is the body of POST /users/social-wallet/challenge.
type ChallengeRequest struct {
	Address string `json:"address" validate:"required,eth_addr"`
}

// VerifyRequest is the body of POST /users/social-wallet/verify.
type VerifyRequest struct {
	Signature string `json:"signature" validate:"required"`
}

// ExistsRequest is the body of POST /users/exists.
type ExistsRequest struct {
	Addresses []string `json:"addresses" validate:"required,max=500,dive,required"`
}

// ProfileUpdate carries the mutable profile fields. Nil fields are left untouched.
type ProfileUpdate struct {
	DisplayName        *string `json:"display_name" validate:"omitempty,min=1,max=64"`
	OnboardingComplete *bool   `json:"onboarding_complete"`
}

// Validate checks the field constraints declared in the struct tags.
func (p *ProfileUpdate) Validate() error {
	return validate.Struct(p)
}

// Empty reports whether the update changes nothing.
func (p *ProfileUpdate) Empty() bool {
	return p.DisplayName == nil && p.OnboardingComplete == nil
}

// ListOptions controls candidate listing.
type ListOptions struct {
	ExcludeUserID int64
	Offset        int
	Limit         int
	Search        string
}
