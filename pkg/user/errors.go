package user

import "errors"

// Sentinel errors shared by the services and the store.
var (
	ErrUnknownIdentity      = errors.New("identity could not be resolved")
	ErrUserAlreadyExists    = errors.New("user already registered")
	ErrWalletMissing        = errors.New("no embedded wallet linked to identity")
	ErrInviteCodeNotFound   = errors.New("invite code not found")
	ErrInvalidInviteCode    = errors.New("invite code does not exist or is inactive")
	ErrCodeAlreadyUsed      = errors.New("invite code usage limit reached")
	ErrUserNotFound         = errors.New("user not found")
	ErrChallengeNotFound    = errors.New("signing challenge not found")
	ErrChallengeExpired     = errors.New("signing challenge expired")
	ErrInvalidSignature     = errors.New("signature does not match challenge")
	ErrSocialWalletTaken    = errors.New("social wallet already linked to another user")
	ErrSocialWalletNotFound = errors.New("user has no social wallet")
)
