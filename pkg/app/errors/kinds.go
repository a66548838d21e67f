package errors

// Error kinds written to the `error` field of a failed API response.
const (
	KindUnauthorized      = "unauthorized"
	KindNotFound          = "not_found"
	KindAlreadyExists     = "already_exists"
	KindWalletMissing     = "wallet_missing"
	KindInvalidInviteCode = "invalid_invite_code"
	KindCodeAlreadyUsed   = "code_already_used"
	KindChallengeExpired  = "challenge_expired"
	KindInvalidSignature  = "invalid_signature"
	KindInvalidRequest    = "invalid_request"
	KindUnexpected        = "unexpected"
)
