package user

import "time"

// ChallengeStatus enumerates the signing challenge lifecycle for a user.
type ChallengeStatus int

const (
	// NoChallenge means the user has nothing outstanding: never issued, or already consumed.
	NoChallenge ChallengeStatus = iota
	// PendingChallenge means a challenge is stored and awaiting a signature.
	PendingChallenge
)

func (s ChallengeStatus) String() string {
	if s == PendingChallenge {
		return "pending"
	}
	return "none"
}

// ChallengeState is the per-user view of the challenge lifecycle.
// Pending is set only when Status is PendingChallenge.
type ChallengeState struct {
	Status  ChallengeStatus
	Pending *SigningChallenge
}

// StateOf derives the lifecycle state from the (possibly absent) stored challenge.
func StateOf(ch *SigningChallenge) ChallengeState {
	if ch == nil {
		return ChallengeState{Status: NoChallenge}
	}
	return ChallengeState{Status: PendingChallenge, Pending: ch}
}

// Verifiable reports whether a pending challenge can still be verified at now.
func (s ChallengeState) Verifiable(now time.Time) bool {
	return s.Status == PendingChallenge && !s.Pending.Expired(now)
}
