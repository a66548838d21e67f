package user

import (
	"strings"
	"testing"
)

func TestProfileUpdate_Validate(t *testing.T) {
	name := "alice"
	blank := ""
	long := strings.Repeat("a", 65)
	done := true

	tests := []struct {
		name    string
		update  ProfileUpdate
		wantErr bool
	}{
		{"display name", ProfileUpdate{DisplayName: &name}, false},
		{"onboarding only", ProfileUpdate{OnboardingComplete: &done}, false},
		{"blank display name", ProfileUpdate{DisplayName: &blank}, true},
		{"display name too long", ProfileUpdate{DisplayName: &long}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.update.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
