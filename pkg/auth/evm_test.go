package auth

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
)

func signPersonal(t *testing.T, message string) (string, string) {
	t.Helper()

	privateKey, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey() failed: %v", err)
	}

	signature, err := crypto.Sign(EIP191Hash(message), privateKey)
	if err != nil {
		t.Fatalf("Sign() failed: %v", err)
	}
	// wallets emit v as 27/28
	signature[64] += 27

	address := crypto.PubkeyToAddress(privateKey.PublicKey).Hex()
	return address, "0x" + hex.EncodeToString(signature)
}

func TestVerifyEIP191Signature_RecoversSigner(t *testing.T) {
	address, signature := signPersonal(t, "link wallet")

	recovered, err := VerifyEIP191Signature("link wallet", signature)
	if err != nil {
		t.Fatalf("VerifyEIP191Signature() failed: %v", err)
	}
	if recovered.Hex() != address {
		t.Fatalf("expected %s, got %s", address, recovered.Hex())
	}
}

func TestVerifyEIP191Signature_Malformed(t *testing.T) {
	tests := []struct {
		name      string
		signature string
	}{
		{"not hex", "0xzz"},
		{"too short", "0x" + strings.Repeat("ab", 64)},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := VerifyEIP191Signature("msg", tt.signature); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestEIP191Verifier_Verify(t *testing.T) {
	message := "Link 0xabc\nNonce: 1"
	address, signature := signPersonal(t, message)
	other, _ := signPersonal(t, message)

	v := EIP191Verifier{}

	if !v.Verify(strings.ToLower(address), message, signature) {
		t.Fatal("expected lower-cased signer address to verify")
	}
	if v.Verify(address, message+" ", signature) {
		t.Fatal("expected altered message to fail verification")
	}
	if v.Verify(other, message, signature) {
		t.Fatal("expected different address to fail verification")
	}
	if v.Verify(address, message, "0x1234") {
		t.Fatal("expected malformed signature to fail verification")
	}
	if v.Verify("not-an-address", message, signature) {
		t.Fatal("expected invalid address to fail verification")
	}
}

func TestValidateEVMAddress(t *testing.T) {
	in := "0xAbCdEf0123456789abcdef0123456789ABCDEF01"
	if !ValidateEVMAddress(in) {
		t.Fatalf("expected %s to be valid", in)
	}
	if ValidateEVMAddress("0x123") {
		t.Fatal("expected short address to be invalid")
	}
}
