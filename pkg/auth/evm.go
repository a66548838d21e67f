package auth

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// signatureLength is the byte length of an [R || S || V] secp256k1 signature.
const signatureLength = 65

// VerifyEIP191Signature verifies an EIP-191 personal_sign signature
// Returns the recovered Ethereum address if valid
func VerifyEIP191Signature(message, signature string) (common.Address, error) {
	sigBytes, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(signature), "0x"))
	if err != nil {
		return common.Address{}, fmt.Errorf("invalid signature hex: %w", err)
	}

	if len(sigBytes) != signatureLength {
		return common.Address{}, fmt.Errorf("invalid signature length: expected %d, got %d", signatureLength, len(sigBytes))
	}

	// v can be 0, 1, 27, or 28 - normalize to 0 or 1
	if sigBytes[64] >= 27 {
		sigBytes[64] -= 27
	}

	pubKey, err := crypto.SigToPub(EIP191Hash(message), sigBytes)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to recover public key: %w", err)
	}

	return crypto.PubkeyToAddress(*pubKey), nil
}

// EIP191Hash returns the keccak256 digest of the personal_sign prefixed message.
func EIP191Hash(message string) []byte {
	prefixedMsg := fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(message), message)
	return crypto.Keccak256Hash([]byte(prefixedMsg)).Bytes()
}

// EIP191Verifier checks that a personal_sign signature was produced by a given address.
type EIP191Verifier struct{}

// Verify reports whether signature is a valid EIP-191 signature of message by address.
// Malformed signatures verify as false.
func (EIP191Verifier) Verify(address, message, signature string) bool {
	if !ValidateEVMAddress(address) {
		return false
	}
	recovered, err := VerifyEIP191Signature(message, signature)
	if err != nil {
		return false
	}
	return recovered == common.HexToAddress(address)
}

// ValidateEVMAddress checks if a string is a 0x-prefixed 20-byte hex address
func ValidateEVMAddress(address string) bool {
	if !strings.HasPrefix(address, "0x") && !strings.HasPrefix(address, "0X") {
		return false
	}
	if len(address) != 42 {
		return false
	}
	_, err := hex.DecodeString(address[2:])
	return err == nil
}
