package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// DefaultLength is the default length for generated short IDs
	DefaultLength = 12
)

// Prefixes for different entity types (Stripe-style)
const (
	PrefixUser      = "user"
	PrefixClient    = "cli"
	PrefixPlan      = "plan"
	PrefixFeature   = "feat"
	PrefixAutoReply = "rule"
)

// Generate creates a random short ID with the specified length using Base62
// encoding. The generated ID is cryptographically random and URL-safe.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// GenerateWithPrefix creates a prefixed ID in the format "prefix_randomstring".
func GenerateWithPrefix(prefix string, length int) (string, error) {
	id, err := Generate(length)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s_%s", prefix, id), nil
}

// ParsePrefixedID extracts the prefix and short ID from a prefixed ID string.
func ParsePrefixedID(prefixedID string) (prefix, shortID string, err error) {
	parts := strings.SplitN(prefixedID, "_", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid prefixed ID format: %s", prefixedID)
	}
	return parts[0], parts[1], nil
}

// ValidatePrefix checks if the prefixed ID has the expected prefix.
func ValidatePrefix(prefixedID, expectedPrefix string) error {
	prefix, _, err := ParsePrefixedID(prefixedID)
	if err != nil {
		return err
	}
	if prefix != expectedPrefix {
		return fmt.Errorf("invalid prefix: expected %s, got %s", expectedPrefix, prefix)
	}
	return nil
}

// NewUserID generates a new user SID.
func NewUserID() (string, error) {
	return GenerateWithPrefix(PrefixUser, DefaultLength)
}

// NewClientID generates a new client SID.
func NewClientID() (string, error) {
	return GenerateWithPrefix(PrefixClient, DefaultLength)
}

// NewPlanID generates a new plan SID.
func NewPlanID() (string, error) {
	return GenerateWithPrefix(PrefixPlan, DefaultLength)
}

// NewFeatureID generates a new feature SID.
func NewFeatureID() (string, error) {
	return GenerateWithPrefix(PrefixFeature, DefaultLength)
}

// NewAutoReplyID generates a new auto-reply rule SID.
func NewAutoReplyID() (string, error) {
	return GenerateWithPrefix(PrefixAutoReply, DefaultLength)
}
