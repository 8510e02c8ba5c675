package allowlist

import (
	"context"
	"regexp"
	"strings"

	"github.com/aarondl/null/v8"
	"github.com/pkg/errors"
)

var (
	ErrInvalidAddress = errors.New("invalid address")
	ErrEmptyAllowlist = errors.New("allowlist is empty")
)

var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// Entry is one allowlisted address. Address is always lowercase hex with 0x prefix.
type Entry struct {
	Address string
	Label   null.String
}

// Source loads the allowlist entries once at startup.
type Source interface {
	Load(ctx context.Context) ([]Entry, error)
}

// ValidAddress reports whether s is a 0x-prefixed 20 byte hex address, any case.
func ValidAddress(s string) bool {
	return addressPattern.MatchString(s)
}

// Normalize validates s and returns its lowercase form.
func Normalize(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !ValidAddress(s) {
		return "", errors.Wrapf(ErrInvalidAddress, "%q", s)
	}

	return strings.ToLower(s), nil
}
