package types_test

import (
	"testing"

	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/assert"
	"github/chapool/nft-mint/internal/types"
)

func TestPostCheckAddressPayloadValidate(t *testing.T) {
	tests := []struct {
		name    string
		address *string
		valid   bool
	}{
		{name: "lowercase", address: swag.String("0x70997970c51812dc3a010c7d01b50e0d17dc79c8"), valid: true},
		{name: "checksummed", address: swag.String("0x70997970C51812dc3A010C7d01b50e0d17dc79C8"), valid: true},
		{name: "missing", address: nil},
		{name: "empty", address: swag.String("")},
		{name: "no prefix", address: swag.String("70997970c51812dc3a010c7d01b50e0d17dc79c8")},
		{name: "too long", address: swag.String("0x70997970c51812dc3a010c7d01b50e0d17dc79c800")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&types.PostCheckAddressPayload{Address: tt.address}).Validate(strfmt.Default)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
