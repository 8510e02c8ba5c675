package types

import (
	"context"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

// MinterStats minter stats
//
// swagger:model minterStats
type MinterStats struct {

	// Lowercase minter address
	// Required: true
	Address *string `json:"address"`

	// first block
	// Required: true
	FirstBlock *int64 `json:"firstBlock"`

	// last block
	// Required: true
	LastBlock *int64 `json:"lastBlock"`

	// Number of Minted events emitted for this address
	// Required: true
	MintCount *int64 `json:"mintCount"`

	// Sum of minted quantities as a decimal string
	// Required: true
	TotalMinted *string `json:"totalMinted"`
}

// Validate validates this minter stats
func (m *MinterStats) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("address", "body", m.Address); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("firstBlock", "body", m.FirstBlock); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("lastBlock", "body", m.LastBlock); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("mintCount", "body", m.MintCount); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("totalMinted", "body", m.TotalMinted); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// ContextValidate validates this minter stats based on context it is used
func (m *MinterStats) ContextValidate(ctx context.Context, formats strfmt.Registry) error {
	return nil
}

// MarshalBinary interface implementation
func (m *MinterStats) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return swag.WriteJSON(m)
}

// UnmarshalBinary interface implementation
func (m *MinterStats) UnmarshalBinary(b []byte) error {
	var res MinterStats
	if err := swag.ReadJSON(b, &res); err != nil {
		return err
	}
	*m = res
	return nil
}
