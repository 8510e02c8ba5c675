package types

import (
	"context"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

// MintStats mint stats
//
// swagger:model mintStats
type MintStats struct {

	// chain ID
	// Required: true
	ChainID *int64 `json:"chainId"`

	// Address of the synced contract
	// Required: true
	ContractAddress *string `json:"contractAddress"`

	// Last block fully processed by the event sync
	// Required: true
	LastBlock *int64 `json:"lastBlock"`

	// Number of Minted events stored
	// Required: true
	TotalEvents *int64 `json:"totalEvents"`

	// Sum of minted quantities as a decimal string
	// Example: 13
	// Required: true
	TotalMinted *string `json:"totalMinted"`

	// Number of distinct minter addresses
	// Required: true
	UniqueMinters *int64 `json:"uniqueMinters"`
}

// Validate validates this mint stats
func (m *MintStats) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("chainId", "body", m.ChainID); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("contractAddress", "body", m.ContractAddress); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("lastBlock", "body", m.LastBlock); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("totalEvents", "body", m.TotalEvents); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("totalMinted", "body", m.TotalMinted); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("uniqueMinters", "body", m.UniqueMinters); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// ContextValidate validates this mint stats based on context it is used
func (m *MintStats) ContextValidate(ctx context.Context, formats strfmt.Registry) error {
	return nil
}

// MarshalBinary interface implementation
func (m *MintStats) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return swag.WriteJSON(m)
}

// UnmarshalBinary interface implementation
func (m *MintStats) UnmarshalBinary(b []byte) error {
	var res MintStats
	if err := swag.ReadJSON(b, &res); err != nil {
		return err
	}
	*m = res
	return nil
}
