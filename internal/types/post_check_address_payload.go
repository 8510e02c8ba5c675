package types

import (
	"context"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

// PostCheckAddressPayload post check address payload
//
// swagger:model postCheckAddressPayload
type PostCheckAddressPayload struct {

	// Wallet address to check against the allowlist
	// Example: 0x70997970c51812dc3a010c7d01b50e0d17dc79c8
	// Required: true
	// Pattern: ^0x[0-9a-fA-F]{40}$
	Address *string `json:"address"`
}

// Validate validates this post check address payload
func (m *PostCheckAddressPayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := m.validateAddress(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (m *PostCheckAddressPayload) validateAddress(formats strfmt.Registry) error {

	if err := validate.Required("address", "body", m.Address); err != nil {
		return err
	}

	if err := validate.Pattern("address", "body", *m.Address, `^0x[0-9a-fA-F]{40}$`); err != nil {
		return err
	}

	return nil
}

// ContextValidate validates this post check address payload based on context it is used
func (m *PostCheckAddressPayload) ContextValidate(ctx context.Context, formats strfmt.Registry) error {
	return nil
}

// MarshalBinary interface implementation
func (m *PostCheckAddressPayload) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return swag.WriteJSON(m)
}

// UnmarshalBinary interface implementation
func (m *PostCheckAddressPayload) UnmarshalBinary(b []byte) error {
	var res PostCheckAddressPayload
	if err := swag.ReadJSON(b, &res); err != nil {
		return err
	}
	*m = res
	return nil
}
