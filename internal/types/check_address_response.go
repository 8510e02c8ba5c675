package types

import (
	"context"
	"encoding/json"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

// CheckAddressResponse check address response
//
// swagger:model checkAddressResponse
type CheckAddressResponse struct {

	// Reason the address was rejected, set when status is error
	// Example: Address not in the allowlist
	Message string `json:"message,omitempty"`

	// keccak256 hash of the lowercase address string that was signed
	// Example: 0x4a5c5d454721bbbb25540c3317521e71c373ae36458f960d2ad46ef088110e95
	// Pattern: ^0x[0-9a-fA-F]{64}$
	MessageHash string `json:"messageHash,omitempty"`

	// EIP-191 signature over the message hash, set when status is success
	// Pattern: ^0x[0-9a-fA-F]{130}$
	Signature string `json:"signature,omitempty"`

	// status
	// Required: true
	// Enum: ["success","error"]
	Status *string `json:"status"`
}

// Validate validates this check address response
func (m *CheckAddressResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := m.validateMessageHash(formats); err != nil {
		res = append(res, err)
	}

	if err := m.validateSignature(formats); err != nil {
		res = append(res, err)
	}

	if err := m.validateStatus(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (m *CheckAddressResponse) validateMessageHash(formats strfmt.Registry) error {
	if swag.IsZero(m.MessageHash) { // not required
		return nil
	}

	if err := validate.Pattern("messageHash", "body", m.MessageHash, `^0x[0-9a-fA-F]{64}$`); err != nil {
		return err
	}

	return nil
}

func (m *CheckAddressResponse) validateSignature(formats strfmt.Registry) error {
	if swag.IsZero(m.Signature) { // not required
		return nil
	}

	if err := validate.Pattern("signature", "body", m.Signature, `^0x[0-9a-fA-F]{130}$`); err != nil {
		return err
	}

	return nil
}

var checkAddressResponseTypeStatusPropEnum []any

func init() {
	var res []string
	if err := json.Unmarshal([]byte(`["success","error"]`), &res); err != nil {
		panic(err)
	}
	for _, v := range res {
		checkAddressResponseTypeStatusPropEnum = append(checkAddressResponseTypeStatusPropEnum, v)
	}
}

const (

	// CheckAddressResponseStatusSuccess captures enum value "success"
	CheckAddressResponseStatusSuccess string = "success"

	// CheckAddressResponseStatusError captures enum value "error"
	CheckAddressResponseStatusError string = "error"
)

// prop value enum
func (m *CheckAddressResponse) validateStatusEnum(path, location string, value string) error {
	if err := validate.EnumCase(path, location, value, checkAddressResponseTypeStatusPropEnum, true); err != nil {
		return err
	}
	return nil
}

func (m *CheckAddressResponse) validateStatus(formats strfmt.Registry) error {

	if err := validate.Required("status", "body", m.Status); err != nil {
		return err
	}

	// value enum
	if err := m.validateStatusEnum("status", "body", *m.Status); err != nil {
		return err
	}

	return nil
}

// ContextValidate validates this check address response based on context it is used
func (m *CheckAddressResponse) ContextValidate(ctx context.Context, formats strfmt.Registry) error {
	return nil
}

// MarshalBinary interface implementation
func (m *CheckAddressResponse) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return swag.WriteJSON(m)
}

// UnmarshalBinary interface implementation
func (m *CheckAddressResponse) UnmarshalBinary(b []byte) error {
	var res CheckAddressResponse
	if err := swag.ReadJSON(b, &res); err != nil {
		return err
	}
	*m = res
	return nil
}
