package types

import (
	"context"
	"encoding/json"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

// PublicHTTPError public HTTP error
//
// swagger:model publicHttpError
type PublicHTTPError struct {

	// More detailed, human-readable, optional explanation of the error
	// Example: User is lacking permission to access this resource
	Detail string `json:"detail,omitempty"`

	// HTTP status code returned for the error
	// Example: 403
	// Required: true
	// Maximum: 599
	// Minimum: 100
	Code *int64 `json:"status"`

	// Short, human-readable description of the error
	// Example: Forbidden
	// Required: true
	Title *string `json:"title"`

	// type
	// Required: true
	Type *PublicHTTPErrorType `json:"type"`
}

// Validate validates this public Http error
func (m *PublicHTTPError) Validate(formats strfmt.Registry) error {
	var res []error

	if err := m.validateCode(formats); err != nil {
		res = append(res, err)
	}

	if err := m.validateTitle(formats); err != nil {
		res = append(res, err)
	}

	if err := m.validateType(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (m *PublicHTTPError) validateCode(formats strfmt.Registry) error {

	if err := validate.Required("status", "body", m.Code); err != nil {
		return err
	}

	if err := validate.MinimumInt("status", "body", *m.Code, 100, false); err != nil {
		return err
	}

	if err := validate.MaximumInt("status", "body", *m.Code, 599, false); err != nil {
		return err
	}

	return nil
}

func (m *PublicHTTPError) validateTitle(formats strfmt.Registry) error {

	if err := validate.Required("title", "body", m.Title); err != nil {
		return err
	}

	return nil
}

func (m *PublicHTTPError) validateType(formats strfmt.Registry) error {

	if err := validate.Required("type", "body", m.Type); err != nil {
		return err
	}

	if err := validate.Required("type", "body", m.Type); err != nil {
		return err
	}

	if m.Type != nil {
		if err := m.Type.Validate(formats); err != nil {
			if ve, ok := err.(*errors.Validation); ok {
				return ve.ValidateName("type")
			}
			return err
		}
	}

	return nil
}

// ContextValidate validates this public Http error based on the context it is used
func (m *PublicHTTPError) ContextValidate(ctx context.Context, formats strfmt.Registry) error {
	return nil
}

// MarshalBinary interface implementation
func (m *PublicHTTPError) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return swag.WriteJSON(m)
}

// UnmarshalBinary interface implementation
func (m *PublicHTTPError) UnmarshalBinary(b []byte) error {
	var res PublicHTTPError
	if err := swag.ReadJSON(b, &res); err != nil {
		return err
	}
	*m = res
	return nil
}

// PublicHTTPErrorType Type of error returned, should be used for client-side error handling
//
// swagger:model publicHttpErrorType
type PublicHTTPErrorType string

func NewPublicHTTPErrorType(value PublicHTTPErrorType) *PublicHTTPErrorType {
	return &value
}

// Pointer returns a pointer to a freshly-allocated PublicHTTPErrorType.
func (m PublicHTTPErrorType) Pointer() *PublicHTTPErrorType {
	return &m
}

const (

	// PublicHTTPErrorTypeGeneric captures enum value "generic"
	PublicHTTPErrorTypeGeneric PublicHTTPErrorType = "generic"

	// PublicHTTPErrorTypeINVALIDADDRESS captures enum value "INVALID_ADDRESS"
	PublicHTTPErrorTypeINVALIDADDRESS PublicHTTPErrorType = "INVALID_ADDRESS"

	// PublicHTTPErrorTypeSIGNINGFAILED captures enum value "SIGNING_FAILED"
	PublicHTTPErrorTypeSIGNINGFAILED PublicHTTPErrorType = "SIGNING_FAILED"

	// PublicHTTPErrorTypeMINTERNOTFOUND captures enum value "MINTER_NOT_FOUND"
	PublicHTTPErrorTypeMINTERNOTFOUND PublicHTTPErrorType = "MINTER_NOT_FOUND"
)

// for schema
var publicHttpErrorTypeEnum []any

func init() {
	var res []PublicHTTPErrorType
	if err := json.Unmarshal([]byte(`["generic","INVALID_ADDRESS","SIGNING_FAILED","MINTER_NOT_FOUND"]`), &res); err != nil {
		panic(err)
	}
	for _, v := range res {
		publicHttpErrorTypeEnum = append(publicHttpErrorTypeEnum, v)
	}
}

func (m PublicHTTPErrorType) validatePublicHTTPErrorTypeEnum(path, location string, value PublicHTTPErrorType) error {
	if err := validate.EnumCase(path, location, value, publicHttpErrorTypeEnum, true); err != nil {
		return err
	}
	return nil
}

// Validate validates this public Http error type
func (m PublicHTTPErrorType) Validate(formats strfmt.Registry) error {
	var res []error

	// value enum
	if err := m.validatePublicHTTPErrorTypeEnum("", "body", m); err != nil {
		return err
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// ContextValidate validates this public Http error type based on context it is used
func (m PublicHTTPErrorType) ContextValidate(ctx context.Context, formats strfmt.Registry) error {
	return nil
}
