package types

import (
	"context"
	"strconv"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

// MintEvent mint event
//
// swagger:model mintEvent
type MintEvent struct {

	// block hash
	// Required: true
	BlockHash *string `json:"blockHash"`

	// block number
	// Required: true
	BlockNumber *int64 `json:"blockNumber"`

	// Time the event was stored
	// Required: true
	// Format: date-time
	CreatedAt *strfmt.DateTime `json:"createdAt"`

	// log index
	// Required: true
	LogIndex *int64 `json:"logIndex"`

	// Lowercase minter address
	// Required: true
	Minter *string `json:"minter"`

	// Minted quantity as a decimal string
	// Required: true
	Quantity *string `json:"quantity"`

	// tx hash
	// Required: true
	TxHash *string `json:"txHash"`
}

// Validate validates this mint event
func (m *MintEvent) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("blockHash", "body", m.BlockHash); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("blockNumber", "body", m.BlockNumber); err != nil {
		res = append(res, err)
	}

	if err := m.validateCreatedAt(formats); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("logIndex", "body", m.LogIndex); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("minter", "body", m.Minter); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("quantity", "body", m.Quantity); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("txHash", "body", m.TxHash); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (m *MintEvent) validateCreatedAt(formats strfmt.Registry) error {

	if err := validate.Required("createdAt", "body", m.CreatedAt); err != nil {
		return err
	}

	if err := validate.FormatOf("createdAt", "body", "date-time", m.CreatedAt.String(), formats); err != nil {
		return err
	}

	return nil
}

// ContextValidate validates this mint event based on context it is used
func (m *MintEvent) ContextValidate(ctx context.Context, formats strfmt.Registry) error {
	return nil
}

// MarshalBinary interface implementation
func (m *MintEvent) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return swag.WriteJSON(m)
}

// UnmarshalBinary interface implementation
func (m *MintEvent) UnmarshalBinary(b []byte) error {
	var res MintEvent
	if err := swag.ReadJSON(b, &res); err != nil {
		return err
	}
	*m = res
	return nil
}

// MintEventList mint event list
//
// swagger:model mintEventList
type MintEventList struct {

	// data
	// Required: true
	Data []*MintEvent `json:"data"`

	// limit
	// Required: true
	Limit *int64 `json:"limit"`

	// offset
	// Required: true
	Offset *int64 `json:"offset"`
}

// Validate validates this mint event list
func (m *MintEventList) Validate(formats strfmt.Registry) error {
	var res []error

	if err := m.validateData(formats); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("limit", "body", m.Limit); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("offset", "body", m.Offset); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (m *MintEventList) validateData(formats strfmt.Registry) error {

	if err := validate.Required("data", "body", m.Data); err != nil {
		return err
	}

	for i := 0; i < len(m.Data); i++ {
		if swag.IsZero(m.Data[i]) { // not required
			continue
		}

		if m.Data[i] != nil {
			if err := m.Data[i].Validate(formats); err != nil {
				if ve, ok := err.(*errors.Validation); ok {
					return ve.ValidateName("data" + "." + strconv.Itoa(i))
				}
				return err
			}
		}

	}

	return nil
}

// ContextValidate validates this mint event list based on context it is used
func (m *MintEventList) ContextValidate(ctx context.Context, formats strfmt.Registry) error {
	return nil
}

// MarshalBinary interface implementation
func (m *MintEventList) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return swag.WriteJSON(m)
}

// UnmarshalBinary interface implementation
func (m *MintEventList) UnmarshalBinary(b []byte) error {
	var res MintEventList
	if err := swag.ReadJSON(b, &res); err != nil {
		return err
	}
	*m = res
	return nil
}
