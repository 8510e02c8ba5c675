package mints

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// NewGetMintEventsRouteParams creates a new GetMintEventsRouteParams object
// with the default values initialized.
func NewGetMintEventsRouteParams() GetMintEventsRouteParams {

	var (
		// initialize parameters with default values

		limitDefault  = int64(50)
		offsetDefault = int64(0)
	)

	return GetMintEventsRouteParams{
		Limit: &limitDefault,

		Offset: &offsetDefault,
	}
}

// GetMintEventsRouteParams contains all the bound params for the get mint events operation
// typically these are obtained from a http.Request
//
// swagger:parameters GetMintEventsRoute
type GetMintEventsRouteParams struct {

	/*Maximum number of events to return
	  Maximum: 500
	  Minimum: 1
	  In: query
	  Default: 50
	*/
	Limit *int64 `query:"limit"`

	/*Only return events of this minter
	  Pattern: ^0x[0-9a-fA-F]{40}$
	  In: query
	*/
	Minter *string `query:"minter"`

	/*Number of events to skip
	  Minimum: 0
	  In: query
	  Default: 0
	*/
	Offset *int64 `query:"offset"`
}

func (o *GetMintEventsRouteParams) Validate(formats strfmt.Registry) error {
	var res []error

	if err := o.validateLimit(formats); err != nil {
		res = append(res, err)
	}

	if err := o.validateMinter(formats); err != nil {
		res = append(res, err)
	}

	if err := o.validateOffset(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (o *GetMintEventsRouteParams) validateLimit(formats strfmt.Registry) error {
	if o.Limit == nil {
		return nil
	}

	if err := validate.MinimumInt("limit", "query", *o.Limit, 1, false); err != nil {
		return err
	}

	if err := validate.MaximumInt("limit", "query", *o.Limit, 500, false); err != nil {
		return err
	}

	return nil
}

func (o *GetMintEventsRouteParams) validateMinter(formats strfmt.Registry) error {
	if o.Minter == nil {
		return nil
	}

	if err := validate.Pattern("minter", "query", *o.Minter, `^0x[0-9a-fA-F]{40}$`); err != nil {
		return err
	}

	return nil
}

func (o *GetMintEventsRouteParams) validateOffset(formats strfmt.Registry) error {
	if o.Offset == nil {
		return nil
	}

	if err := validate.MinimumInt("offset", "query", *o.Offset, 0, false); err != nil {
		return err
	}

	return nil
}
