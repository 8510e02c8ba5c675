package mints

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// NewGetMinterRouteParams creates a new GetMinterRouteParams object
// no default values defined.
func NewGetMinterRouteParams() GetMinterRouteParams {

	return GetMinterRouteParams{}
}

// GetMinterRouteParams contains all the bound params for the get minter operation
// typically these are obtained from a http.Request
//
// swagger:parameters GetMinterRoute
type GetMinterRouteParams struct {

	/*Minter address, any case
	  Required: true
	  Pattern: ^0x[0-9a-fA-F]{40}$
	  In: path
	*/
	Address string `param:"address"`
}

func (o *GetMinterRouteParams) Validate(formats strfmt.Registry) error {
	var res []error

	if err := o.validateAddress(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (o *GetMinterRouteParams) validateAddress(formats strfmt.Registry) error {

	if err := validate.Pattern("address", "path", o.Address, `^0x[0-9a-fA-F]{40}$`); err != nil {
		return err
	}

	return nil
}
