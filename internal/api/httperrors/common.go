package httperrors

import (
	"net/http"

	"github/chapool/nft-mint/internal/types"
)

var (
	ErrBadRequestInvalidAddress = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeINVALIDADDRESS, "Invalid address.")
	ErrNotFoundMinter           = NewHTTPError(http.StatusNotFound, types.PublicHTTPErrorTypeMINTERNOTFOUND, "No mint events for this address.")
)

// NewSigningError wraps a failed signature so it renders as a 500 instead of crashing the request.
func NewSigningError(err error) *HTTPError {
	e := NewHTTPError(http.StatusInternalServerError, types.PublicHTTPErrorTypeSIGNINGFAILED, "Failed to sign address.")
	e.Internal = err
	return e
}
