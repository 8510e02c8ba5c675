package chain

import (
	"fmt"
	"regexp"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
)

var ErrTransactionReverted = errors.New("transaction reverted")

// RevertError carries the reason string of a failed call or transaction.
type RevertError struct {
	Reason string
	Cause  error
}

func (e *RevertError) Error() string {
	if e.Reason == "" {
		return "execution reverted"
	}

	return fmt.Sprintf("execution reverted: %s", e.Reason)
}

func (e *RevertError) Unwrap() error {
	return ErrTransactionReverted
}

var revertMessagePatterns = []*regexp.Regexp{
	regexp.MustCompile(`reverted with reason string '(.*)'`),
	regexp.MustCompile(`execution reverted: (.*)`),
}

// DecodeRevert turns a node error of a reverted call into a *RevertError. Other errors are
// returned unchanged. Both the revert data attached to the JSON-RPC error and the reason
// embedded in the message (as hardhat and anvil report it) are understood.
func DecodeRevert(err error) error {
	if err == nil {
		return nil
	}

	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if s, ok := dataErr.ErrorData().(string); ok {
			if data, decodeErr := hexutil.Decode(s); decodeErr == nil {
				if reason, unpackErr := abi.UnpackRevert(data); unpackErr == nil {
					return &RevertError{Reason: reason, Cause: err}
				}
			}
		}
	}

	msg := err.Error()
	for _, re := range revertMessagePatterns {
		if m := re.FindStringSubmatch(msg); m != nil {
			return &RevertError{Reason: m[1], Cause: err}
		}
	}

	return err
}

// RevertReason returns the reason of a *RevertError somewhere in err's chain.
func RevertReason(err error) (string, bool) {
	var revertErr *RevertError
	if errors.As(err, &revertErr) {
		return revertErr.Reason, true
	}

	return "", false
}
