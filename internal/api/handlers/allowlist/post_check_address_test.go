package allowlist_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/nft-mint/internal/api"
	"github/chapool/nft-mint/internal/api/handlers/allowlist"
	"github/chapool/nft-mint/internal/mint/signer"
	"github/chapool/nft-mint/internal/test"
	"github/chapool/nft-mint/internal/types"
)

func TestPostCheckAddressAllowlisted(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		// checksummed input is accepted, the lowercase form is signed
		address := "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"

		res := test.PerformRequest(t, s, "POST", "/check-address", test.GenericPayload{"address": address}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.CheckAddressResponse
		test.ParseResponseAndValidate(t, res, &response)

		assert.Equal(t, types.CheckAddressResponseStatusSuccess, *response.Status)
		assert.Empty(t, response.Message)

		expectedHash := crypto.Keccak256Hash([]byte(strings.ToLower(address)))
		assert.Equal(t, expectedHash.Hex(), response.MessageHash)

		sig, err := hexutil.Decode(response.Signature)
		require.NoError(t, err)
		require.Len(t, sig, 65)
		assert.Contains(t, []byte{27, 28}, sig[64])

		recovered, err := signer.RecoverSigner(expectedHash, sig)
		require.NoError(t, err)
		assert.Equal(t, common.HexToAddress(test.SignerAddress), recovered)
	})
}

func TestPostCheckAddressNotAllowlisted(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		key, err := crypto.GenerateKey()
		require.NoError(t, err)
		address := crypto.PubkeyToAddress(key.PublicKey).Hex()

		res := test.PerformRequest(t, s, "POST", "/check-address", test.GenericPayload{"address": address}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.CheckAddressResponse
		test.ParseResponseAndValidate(t, res, &response)

		assert.Equal(t, types.CheckAddressResponseStatusError, *response.Status)
		assert.Equal(t, allowlist.MessageNotAllowlisted, response.Message)
		assert.Empty(t, response.Signature)
		assert.Empty(t, response.MessageHash)
	})
}

func TestPostCheckAddressHardhatAccountSix(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		key, err := crypto.HexToECDSA(test.NotAllowlistedPrivateKey)
		require.NoError(t, err)

		res := test.PerformRequest(t, s, "POST", "/check-address", test.GenericPayload{
			"address": crypto.PubkeyToAddress(key.PublicKey).Hex(),
		}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.CheckAddressResponse
		test.ParseResponseAndValidate(t, res, &response)
		assert.Equal(t, types.CheckAddressResponseStatusError, *response.Status)
		assert.Empty(t, response.Signature)
	})
}

func TestPostCheckAddressInvalid(t *testing.T) {
	tests := []struct {
		name string
		body test.GenericPayload
	}{
		{name: "missing address", body: test.GenericPayload{}},
		{name: "empty address", body: test.GenericPayload{"address": ""}},
		{name: "short address", body: test.GenericPayload{"address": "0x1234"}},
		{name: "no prefix", body: test.GenericPayload{"address": "70997970c51812dc3a010c7d01b50e0d17dc79c8"}},
		{name: "non hex", body: test.GenericPayload{"address": "0x70997970c51812dc3a010c7d01b50e0d17dc79zz"}},
		{name: "wrong type", body: test.GenericPayload{"address": 42}},
		{name: "null address", body: test.GenericPayload{"address": nil}},
		{name: "padded address", body: test.GenericPayload{"address": " 0x70997970c51812dc3a010c7d01b50e0d17dc79c8 "}},
	}

	test.WithTestServer(t, func(s *api.Server) {
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				res := test.PerformRequest(t, s, "POST", "/check-address", tt.body, nil)
				require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

				var response types.CheckAddressResponse
				test.ParseResponseAndValidate(t, res, &response)
				assert.Equal(t, types.CheckAddressResponseStatusError, *response.Status)
				assert.Equal(t, allowlist.MessageInvalidAddress, response.Message)
				assert.Empty(t, response.Signature)
			})
		}
	})
}

func TestPostCheckAddressNoBody(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequestWithRawBody(t, s, "POST", "/check-address", strings.NewReader("not json"), nil, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

		res = test.PerformRequest(t, s, "POST", "/check-address", nil, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)
	})
}
