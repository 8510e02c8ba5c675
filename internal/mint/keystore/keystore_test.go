package keystore_test

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/nft-mint/internal/mint/keystore"
	"github/chapool/nft-mint/internal/models"
	"github/chapool/nft-mint/internal/test"
)

const testSecret = "test test test test test test test test test test test junk"

func TestEncryptDecrypt(t *testing.T) {
	ks, err := keystore.Encrypt(testSecret, "hunter2", "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266", keystore.LightScryptParams())
	require.NoError(t, err)

	assert.Equal(t, 3, ks.Version)
	assert.Equal(t, "aes-128-ctr", ks.Crypto.Cipher)
	assert.Equal(t, "scrypt", ks.Crypto.KDF)
	assert.NotContains(t, ks.Crypto.Ciphertext, "test")

	secret, err := keystore.Decrypt(ks, "hunter2")
	require.NoError(t, err)
	assert.Equal(t, testSecret, secret)

	_, err = keystore.Decrypt(ks, "wrong")
	require.ErrorIs(t, err, keystore.ErrInvalidPassword)
}

func TestDecryptUnsupportedCipher(t *testing.T) {
	ks, err := keystore.Encrypt(testSecret, "pw", "", keystore.LightScryptParams())
	require.NoError(t, err)

	ks.Crypto.Cipher = "aes-256-gcm"
	_, err = keystore.Decrypt(ks, "pw")
	require.Error(t, err)
}

func TestServiceCreateGet(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		svc := keystore.NewServiceWithParams(db, keystore.LightScryptParams())

		exists, err := svc.Exists(ctx, "signer")
		require.NoError(t, err)
		assert.False(t, exists)

		_, err = svc.Get(ctx, "signer")
		require.ErrorIs(t, err, keystore.ErrKeystoreNotFound)

		created, err := svc.Create(ctx, "signer", testSecret, "pw", "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266")
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.False(t, created.CreatedAt.IsZero())

		row, err := models.FindSignerKeystore(ctx, db, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "signer", row.Name)
		assert.Equal(t, 3, row.Version)
		assert.Equal(t, "aes-128-ctr", row.Cipher)
		assert.Equal(t, "scrypt", row.KDF)
		assert.NotContains(t, string(row.KeystoreData), "test test")

		_, err = svc.Create(ctx, "signer", testSecret, "pw", "")
		require.ErrorIs(t, err, keystore.ErrKeystoreExists)

		loaded, err := svc.Get(ctx, "signer")
		require.NoError(t, err)
		assert.Equal(t, created.ID, loaded.ID)
		assert.Equal(t, "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266", loaded.Address)

		secret, err := svc.Decrypt(ctx, loaded, "pw")
		require.NoError(t, err)
		assert.Equal(t, testSecret, secret)

		_, err = svc.Decrypt(ctx, loaded, "nope")
		require.ErrorIs(t, err, keystore.ErrInvalidPassword)
	})
}
