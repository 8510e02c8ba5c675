package keystore

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github/chapool/nft-mint/internal/models"
	"github/chapool/nft-mint/internal/util"
)

// Service stores named secrets encrypted in signer_keystore.
type Service interface {
	// Create encrypts secret with password and stores it under name.
	Create(ctx context.Context, name string, secret string, password string, address string) (*Keystore, error)

	// Get loads the keystore stored under name.
	Get(ctx context.Context, name string) (*Keystore, error)

	// Decrypt returns the plaintext secret of ks.
	Decrypt(ctx context.Context, ks *Keystore, password string) (string, error)

	// Exists checks if a keystore is stored under name.
	Exists(ctx context.Context, name string) (bool, error)
}

type service struct {
	db     *sql.DB
	params ScryptParams
}

// NewService creates a keystore service using the default scrypt parameters.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(db *sql.DB) Service {
	return NewServiceWithParams(db, DefaultScryptParams())
}

//nolint:ireturn
func NewServiceWithParams(db *sql.DB, params ScryptParams) Service {
	return &service{
		db:     db,
		params: params,
	}
}

func (s *service) Create(ctx context.Context, name string, secret string, password string, address string) (*Keystore, error) {
	log := util.LogFromContext(ctx)

	exists, err := s.Exists(ctx, name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check keystore existence")
	}
	if exists {
		return nil, errors.Wrapf(ErrKeystoreExists, "name %q", name)
	}

	ksJSON, err := Encrypt(secret, password, address, s.params)
	if err != nil {
		log.Error().Err(err).Str("name", name).Msg("Failed to encrypt secret")
		return nil, errors.Wrap(err, "failed to encrypt secret")
	}

	data, err := json.Marshal(ksJSON)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal keystore JSON")
	}

	ks := &models.SignerKeystore{
		ID:           uuid.New().String(),
		Name:         name,
		Address:      address,
		KeystoreData: data,
		Version:      keystoreVersion,
		Cipher:       cipherName,
		KDF:          kdfName,
	}

	if err := ks.Insert(ctx, s.db, boil.Infer()); err != nil {
		log.Error().Err(err).Str("name", name).Msg("Failed to insert keystore")
		return nil, errors.Wrap(err, "failed to insert keystore")
	}

	log.Info().Str("name", name).Str("address", address).Msg("Stored encrypted keystore")

	return &Keystore{SignerKeystore: ks}, nil
}

func (s *service) Get(ctx context.Context, name string) (*Keystore, error) {
	ks, err := models.SignerKeystores(
		models.SignerKeystoreWhere.Name.EQ(name),
	).One(ctx, s.db)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrapf(ErrKeystoreNotFound, "name %q", name)
		}
		return nil, errors.Wrap(err, "failed to get keystore")
	}

	return &Keystore{SignerKeystore: ks}, nil
}

func (s *service) Decrypt(ctx context.Context, ks *Keystore, password string) (string, error) {
	var ksJSON KeystoreJSON
	if err := json.Unmarshal(ks.KeystoreData, &ksJSON); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal keystore JSON")
	}

	secret, err := Decrypt(&ksJSON, password)
	if err != nil {
		util.LogFromContext(ctx).Error().Err(err).Str("name", ks.Name).Msg("Failed to decrypt keystore")
		return "", errors.Wrap(err, "failed to decrypt keystore")
	}

	return secret, nil
}

func (s *service) Exists(ctx context.Context, name string) (bool, error) {
	exists, err := models.SignerKeystores(
		models.SignerKeystoreWhere.Name.EQ(name),
	).Exists(ctx, s.db)
	if err != nil {
		return false, errors.Wrap(err, "failed to check keystore")
	}

	return exists, nil
}
