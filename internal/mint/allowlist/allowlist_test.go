package allowlist_test

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/nft-mint/internal/config"
	"github/chapool/nft-mint/internal/mint/allowlist"
	"github/chapool/nft-mint/internal/test"
	"github/chapool/nft-mint/internal/util"
)

const (
	addr1 = "0x70997970c51812dc3a010c7d01b50e0d17dc79c8"
	addr2 = "0x3c44cdddb6a900fa2b585dd299e03d12fa4293bc"
)

func TestServiceContains(t *testing.T) {
	svc, err := allowlist.New(t.Context(), allowlist.StaticSource{addr2, addr1, "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"})
	require.NoError(t, err)

	assert.Equal(t, 2, svc.Len())
	assert.Equal(t, []string{addr2, addr1}, svc.Addresses())

	assert.True(t, svc.Contains(addr1))
	assert.True(t, svc.Contains("0x70997970C51812DC3A010C7D01B50E0D17DC79C8"))
	assert.False(t, svc.Contains("0x90f79bf6eb2c4f870365e785982e1f101e93b906"))
	assert.False(t, svc.Contains(""))
	assert.False(t, svc.Contains("70997970c51812dc3a010c7d01b50e0d17dc79c8"))
	assert.False(t, svc.Contains("0xnothex"))
}

func TestServiceRejectsBadInput(t *testing.T) {
	_, err := allowlist.New(t.Context(), allowlist.StaticSource{})
	require.ErrorIs(t, err, allowlist.ErrEmptyAllowlist)

	_, err = allowlist.New(t.Context(), allowlist.StaticSource{addr1, "0x1234"})
	require.ErrorIs(t, err, allowlist.ErrInvalidAddress)
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"list.json":   `["` + addr1 + `", "` + addr2 + `"]`,
		"object.json": `{"addresses": ["` + addr1 + `"], "entries": [{"address": "` + addr2 + `", "label": "two"}]}`,
		"list.toml":   "addresses = [\"" + addr1 + "\"]\n\n[[entries]]\naddress = \"" + addr2 + "\"\nlabel = \"two\"\n",
		"list.txt":    "# team\n" + addr1 + "\n\n  " + addr2 + "  # second\n",
	}

	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

			svc, err := allowlist.New(t.Context(), allowlist.FileSource{Path: path})
			require.NoError(t, err)
			assert.Equal(t, []string{addr2, addr1}, svc.Addresses())
		})
	}

	_, err := allowlist.FileSource{Path: filepath.Join(dir, "missing.txt")}.Load(t.Context())
	require.Error(t, err)
}

func TestExampleAllowlistFile(t *testing.T) {
	svc, err := allowlist.New(t.Context(), allowlist.FileSource{Path: filepath.Join(util.GetProjectRootDir(), "allowlist.example.toml")})
	require.NoError(t, err)

	assert.Equal(t, 5, svc.Len())
	assert.True(t, svc.Contains(addr1))
	assert.Equal(t, null.StringFrom("hardhat #1"), svc.Entries()[2].Label)
}

func TestSourceFromConfig(t *testing.T) {
	src, err := allowlist.SourceFromConfig(config.Allowlist{Source: config.AllowlistSourceEnv, Addresses: []string{addr1}}, nil)
	require.NoError(t, err)
	assert.IsType(t, allowlist.StaticSource{}, src)

	src, err = allowlist.SourceFromConfig(config.Allowlist{Source: config.AllowlistSourceFile, File: "x.toml"}, nil)
	require.NoError(t, err)
	assert.Equal(t, allowlist.FileSource{Path: "x.toml"}, src)

	_, err = allowlist.SourceFromConfig(config.Allowlist{Source: config.AllowlistSourceDB}, nil)
	require.Error(t, err)

	_, err = allowlist.SourceFromConfig(config.Allowlist{Source: "ldap"}, nil)
	require.Error(t, err)
}

func TestDBSourceImport(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()

		n, err := allowlist.ImportEntries(ctx, db, []allowlist.Entry{
			{Address: "0x70997970C51812dc3A010C7d01b50e0d17dc79C8", Label: null.StringFrom("one")},
			{Address: addr2},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		// re-import keeps the existing label when none is given
		_, err = allowlist.ImportEntries(ctx, db, []allowlist.Entry{{Address: addr1}})
		require.NoError(t, err)

		_, err = allowlist.ImportEntries(ctx, db, []allowlist.Entry{{Address: "bogus"}})
		require.ErrorIs(t, err, allowlist.ErrInvalidAddress)

		src, err := allowlist.SourceFromConfig(config.Allowlist{Source: config.AllowlistSourceDB}, db)
		require.NoError(t, err)

		svc, err := allowlist.New(ctx, src)
		require.NoError(t, err)
		assert.Equal(t, []string{addr2, addr1}, svc.Addresses())
		assert.Equal(t, null.StringFrom("one"), svc.Entries()[1].Label)
	})
}
