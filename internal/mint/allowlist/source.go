package allowlist

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/pkg/errors"
	"github/chapool/nft-mint/internal/config"
)

// StaticSource serves a fixed list, typically ALLOWLIST_ADDRESSES.
type StaticSource []string

func (s StaticSource) Load(_ context.Context) ([]Entry, error) {
	entries := make([]Entry, 0, len(s))
	for _, addr := range s {
		entries = append(entries, Entry{Address: addr})
	}

	return entries, nil
}

// FileSource reads an allowlist file. The format follows the extension:
//
//	.json  ["0x..", ...] or {"addresses": ["0x..", ...]}
//	.toml  addresses = ["0x..", ...] and/or [[entries]] address = "0x.." label = ".."
//	other  one address per line, "#" starts a comment
type FileSource struct {
	Path string
}

type fileEntry struct {
	Address string `json:"address" toml:"address"`
	Label   string `json:"label" toml:"label"`
}

type fileDocument struct {
	Addresses []string    `json:"addresses" toml:"addresses"`
	Entries   []fileEntry `json:"entries" toml:"entries"`
}

func (s FileSource) Load(_ context.Context) ([]Entry, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read allowlist file %s", s.Path)
	}

	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".json":
		return parseJSON(data)
	case ".toml":
		var doc fileDocument
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode allowlist toml")
		}
		return doc.entries(), nil
	default:
		return parseLines(data)
	}
}

func parseJSON(data []byte) ([]Entry, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var addrs []string
		if err := json.Unmarshal(trimmed, &addrs); err != nil {
			return nil, errors.Wrap(err, "failed to decode allowlist json")
		}
		return StaticSource(addrs).Load(context.Background())
	}

	var doc fileDocument
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode allowlist json")
	}

	return doc.entries(), nil
}

func (d fileDocument) entries() []Entry {
	out := make([]Entry, 0, len(d.Addresses)+len(d.Entries))
	for _, addr := range d.Addresses {
		out = append(out, Entry{Address: addr})
	}
	for _, e := range d.Entries {
		out = append(out, Entry{Address: e.Address, Label: null.NewString(e.Label, e.Label != "")})
	}

	return out
}

func parseLines(data []byte) ([]Entry, error) {
	var out []Entry

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, Entry{Address: line})
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read allowlist lines")
	}

	return out, nil
}

// SourceFromConfig picks the source configured by ALLOWLIST_SOURCE.
//
//nolint:ireturn
func SourceFromConfig(cfg config.Allowlist, db boil.ContextExecutor) (Source, error) {
	switch cfg.Source {
	case config.AllowlistSourceEnv:
		return StaticSource(cfg.Addresses), nil
	case config.AllowlistSourceFile:
		return FileSource{Path: cfg.File}, nil
	case config.AllowlistSourceDB:
		if db == nil {
			return nil, errors.New("db allowlist source requires a database")
		}
		return &DBSource{DB: db}, nil
	default:
		return nil, errors.Errorf("unknown allowlist source %q", cfg.Source)
	}
}
