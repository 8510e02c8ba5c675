package allowlist

import (
	"context"
	"sort"

	"github.com/pkg/errors"
)

// Service answers membership questions against an immutable set of addresses.
// It is safe for concurrent use.
type Service struct {
	entries map[string]Entry
	sorted  []string
}

// New loads source once. Malformed addresses and an empty result are errors,
// duplicates collapse to a single entry.
func New(ctx context.Context, source Source) (*Service, error) {
	entries, err := source.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load allowlist")
	}

	return FromEntries(entries)
}

func FromEntries(entries []Entry) (*Service, error) {
	s := &Service{
		entries: make(map[string]Entry, len(entries)),
	}

	for _, e := range entries {
		addr, err := Normalize(e.Address)
		if err != nil {
			return nil, err
		}

		if _, ok := s.entries[addr]; ok {
			continue
		}

		e.Address = addr
		s.entries[addr] = e
		s.sorted = append(s.sorted, addr)
	}

	if len(s.entries) == 0 {
		return nil, ErrEmptyAllowlist
	}

	sort.Strings(s.sorted)

	return s, nil
}

// Contains reports membership, ignoring the case of address. Malformed input is never a member.
func (s *Service) Contains(address string) bool {
	addr, err := Normalize(address)
	if err != nil {
		return false
	}

	_, ok := s.entries[addr]

	return ok
}

// Addresses returns all members, lowercase and sorted.
func (s *Service) Addresses() []string {
	out := make([]string, len(s.sorted))
	copy(out, s.sorted)

	return out
}

func (s *Service) Entries() []Entry {
	out := make([]Entry, 0, len(s.sorted))
	for _, addr := range s.sorted {
		out = append(out, s.entries[addr])
	}

	return out
}

func (s *Service) Len() int {
	return len(s.sorted)
}
