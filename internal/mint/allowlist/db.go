package allowlist

import (
	"context"

	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/pkg/errors"
	"github/chapool/nft-mint/internal/models"
	"github/chapool/nft-mint/internal/util"
)

// DBSource reads allowlist_entries.
type DBSource struct {
	DB boil.ContextExecutor
}

func (s *DBSource) Load(ctx context.Context) ([]Entry, error) {
	rows, err := models.AllowlistEntries(
		qm.OrderBy(models.AllowlistEntryColumns.Address+" ASC"),
	).All(ctx, s.DB)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query allowlist entries")
	}

	out := make([]Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, Entry{
			Address: row.Address,
			Label:   row.Label,
		})
	}

	return out, nil
}

// keepLabel leaves an existing label alone when the import does not carry one.
var keepLabel = models.UpsertUpdateSet("label = COALESCE(EXCLUDED.label, allowlist_entries.label)")

// ImportEntries upserts entries into allowlist_entries and returns how many rows were written.
// Every address is validated before anything is written.
func ImportEntries(ctx context.Context, db boil.ContextExecutor, entries []Entry) (int, error) {
	rows := make([]*models.AllowlistEntry, 0, len(entries))
	for _, e := range entries {
		addr, err := Normalize(e.Address)
		if err != nil {
			return 0, err
		}
		rows = append(rows, &models.AllowlistEntry{
			Address: addr,
			Label:   e.Label,
		})
	}

	written := 0
	for _, row := range rows {
		if err := row.Upsert(ctx, db, true,
			[]string{models.AllowlistEntryColumns.Address},
			boil.Whitelist(models.AllowlistEntryColumns.Label),
			boil.Infer(),
			keepLabel,
		); err != nil {
			return written, errors.Wrapf(err, "failed to upsert allowlist entry %s", row.Address)
		}
		written++
	}

	util.LogFromContext(ctx).Info().Int("count", written).Msg("Imported allowlist entries")

	return written, nil
}
