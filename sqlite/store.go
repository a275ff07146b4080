package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/globality-corp/deboiler"
)

// Compile-time interface verification.
var _ deboiler.SignatureStore = (*SignatureStore)(nil)

// SignatureStore persists a domain's learned boilerplate signature set so
// Fit only needs to run once per domain; later processes can Load the set
// and Transform directly against it.
type SignatureStore struct {
	db *DB
}

// NewSignatureStore creates a new SignatureStore.
func NewSignatureStore(db *DB) *SignatureStore {
	return &SignatureStore{db: db}
}

// Load retrieves the boilerplate signature set previously saved for domain.
// Returns deboiler.ENOTFOUND if nothing has been saved for it yet.
func (s *SignatureStore) Load(ctx context.Context, domain string) (map[deboiler.Signature]struct{}, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM domains WHERE domain = ?", domain).Scan(&exists)
	if err == sql.ErrNoRows {
		return nil, deboiler.Errorf(deboiler.ENOTFOUND, "no boilerplate saved for domain %q", domain)
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, "SELECT signature FROM boilerplate_signatures WHERE domain = ?", domain)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sigs := make(map[deboiler.Signature]struct{})
	for rows.Next() {
		var sig string
		if err := rows.Scan(&sig); err != nil {
			return nil, err
		}
		sigs[deboiler.Signature(sig)] = struct{}{}
	}

	return sigs, rows.Err()
}

// Save replaces any previously saved signature set for domain with sigs.
// The write is transactional: either the whole set lands or none of it does.
func (s *SignatureStore) Save(ctx context.Context, domain string, sigs map[deboiler.Signature]struct{}) error {
	tx, err := s.db.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	now := time.Now().UTC().Format(time.RFC3339)

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO domains (domain, min_occurrence, learned_at)
		VALUES (?, ?, ?)
		ON CONFLICT(domain) DO UPDATE SET learned_at = excluded.learned_at
	`, domain, 0, now); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM boilerplate_signatures WHERE domain = ?", domain); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO boilerplate_signatures (domain, signature) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for sig := range sigs {
		if _, err := stmt.ExecContext(ctx, domain, string(sig)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// DeleteDomain removes a domain's saved boilerplate entirely.
func (s *SignatureStore) DeleteDomain(ctx context.Context, domain string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM domains WHERE domain = ?", domain)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return deboiler.Errorf(deboiler.ENOTFOUND, "no boilerplate saved for domain %q", domain)
	}

	return nil
}
