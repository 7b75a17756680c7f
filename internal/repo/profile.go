// Package repo contains the profile store implementations for the travel
// approval planner. Each backend satisfies ProfileRepo: Postgres (the
// durable default), Redis (a shared key-value store) and in-memory.
// No business logic lives here, only storage and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/travel-approval/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ProfileRepo defines the persistence operations for saved travel profiles.
// The service layer depends on this interface, not on a concrete backend.
type ProfileRepo interface {
	// List returns all profiles, most recently saved first.
	List(ctx context.Context) ([]domain.TravelProfile, error)

	// GetByID retrieves a single profile.
	// Returns domain.ErrNotFound if no profile with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.TravelProfile, error)

	// Save stores p, replacing any existing profile for the same university,
	// and returns the stored record.
	Save(ctx context.Context, p domain.TravelProfile) (domain.TravelProfile, error)

	// Delete removes a profile by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgProfileRepo is the Postgres implementation of ProfileRepo.
type pgProfileRepo struct {
	db db
}

// NewProfileRepo constructs a ProfileRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewProfileRepo(db db) ProfileRepo {
	return &pgProfileRepo{db: db}
}

// List returns all profiles ordered by last_updated descending.
func (r *pgProfileRepo) List(ctx context.Context) ([]domain.TravelProfile, error) {
	const q = `
		SELECT id, university, last_updated, data
		FROM profiles
		ORDER BY last_updated DESC, university`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.ProfileRepo.List: %w", err)
	}
	defer rows.Close()

	var profiles []domain.TravelProfile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ProfileRepo.List: scan: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ProfileRepo.List: rows: %w", err)
	}

	return profiles, nil
}

// GetByID retrieves a profile by primary key.
func (r *pgProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.TravelProfile, error) {
	const q = `
		SELECT id, university, last_updated, data
		FROM profiles
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanProfile(row)
	if err != nil {
		return domain.TravelProfile{}, fmt.Errorf("repo.ProfileRepo.GetByID: %w", err)
	}
	return result, nil
}

// Save upserts on the unique university column. On conflict the row takes
// the new ID as well, so the replaced profile's ID stops resolving.
func (r *pgProfileRepo) Save(ctx context.Context, p domain.TravelProfile) (domain.TravelProfile, error) {
	const q = `
		INSERT INTO profiles (id, university, last_updated, data)
		VALUES (@id, @university, @last_updated, @data)
		ON CONFLICT (university) DO UPDATE
		SET id           = EXCLUDED.id,
		    last_updated = EXCLUDED.last_updated,
		    data         = EXCLUDED.data
		RETURNING id, university, last_updated, data`

	args := pgx.NamedArgs{
		"id":           p.ID,
		"university":   p.University,
		"last_updated": p.LastUpdated,
		"data":         p.Data, // encoded as jsonb
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanProfile(row)
	if err != nil {
		return domain.TravelProfile{}, fmt.Errorf("repo.ProfileRepo.Save: %w", err)
	}
	return result, nil
}

// Delete removes a profile by primary key.
func (r *pgProfileRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM profiles WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ProfileRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ProfileRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanProfile to
// be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanProfile maps a single database row into a domain.TravelProfile.
// The data column is jsonb and decodes straight into TripConfiguration.
func scanProfile(s scanner) (domain.TravelProfile, error) {
	var (
		p       domain.TravelProfile
		id      pgtype.UUID
		updated pgtype.Timestamptz
	)

	err := s.Scan(&id, &p.University, &updated, &p.Data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TravelProfile{}, domain.ErrNotFound
		}
		return domain.TravelProfile{}, err
	}

	p.ID = uuid.UUID(id.Bytes)
	p.LastUpdated = updated.Time.UTC()
	return p, nil
}
