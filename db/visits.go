// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/danielhkuo/daily-fortune/identity"
	"github.com/danielhkuo/daily-fortune/models"
)

var (
	ErrNotFound  = errors.New("visit not found")
	ErrDuplicate = errors.New("visit already exists for this device and date")
)

// VisitStore persists visit records
type VisitStore struct {
	db *sql.DB
}

func NewVisitStore(db *sql.DB) *VisitStore {
	return &VisitStore{db: db}
}

const visitColumns = `id, device_id, visit_date, fortune, device_info, ip_address, created_at, updated_at`

// FindVisit returns the visit on date that matches c.
// Device-id matches win over network matches; among equals the oldest wins.
func (s *VisitStore) FindVisit(ctx context.Context, date string, c identity.Criteria) (models.VisitRecord, error) {
	query := `SELECT ` + visitColumns + ` FROM visit WHERE visit_date = $1 AND device_id = $2`
	args := []any{date, c.DeviceID}
	if c.Network {
		query = `SELECT ` + visitColumns + ` FROM visit
			WHERE visit_date = $1
			  AND (device_id = $2 OR (ip_address = $3 AND device_info = $4))
			ORDER BY CASE WHEN device_id = $2 THEN 0 ELSE 1 END, created_at ASC
			LIMIT 1`
		args = append(args, c.IPAddress, c.DeviceInfo)
	}

	rec, err := scanVisit(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.VisitRecord{}, ErrNotFound
	}
	if err != nil {
		return models.VisitRecord{}, fmt.Errorf("failed to query visit: %w", err)
	}
	return rec, nil
}

// InsertVisit stores a new record. ErrDuplicate means another request
// already stored a visit for the same device and date.
func (s *VisitStore) InsertVisit(ctx context.Context, rec models.VisitRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visit (`+visitColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, rec.ID, rec.DeviceID, rec.Date, rec.Fortune,
		nullString(rec.DeviceInfo), nullString(rec.IPAddress),
		rec.CreatedAt.UTC(), rec.UpdatedAt.UTC())

	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to insert visit: %w", err)
	}
	return nil
}

// ListVisits returns every stored visit, newest first
func (s *VisitStore) ListVisits(ctx context.Context) ([]models.VisitRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+visitColumns+` FROM visit
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query visits: %w", err)
	}
	defer rows.Close()

	visits := []models.VisitRecord{}
	for rows.Next() {
		rec, err := scanVisit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan visit: %w", err)
		}
		visits = append(visits, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read visits: %w", err)
	}
	return visits, nil
}

// DeleteExpired removes visits created before cutoff, except those dated
// today: a record lives at least until its civil day ends.
func (s *VisitStore) DeleteExpired(ctx context.Context, cutoff time.Time, today string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM visit WHERE created_at < $1 AND visit_date <> $2`,
		cutoff.UTC(), today,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired visits: %w", err)
	}
	return res.RowsAffected()
}

// DeleteOtherDates removes every visit whose date is not date
func (s *VisitStore) DeleteOtherDates(ctx context.Context, date string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM visit WHERE visit_date <> $1`, date)
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale visits: %w", err)
	}
	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVisit(row rowScanner) (models.VisitRecord, error) {
	var rec models.VisitRecord
	var deviceInfo, ipAddress sql.NullString
	err := row.Scan(
		&rec.ID,
		&rec.DeviceID,
		&rec.Date,
		&rec.Fortune,
		&deviceInfo,
		&ipAddress,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return models.VisitRecord{}, err
	}
	rec.DeviceInfo = deviceInfo.String
	rec.IPAddress = ipAddress.String
	rec.CreatedAt = rec.CreatedAt.UTC()
	rec.UpdatedAt = rec.UpdatedAt.UTC()
	return rec, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// isUniqueViolation recognises duplicate-key errors from both drivers
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
		return liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT &&
			strings.Contains(liteErr.Error(), "UNIQUE")
	}
	return false
}
