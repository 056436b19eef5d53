package results

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mind-engage/mindengage-marks/internal/metrics"
)

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Insert(ctx context.Context, rec Record) (Row, error) {
	defer metrics.ObserveStoreOp("insert", time.Now())

	row := s.db.QueryRowContext(ctx, `INSERT INTO results (name,s1,s2,s3,s4,s5,total,percentage)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id`,
		rec.Name, rec.Marks[0], rec.Marks[1], rec.Marks[2], rec.Marks[3], rec.Marks[4],
		rec.Total, rec.Percentage)

	out := Row{Record: rec}
	if err := row.Scan(&out.ID); err != nil {
		return Row{}, fmt.Errorf("%w: insert result: %v", ErrStorage, err)
	}
	return out, nil
}

func (s *SQLStore) Recent(ctx context.Context, limit int) ([]Summary, error) {
	defer metrics.ObserveStoreOp("recent", time.Now())

	if limit <= 0 {
		return []Summary{}, nil
	}
	rows, err := s.db.QueryContext(ctx, `SELECT id,name,total,percentage FROM results
		ORDER BY id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: query recent: %v", ErrStorage, err)
	}
	defer rows.Close()

	out := make([]Summary, 0, limit)
	for rows.Next() {
		var r Summary
		if err := rows.Scan(&r.ID, &r.Name, &r.Total, &r.Percentage); err != nil {
			return nil, fmt.Errorf("%w: scan recent: %v", ErrStorage, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate recent: %v", ErrStorage, err)
	}
	return out, nil
}

// Rows returns full rows, newest first. Used by exports.
func (s *SQLStore) Rows(ctx context.Context, limit int) ([]Row, error) {
	defer metrics.ObserveStoreOp("rows", time.Now())

	if limit <= 0 {
		return []Row{}, nil
	}
	rows, err := s.db.QueryContext(ctx, `SELECT id,name,s1,s2,s3,s4,s5,total,percentage FROM results
		ORDER BY id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: query rows: %v", ErrStorage, err)
	}
	defer rows.Close()

	out := make([]Row, 0, limit)
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.ID, &r.Name, &r.Marks[0], &r.Marks[1], &r.Marks[2], &r.Marks[3], &r.Marks[4],
			&r.Total, &r.Percentage); err != nil {
			return nil, fmt.Errorf("%w: scan rows: %v", ErrStorage, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate rows: %v", ErrStorage, err)
	}
	return out, nil
}
