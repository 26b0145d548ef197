package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MHK-404/Wellsure-backend/internal/models"
)

var ErrNotFound = errors.New("assessment not found")

// 고정 폭 UTC 포맷, 문자열 정렬 = 시간 정렬
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func (s *Store) CreateAssessment(ctx context.Context, rec models.AssessmentRecord) error {
	input, err := json.Marshal(rec.Input)
	if err != nil {
		return fmt.Errorf("encode input: %w", err)
	}

	stmt, err := s.db.PrepareContext(ctx,
		"INSERT INTO assessments(id, score, risk_category, table_version, input, created_at) VALUES(?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, rec.ID, rec.Score, rec.RiskCategory, rec.TableVersion,
		string(input), rec.CreatedAt.UTC().Format(timeLayout))
	return err
}

func (s *Store) GetAssessment(ctx context.Context, id string) (models.AssessmentRecord, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, score, risk_category, table_version, input, created_at FROM assessments WHERE id = ?", id)

	rec, err := scanAssessment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return rec, ErrNotFound
	}
	return rec, err
}

// ListAssessments returns the most recent records first.
func (s *Store) ListAssessments(ctx context.Context, limit int) ([]models.AssessmentRecord, error) {
	query := `
		SELECT id, score, risk_category, table_version, input, created_at
		FROM assessments
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]models.AssessmentRecord, 0)
	for rows.Next() {
		rec, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *Store) CountByCategory(ctx context.Context) ([]models.CategoryCount, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT risk_category, COUNT(*) FROM assessments GROUP BY risk_category ORDER BY risk_category")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]models.CategoryCount, 0)
	for rows.Next() {
		var c models.CategoryCount
		if err := rows.Scan(&c.RiskCategory, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAssessment(row scanner) (models.AssessmentRecord, error) {
	var rec models.AssessmentRecord
	var input, createdStr string

	if err := row.Scan(&rec.ID, &rec.Score, &rec.RiskCategory, &rec.TableVersion, &input, &createdStr); err != nil {
		return rec, err
	}
	if err := json.Unmarshal([]byte(input), &rec.Input); err != nil {
		return rec, fmt.Errorf("decode input of %s: %w", rec.ID, err)
	}
	createdAt, err := time.Parse(timeLayout, createdStr)
	if err != nil {
		return rec, fmt.Errorf("parse created_at of %s: %w", rec.ID, err)
	}
	rec.CreatedAt = createdAt
	return rec, nil
}
