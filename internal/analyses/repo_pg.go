package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Put inserts the analysis.
func (r *PGRepo) Put(ctx context.Context, analysis Analysis) error {
	const query = `
INSERT INTO analyses (
	id, idea, claim, timeframe, plain_english, truths, effort_score, is_easy,
	why_feels_easy, why_not, realistic_time, verdict, what_works, provider, model, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	truths, err := json.Marshal(analysis.Truths)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		analysis.ID,
		analysis.Input.Idea,
		analysis.Input.Claim,
		analysis.Input.Timeframe,
		analysis.PlainEnglish,
		truths,
		analysis.EffortScore,
		analysis.IsEasy,
		analysis.WhyFeelsEasy,
		analysis.WhyNot,
		analysis.RealisticTime,
		analysis.Verdict,
		analysis.WhatWorks,
		analysis.Provider,
		analysis.Model,
		analysis.CreatedAt,
	)
	return err
}

// GetByID returns an analysis by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Analysis, error) {
	const query = `
SELECT id, idea, claim, timeframe, plain_english, truths, effort_score, is_easy,
       why_feels_easy, why_not, realistic_time, verdict, what_works, provider, model, created_at
FROM analyses
WHERE id = $1
LIMIT 1`
	var a Analysis
	var truths []byte
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&a.ID,
		&a.Input.Idea,
		&a.Input.Claim,
		&a.Input.Timeframe,
		&a.PlainEnglish,
		&truths,
		&a.EffortScore,
		&a.IsEasy,
		&a.WhyFeelsEasy,
		&a.WhyNot,
		&a.RealisticTime,
		&a.Verdict,
		&a.WhatWorks,
		&a.Provider,
		&a.Model,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Analysis{}, ErrNotFound
		}
		return Analysis{}, err
	}
	if len(truths) > 0 {
		if err := json.Unmarshal(truths, &a.Truths); err != nil {
			return Analysis{}, err
		}
	}
	return a, nil
}

var _ Repo = (*PGRepo)(nil)
