package copilot

import (
	"context"
	"database/sql"
	"errors"
)

type repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) ProfileRepo {
	return &repo{db: db}
}

func (r *repo) Get(ctx context.Context, creatorID string) (*Profile, error) {
	var p Profile
	var displayName sql.NullString
	var aiProfile []byte

	err := r.db.QueryRowContext(ctx, `
		SELECT creator_id, niche, platform, experience, goal, display_name, ai_profile,
		       extract(epoch from updated_at)::bigint
		FROM creator_profiles
		WHERE creator_id = $1
	`, creatorID).Scan(
		&p.CreatorID,
		&p.Niche,
		&p.Platform,
		&p.Experience,
		&p.Goal,
		&displayName,
		&aiProfile,
		&p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	p.DisplayName = displayName.String
	p.AIProfile = aiProfile
	return &p, nil
}

func (r *repo) Set(ctx context.Context, p *Profile) error {
	var aiProfile any
	if len(p.AIProfile) > 0 {
		aiProfile = []byte(p.AIProfile)
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO creator_profiles (creator_id, niche, platform, experience, goal, display_name, ai_profile, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		ON CONFLICT (creator_id) DO UPDATE SET
			niche = EXCLUDED.niche,
			platform = EXCLUDED.platform,
			experience = EXCLUDED.experience,
			goal = EXCLUDED.goal,
			display_name = EXCLUDED.display_name,
			ai_profile = EXCLUDED.ai_profile,
			updated_at = now()
	`,
		p.CreatorID,
		p.Niche,
		p.Platform,
		p.Experience,
		p.Goal,
		p.DisplayName,
		aiProfile,
	)
	return err
}

func (r *repo) Clear(ctx context.Context, creatorID string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM creator_profiles WHERE creator_id = $1
	`, creatorID)
	return err
}
