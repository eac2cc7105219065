package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// GlobalRepo guarda la config a nivel proceso (guilds ignorados).
type GlobalRepo struct{ db *sql.DB }

func NewGlobalRepo(db *sql.DB) *GlobalRepo { return &GlobalRepo{db: db} }

func (r *GlobalRepo) IgnoredGuilds(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT guild_id FROM ignored_guilds ORDER BY added_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("ignored guilds: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (r *GlobalRepo) IsIgnored(ctx context.Context, guildID string) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, `
SELECT EXISTS (SELECT 1 FROM ignored_guilds WHERE guild_id = $1)
`, guildID).Scan(&ok)
	return ok, err
}

func (r *GlobalRepo) AddIgnored(ctx context.Context, guildID string) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO ignored_guilds (guild_id) VALUES ($1) ON CONFLICT DO NOTHING
`, guildID)
	return err
}

func (r *GlobalRepo) RemoveIgnored(ctx context.Context, guildID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM ignored_guilds WHERE guild_id = $1`, guildID)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
