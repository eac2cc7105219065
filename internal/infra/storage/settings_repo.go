package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	pq "github.com/lib/pq"

	"github.com/jose-valero/away-bot/internal/domain"
)

type SettingsRepo struct{ db *sql.DB }

func NewSettingsRepo(db *sql.DB) *SettingsRepo { return &SettingsRepo{db: db} }

// Get no crea la fila: un guild sin settings tiene los defaults.
func (r *SettingsRepo) Get(ctx context.Context, guildID string) (domain.GuildSettings, error) {
	g := domain.GuildSettings{GuildID: guildID}
	var bl []string
	err := r.db.QueryRowContext(ctx, `
SELECT text_only, blacklisted_members
  FROM guild_settings
 WHERE guild_id = $1
`, guildID).Scan(&g.TextOnly, pq.Array(&bl))
	if errors.Is(err, sql.ErrNoRows) {
		return g, nil
	}
	if err != nil {
		return g, fmt.Errorf("settings get: %w", err)
	}
	g.BlacklistedMembers = bl
	return g, nil
}

func (r *SettingsRepo) SetTextOnly(ctx context.Context, guildID string, on bool) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO guild_settings (guild_id, text_only)
VALUES ($1,$2)
ON CONFLICT (guild_id) DO UPDATE SET
  text_only  = EXCLUDED.text_only,
  updated_at = now()
`, guildID, on)
	if err != nil {
		return fmt.Errorf("settings text_only: %w", err)
	}
	return nil
}

// AddBlacklisted es idempotente.
func (r *SettingsRepo) AddBlacklisted(ctx context.Context, guildID, memberID string) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO guild_settings (guild_id, blacklisted_members)
VALUES ($1, ARRAY[$2]::TEXT[])
ON CONFLICT (guild_id) DO UPDATE SET
  blacklisted_members = CASE
    WHEN $2 = ANY(guild_settings.blacklisted_members) THEN guild_settings.blacklisted_members
    ELSE array_append(guild_settings.blacklisted_members, $2)
  END,
  updated_at = now()
`, guildID, memberID)
	if err != nil {
		return fmt.Errorf("settings blacklist add: %w", err)
	}
	return nil
}

func (r *SettingsRepo) RemoveBlacklisted(ctx context.Context, guildID, memberID string) error {
	_, err := r.db.ExecContext(ctx, `
UPDATE guild_settings
   SET blacklisted_members = array_remove(blacklisted_members, $2),
       updated_at = now()
 WHERE guild_id = $1
`, guildID, memberID)
	if err != nil {
		return fmt.Errorf("settings blacklist remove: %w", err)
	}
	return nil
}
