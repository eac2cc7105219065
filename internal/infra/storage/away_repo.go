package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jose-valero/away-bot/internal/domain"
)

type AwayRepo struct{ db *sql.DB }

func NewAwayRepo(db *sql.DB) *AwayRepo { return &AwayRepo{db: db} }

// Get devuelve ErrNotFound si el miembro nunca usó away en ese guild.
// Un registro limpiado vuelve con Message vacío.
func (r *AwayRepo) Get(ctx context.Context, guildID, memberID string) (domain.AwayState, error) {
	var (
		msg sql.NullString
		del sql.NullInt64
	)
	err := r.db.QueryRowContext(ctx, `
SELECT message, delete_after
  FROM away_states
 WHERE guild_id = $1 AND member_id = $2
`, guildID, memberID).Scan(&msg, &del)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.AwayState{}, ErrNotFound
	}
	if err != nil {
		return domain.AwayState{}, fmt.Errorf("away get: %w", err)
	}

	st := domain.AwayState{GuildID: guildID, MemberID: memberID, Message: msg.String}
	if del.Valid {
		v := int(del.Int64)
		st.DeleteAfter = &v
	}
	return st, nil
}

// Set guarda (mensaje, delete_after) pisando lo anterior.
func (r *AwayRepo) Set(ctx context.Context, st domain.AwayState) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO away_states (guild_id, member_id, message, delete_after)
VALUES ($1,$2,$3,$4)
ON CONFLICT (guild_id, member_id) DO UPDATE SET
  message      = EXCLUDED.message,
  delete_after = EXCLUDED.delete_after,
  updated_at   = now()
`, st.GuildID, st.MemberID, st.Message, st.DeleteAfter)
	if err != nil {
		return fmt.Errorf("away set: %w", err)
	}
	return nil
}

// Clear deja el registro en "false": sin mensaje ni delete_after.
func (r *AwayRepo) Clear(ctx context.Context, guildID, memberID string) error {
	_, err := r.db.ExecContext(ctx, `
UPDATE away_states
   SET message = NULL, delete_after = NULL, updated_at = now()
 WHERE guild_id = $1 AND member_id = $2
`, guildID, memberID)
	if err != nil {
		return fmt.Errorf("away clear: %w", err)
	}
	return nil
}
