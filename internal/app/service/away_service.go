package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/jose-valero/away-bot/internal/domain"
	"github.com/jose-valero/away-bot/internal/infra/storage"
)

const (
	MsgBack         = "You're now back."
	MsgAway         = "You're now set as away."
	MsgDeleteTooLow = "Please set a time longer than 5 seconds for the `delete_after` argument"
)

type AwayService struct {
	away AwayRepo
	log  *slog.Logger
}

func NewAwayService(r AwayRepo, log *slog.Logger) *AwayService {
	if log == nil {
		log = slog.Default()
	}
	return &AwayService{away: r, log: log.With("component", "away")}
}

// Toggle alterna away/back según el estado actual, no según los argumentos.
func (s *AwayService) Toggle(ctx context.Context, guildID, memberID string, deleteAfter *int, message *string) (string, error) {
	if deleteAfter != nil && *deleteAfter < domain.MinDeleteAfter {
		return MsgDeleteTooLow, nil
	}

	cur, err := s.away.Get(ctx, guildID, memberID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return "", err
	}
	if cur.IsAway() {
		if err := s.away.Clear(ctx, guildID, memberID); err != nil {
			return "", err
		}
		s.log.Debug("member back", "guild", guildID, "member", memberID)
		return MsgBack, nil
	}

	st := domain.AwayState{
		GuildID:     guildID,
		MemberID:    memberID,
		Message:     domain.AwayPlaceholder,
		DeleteAfter: deleteAfter,
	}
	if message != nil && strings.TrimSpace(*message) != "" {
		st.Message = *message
	}
	if err := s.away.Set(ctx, st); err != nil {
		return "", err
	}
	s.log.Debug("member away", "guild", guildID, "member", memberID, "delete_after", deleteAfter)
	return MsgAway, nil
}

// Active devuelve el registro si el miembro está away. Corrige en el momento
// los delete_after < 5 que quedaron de versiones viejas.
func (s *AwayService) Active(ctx context.Context, guildID, memberID string) (domain.AwayState, bool, error) {
	st, err := s.away.Get(ctx, guildID, memberID)
	if errors.Is(err, storage.ErrNotFound) {
		return domain.AwayState{}, false, nil
	}
	if err != nil {
		return domain.AwayState{}, false, err
	}
	if !st.IsAway() {
		return st, false, nil
	}

	if st.NeedsUpgrade() {
		v := domain.MinDeleteAfter
		st.DeleteAfter = &v
		if err := s.away.Set(ctx, st); err != nil {
			return domain.AwayState{}, false, err
		}
		s.log.Info("upgraded legacy delete_after", "guild", guildID, "member", memberID)
	}
	return st, true, nil
}
