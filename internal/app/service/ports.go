package service

import (
	"context"

	"github.com/jose-valero/away-bot/internal/domain"
)

// Lo implementa internal/infra/storage.AwayRepo
type AwayRepo interface {
	Get(ctx context.Context, guildID, memberID string) (domain.AwayState, error)
	Set(ctx context.Context, st domain.AwayState) error
	Clear(ctx context.Context, guildID, memberID string) error
}

// Lo implementa internal/infra/storage.SettingsRepo
type SettingsRepo interface {
	Get(ctx context.Context, guildID string) (domain.GuildSettings, error)
	SetTextOnly(ctx context.Context, guildID string, on bool) error
	AddBlacklisted(ctx context.Context, guildID, memberID string) error
	RemoveBlacklisted(ctx context.Context, guildID, memberID string) error
}

// Lo implementa internal/infra/storage.GlobalRepo
type GlobalRepo interface {
	IgnoredGuilds(ctx context.Context) ([]string, error)
	IsIgnored(ctx context.Context, guildID string) (bool, error)
	AddIgnored(ctx context.Context, guildID string) error
	RemoveIgnored(ctx context.Context, guildID string) (bool, error)
}
