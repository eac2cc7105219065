package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jose-valero/away-bot/internal/domain"
)

type SettingsService struct {
	guilds SettingsRepo
	global GlobalRepo
}

func NewSettingsService(g SettingsRepo, gl GlobalRepo) *SettingsService {
	return &SettingsService{guilds: g, global: gl}
}

func (s *SettingsService) Guild(ctx context.Context, guildID string) (domain.GuildSettings, error) {
	return s.guilds.Get(ctx, guildID)
}

func (s *SettingsService) IgnoredGuilds(ctx context.Context) (map[string]struct{}, error) {
	ids, err := s.global.IgnoredGuilds(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out, nil
}

func (s *SettingsService) Show(ctx context.Context, guildID string) (string, error) {
	g, err := s.guilds.Get(ctx, guildID)
	if err != nil {
		return "", err
	}
	ignored, err := s.global.IsIgnored(ctx, guildID)
	if err != nil {
		return "", err
	}

	bl := "none"
	if len(g.BlacklistedMembers) > 0 {
		m := make([]string, 0, len(g.BlacklistedMembers))
		for _, id := range g.BlacklistedMembers {
			m = append(m, "<@"+id+">")
		}
		bl = strings.Join(m, ", ")
	}
	return fmt.Sprintf(
		"**Away settings**\n• text_only: **%v**\n• ignored: **%v**\n• blacklisted: %s",
		g.TextOnly, ignored, bl,
	), nil
}

func (s *SettingsService) SetTextOnly(ctx context.Context, guildID string, on bool) (string, error) {
	if err := s.guilds.SetTextOnly(ctx, guildID, on); err != nil {
		return "", err
	}
	if on {
		return "Away replies will now be plain text.", nil
	}
	return "Away replies will now use embeds when possible.", nil
}

// ToggleBlacklist agrega o saca al miembro según esté o no.
func (s *SettingsService) ToggleBlacklist(ctx context.Context, guildID, memberID string) (string, error) {
	g, err := s.guilds.Get(ctx, guildID)
	if err != nil {
		return "", err
	}
	if g.IsBlacklisted(memberID) {
		if err := s.guilds.RemoveBlacklisted(ctx, guildID, memberID); err != nil {
			return "", err
		}
		return fmt.Sprintf("<@%s> removed from the away blacklist.", memberID), nil
	}
	if err := s.guilds.AddBlacklisted(ctx, guildID, memberID); err != nil {
		return "", err
	}
	return fmt.Sprintf("<@%s> added to the away blacklist.", memberID), nil
}

func (s *SettingsService) ToggleIgnored(ctx context.Context, guildID string) (string, error) {
	removed, err := s.global.RemoveIgnored(ctx, guildID)
	if err != nil {
		return "", err
	}
	if removed {
		return "Away replies enabled for everyone in this server.", nil
	}
	if err := s.global.AddIgnored(ctx, guildID); err != nil {
		return "", err
	}
	return "Away replies limited to moderators and admins in this server.", nil
}
