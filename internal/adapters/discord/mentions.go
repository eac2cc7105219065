package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/away-bot/internal/domain"
)

func (r *Router) handleMessage(ctx context.Context, msg *discordgo.Message) {
	if msg == nil || msg.Author == nil || msg.Author.Bot {
		return
	}
	if raw, ok := parsePrefixCommand(msg.Content, r.prefix, "away"); ok {
		r.handlePrefixAway(ctx, msg, raw)
	}
	r.handleMentions(ctx, msg)
}

// handleMentions responde por cada mencionado que esté away.
func (r *Router) handleMentions(ctx context.Context, msg *discordgo.Message) {
	if msg.GuildID == "" || len(msg.Mentions) == 0 || msg.Author == nil || msg.Author.Bot {
		return
	}
	defer step(r.log, "mentions")()

	perms, err := r.s.UserChannelPermissions(r.botID(), msg.ChannelID)
	if err != nil {
		r.log.Debug("bot channel perms", "channel", msg.ChannelID, "err", err)
		return
	}
	if perms&discordgo.PermissionSendMessages == 0 {
		return
	}

	ignored, err := r.settings.IgnoredGuilds(ctx)
	if err != nil {
		r.log.Error("ignored guilds", "err", err)
		return
	}
	gs, err := r.settings.Guild(ctx, msg.GuildID)
	if err != nil {
		r.log.Error("guild settings", "guild", msg.GuildID, "err", err)
		return
	}
	_, guildIgnored := ignored[msg.GuildID]
	rich := perms&discordgo.PermissionEmbedLinks != 0 && !gs.TextOnly

	for _, u := range msg.Mentions {
		if u == nil {
			continue
		}
		var m *discordgo.Member
		if guildIgnored {
			m = r.member(msg.GuildID, u.ID)
			if !r.isModOrAdmin(msg.GuildID, u.ID, m) {
				continue
			}
		}
		if gs.IsBlacklisted(u.ID) {
			continue
		}

		st, away, err := r.away.Active(ctx, msg.GuildID, u.ID)
		if err != nil {
			r.log.Error("away lookup", "guild", msg.GuildID, "user", u.ID, "err", err)
			continue
		}
		if !away {
			continue
		}
		if m == nil {
			m = r.member(msg.GuildID, u.ID)
		}
		r.sendAwayReply(msg, u, m, st, rich)
	}
}

func (r *Router) sendAwayReply(msg *discordgo.Message, u *discordgo.User, m *discordgo.Member, st domain.AwayState, rich bool) {
	name := displayName(u, m)
	send := &discordgo.MessageSend{AllowedMentions: noMentions()}
	if rich {
		color := 0
		if m != nil {
			color = topRoleColor(r.guildRoles(msg.GuildID), m.Roles)
		}
		send.Embeds = []*discordgo.MessageEmbed{buildEmbedReply(name, avatarURL(u, m), color, st.Message)}
	} else {
		send.Content = buildTextReply(name, st.Message, r.lookupName)
	}

	sent, err := r.s.ChannelMessageSendComplex(msg.ChannelID, send)
	if err != nil {
		r.log.Warn("away reply", "channel", msg.ChannelID, "user", u.ID, "err", err)
		return
	}
	r.log.Debug("away reply sent", "channel", msg.ChannelID, "user", u.ID, "rich", rich)

	if st.DeleteAfter != nil && sent != nil {
		channelID, messageID := msg.ChannelID, sent.ID
		r.after(time.Duration(*st.DeleteAfter)*time.Second, func() {
			if err := r.s.ChannelMessageDelete(channelID, messageID); err != nil {
				r.log.Debug("delete away reply", "channel", channelID, "message", messageID, "err", err)
			}
		})
	}
}

func (r *Router) lookupName(userID string) (string, error) {
	u, err := r.s.User(userID)
	if err != nil {
		return "", err
	}
	return u.DisplayName(), nil
}
