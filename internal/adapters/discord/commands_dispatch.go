package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
)

const (
	msgGuildOnly = "That command is not available in DMs."
	msgNoPerms   = "🔒 You don't have permission to do that."
)

func (r *Router) handleSlashCommand(ic *discordgo.InteractionCreate) {
	cmd := ic.ApplicationCommandData()
	log := r.log.With("cmd", cmd.Name, "guild", ic.GuildID)

	defer func() {
		if rec := recover(); rec != nil {
			log.Error("panic in slash command", "panic", rec)
			_ = SendEphemeral(r.s, ic, "⚠️ Something went wrong.")
		}
	}()

	if ic.GuildID == "" || ic.Member == nil || ic.Member.User == nil {
		_ = SendEphemeral(r.s, ic, msgGuildOnly)
		return
	}
	userID := ic.Member.User.ID
	log.Debug("slash command", "by", userID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch cmd.Name {
	case "away":
		var (
			deleteAfter *int
			message     *string
		)
		if v, ok := optInt(ic, "delete_after"); ok {
			deleteAfter = &v
		}
		if v, ok := optStr(ic, "message"); ok {
			message = &v
		}
		msg, err := r.away.Toggle(ctx, ic.GuildID, userID, deleteAfter, message)
		if err != nil {
			log.Error("away toggle", "err", err)
			_ = SendEphemeral(r.s, ic, "⚠️ Could not update your away status.")
			return
		}
		_ = SendResponse(r.s, ic, msg)

	case "awayset":
		r.handleAwaySet(ctx, ic, userID)
	}
}

func (r *Router) handleAwaySet(ctx context.Context, ic *discordgo.InteractionCreate, userID string) {
	sub, ok := subcmdName(ic)
	if !ok {
		_ = SendEphemeral(r.s, ic, "Use `/awayset show`, `/awayset textonly`, `/awayset blacklist` or `/awayset ignore`.")
		return
	}

	// ignore es global: sólo owners del bot
	if sub == "ignore" {
		if !r.isBotOwner(userID) {
			_ = SendEphemeral(r.s, ic, msgNoPerms)
			return
		}
	} else if !r.isAdmin(ic.GuildID, userID, ic.Member) {
		_ = SendEphemeral(r.s, ic, msgNoPerms)
		return
	}

	var (
		msg string
		err error
	)
	switch sub {
	case "show":
		msg, err = r.settings.Show(ctx, ic.GuildID)
	case "textonly":
		on, _ := optBool(ic, "enabled")
		msg, err = r.settings.SetTextOnly(ctx, ic.GuildID, on)
	case "blacklist":
		memberID, ok := optUserID(ic, "member")
		if !ok {
			_ = SendEphemeral(r.s, ic, "Pick a member.")
			return
		}
		msg, err = r.settings.ToggleBlacklist(ctx, ic.GuildID, memberID)
	case "ignore":
		msg, err = r.settings.ToggleIgnored(ctx, ic.GuildID)
	}
	if err != nil {
		r.log.Error("awayset", "sub", sub, "guild", ic.GuildID, "err", err)
		_ = SendEphemeral(r.s, ic, "⚠️ Could not update settings: "+err.Error())
		return
	}
	_ = SendEphemeral(r.s, ic, msg)
}

// handlePrefixAway: "<prefix>away [delete_after] [message...]"
func (r *Router) handlePrefixAway(ctx context.Context, msg *discordgo.Message, raw string) {
	reply := func(text string) {
		if _, err := r.s.ChannelMessageSendComplex(msg.ChannelID, &discordgo.MessageSend{
			Content:         text,
			AllowedMentions: noMentions(),
		}); err != nil {
			r.log.Warn("prefix reply", "channel", msg.ChannelID, "err", err)
		}
	}

	if msg.GuildID == "" {
		reply(msgGuildOnly)
		return
	}
	deleteAfter, message := parseAwayArgs(raw)
	out, err := r.away.Toggle(ctx, msg.GuildID, msg.Author.ID, deleteAfter, message)
	if err != nil {
		r.log.Error("away toggle", "guild", msg.GuildID, "user", msg.Author.ID, "err", err)
		return
	}
	reply(out)
}
