package discord

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

func SendEphemeral(s Session, ic *discordgo.InteractionCreate, msg string) error {
	err := s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:         msg,
			Flags:           discordgo.MessageFlagsEphemeral,
			AllowedMentions: noMentions(),
		},
	})
	if err != nil {
		slog.Warn("SendEphemeral error", "err", err)
	}
	return err
}

// respuesta publica (el toggle de away se ve en el canal)
func SendResponse(s Session, ic *discordgo.InteractionCreate, msg string) error {
	err := s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:         msg,
			AllowedMentions: noMentions(),
		},
	})
	if err != nil {
		slog.Warn("SendResponse error", "err", err)
	}
	return err
}

// sin pings: ni @everyone ni usuarios ni roles
func noMentions() *discordgo.MessageAllowedMentions {
	return &discordgo.MessageAllowedMentions{Parse: []discordgo.AllowedMentionType{}}
}
