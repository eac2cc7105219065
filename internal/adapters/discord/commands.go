package discord

import "github.com/bwmarrin/discordgo"

func boolp(v bool) *bool { return &v }

var Commands = []*discordgo.ApplicationCommand{
	{
		Name:         "away",
		Description:  "Tell the bot you're away or back",
		DMPermission: boolp(false),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "delete_after",
				Description: "Seconds before the automatic reply is deleted (minimum 5)",
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "message",
				Description: "Custom message to show when you're mentioned",
			},
		},
	},
	{
		Name:         "awayset",
		Description:  "Away settings for this server (admins)",
		DMPermission: boolp(false),
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "show", Description: "Show current settings"},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "textonly",
				Description: "Force plain text replies",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionBoolean, Name: "enabled", Description: "Plain text only", Required: true},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "blacklist",
				Description: "Add or remove a member from the away blacklist",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionUser, Name: "member", Description: "Member", Required: true},
				},
			},
			{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "ignore", Description: "Only reply for mods/admins in this server (bot owner)"},
		},
	},
}
