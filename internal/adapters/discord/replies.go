package discord

import (
	"regexp"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// las imágenes no se ven bien dentro del embed
var imageLinkRe = regexp.MustCompile(`https?://[^"']*\.(?:png|jpg|jpeg|gif)`)

var reMention = regexp.MustCompile(`<@!?(\d+)>`)

func awayTitle(name string) string { return name + " is currently away" }

// stripImageLink reemplaza el primer link de imagen (y sus repeticiones) por un espacio.
func stripImageLink(msg string) string {
	link := imageLinkRe.FindString(msg)
	if link == "" {
		return msg
	}
	return strings.ReplaceAll(msg, link, " ")
}

func buildEmbedReply(name, avatarURL string, color int, msg string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Description: stripImageLink(msg),
		Color:       color,
		Author: &discordgo.MessageEmbedAuthor{
			Name:    awayTitle(name),
			IconURL: avatarURL,
		},
	}
}

// replaceMentions cambia <@id> / <@!id> por @nombre. Si no se puede resolver
// el usuario, el token queda como estaba.
func replaceMentions(msg string, lookup func(id string) (string, error)) string {
	names := map[string]string{}
	return reMention.ReplaceAllStringFunc(msg, func(tok string) string {
		id := reMention.FindStringSubmatch(tok)[1]
		name, ok := names[id]
		if !ok {
			n, err := lookup(id)
			if err != nil {
				return tok
			}
			name = n
			names[id] = name
		}
		return "@" + name
	})
}

func buildTextReply(name, msg string, lookup func(id string) (string, error)) string {
	out := replaceMentions(msg, lookup)
	if strings.TrimSpace(out) == "" {
		return awayTitle(name)
	}
	return out
}

func displayName(u *discordgo.User, m *discordgo.Member) string {
	if m != nil {
		if m.Nick != "" {
			return m.Nick
		}
	}
	if u == nil {
		return ""
	}
	return u.DisplayName()
}

func avatarURL(u *discordgo.User, m *discordgo.Member) string {
	if m != nil && m.Avatar != "" && m.User != nil {
		return m.AvatarURL("")
	}
	// sin avatar, discordgo devuelve el default
	return u.AvatarURL("")
}

// topRoleColor: color del rol de mayor posición que tenga color.
func topRoleColor(roles []*discordgo.Role, memberRoles []string) int {
	has := make(map[string]struct{}, len(memberRoles))
	for _, id := range memberRoles {
		has[id] = struct{}{}
	}
	color, pos := 0, -1
	for _, ro := range roles {
		if _, ok := has[ro.ID]; !ok || ro.Color == 0 {
			continue
		}
		if ro.Position > pos {
			color, pos = ro.Color, ro.Position
		}
	}
	return color
}
