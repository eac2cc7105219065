package discord

import (
	"slices"

	"github.com/bwmarrin/discordgo"
)

const (
	adminPerms = discordgo.PermissionAdministrator | discordgo.PermissionManageGuild
	modPerms   = discordgo.PermissionManageMessages | discordgo.PermissionKickMembers
)

// RoleCfg: quién cuenta como owner/admin/mod además de los permisos de Discord.
type RoleCfg struct {
	OwnerIDs     []string
	AdminRoleIDs []string
	ModRoleIDs   []string
}

func (r *Router) isBotOwner(userID string) bool {
	return slices.Contains(r.roles.OwnerIDs, userID)
}

func (r *Router) guildOwnerID(guildID string) string {
	if g, err := r.state.Guild(guildID); err == nil && g != nil && g.OwnerID != "" {
		return g.OwnerID
	}
	g, err := r.s.Guild(guildID)
	if err != nil || g == nil {
		return ""
	}
	return g.OwnerID
}

func (r *Router) guildRoles(guildID string) []*discordgo.Role {
	if g, err := r.state.Guild(guildID); err == nil && g != nil && len(g.Roles) > 0 {
		return g.Roles
	}
	roles, err := r.s.GuildRoles(guildID)
	if err != nil {
		r.log.Debug("guild roles", "guild", guildID, "err", err)
		return nil
	}
	return roles
}

// memberPerms suma @everyone + los roles del miembro.
func memberPerms(guildID string, roles []*discordgo.Role, m *discordgo.Member) int64 {
	var perms int64
	for _, ro := range roles {
		if ro.ID == guildID || slices.Contains(m.Roles, ro.ID) {
			perms |= ro.Permissions
		}
	}
	return perms
}

func hasAnyRole(m *discordgo.Member, want []string) bool {
	for _, rid := range m.Roles {
		if slices.Contains(want, rid) {
			return true
		}
	}
	return false
}

func (r *Router) isAdmin(guildID, userID string, m *discordgo.Member) bool {
	if r.isBotOwner(userID) || r.guildOwnerID(guildID) == userID {
		return true
	}
	if m == nil {
		return false
	}
	// en interacciones Discord ya manda los permisos calculados
	perms := m.Permissions | memberPerms(guildID, r.guildRoles(guildID), m)
	return perms&adminPerms != 0 || hasAnyRole(m, r.roles.AdminRoleIDs)
}

// isModOrAdmin: owner del guild, owner del bot, admin o mod.
func (r *Router) isModOrAdmin(guildID, userID string, m *discordgo.Member) bool {
	if r.isAdmin(guildID, userID, m) {
		return true
	}
	if m == nil {
		return false
	}
	perms := m.Permissions | memberPerms(guildID, r.guildRoles(guildID), m)
	return perms&modPerms != 0 || hasAnyRole(m, r.roles.ModRoleIDs)
}
