package domain

import "strings"

// MinDeleteAfter es el mínimo (en segundos) para auto-borrar una respuesta.
const MinDeleteAfter = 5

// AwayPlaceholder se guarda cuando el usuario no pasa mensaje, así sigue "away".
const AwayPlaceholder = " "

// AwayState es el registro por (guild, miembro).
// Message vacío = no está away (equivale al "false" guardado al volver).
type AwayState struct {
	GuildID     string
	MemberID    string
	Message     string
	DeleteAfter *int
}

func (a AwayState) IsAway() bool { return a.Message != "" }

// NeedsUpgrade: registros viejos podían tener delete_after < 5.
func (a AwayState) NeedsUpgrade() bool {
	return a.IsAway() && a.DeleteAfter != nil && *a.DeleteAfter < MinDeleteAfter
}

// Blank indica que el mensaje es sólo el placeholder (o espacios).
func (a AwayState) Blank() bool { return strings.TrimSpace(a.Message) == "" }

type GuildSettings struct {
	GuildID            string
	TextOnly           bool
	BlacklistedMembers []string
}

func (g GuildSettings) IsBlacklisted(memberID string) bool {
	for _, id := range g.BlacklistedMembers {
		if id == memberID {
			return true
		}
	}
	return false
}
