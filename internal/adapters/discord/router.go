package discord

import (
	"context"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/away-bot/internal/app/service"
)

type Router struct {
	s       Session
	state   *discordgo.State
	guildID string
	prefix  string
	roles   RoleCfg

	away     *service.AwayService
	settings *service.SettingsService

	log *slog.Logger
	// programa el borrado de respuestas con delete_after
	after func(d time.Duration, f func())
}

func NewRouter(
	s Session,
	state *discordgo.State,
	guildID string,
	prefix string,
	roles RoleCfg,
	away *service.AwayService,
	settings *service.SettingsService,
	log *slog.Logger,
) *Router {
	if log == nil {
		log = slog.Default()
	}
	return &Router{
		s:        s,
		state:    state,
		guildID:  guildID,
		prefix:   prefix,
		roles:    roles,
		away:     away,
		settings: settings,
		log:      log.With("component", "router"),
		after:    func(d time.Duration, f func()) { time.AfterFunc(d, f) },
	}
}

// Register crea los slash commands (guildID vacío = globales).
func (r *Router) Register() error {
	appID := r.state.User.ID
	for _, cmd := range Commands {
		if _, err := r.s.ApplicationCommandCreate(appID, r.guildID, cmd); err != nil {
			return err
		}
	}
	return nil
}

func (r *Router) Handlers() {
	r.s.AddHandler(func(_ *discordgo.Session, ic *discordgo.InteractionCreate) {
		if ic.Type != discordgo.InteractionApplicationCommand {
			return
		}
		r.handleSlashCommand(ic)
	})

	r.s.AddHandler(func(_ *discordgo.Session, m *discordgo.MessageCreate) {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		r.handleMessage(ctx, m.Message)
	})
}

func (r *Router) botID() string {
	if r.state == nil || r.state.User == nil {
		return ""
	}
	return r.state.User.ID
}

// member: primero el state, después REST. nil si no está en el guild.
func (r *Router) member(guildID, userID string) *discordgo.Member {
	if m, err := r.state.Member(guildID, userID); err == nil && m != nil {
		return m
	}
	m, err := r.s.GuildMember(guildID, userID)
	if err != nil {
		r.log.Debug("guild member", "guild", guildID, "user", userID, "err", err)
		return nil
	}
	return m
}
