package discord

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/away-bot/internal/app/service"
	"github.com/jose-valero/away-bot/internal/domain"
	"github.com/jose-valero/away-bot/internal/infra/storage"
)

type sentMessage struct {
	channelID string
	data      *discordgo.MessageSend
}

type fakeSession struct {
	perms     int64
	guild     *discordgo.Guild
	roles     []*discordgo.Role
	users     map[string]*discordgo.User
	members   map[string]*discordgo.Member
	sent      []sentMessage
	deleted   []string
	responses []*discordgo.InteractionResponse
	created   []*discordgo.ApplicationCommand
	handlers  []any
	permCalls int
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		perms:   discordgo.PermissionSendMessages | discordgo.PermissionEmbedLinks,
		guild:   &discordgo.Guild{ID: "g", OwnerID: "owner"},
		users:   map[string]*discordgo.User{},
		members: map[string]*discordgo.Member{},
	}
}

func (f *fakeSession) AddHandler(h any) func() {
	f.handlers = append(f.handlers, h)
	return func() {}
}

func (f *fakeSession) ApplicationCommandCreate(_, _ string, cmd *discordgo.ApplicationCommand, _ ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error) {
	f.created = append(f.created, cmd)
	return cmd, nil
}

func (f *fakeSession) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.responses = append(f.responses, resp)
	return nil
}

func (f *fakeSession) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.sent = append(f.sent, sentMessage{channelID: channelID, data: data})
	return &discordgo.Message{ID: fmt.Sprintf("m%d", len(f.sent)), ChannelID: channelID}, nil
}

func (f *fakeSession) ChannelMessageDelete(_, messageID string, _ ...discordgo.RequestOption) error {
	f.deleted = append(f.deleted, messageID)
	return nil
}

func (f *fakeSession) User(userID string, _ ...discordgo.RequestOption) (*discordgo.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, fmt.Errorf("unknown user %s", userID)
	}
	return u, nil
}

func (f *fakeSession) UserChannelPermissions(_, _ string, _ ...discordgo.RequestOption) (int64, error) {
	f.permCalls++
	return f.perms, nil
}

func (f *fakeSession) Guild(string, ...discordgo.RequestOption) (*discordgo.Guild, error) {
	return f.guild, nil
}

func (f *fakeSession) GuildMember(_, userID string, _ ...discordgo.RequestOption) (*discordgo.Member, error) {
	m, ok := f.members[userID]
	if !ok {
		return nil, fmt.Errorf("unknown member %s", userID)
	}
	return m, nil
}

func (f *fakeSession) GuildRoles(string, ...discordgo.RequestOption) ([]*discordgo.Role, error) {
	return f.roles, nil
}

type memAwayRepo struct{ rows map[string]domain.AwayState }

func (r *memAwayRepo) Get(_ context.Context, g, m string) (domain.AwayState, error) {
	st, ok := r.rows[g+"/"+m]
	if !ok {
		return domain.AwayState{}, storage.ErrNotFound
	}
	return st, nil
}

func (r *memAwayRepo) Set(_ context.Context, st domain.AwayState) error {
	r.rows[st.GuildID+"/"+st.MemberID] = st
	return nil
}

func (r *memAwayRepo) Clear(_ context.Context, g, m string) error {
	r.rows[g+"/"+m] = domain.AwayState{GuildID: g, MemberID: m}
	return nil
}

type memSettingsRepo struct{ rows map[string]domain.GuildSettings }

func (r *memSettingsRepo) Get(_ context.Context, g string) (domain.GuildSettings, error) {
	if st, ok := r.rows[g]; ok {
		return st, nil
	}
	return domain.GuildSettings{GuildID: g}, nil
}

func (r *memSettingsRepo) SetTextOnly(ctx context.Context, g string, on bool) error {
	st, _ := r.Get(ctx, g)
	st.TextOnly = on
	r.rows[g] = st
	return nil
}

func (r *memSettingsRepo) AddBlacklisted(ctx context.Context, g, m string) error {
	st, _ := r.Get(ctx, g)
	if !st.IsBlacklisted(m) {
		st.BlacklistedMembers = append(st.BlacklistedMembers, m)
	}
	r.rows[g] = st
	return nil
}

func (r *memSettingsRepo) RemoveBlacklisted(ctx context.Context, g, m string) error {
	st, _ := r.Get(ctx, g)
	st.BlacklistedMembers = slices.DeleteFunc(st.BlacklistedMembers, func(id string) bool { return id == m })
	r.rows[g] = st
	return nil
}

type memGlobalRepo struct{ ignored []string }

func (r *memGlobalRepo) IgnoredGuilds(context.Context) ([]string, error) { return r.ignored, nil }

func (r *memGlobalRepo) IsIgnored(_ context.Context, g string) (bool, error) {
	return slices.Contains(r.ignored, g), nil
}

func (r *memGlobalRepo) AddIgnored(_ context.Context, g string) error {
	if !slices.Contains(r.ignored, g) {
		r.ignored = append(r.ignored, g)
	}
	return nil
}

func (r *memGlobalRepo) RemoveIgnored(_ context.Context, g string) (bool, error) {
	n := len(r.ignored)
	r.ignored = slices.DeleteFunc(r.ignored, func(id string) bool { return id == g })
	return len(r.ignored) != n, nil
}

type harness struct {
	r        *Router
	s        *fakeSession
	away     *memAwayRepo
	settings *memSettingsRepo
	global   *memGlobalRepo
	delays   []time.Duration
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		s:        newFakeSession(),
		away:     &memAwayRepo{rows: map[string]domain.AwayState{}},
		settings: &memSettingsRepo{rows: map[string]domain.GuildSettings{}},
		global:   &memGlobalRepo{},
	}
	st := discordgo.NewState()
	st.User = &discordgo.User{ID: "bot"}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	h.r = NewRouter(
		h.s, st, "g", "!",
		RoleCfg{OwnerIDs: []string{"botowner"}, ModRoleIDs: []string{"modrole"}},
		service.NewAwayService(h.away, log),
		service.NewSettingsService(h.settings, h.global),
		log,
	)
	// el borrado se ejecuta en el acto
	h.r.after = func(d time.Duration, f func()) {
		h.delays = append(h.delays, d)
		f()
	}
	return h
}

func (h *harness) setAway(userID, msg string, deleteAfter *int) {
	h.away.rows["g/"+userID] = domain.AwayState{GuildID: "g", MemberID: userID, Message: msg, DeleteAfter: deleteAfter}
}

func (h *harness) addUser(id, name string, roles ...string) *discordgo.User {
	u := &discordgo.User{ID: id, Username: name}
	h.s.users[id] = u
	h.s.members[id] = &discordgo.Member{GuildID: "g", User: u, Roles: roles}
	return u
}

func mentionMsg(mentions ...*discordgo.User) *discordgo.Message {
	return &discordgo.Message{
		ID:        "in",
		GuildID:   "g",
		ChannelID: "c",
		Author:    &discordgo.User{ID: "author"},
		Content:   "hey",
		Mentions:  mentions,
	}
}

func intp(v int) *int { return &v }
