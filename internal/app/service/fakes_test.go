package service

import (
	"context"

	"github.com/jose-valero/away-bot/internal/domain"
	"github.com/jose-valero/away-bot/internal/infra/storage"
)

type fakeAwayRepo struct {
	rows   map[string]domain.AwayState
	sets   int
	clears int
}

func newFakeAwayRepo() *fakeAwayRepo { return &fakeAwayRepo{rows: map[string]domain.AwayState{}} }

func key(g, m string) string { return g + "/" + m }

func (f *fakeAwayRepo) Get(_ context.Context, g, m string) (domain.AwayState, error) {
	st, ok := f.rows[key(g, m)]
	if !ok {
		return domain.AwayState{}, storage.ErrNotFound
	}
	return st, nil
}

func (f *fakeAwayRepo) Set(_ context.Context, st domain.AwayState) error {
	f.sets++
	f.rows[key(st.GuildID, st.MemberID)] = st
	return nil
}

func (f *fakeAwayRepo) Clear(_ context.Context, g, m string) error {
	f.clears++
	f.rows[key(g, m)] = domain.AwayState{GuildID: g, MemberID: m}
	return nil
}

type fakeSettingsRepo struct {
	rows map[string]domain.GuildSettings
}

func (f *fakeSettingsRepo) Get(_ context.Context, g string) (domain.GuildSettings, error) {
	st, ok := f.rows[g]
	if !ok {
		return domain.GuildSettings{GuildID: g}, nil
	}
	return st, nil
}

func (f *fakeSettingsRepo) SetTextOnly(ctx context.Context, g string, on bool) error {
	st, _ := f.Get(ctx, g)
	st.TextOnly = on
	f.rows[g] = st
	return nil
}

func (f *fakeSettingsRepo) AddBlacklisted(ctx context.Context, g, m string) error {
	st, _ := f.Get(ctx, g)
	if !st.IsBlacklisted(m) {
		st.BlacklistedMembers = append(st.BlacklistedMembers, m)
	}
	f.rows[g] = st
	return nil
}

func (f *fakeSettingsRepo) RemoveBlacklisted(ctx context.Context, g, m string) error {
	st, _ := f.Get(ctx, g)
	out := st.BlacklistedMembers[:0]
	for _, id := range st.BlacklistedMembers {
		if id != m {
			out = append(out, id)
		}
	}
	st.BlacklistedMembers = out
	f.rows[g] = st
	return nil
}

type fakeGlobalRepo struct{ ignored []string }

func (f *fakeGlobalRepo) IgnoredGuilds(context.Context) ([]string, error) { return f.ignored, nil }

func (f *fakeGlobalRepo) IsIgnored(_ context.Context, g string) (bool, error) {
	for _, id := range f.ignored {
		if id == g {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeGlobalRepo) AddIgnored(ctx context.Context, g string) error {
	if ok, _ := f.IsIgnored(ctx, g); !ok {
		f.ignored = append(f.ignored, g)
	}
	return nil
}

func (f *fakeGlobalRepo) RemoveIgnored(_ context.Context, g string) (bool, error) {
	for i, id := range f.ignored {
		if id == g {
			f.ignored = append(f.ignored[:i], f.ignored[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
