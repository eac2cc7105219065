package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	DatabaseURL  string `env:"DATABASE_URL,required,notEmpty"`
	DiscordToken string `env:"DISCORD_BOT_TOKEN,required,notEmpty"`
	// vacío = comandos globales (tardan en propagarse)
	DiscordGuild string `env:"DISCORD_GUILD_ID"`

	CommandPrefix string   `env:"COMMAND_PREFIX" envDefault:"!"`
	OwnerIDs      []string `env:"BOT_OWNER_IDS" envSeparator:","`
	AdminRoleIDs  []string `env:"ADMIN_ROLE_IDS" envSeparator:","`
	ModRoleIDs    []string `env:"MOD_ROLE_IDS" envSeparator:","`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg.OwnerIDs = clean(cfg.OwnerIDs)
	cfg.AdminRoleIDs = clean(cfg.AdminRoleIDs)
	cfg.ModRoleIDs = clean(cfg.ModRoleIDs)
	return cfg, nil
}

// BotToken agrega el prefijo "Bot " si falta.
func (c Config) BotToken() string {
	auth := strings.TrimSpace(c.DiscordToken)
	if !strings.HasPrefix(strings.ToLower(auth), "bot ") {
		auth = "Bot " + auth
	}
	return auth
}

func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func clean(ids []string) []string {
	out := ids[:0]
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}
