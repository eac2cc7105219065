package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	discordrouter "github.com/jose-valero/away-bot/internal/adapters/discord"
	"github.com/jose-valero/away-bot/internal/app/service"
	"github.com/jose-valero/away-bot/internal/infra/config"
	"github.com/jose-valero/away-bot/internal/infra/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}

	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      cfg.SlogLevel(),
		TimeFormat: time.DateTime,
		AddSource:  cfg.SlogLevel() == slog.LevelDebug,
	}))
	slog.SetDefault(log)

	// DB
	db, err := storage.Open(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Error("db open", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := storage.Migrate(db); err != nil {
		log.Error("migrate", "err", err)
		os.Exit(1)
	}
	log.Info("✅ DB lista y migrada")

	// Repos + services
	awaySvc := service.NewAwayService(storage.NewAwayRepo(db), log)
	settingsSvc := service.NewSettingsService(storage.NewSettingsRepo(db), storage.NewGlobalRepo(db))

	// Discord
	discordgo.Logger = discordrouter.DiscordgoLogger(log)
	s, err := discordgo.New(cfg.BotToken())
	if err != nil {
		log.Error("discord session", "err", err)
		os.Exit(1)
	}
	// MessageContent es privilegiado: hace falta para el comando con prefijo
	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent
	if err := s.Open(); err != nil {
		log.Error("discord open", "err", err)
		os.Exit(1)
	}
	defer s.Close()
	log.Info("✅ Conectado", "user", s.State.User.Username, "id", s.State.User.ID)

	r := discordrouter.NewRouter(
		s,
		s.State,
		cfg.DiscordGuild,
		cfg.CommandPrefix,
		discordrouter.RoleCfg{
			OwnerIDs:     cfg.OwnerIDs,
			AdminRoleIDs: cfg.AdminRoleIDs,
			ModRoleIDs:   cfg.ModRoleIDs,
		},
		awaySvc,
		settingsSvc,
		log,
	)
	if err := r.Register(); err != nil {
		log.Error("registrando comandos", "err", err)
		os.Exit(1)
	}
	r.Handlers()
	log.Info("✅ comandos registrados", "guild", cfg.DiscordGuild)

	// Esperar señal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-stop
}
