// ownerhook: lambda para que los owners del bot manejen la lista global de
// guilds ignorados sin pasar por Discord.
package main

import (
	"context"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	st          ignoreStore
	secretHdr   = getenv("OWNERHOOK_HEADER_NAME", "X-Away-Secret")
	secretValue = os.Getenv("OWNERHOOK_SECRET")
)

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

type ignoreStore interface {
	Add(ctx context.Context, guildID string) error
	Remove(ctx context.Context, guildID string) (bool, error)
	List(ctx context.Context) ([]string, error)
}

type pgStore struct{ db *pgxpool.Pool }

func (p pgStore) Add(ctx context.Context, guildID string) error {
	_, err := p.db.Exec(ctx, `INSERT INTO ignored_guilds (guild_id) VALUES ($1) ON CONFLICT DO NOTHING`, guildID)
	return err
}

func (p pgStore) Remove(ctx context.Context, guildID string) (bool, error) {
	tag, err := p.db.Exec(ctx, `DELETE FROM ignored_guilds WHERE guild_id = $1`, guildID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (p pgStore) List(ctx context.Context) ([]string, error) {
	rows, err := p.db.Query(ctx, `SELECT guild_id FROM ignored_guilds ORDER BY added_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		fmt.Println("DATABASE_URL empty; ownerhook disabled")
		return
	}
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		fmt.Println("pgx ParseConfig:", err)
		return
	}
	cfg.MaxConns = 2
	cfg.MaxConnLifetime = 30 * time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		fmt.Println("pgxpool New:", err)
		return
	}
	st = pgStore{db: pool}
}

type request struct {
	Action  string `json:"action"`
	GuildID string `json:"guild_id"`
}

type response struct {
	OK      bool     `json:"ok"`
	Changed bool     `json:"changed,omitempty"`
	Ignored []string `json:"ignored,omitempty"`
	Error   string   `json:"error,omitempty"`
}

func readSecret(req events.APIGatewayV2HTTPRequest, hdr string) string {
	for k, v := range req.Headers {
		if strings.EqualFold(k, hdr) {
			return v
		}
	}
	return ""
}

func reply(code int, r response) events.APIGatewayV2HTTPResponse {
	b, _ := json.Marshal(r)
	return events.APIGatewayV2HTTPResponse{
		StatusCode: code,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(b),
	}
}

func handle(ctx context.Context, s ignoreStore, secret string, req events.APIGatewayV2HTTPRequest) events.APIGatewayV2HTTPResponse {
	got := readSecret(req, secretHdr)
	if secret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
		return reply(401, response{Error: "unauthorized"})
	}
	if s == nil {
		return reply(503, response{Error: "no database"})
	}

	body := req.Body
	if req.IsBase64Encoded {
		dec, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return reply(400, response{Error: "invalid base64"})
		}
		body = string(dec)
	}
	var in request
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		return reply(400, response{Error: "invalid json"})
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	in.GuildID = strings.TrimSpace(in.GuildID)
	switch strings.ToLower(in.Action) {
	case "list":
		ids, err := s.List(ctx)
		if err != nil {
			return reply(500, response{Error: err.Error()})
		}
		return reply(200, response{OK: true, Ignored: ids})
	case "ignore":
		if in.GuildID == "" {
			return reply(400, response{Error: "guild_id required"})
		}
		if err := s.Add(ctx, in.GuildID); err != nil {
			return reply(500, response{Error: err.Error()})
		}
		return reply(200, response{OK: true, Changed: true})
	case "unignore":
		if in.GuildID == "" {
			return reply(400, response{Error: "guild_id required"})
		}
		changed, err := s.Remove(ctx, in.GuildID)
		if err != nil {
			return reply(500, response{Error: err.Error()})
		}
		return reply(200, response{OK: true, Changed: changed})
	default:
		return reply(400, response{Error: "unknown action"})
	}
}

func handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	fmt.Printf("ownerhook hit | path=%s method=%s ip=%s\n",
		req.RawPath, req.RequestContext.HTTP.Method, req.RequestContext.HTTP.SourceIP)
	return handle(ctx, st, secretValue, req), nil
}

func main() { lambda.Start(handler) }
