package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/jackc/pgx/v5/pgxpool"
)

// registros limpiados (volvió de away) y sin cambios hace 30 días
const purgeCleared = `
DELETE FROM away_states
 WHERE message IS NULL
   AND updated_at < now() - INTERVAL '30 days';`

func handler(ctx context.Context) (string, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return "no DATABASE_URL", nil
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return fmt.Sprintf("parse: %v", err), nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return fmt.Sprintf("pool: %v", err), nil
	}
	defer pool.Close()

	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := pool.Exec(cctx, purgeCleared)
	if err != nil {
		return fmt.Sprintf("purge: %v", err), nil
	}
	return fmt.Sprintf("ok purged=%d", tag.RowsAffected()), nil
}

func main() { lambda.Start(handler) }
