package main

import (
	"context"
	"fmt"
	"os"
	"time"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	databasepb "cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	"github.com/joho/godotenv"

	"github.com/murkotick/storefront-ledger-service/internal/config"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/ddl"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/logger"
)

// A small migration helper that applies every migrations/*.sql file, in name
// order, to a Cloud Spanner database (typically the emulator for local dev).
//
// Usage (emulator):
//
//	export SPANNER_EMULATOR_HOST=localhost:9010
//	export STOREFRONT_SPANNER_DATABASE=projects/test-project/instances/emulator-instance/databases/test-db
//	go run ./cmd/migrate
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Options{
		ServiceName: "storefront-migrate",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	n, err := migrate(ctx, cfg.Spanner.Database, cfg.Spanner.MigrationsDir)
	if err != nil {
		log.Error(ctx, "migration failed", err)
		os.Exit(1)
	}
	log.Zerolog(ctx).Info().Int("statements", n).Str("database", cfg.Spanner.Database).Msg("migrations applied")
}

func migrate(ctx context.Context, db, dir string) (int, error) {
	stmts, err := ddl.ReadDir(dir)
	if err != nil {
		return 0, err
	}
	if len(stmts) == 0 {
		return 0, fmt.Errorf("no DDL statements found in %s", dir)
	}

	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return 0, fmt.Errorf("database admin client: %w", err)
	}
	defer admin.Close()

	op, err := admin.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
		Database:   db,
		Statements: stmts,
	})
	if err != nil {
		return 0, fmt.Errorf("update database ddl: %w", err)
	}
	if err := op.Wait(ctx); err != nil {
		return 0, fmt.Errorf("update database ddl wait: %w", err)
	}
	return len(stmts), nil
}
