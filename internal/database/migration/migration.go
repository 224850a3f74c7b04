package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_folders",
		SQL: `CREATE TABLE IF NOT EXISTS folders (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id    UUID        NOT NULL,
  name       TEXT        NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_boards",
		SQL: `CREATE TABLE IF NOT EXISTS boards (
  id          UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id     UUID        NOT NULL,
  folder_id   UUID        REFERENCES folders (id) ON DELETE SET NULL,
  name        TEXT        NOT NULL,
  elements    JSONB       NOT NULL DEFAULT '[]'::jsonb,
  share_token TEXT,
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_pages",
		SQL: `CREATE TABLE IF NOT EXISTS pages (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id    UUID        NOT NULL,
  folder_id  UUID        REFERENCES folders (id) ON DELETE SET NULL,
  name       TEXT        NOT NULL,
  content    TEXT        NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_folder_files",
		SQL: `CREATE TABLE IF NOT EXISTS folder_files (
  id           UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  folder_id    UUID        NOT NULL REFERENCES folders (id) ON DELETE CASCADE,
  name         TEXT        NOT NULL,
  content_type TEXT        NOT NULL,
  storage_path TEXT        NOT NULL UNIQUE,
  size         BIGINT      NOT NULL CHECK (size >= 0),
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_tasks",
		SQL: `CREATE TABLE IF NOT EXISTS tasks (
  id          UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id     UUID        NOT NULL,
  folder_id   UUID        REFERENCES folders (id) ON DELETE CASCADE,
  text        TEXT        NOT NULL,
  start_at    TIMESTAMPTZ NOT NULL,
  end_at      TIMESTAMPTZ NOT NULL,
  is_complete BOOLEAN     NOT NULL DEFAULT FALSE,
  back_color  TEXT        NOT NULL DEFAULT '#ffffff',
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_share_grants",
		SQL: `CREATE TABLE IF NOT EXISTS share_grants (
  id          UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  document_id UUID        NOT NULL,
  kind        TEXT        NOT NULL CHECK (kind IN ('board', 'page', 'folder')),
  token       TEXT        NOT NULL UNIQUE,
  role        TEXT        NOT NULL CHECK (role IN ('viewer', 'editor')),
  invited_by  UUID        NOT NULL,
  email       TEXT        NOT NULL DEFAULT '',
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  expires_at  TIMESTAMPTZ
);`,
	},
	{
		Name: "create_table_login_tokens",
		SQL: `CREATE TABLE IF NOT EXISTS login_tokens (
  user_id    UUID        PRIMARY KEY,
  token      TEXT        NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_user_tiers",
		SQL: `CREATE TABLE IF NOT EXISTS user_tiers (
  user_id    UUID        PRIMARY KEY,
  tier       TEXT        NOT NULL CHECK (tier IN ('free', 'pro', 'premium')),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_boards_user_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_boards_user_id ON boards (user_id);`,
	},
	{
		Name: "create_index_boards_folder_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_boards_folder_id ON boards (folder_id);`,
	},
	{
		Name: "create_index_pages_folder_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_pages_folder_id ON pages (folder_id);`,
	},
	{
		Name: "create_index_folders_user_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_folders_user_id ON folders (user_id);`,
	},
	{
		Name: "create_index_tasks_user_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_tasks_user_id ON tasks (user_id);`,
	},
	{
		Name: "create_index_tasks_folder_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_tasks_folder_id ON tasks (folder_id);`,
	},
	{
		Name: "create_index_share_grants_document",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_share_grants_document ON share_grants (document_id, token);`,
	},
}

// EnsureMigrated checks if the 'boards' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.boards') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
