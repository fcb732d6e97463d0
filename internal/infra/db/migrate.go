package db

import "database/sql"

// MigrateUp creates the schema if it does not exist.
// All statements are idempotent so the migration can run at every startup.
func MigrateUp(db *sql.DB) error {
	// gen_random_uuid() は pgcrypto 由来（PostgreSQL 13+ では組み込み）
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS admins (
    id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    username      VARCHAR(100) NOT NULL,
    password_hash VARCHAR(255) NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    deleted_at    TIMESTAMPTZ
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS news (
    id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    title       VARCHAR(255) NOT NULL,
    description TEXT NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    deleted_at  TIMESTAMPTZ
)`); err != nil {
		return err
	}

	indexes := []string{
		// アクティブなアカウントに限って username を一意にする
		// (ソフトデリート後の再登録を許可するため部分インデックス)
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_admins_username_active
     ON admins(username) WHERE deleted_at IS NULL`,
		// findAll の ORDER BY created_at ASC で使用
		`CREATE INDEX IF NOT EXISTS idx_news_created_at
     ON news(created_at) WHERE deleted_at IS NULL`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	return nil
}
