package postgres_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"news-cms/internal/domain/entity"
	pg "news-cms/internal/infra/adapter/persistence/postgres"
	"news-cms/internal/repository"
)

/* ─────────────────────────── ヘルパ ─────────────────────────── */

func newsRow(n *entity.News) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "description", "created_at", "updated_at", "deleted_at",
	}).AddRow(
		n.ID, n.Title, n.Description, n.CreatedAt, n.UpdatedAt, n.DeletedAt,
	)
}

func emptyNewsRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "description", "created_at", "updated_at", "deleted_at",
	})
}

func strPtr(s string) *string { return &s }

/* ─────────────────────────── 1. Create ─────────────────────────── */

func TestNewsRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	want := &entity.News{
		ID: "4dfc2ab8-0000-4000-8000-000000000001", Title: "Hi", Description: "World",
		CreatedAt: now, UpdatedAt: now,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO news")).
		WithArgs("Hi", "World").
		WillReturnRows(newsRow(want))

	repo := pg.NewNewsRepo(db)
	got, err := repo.Create(context.Background(), "Hi", "World")
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

/* ─────────────────────────── 2. List ─────────────────────────── */

func TestNewsRepo_List(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery("FROM news").
		WillReturnRows(newsRow(&entity.News{
			ID: "4dfc2ab8-0000-4000-8000-000000000001", Title: "x", Description: "y",
			CreatedAt: now, UpdatedAt: now,
		}))

	repo := pg.NewNewsRepo(db)
	got, err := repo.List(context.Background())
	if err != nil || len(got) != 1 {
		t.Fatalf("List err=%v len=%d", err, len(got))
	}
}

/* ─────────────────────────── 3. Get ─────────────────────────── */

func TestNewsRepo_Get_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	// 削除済み・存在しない行はどちらも空集合になる
	mock.ExpectQuery("FROM news").
		WithArgs("4dfc2ab8-0000-4000-8000-00000000dead").
		WillReturnRows(emptyNewsRows())

	repo := pg.NewNewsRepo(db)
	got, err := repo.Get(context.Background(), "4dfc2ab8-0000-4000-8000-00000000dead")
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if got != nil {
		t.Fatalf("Get = %v, want nil", got)
	}
}

/* ─────────────────────────── 4. Update ─────────────────────────── */

func TestNewsRepo_Update_Partial(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)
	want := &entity.News{
		ID: "4dfc2ab8-0000-4000-8000-000000000001", Title: "X", Description: "World",
		CreatedAt: now, UpdatedAt: now.Add(time.Hour),
	}

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE news")).
		WithArgs("X", nil, want.ID).
		WillReturnRows(newsRow(want))

	repo := pg.NewNewsRepo(db)
	got, err := repo.Update(context.Background(), want.ID,
		repository.NewsUpdate{Title: strPtr("X")})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestNewsRepo_Update_RaceWithDelete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	// 先行する読み取りが成功しても、条件付き UPDATE が 0 行なら not-found 扱い
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE news")).
		WithArgs("X", nil, "4dfc2ab8-0000-4000-8000-000000000001").
		WillReturnRows(emptyNewsRows())

	repo := pg.NewNewsRepo(db)
	got, err := repo.Update(context.Background(), "4dfc2ab8-0000-4000-8000-000000000001",
		repository.NewsUpdate{Title: strPtr("X")})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if got != nil {
		t.Fatalf("Update = %v, want nil when zero rows affected", got)
	}
}

/* ─────────────────────────── 5. SoftDelete ─────────────────────────── */

func TestNewsRepo_SoftDelete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	deleted := now.Add(time.Minute)
	want := &entity.News{
		ID: "4dfc2ab8-0000-4000-8000-000000000001", Title: "Hi", Description: "World",
		CreatedAt: now, UpdatedAt: deleted, DeletedAt: &deleted,
	}

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE news")).
		WithArgs(want.ID).
		WillReturnRows(newsRow(want))

	repo := pg.NewNewsRepo(db)
	got, err := repo.SoftDelete(context.Background(), want.ID)
	if err != nil {
		t.Fatalf("SoftDelete err=%v", err)
	}
	if got.DeletedAt == nil {
		t.Fatal("SoftDelete should return row with deleted_at set")
	}
}

func TestNewsRepo_SoftDelete_AlreadyDeleted(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE news")).
		WithArgs("4dfc2ab8-0000-4000-8000-000000000001").
		WillReturnRows(emptyNewsRows())

	repo := pg.NewNewsRepo(db)
	got, err := repo.SoftDelete(context.Background(), "4dfc2ab8-0000-4000-8000-000000000001")
	if err != nil {
		t.Fatalf("SoftDelete err=%v", err)
	}
	if got != nil {
		t.Fatalf("SoftDelete = %v, want nil on second delete", got)
	}
}

/* ─────────────────────────── 6. HardDelete ─────────────────────────── */

func TestNewsRepo_HardDelete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	deleted := now.Add(time.Minute)
	want := &entity.News{
		ID: "4dfc2ab8-0000-4000-8000-000000000001", Title: "Hi", Description: "World",
		CreatedAt: now, UpdatedAt: deleted, DeletedAt: &deleted,
	}

	// ソフトデリート済みの行でも物理削除は成功する
	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM news")).
		WithArgs(want.ID).
		WillReturnRows(newsRow(want))

	repo := pg.NewNewsRepo(db)
	got, err := repo.HardDelete(context.Background(), want.ID)
	if err != nil {
		t.Fatalf("HardDelete err=%v", err)
	}
	if got == nil {
		t.Fatal("HardDelete should return the removed row")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
