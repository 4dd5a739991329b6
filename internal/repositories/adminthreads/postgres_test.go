package adminthreads

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmaksimovs/chatrunner/internal/common"
	"github.com/dmaksimovs/chatrunner/internal/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestPostgresUpsert_IsSingleStatement(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+admin_threads.*ON\s+CONFLICT\s*\(user_id\)\s+DO\s+UPDATE\s+SET.*created_at\s*=\s*now\(\)\s*$`

	mock.ExpectExec(q).
		WithArgs(int64(1), "t-100", "c=1", "group").
		WillReturnResult(sqlmock.NewResult(0, 1))

	th := &models.AdminThread{UserID: 1, ThreadID: "t-100", Cookies: "c=1", ChatType: "group"}
	if err := repo.Upsert(context.Background(), th); err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
}

func TestPostgresGetThreadID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"thread_id"}).AddRow("t-100")
	mock.ExpectQuery(`SELECT\s+thread_id\s+FROM\s+admin_threads`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	id, err := repo.GetThreadID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetThreadID error: %v", err)
	}
	if id != "t-100" {
		t.Fatalf("unexpected thread id: %q", id)
	}
}

func TestPostgresGetThreadID_NoRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+thread_id\s+FROM\s+admin_threads`).
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetThreadID(context.Background(), 404)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}
