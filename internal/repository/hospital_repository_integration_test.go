//go:build integration

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/model"
)

// openTestDB connects to the MySQL instance named by TEST_DB_DSN, e.g.
//
//	TEST_DB_DSN="root:secret@tcp(localhost:3306)/hospital_test?parseTime=true&loc=UTC"
//
// and skips the test when none is configured.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set; skipping MySQL integration test")
	}
	db, err := sql.Open("mysql", dsn)
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		t.Skipf("MySQL unreachable: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestHospitalRepoCRUD(t *testing.T) {
	db := openTestDB(t)
	repo := NewHospitalRepo(db)
	ctx := context.Background()

	name := fmt.Sprintf("it-hospital-%d", time.Now().UnixNano())
	h := &model.Hospital{Name: name, Address: "1 Elm St"}
	require.NoError(t, repo.Create(ctx, h))
	require.NotZero(t, h.ID)
	assert.False(t, h.CreatedAt.IsZero(), "created_at comes back from the row")
	t.Cleanup(func() { _ = repo.Delete(context.Background(), h.ID) })

	got, err := repo.GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, name, got.Name)

	require.NoError(t, repo.Update(ctx, h.ID, model.HospitalRequest{Name: name, Address: "2 Birch Rd"}))
	got, err = repo.GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, "2 Birch Rd", got.Address)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, all)

	require.NoError(t, repo.Delete(ctx, h.ID))
	_, err = repo.GetByID(ctx, h.ID)
	assert.ErrorIs(t, err, ErrHospitalNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, h.ID), ErrHospitalNotFound)
}

func TestHospitalRepoDuplicateName(t *testing.T) {
	db := openTestDB(t)
	repo := NewHospitalRepo(db)
	ctx := context.Background()

	name := fmt.Sprintf("it-dup-%d", time.Now().UnixNano())
	first := &model.Hospital{Name: name, Address: "1 Elm St"}
	require.NoError(t, repo.Create(ctx, first))
	t.Cleanup(func() { _ = repo.Delete(context.Background(), first.ID) })

	err := repo.Create(ctx, &model.Hospital{Name: name, Address: "elsewhere"})
	require.Error(t, err)
	assert.True(t, IsDuplicate(err), "a second insert with the same name must trip the unique key")
}
