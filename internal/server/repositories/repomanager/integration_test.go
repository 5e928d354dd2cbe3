//go:build integration

package repomanager

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/textfix/internal/common"
	"github.com/dmitrijs2005/textfix/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresContainer(t *testing.T, ctx context.Context) string {
	dbName, dbUser, dbPassword := "textfix_test", "test_user", "test_password"

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")

	t.Cleanup(func() {
		err := postgresContainer.Terminate(context.Background())
		require.NoError(t, err, "Failed to terminate PostgreSQL container")
	})

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "Failed to get PostgreSQL connection string")

	return connStr
}

func TestPostgres_Repositories(t *testing.T) {
	ctx := context.Background()
	db, err := OpenPostgres(ctx, setupPostgresContainer(t, ctx))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	m := NewPostgresRepositoryManager()
	require.NoError(t, m.RunMigrations(ctx, db))
	// migrations are idempotent
	require.NoError(t, m.RunMigrations(ctx, db))

	// users
	u, err := m.Users(db).Create(ctx, &models.User{Name: "Ann", Email: "ann@example.com", PasswordHash: "h"})
	require.NoError(t, err)
	assert.Positive(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	_, err = m.Users(db).Create(ctx, &models.User{Name: "Ann", Email: "ANN@example.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	got, err := m.Users(db).GetByEmail(ctx, "Ann@Example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	// history
	h := m.History(db)
	first, err := h.Create(ctx, &models.Exchange{UserID: u.ID, InputText: "helo", CorrectedText: "Hello"})
	require.NoError(t, err)
	second, err := h.Create(ctx, &models.Exchange{UserID: u.ID, InputText: "wrld", CorrectedText: "World"})
	require.NoError(t, err)

	list, err := h.ListByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)

	require.NoError(t, h.Delete(ctx, first.ID))
	assert.ErrorIs(t, h.Delete(ctx, first.ID), common.ErrorNotFound)
	_, err = h.Get(ctx, first.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	// otps
	o := m.OTPs(db)
	require.NoError(t, o.Upsert(ctx, &models.OTP{Email: "b@example.com", Secret: "S1", ExpiresAt: time.Now().Add(time.Minute)}))
	require.NoError(t, o.MarkVerified(ctx, "b@example.com", time.Now()))
	rec, err := o.Get(ctx, "b@example.com")
	require.NoError(t, err)
	assert.True(t, rec.Verified())
	assert.ErrorIs(t, o.MarkVerified(ctx, "b@example.com", time.Now()), common.ErrorNotFound)

	require.NoError(t, o.Upsert(ctx, &models.OTP{Email: "b@example.com", Secret: "S2", ExpiresAt: time.Now().Add(time.Minute)}))
	rec, err = o.Get(ctx, "b@example.com")
	require.NoError(t, err)
	assert.Equal(t, "S2", rec.Secret)
	assert.False(t, rec.Verified())

	require.NoError(t, o.Delete(ctx, "b@example.com"))
	_, err = o.Get(ctx, "b@example.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
