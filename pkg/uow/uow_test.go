package uow

import (
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	conn DBTX
}

type otherRepo struct{}

func newFakeRepo(conn DBTX) Repository {
	return &fakeRepo{conn: conn}
}

func TestUnitOfWork_Register(t *testing.T) {
	u := NewUnitOfWork(nil)

	require.NoError(t, u.Register("fake", newFakeRepo))
	require.ErrorIs(t, u.Register("fake", newFakeRepo), ErrRepositoryAlreadyRegistered)
	require.ErrorIs(t, u.Register("nil", nil), ErrNilRepositoryFactory)

	repo, err := GetRepositoryAs[*fakeRepo](u, "fake")
	require.NoError(t, err)
	assert.NotNil(t, repo)

	_, err = GetRepositoryAs[*otherRepo](u, "fake")
	require.ErrorIs(t, err, ErrInvalidRepositoryType)

	_, err = u.GetRepository("missing")
	require.ErrorIs(t, err, ErrRepositoryNotRegistered)
}

func TestTransaction_GetCachesRepository(t *testing.T) {
	calls := 0
	factories := map[RepositoryName]RepositoryFactory{
		"fake": func(conn DBTX) Repository {
			calls++
			return newFakeRepo(conn)
		},
	}
	tx := NewTransaction(nil, factories)

	first, err := GetAs[*fakeRepo](tx, "fake")
	require.NoError(t, err)
	second, err := GetAs[*fakeRepo](tx, "fake")
	require.NoError(t, err)

	// внутри одной транзакции репозиторий создается один раз.
	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)

	_, err = GetAs[*otherRepo](tx, "fake")
	require.ErrorIs(t, err, ErrInvalidRepositoryType)

	_, err = tx.Get("missing")
	require.ErrorIs(t, err, ErrRepositoryNotRegistered)
}

func TestTxOptions(t *testing.T) {
	assert.Equal(t, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, TxOptions{}.pgxOptions())
	assert.Equal(t, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, DefaultTxOptions.pgxOptions())
	assert.Equal(
		t,
		pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly},
		SnapshotTxOptions.pgxOptions(),
	)
}
