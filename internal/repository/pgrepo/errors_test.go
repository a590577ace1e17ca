package pgrepo

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/fsdevblog/minivenmo/internal/domain"
)

func TestConvertErr(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "no rows", err: pgx.ErrNoRows, wantErr: domain.ErrRecordNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: uniqueViolationCode}, wantErr: domain.ErrDuplicateKey},
		{name: "check violation", err: &pgconn.PgError{Code: checkViolationCode}, wantErr: domain.ErrConstraintViolation},
		{name: "foreign key violation", err: &pgconn.PgError{Code: foreignKeyViolationCode}, wantErr: domain.ErrRecordNotFound},
		{name: "other pg error", err: &pgconn.PgError{Code: "40001"}, wantErr: domain.ErrUnknown},
		{name: "plain error", err: errors.New("connection reset"), wantErr: domain.ErrUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := convertErr(tc.err, "doing %s", "things")
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Contains(t, err.Error(), "[repository/doing things]")
		})
	}

	assert.NoError(t, convertErr(nil, "nothing"))
}

func TestConvertErr_KeepsOriginalChain(t *testing.T) {
	err := convertErr(fmt.Errorf("query users: %w", context.DeadlineExceeded), "list users")
	assert.ErrorIs(t, err, domain.ErrUnknown)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	pgErr := &pgconn.PgError{Code: checkViolationCode, ConstraintName: "users_balance_check"}
	err = convertErr(pgErr, "update balance")
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)
	var target *pgconn.PgError
	if assert.ErrorAs(t, err, &target) {
		assert.Equal(t, "users_balance_check", target.ConstraintName)
	}
}

func TestCardOrderClause(t *testing.T) {
	assert.Equal(t, "id ASC", cardOrderClause(domain.CardOrderIDAsc))
	assert.Equal(t, "id DESC", cardOrderClause(domain.CardOrderIDDesc))
	assert.Equal(t, "id ASC", cardOrderClause("; DROP TABLE users"))
}

func TestJitter(t *testing.T) {
	for range 100 {
		v := jitter(100, 0.15, 0.15)
		assert.GreaterOrEqual(t, v, 85.0)
		assert.LessOrEqual(t, v, 115.0)
	}
}
