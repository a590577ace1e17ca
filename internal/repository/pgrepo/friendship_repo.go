package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/minivenmo/internal/domain"
	"github.com/fsdevblog/minivenmo/pkg/uow"
)

type FriendshipRepository struct {
	conn uow.DBTX
}

func NewFriendshipRepository(conn uow.DBTX) *FriendshipRepository {
	return &FriendshipRepository{conn: conn}
}

// Create сохраняет направленную связь user -> friend. Повтор пары в любом направлении
// возвращает domain.ErrDuplicateKey, связь с самим собой - domain.ErrConstraintViolation.
func (f *FriendshipRepository) Create(ctx context.Context, userID, friendID int64) (*domain.Friendship, error) {
	var friendship domain.Friendship
	err := f.conn.QueryRow(ctx,
		`INSERT INTO friendships (user_id, friend_id) VALUES ($1, $2)
		RETURNING id, created_at, user_id, friend_id`,
		userID, friendID,
	).Scan(&friendship.ID, &friendship.CreatedAt, &friendship.UserID, &friendship.FriendID)
	if err != nil {
		return nil, convertErr(err, "creating friendship %d -> %d", userID, friendID)
	}
	return &friendship, nil
}

// ExistsBetween проверяет наличие связи между двумя юзерами в любом направлении.
func (f *FriendshipRepository) ExistsBetween(ctx context.Context, a, b int64) (bool, error) {
	var exists bool
	err := f.conn.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM friendships
			WHERE (user_id = $1 AND friend_id = $2) OR (user_id = $2 AND friend_id = $1)
		)`,
		a, b,
	).Scan(&exists)
	if err != nil {
		return false, convertErr(err, "checking friendship between %d and %d", a, b)
	}
	return exists, nil
}

// FriendIDsOf возвращает id всех друзей юзера, без повторов и по возрастанию, независимо от того,
// кто инициировал дружбу.
func (f *FriendshipRepository) FriendIDsOf(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := f.conn.Query(ctx,
		`SELECT friend_id FROM friendships WHERE user_id = $1
		UNION
		SELECT user_id FROM friendships WHERE friend_id = $1
		ORDER BY 1`,
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "getting friends of user %d", userID)
	}
	ids, collectErr := pgx.CollectRows(rows, pgx.RowTo[int64])
	if collectErr != nil {
		return nil, convertErr(collectErr, "getting friends of user %d", userID)
	}
	return ids, nil
}
