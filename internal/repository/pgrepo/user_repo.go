package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/minivenmo/internal/domain"
	"github.com/fsdevblog/minivenmo/internal/repository/repoargs"
	"github.com/fsdevblog/minivenmo/pkg/uow"
)

const userColumns = `id, created_at, updated_at, name, balance`

type UserRepository struct {
	conn uow.DBTX
}

func NewUserRepository(conn uow.DBTX) *UserRepository {
	return &UserRepository{conn: conn}
}

// Create создает юзера с начальным балансом. Имя не уникально. Отрицательный баланс отклоняется базой
// с ошибкой domain.ErrConstraintViolation.
func (u *UserRepository) Create(ctx context.Context, user repoargs.CreateUser) (*domain.User, error) {
	row := u.conn.QueryRow(ctx,
		`INSERT INTO users (name, balance) VALUES ($1, $2) RETURNING `+userColumns,
		user.Name, user.Balance,
	)
	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user `%s`", user.Name)
	}
	return dbUser, nil
}

// FindByID ищет юзера по id. Возвращает ошибку domain.ErrRecordNotFound если запись не найдена.
func (u *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by id %d", id)
	}
	return dbUser, nil
}

// List возвращает всех юзеров, отсортированных по id.
func (u *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := u.conn.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, convertErr(err, "listing users")
	}
	users, collectErr := pgx.CollectRows(rows, collectUser)
	if collectErr != nil {
		return nil, convertErr(collectErr, "listing users")
	}
	return users, nil
}

// GetByIDs возвращает юзеров с указанными id, отсортированных по id. Несуществующие id пропускаются.
func (u *UserRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}
	rows, err := u.conn.Query(ctx, `SELECT `+userColumns+` FROM users WHERE id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return nil, convertErr(err, "getting users by ids `%v`", ids)
	}
	users, collectErr := pgx.CollectRows(rows, collectUser)
	if collectErr != nil {
		return nil, convertErr(collectErr, "getting users by ids `%v`", ids)
	}
	return users, nil
}

// LockByIDs выбирает юзеров и блокирует их строки до конца транзакции (SELECT ... FOR UPDATE).
// Строки блокируются в порядке возрастания id, поэтому две транзакции, блокирующие пересекающиеся наборы
// юзеров, не могут взаимно заблокироваться. Имеет смысл только внутри uow транзакции.
func (u *UserRepository) LockByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	rows, err := u.conn.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ANY($1) ORDER BY id FOR UPDATE`,
		ids,
	)
	if err != nil {
		return nil, convertErr(err, "locking users `%v`", ids)
	}
	users, collectErr := pgx.CollectRows(rows, collectUser)
	if collectErr != nil {
		return nil, convertErr(collectErr, "locking users `%v`", ids)
	}
	return users, nil
}

// AddToBalance изменяет баланс кошелька на delta (отрицательное значение - списание) и возвращает
// обновленного юзера. Если баланс уходит в минус, вернется domain.ErrConstraintViolation.
func (u *UserRepository) AddToBalance(ctx context.Context, id int64, delta decimal.Decimal) (*domain.User, error) {
	row := u.conn.QueryRow(ctx,
		`UPDATE users SET balance = balance + $2, updated_at = now() WHERE id = $1 RETURNING `+userColumns,
		id, delta,
	)
	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "changing balance of user %d by %s", id, delta)
	}
	return dbUser, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt, &user.Name, &user.Balance); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &user, nil
}

func collectUser(row pgx.CollectableRow) (domain.User, error) {
	user, err := scanUser(row)
	if err != nil {
		return domain.User{}, err
	}
	return *user, nil
}
