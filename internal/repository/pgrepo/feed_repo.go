package pgrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/minivenmo/internal/domain"
	"github.com/fsdevblog/minivenmo/internal/repository/repoargs"
	"github.com/fsdevblog/minivenmo/pkg/uow"
)

// feedSelect выбирает записи ленты вместе с именами участников. Ожидает CTE или таблицу с алиасом f.
const feedSelect = `SELECT f.id, f.created_at, f.user_id, u.name, f.related_user_id, ru.name, f.feed_type, f.detail
	FROM %s f
	JOIN users u ON u.id = f.user_id
	LEFT JOIN users ru ON ru.id = f.related_user_id`

type FeedRepository struct {
	conn uow.DBTX
}

func NewFeedRepository(conn uow.DBTX) *FeedRepository {
	return &FeedRepository{conn: conn}
}

// Create добавляет запись в ленту и возвращает ее с именами участников.
func (f *FeedRepository) Create(ctx context.Context, entry repoargs.CreateFeedEntry) (*domain.FeedEntry, error) {
	row := f.conn.QueryRow(ctx,
		`WITH inserted AS (
			INSERT INTO feed (user_id, related_user_id, feed_type, detail)
			VALUES ($1, $2, $3, $4)
			RETURNING *
		) `+feedFrom("inserted"),
		entry.UserID, entry.RelatedUserID, string(entry.Type), entry.Detail,
	)
	dbEntry, err := scanFeedEntry(row)
	if err != nil {
		return nil, convertErr(err, "creating %s feed entry for user %d", entry.Type, entry.UserID)
	}
	return dbEntry, nil
}

// GetByParticipant возвращает записи, где юзер является автором или второй стороной,
// от новых к старым.
func (f *FeedRepository) GetByParticipant(ctx context.Context, userID int64) ([]domain.FeedEntry, error) {
	rows, err := f.conn.Query(ctx,
		feedFrom("feed")+`
		WHERE f.user_id = $1 OR f.related_user_id = $1
		ORDER BY f.created_at DESC, f.id DESC`,
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "getting feed of user %d", userID)
	}
	entries, collectErr := pgx.CollectRows(rows, collectFeedEntry)
	if collectErr != nil {
		return nil, convertErr(collectErr, "getting feed of user %d", userID)
	}
	return entries, nil
}

// GetFriendAddsByActors возвращает записи типа friend_add, авторами которых являются actorIDs,
// от новых к старым.
func (f *FeedRepository) GetFriendAddsByActors(ctx context.Context, actorIDs []int64) ([]domain.FeedEntry, error) {
	if len(actorIDs) == 0 {
		return []domain.FeedEntry{}, nil
	}
	rows, err := f.conn.Query(ctx,
		feedFrom("feed")+`
		WHERE f.feed_type = $1 AND f.user_id = ANY($2)
		ORDER BY f.created_at DESC, f.id DESC`,
		string(domain.FeedTypeFriendAdd), actorIDs,
	)
	if err != nil {
		return nil, convertErr(err, "getting friend additions of users `%v`", actorIDs)
	}
	entries, collectErr := pgx.CollectRows(rows, collectFeedEntry)
	if collectErr != nil {
		return nil, convertErr(collectErr, "getting friend additions of users `%v`", actorIDs)
	}
	return entries, nil
}

func feedFrom(source string) string {
	return fmt.Sprintf(feedSelect, source)
}

func scanFeedEntry(row pgx.Row) (*domain.FeedEntry, error) {
	var entry domain.FeedEntry
	var feedType string
	err := row.Scan(
		&entry.ID,
		&entry.CreatedAt,
		&entry.UserID,
		&entry.UserName,
		&entry.RelatedUserID,
		&entry.RelatedUserName,
		&feedType,
		&entry.Detail,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	entry.Type = domain.FeedType(feedType)
	return &entry, nil
}

func collectFeedEntry(row pgx.CollectableRow) (domain.FeedEntry, error) {
	entry, err := scanFeedEntry(row)
	if err != nil {
		return domain.FeedEntry{}, err
	}
	return *entry, nil
}
