package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/fsdevblog/minivenmo/internal/domain"
	"github.com/fsdevblog/minivenmo/internal/repository/repoargs"
	"github.com/fsdevblog/minivenmo/pkg/uow"
)

type FeedService struct {
	uow uow.UOW
}

func NewFeedService(u uow.UOW) *FeedService {
	return &FeedService{uow: u}
}

// ActivityFor собирает ленту юзера: записи, где он действующее или связанное лицо, плюс записи friend_add,
// сделанные его текущими друзьями. Оба запроса читают один снимок базы в read-only транзакции.
// Лента отсортирована от новых к старым.
func (s *FeedService) ActivityFor(ctx context.Context, userID int64) ([]domain.FeedEntry, error) {
	var activity []domain.FeedEntry
	txErr := s.uow.DoWith(ctx, uow.SnapshotTxOptions, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		friendshipRepo, friendshipRepoErr := uow.GetAs[FriendshipRepository](
			tx,
			uow.RepositoryName(repoargs.FriendshipRepoName),
		)
		if friendshipRepoErr != nil {
			return friendshipRepoErr //nolint:wrapcheck
		}
		feedRepo, feedRepoErr := uow.GetAs[FeedRepository](tx, uow.RepositoryName(repoargs.FeedRepoName))
		if feedRepoErr != nil {
			return feedRepoErr //nolint:wrapcheck
		}

		if _, err := userRepo.FindByID(c, userID); err != nil {
			return err //nolint:wrapcheck
		}

		own, ownErr := feedRepo.GetByParticipant(c, userID)
		if ownErr != nil {
			return ownErr //nolint:wrapcheck
		}

		friendIDs, friendIDsErr := friendshipRepo.FriendIDsOf(c, userID)
		if friendIDsErr != nil {
			return friendIDsErr //nolint:wrapcheck
		}
		friendAdds, friendAddsErr := feedRepo.GetFriendAddsByActors(c, friendIDs)
		if friendAddsErr != nil {
			return friendAddsErr //nolint:wrapcheck
		}

		activity = MergeActivity(own, friendAdds)
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("building activity of user %d: %w", userID, txErr)
	}
	return activity, nil
}

// MergeActivity объединяет наборы записей без повторов по id и сортирует по времени создания от новых
// к старым. При равном времени первой идет запись с большим id.
func MergeActivity(sets ...[]domain.FeedEntry) []domain.FeedEntry {
	seen := make(map[int64]struct{})
	merged := make([]domain.FeedEntry, 0)
	for _, set := range sets {
		for _, entry := range set {
			if _, ok := seen[entry.ID]; ok {
				continue
			}
			seen[entry.ID] = struct{}{}
			merged = append(merged, entry)
		}
	}

	sort.Slice(merged, func(i, j int) bool {
		if !merged[i].CreatedAt.Equal(merged[j].CreatedAt) {
			return merged[i].CreatedAt.After(merged[j].CreatedAt)
		}
		return merged[i].ID > merged[j].ID
	})
	return merged
}
