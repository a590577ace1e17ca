package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/minivenmo/internal/domain"
	"github.com/fsdevblog/minivenmo/internal/logger"
	"github.com/fsdevblog/minivenmo/internal/repository/repoargs"
	"github.com/fsdevblog/minivenmo/pkg/uow"
)

type FriendshipService struct {
	uow            uow.UOW
	userRepo       UserRepository
	friendshipRepo FriendshipRepository
	l              *logrus.Entry
}

func NewFriendshipService(u uow.UOW, l *logrus.Logger) (*FriendshipService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	friendshipRepo, friendshipRepoErr := uow.GetRepositoryAs[FriendshipRepository](
		u,
		uow.RepositoryName(repoargs.FriendshipRepoName),
	)
	if friendshipRepoErr != nil {
		return nil, friendshipRepoErr
	}
	return &FriendshipService{
		uow:            u,
		userRepo:       userRepo,
		friendshipRepo: friendshipRepo,
		l:              logger.Component(l, "friendship"),
	}, nil
}

type FriendshipResult struct {
	Message    string
	Friendship *domain.Friendship
}

// AddFriend создает дружбу userID -> friendID и запись friend_add в ленте. Дружба симметрична: если связь
// уже есть в любом направлении, возвращается *domain.DuplicateFriendshipError.
func (s *FriendshipService) AddFriend(ctx context.Context, userID, friendID int64) (*FriendshipResult, error) {
	if userID == friendID {
		return nil, domain.ErrSelfFriendship
	}

	var result *FriendshipResult
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
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

		user, friend, lockErr := lockPair(c, userRepo, userID, friendID)
		if lockErr != nil {
			return lockErr
		}

		exists, existsErr := friendshipRepo.ExistsBetween(c, user.ID, friend.ID)
		if existsErr != nil {
			return fmt.Errorf("checking friendship: %w", existsErr)
		}
		if exists {
			return domain.NewDuplicateFriendshipError(user, friend)
		}

		friendship, createErr := friendshipRepo.Create(c, user.ID, friend.ID)
		if createErr != nil {
			// конкурентная вставка обратной связи ловится уникальным индексом по неупорядоченной паре
			if errors.Is(createErr, domain.ErrDuplicateKey) {
				return domain.NewDuplicateFriendshipError(user, friend)
			}
			return fmt.Errorf("creating friendship: %w", createErr)
		}

		feedRepo, feedRepoErr := uow.GetAs[FeedRepository](tx, uow.RepositoryName(repoargs.FeedRepoName))
		if feedRepoErr != nil {
			return feedRepoErr //nolint:wrapcheck
		}
		if _, err := feedRepo.Create(c, repoargs.CreateFeedEntry{
			UserID:        user.ID,
			RelatedUserID: &friend.ID,
			Type:          domain.FeedTypeFriendAdd,
			Detail:        FriendAddDetail(user.Name, friend.Name),
		}); err != nil {
			return fmt.Errorf("creating friend_add feed entry: %w", err)
		}

		result = &FriendshipResult{
			Message:    fmt.Sprintf("Successfully added %s as a friend", friend.Name),
			Friendship: friendship,
		}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("adding friend %d to user %d: %w", friendID, userID, txErr)
	}

	s.l.WithFields(logrus.Fields{
		"user":   userID,
		"friend": friendID,
	}).Info("friendship created")

	return result, nil
}

// AreFriends сообщает, связаны ли юзеры дружбой в любом направлении.
func (s *FriendshipService) AreFriends(ctx context.Context, a, b int64) (bool, error) {
	exists, err := s.friendshipRepo.ExistsBetween(ctx, a, b)
	if err != nil {
		return false, fmt.Errorf("checking friendship between %d and %d: %w", a, b, err)
	}
	return exists, nil
}

// FriendsOf возвращает друзей юзера без повторов, упорядоченных по id.
func (s *FriendshipService) FriendsOf(ctx context.Context, userID int64) ([]domain.User, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("getting friends of user %d: %w", userID, err)
	}
	ids, idsErr := s.friendshipRepo.FriendIDsOf(ctx, userID)
	if idsErr != nil {
		return nil, fmt.Errorf("getting friends of user %d: %w", userID, idsErr)
	}
	friends, friendsErr := s.userRepo.GetByIDs(ctx, ids)
	if friendsErr != nil {
		return nil, fmt.Errorf("getting friends of user %d: %w", userID, friendsErr)
	}
	return friends, nil
}

// FriendAddDetail текст записи ленты о добавлении в друзья.
func FriendAddDetail(user, friend string) string {
	return fmt.Sprintf("%s added %s as a friend", user, friend)
}
