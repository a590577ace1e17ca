package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/minivenmo/internal/domain"
)

// lockPair блокирует строки двух разных юзеров в порядке возрастания id и возвращает их в порядке аргументов.
// Если хотя бы одного нет, возвращает ошибку с domain.ErrRecordNotFound.
func lockPair(ctx context.Context, repo UserRepository, firstID, secondID int64) (*domain.User, *domain.User, error) {
	ids := []int64{firstID, secondID}
	if secondID < firstID {
		ids = []int64{secondID, firstID}
	}

	users, err := repo.LockByIDs(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("locking users %v: %w", ids, err)
	}

	var first, second *domain.User
	for i := range users {
		switch users[i].ID {
		case firstID:
			first = &users[i]
		case secondID:
			second = &users[i]
		}
	}
	if first == nil {
		return nil, nil, fmt.Errorf("user %d: %w", firstID, domain.ErrRecordNotFound)
	}
	if second == nil {
		return nil, nil, fmt.Errorf("user %d: %w", secondID, domain.ErrRecordNotFound)
	}
	return first, second, nil
}
