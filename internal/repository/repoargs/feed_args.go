package repoargs

import "github.com/fsdevblog/minivenmo/internal/domain"

type CreateFeedEntry struct {
	UserID        int64
	RelatedUserID *int64
	Type          domain.FeedType
	Detail        string
}
