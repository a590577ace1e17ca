package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/minivenmo/internal/domain"
)

type ActivityHandler struct {
	feedSvs FeedServicer
}

func NewActivityHandler(feedSvs FeedServicer) *ActivityHandler {
	return &ActivityHandler{
		feedSvs: feedSvs,
	}
}

// FeedView запись ленты для отдачи клиенту. Связанный юзер платежа отдается в related_user,
// добавленный друг - в friend. Ключ, соответствующий типу записи, присутствует всегда, даже если он null.
type FeedView struct {
	Type        domain.FeedType `json:"type"`
	User        string          `json:"user"`
	RelatedUser *string         `json:"related_user,omitempty"`
	Friend      *string         `json:"friend,omitempty"`
	Detail      string          `json:"detail"`
	Timestamp   string          `json:"timestamp"`
}

type paymentFeedJSON struct {
	Type        domain.FeedType `json:"type"`
	User        string          `json:"user"`
	RelatedUser *string         `json:"related_user"`
	Detail      string          `json:"detail"`
	Timestamp   string          `json:"timestamp"`
}

type friendAddFeedJSON struct {
	Type      domain.FeedType `json:"type"`
	User      string          `json:"user"`
	Friend    *string         `json:"friend"`
	Detail    string          `json:"detail"`
	Timestamp string          `json:"timestamp"`
}

func (v FeedView) MarshalJSON() ([]byte, error) {
	if v.Type == domain.FeedTypeFriendAdd {
		return json.Marshal(friendAddFeedJSON{
			Type: v.Type, User: v.User, Friend: v.Friend, Detail: v.Detail, Timestamp: v.Timestamp,
		})
	}
	return json.Marshal(paymentFeedJSON{
		Type: v.Type, User: v.User, RelatedUser: v.RelatedUser, Detail: v.Detail, Timestamp: v.Timestamp,
	})
}

func renderFeed(entries []domain.FeedEntry) []FeedView {
	views := make([]FeedView, len(entries))
	for i, entry := range entries {
		views[i] = FeedView{
			Type:      entry.Type,
			User:      entry.UserName,
			Detail:    entry.Detail,
			Timestamp: entry.CreatedAt.Format(time.RFC3339Nano),
		}
		if entry.Type == domain.FeedTypeFriendAdd {
			views[i].Friend = entry.RelatedUserName
		} else {
			views[i].RelatedUser = entry.RelatedUserName
		}
	}
	return views
}

// Index GET ActivityRoute.
func (h *ActivityHandler) Index(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	activity, err := h.feedSvs.ActivityFor(reqCtx, userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, renderFeed(activity))
}
