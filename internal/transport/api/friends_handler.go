package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type FriendsHandler struct {
	friendshipSvs FriendshipServicer
}

func NewFriendsHandler(friendshipSvs FriendshipServicer) *FriendsHandler {
	return &FriendsHandler{
		friendshipSvs: friendshipSvs,
	}
}

type AddFriendParams struct {
	UserID   int64 `binding:"required,gt=0" form:"user_id"   json:"user_id"`
	FriendID int64 `binding:"required,gt=0" form:"friend_id" json:"friend_id"`
}

// Create POST AddFriendRoute.
func (h *FriendsHandler) Create(c *gin.Context) {
	var params AddFriendParams
	if !bindParams(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	res, err := h.friendshipSvs.AddFriend(reqCtx, params.UserID, params.FriendID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": res.Message})
}

// Index GET FriendsRoute.
func (h *FriendsHandler) Index(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	friends, err := h.friendshipSvs.FriendsOf(reqCtx, userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUsersResponse(friends))
}
