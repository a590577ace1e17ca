package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/minivenmo/internal/domain"
	"github.com/fsdevblog/minivenmo/internal/service"
)

type UsersHandler struct {
	userSvs UserServicer
}

func NewUsersHandler(userSvs UserServicer) *UsersHandler {
	return &UsersHandler{
		userSvs: userSvs,
	}
}

type CreateUserParams struct {
	Name    string          `binding:"required,max_bytes=255" form:"name"    json:"name"`
	Balance decimal.Decimal `form:"balance"                   json:"balance"`
}

type UserResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
}

func newUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:      user.ID,
		Name:    user.Name,
		Balance: user.Balance.InexactFloat64(),
	}
}

func newUsersResponse(users []domain.User) []UserResponse {
	response := make([]UserResponse, len(users))
	for i := range users {
		response[i] = newUserResponse(&users[i])
	}
	return response
}

// Create POST CreateUserRoute. Принимает как json, так и form тело.
func (h *UsersHandler) Create(c *gin.Context) {
	var params CreateUserParams
	if !bindParams(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userSvs.CreateUser(reqCtx, service.CreateUserArgs{
		Name:    params.Name,
		Balance: params.Balance,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newUserResponse(user))
}

// Index GET UsersRoute.
func (h *UsersHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	users, err := h.userSvs.ListUsers(reqCtx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUsersResponse(users))
}

// Show GET UserRoute.
func (h *UsersHandler) Show(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userSvs.GetUser(reqCtx, userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}
