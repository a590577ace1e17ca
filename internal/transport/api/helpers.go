package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/fsdevblog/minivenmo/internal/domain"
)

// userIDParam разбирает id юзера из пути. При некорректном значении прерывает запрос со статусом 400 и
// возвращает false.
func userIDParam(c *gin.Context) (int64, bool) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || userID <= 0 {
		_ = c.AbortWithError(http.StatusBadRequest, errors.New("invalid user id")).SetType(gin.ErrorTypePublic)
		return 0, false
	}
	return userID, true
}

// bindParams связывает тело запроса с params. Ошибки валидации отдаются со статусом 422, остальные
// ошибки разбора со статусом 400.
func bindParams(c *gin.Context, params any) bool {
	bindErr := c.ShouldBind(params)
	if bindErr == nil {
		return true
	}
	var valErrs validator.ValidationErrors
	if errors.As(bindErr, &valErrs) {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs.Error()})
		return false
	}
	_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
	return false
}

// abortWithServiceError переводит ошибку сервисного слоя в http статус.
func abortWithServiceError(c *gin.Context, err error) {
	var (
		dupErr   *domain.DuplicateFriendshipError
		inputErr *domain.InvalidInputError
	)
	switch {
	case errors.As(err, &dupErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": dupErr.Error()})
	case errors.Is(err, domain.ErrSelfFriendship):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": domain.ErrSelfFriendship.Error()})
	case errors.As(err, &inputErr):
		_ = c.AbortWithError(http.StatusBadRequest, inputErr).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrRecordNotFound):
		_ = c.AbortWithError(http.StatusNotFound, err).SetType(gin.ErrorTypePrivate)
	case errors.Is(err, domain.ErrInsufficientFunds):
		_ = c.AbortWithError(http.StatusPaymentRequired, domain.ErrInsufficientFunds).SetType(gin.ErrorTypePublic)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}
