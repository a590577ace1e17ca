package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/minivenmo/internal/domain"
	"github.com/fsdevblog/minivenmo/internal/service"
)

type CardsHandler struct {
	userSvs UserServicer
}

func NewCardsHandler(userSvs UserServicer) *CardsHandler {
	return &CardsHandler{
		userSvs: userSvs,
	}
}

type AddCreditCardParams struct {
	// при увеличении max_bytes нужно выполнить миграцию на увеличение максимальной длины поля number.
	Number string          `binding:"required,min=12,max_bytes=19,luhn" form:"number" json:"number"`
	Limit  decimal.Decimal `form:"limit"                               json:"limit"`
}

type CreditCardResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Number      string    `json:"number"`
	Limit       float64   `json:"limit"`
	Consumption float64   `json:"consumption"`
	Balance     float64   `json:"balance"`
	CreatedAt   time.Time `json:"created_at"`
}

func newCreditCardResponse(card *domain.CreditCard) CreditCardResponse {
	return CreditCardResponse{
		ID:          card.ID,
		UserID:      card.UserID,
		Number:      card.Number,
		Limit:       card.Limit.InexactFloat64(),
		Consumption: card.Consumption.InexactFloat64(),
		Balance:     card.Balance.InexactFloat64(),
		CreatedAt:   card.CreatedAt,
	}
}

// Create POST CreditCardsRoute.
func (h *CardsHandler) Create(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	var params AddCreditCardParams
	if !bindParams(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	card, err := h.userSvs.AddCreditCard(reqCtx, service.AddCreditCardArgs{
		UserID: userID,
		Number: params.Number,
		Limit:  params.Limit,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newCreditCardResponse(card))
}

// Index GET CreditCardsRoute.
func (h *CardsHandler) Index(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	cards, err := h.userSvs.CreditCardsOf(reqCtx, userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := make([]CreditCardResponse, len(cards))
	for i := range cards {
		response[i] = newCreditCardResponse(&cards[i])
	}
	c.JSON(http.StatusOK, response)
}
