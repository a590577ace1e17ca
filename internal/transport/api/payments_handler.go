package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/minivenmo/internal/domain"
	"github.com/fsdevblog/minivenmo/internal/service"
)

type PaymentsHandler struct {
	paymentSvs PaymentServicer
}

func NewPaymentsHandler(paymentSvs PaymentServicer) *PaymentsHandler {
	return &PaymentsHandler{
		paymentSvs: paymentSvs,
	}
}

type PayParams struct {
	PayerID    int64           `binding:"required,gt=0"          form:"payer"    json:"payer"`
	ReceiverID int64           `binding:"required,gt=0"          form:"receiver" json:"receiver"`
	Amount     decimal.Decimal `form:"amount"                    json:"amount"`
	Reason     string          `binding:"required,max_bytes=255" form:"reason"   json:"reason"`
}

type PayResponse struct {
	Message          string               `json:"message"`
	RemainingBalance float64              `json:"remaining_balance"`
	FundingSource    domain.FundingSource `json:"funding_source"`
	CreditCardID     *int64               `json:"credit_card_id,omitempty"`
}

// Pay POST PayRoute.
func (h *PaymentsHandler) Pay(c *gin.Context) {
	var params PayParams
	if !bindParams(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	res, err := h.paymentSvs.Pay(reqCtx, service.PayArgs{
		PayerID:    params.PayerID,
		ReceiverID: params.ReceiverID,
		Amount:     params.Amount,
		Reason:     params.Reason,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, PayResponse{
		Message:          res.Detail,
		RemainingBalance: res.RemainingBalance.InexactFloat64(),
		FundingSource:    res.FundingSource,
		CreditCardID:     res.CreditCardID,
	})
}
