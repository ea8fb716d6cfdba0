package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	planDomain "flexipay-backend/internal/domain/plan"
	"flexipay-backend/internal/usecase/purchase"
)

type PurchaseHandler struct{ uc *purchase.Usecase }

func NewPurchaseHandler(uc *purchase.Usecase) *PurchaseHandler { return &PurchaseHandler{uc: uc} }

type createPurchaseReq struct {
	BuyerID             string  `json:"buyer_id"              validate:"required,hex32"`
	MerchantName        string  `json:"merchant_name"         validate:"required,max=128"`
	Subtotal            float64 `json:"subtotal"              validate:"required,gt=0,dec2"`
	InstallmentCount    int     `json:"installment_count"     validate:"required,gte=1,lte=36"`
	DownPaymentFraction float64 `json:"down_payment_fraction" validate:"omitempty,fraction"`
}

func (h *PurchaseHandler) CreatePurchase(c echo.Context) error {
	var req createPurchaseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Create(c.Request().Context(), purchase.CreatePurchaseInput{
		BuyerID:             req.BuyerID,
		MerchantName:        req.MerchantName,
		Subtotal:            req.Subtotal,
		InstallmentCount:    req.InstallmentCount,
		DownPaymentFraction: req.DownPaymentFraction,
	})
	if err != nil {
		var ipe *planDomain.InvalidPlanError
		if errors.As(err, &ipe) {
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: ipe.Reason})
		}
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *PurchaseHandler) GetPurchase(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("purchase_id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	return c.JSON(http.StatusOK, dto)
}
