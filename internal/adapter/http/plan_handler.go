package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	planDomain "flexipay-backend/internal/domain/plan"
	"flexipay-backend/internal/usecase/plan"
)

type PlanHandler struct{ uc *plan.Usecase }

func NewPlanHandler(uc *plan.Usecase) *PlanHandler { return &PlanHandler{uc: uc} }

type quoteReq struct {
	Principal           float64  `json:"principal"             validate:"required,gt=0,dec2"`
	InstallmentCount    int      `json:"installment_count"     validate:"required,gte=1,lte=36"`
	Rate                *float64 `json:"rate"                  validate:"omitempty,gte=0"`
	DownPaymentFraction float64  `json:"down_payment_fraction" validate:"omitempty,fraction"`
	Cadence             string   `json:"cadence"               validate:"omitempty,oneof=biweekly monthly"`
	InterestBase        string   `json:"interest_base"         validate:"omitempty,oneof=principal financed"`
	// Canonical date `YYYY-MM-DD`; omitted means today.
	StartDate string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
}

func (h *PlanHandler) Quote(c echo.Context) error {
	var req quoteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	in := plan.QuoteInput{
		Principal:           req.Principal,
		InstallmentCount:    req.InstallmentCount,
		Rate:                req.Rate,
		DownPaymentFraction: req.DownPaymentFraction,
		Cadence:             req.Cadence,
		InterestBase:        req.InterestBase,
	}
	if req.StartDate != "" {
		t, _ := time.Parse("2006-01-02", req.StartDate)
		in.StartDate = &t
	}

	dto, err := h.uc.Quote(c.Request().Context(), in)
	if err != nil {
		var ipe *planDomain.InvalidPlanError
		if errors.As(err, &ipe) {
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: ipe.Reason})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "quote failed"})
	}
	return c.JSON(http.StatusOK, dto)
}
