package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	advanceDomain "flexipay-backend/internal/domain/advance"
	planDomain "flexipay-backend/internal/domain/plan"
	"flexipay-backend/internal/usecase/advance"
)

type AdvanceHandler struct{ uc *advance.Usecase }

func NewAdvanceHandler(uc *advance.Usecase) *AdvanceHandler { return &AdvanceHandler{uc: uc} }

type createAdvanceReq struct {
	BorrowerID       string  `json:"borrower_id"       validate:"required,hex32"`
	Principal        float64 `json:"principal"         validate:"required,gt=0,dec2"`
	InstallmentCount int     `json:"installment_count" validate:"required,gte=1,lte=36"`
}

type payInstallmentReq struct {
	Amount float64 `json:"amount" validate:"required,gt=0,dec2"`
}

func (h *AdvanceHandler) CreateAdvance(c echo.Context) error {
	var req createAdvanceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Create(c.Request().Context(), advance.CreateAdvanceInput{
		BorrowerID:       req.BorrowerID,
		Principal:        req.Principal,
		InstallmentCount: req.InstallmentCount,
	})
	if err != nil {
		var ipe *planDomain.InvalidPlanError
		switch {
		case errors.Is(err, advanceDomain.ErrActiveExists):
			return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		case errors.As(err, &ipe):
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: ipe.Reason})
		default:
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *AdvanceHandler) GetAdvance(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("advance_id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *AdvanceHandler) GetSchedule(c echo.Context) error {
	list, err := h.uc.GetSchedule(c.Request().Context(), c.Param("advance_id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	return c.JSON(http.StatusOK, map[string]any{"schedule": list})
}

func (h *AdvanceHandler) PayInstallment(c echo.Context) error {
	seq, err := strconv.Atoi(c.Param("seq"))
	if err != nil || seq < 1 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid installment seq"})
	}
	var req payInstallmentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.PayInstallment(c.Request().Context(), advance.PayInstallmentInput{
		AdvanceID: c.Param("advance_id"),
		Seq:       seq,
		Amount:    req.Amount,
	})
	if err != nil {
		switch {
		case errors.Is(err, advanceDomain.ErrNotFound),
			errors.Is(err, advanceDomain.ErrInstallmentNotFound):
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		case errors.Is(err, advanceDomain.ErrAlreadyPaid):
			return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		case errors.Is(err, advanceDomain.ErrAmountMismatch):
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "payment failed"})
		}
	}
	return c.JSON(http.StatusOK, dto)
}
