package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	response "atelier_couture/internal/adapter/http/dto/response"
	"atelier_couture/internal/usecase"
	"atelier_couture/pkg"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler serves the monthly statistics view and its xlsx export.
//
// `month` and `year` query parameters default to the current month. The
// `by_quantity` flag selects the quantity-weighted aggregation policy; the
// default reproduces the historical per-unit sums.
type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

func (h *ReportHandler) GetMonthlyStats(c *gin.Context) {
	month, year, byQuantity, ok := h.bindStatsQuery(c)
	if !ok {
		return
	}

	sum, err := h.usecase.MonthlyStats(c.Request.Context(), month, year, byQuantity)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMonthlySummary(int(month), year, byQuantity, sum))
}

func (h *ReportHandler) ExportMonthlyStats(c *gin.Context) {
	month, year, byQuantity, ok := h.bindStatsQuery(c)
	if !ok {
		return
	}

	data, name, err := h.usecase.ExportMonthly(c.Request.Context(), month, year, byQuantity)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (h *ReportHandler) bindStatsQuery(c *gin.Context) (time.Month, int, bool, bool) {
	now := time.Now()
	month := int(now.Month())
	year := now.Year()

	if raw := c.Query("month"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			h.badStatsQuery(c)
			return 0, 0, false, false
		}
		month = v
	}
	if raw := c.Query("year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			h.badStatsQuery(c)
			return 0, 0, false, false
		}
		year = v
	}

	byQuantity := false
	if raw := c.Query("by_quantity"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			h.badStatsQuery(c)
			return 0, 0, false, false
		}
		byQuantity = v
	}
	return time.Month(month), year, byQuantity, true
}

func (h *ReportHandler) badStatsQuery(c *gin.Context) {
	appErr := pkg.NewDomainErrorSimple("INVALID_STATS_QUERY", "Invalid month/year/by_quantity query parameters", http.StatusBadRequest)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMonth), errors.Is(err, usecase.ErrInvalidYear):
		return pkg.NewDomainErrorSimple("INVALID_STATS_QUERY", err.Error(), http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
