package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"atelier_couture/internal/domain/entities"
	"atelier_couture/internal/domain/reporting"
	"atelier_couture/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

var (
	ErrInvalidMonth = errors.New("invalid month")
	ErrInvalidYear  = errors.New("invalid year")
)

const statsCacheTTL = 5 * time.Minute

// IReportUseCase exposes the monthly statistics view and its spreadsheet
// export.
type IReportUseCase interface {
	MonthlyStats(ctx context.Context, month time.Month, year int, byQuantity bool) (reporting.MonthlySummary, error)
	ExportMonthly(ctx context.Context, month time.Month, year int, byQuantity bool) ([]byte, string, error)
}

type ReportUseCase struct {
	repo  interfaces.IOrderRepository
	cache interfaces.IStatsCache
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(repo interfaces.IOrderRepository, cache interfaces.IStatsCache) *ReportUseCase {
	return &ReportUseCase{repo: repo, cache: cache}
}

// MonthlyStats computes the summary for one calendar month over the full
// backend snapshot. Results are cached briefly; cache failures only log,
// the statistics themselves always come back.
func (u *ReportUseCase) MonthlyStats(ctx context.Context, month time.Month, year int, byQuantity bool) (reporting.MonthlySummary, error) {
	if month < time.January || month > time.December {
		return reporting.MonthlySummary{}, ErrInvalidMonth
	}
	if year < 1 {
		return reporting.MonthlySummary{}, ErrInvalidYear
	}

	key := statsCacheKey(month, year, byQuantity)
	if u.cache != nil {
		if cached, ok, err := u.cache.GetSummary(ctx, key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("stats cache read failed")
		} else if ok {
			return cached, nil
		}
	}

	orders, err := u.repo.List(ctx)
	if err != nil {
		return reporting.MonthlySummary{}, err
	}

	sum := reporting.Monthly(orders, month, year, reporting.Options{MultiplyByQuantity: byQuantity})

	if u.cache != nil {
		if err := u.cache.SetSummary(ctx, key, sum, statsCacheTTL); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("stats cache write failed")
		}
	}
	return sum, nil
}

// ExportMonthly renders the month's summary and its matching orders as an
// xlsx workbook and returns the serialized bytes with a suggested filename.
func (u *ReportUseCase) ExportMonthly(ctx context.Context, month time.Month, year int, byQuantity bool) ([]byte, string, error) {
	sum, err := u.MonthlyStats(ctx, month, year, byQuantity)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	set := func(cell string, value interface{}) {
		_ = f.SetCellValue(sheet, cell, value)
	}

	set("A1", fmt.Sprintf("Commandes %04d-%02d", year, int(month)))
	set("A2", "Nombre de commandes")
	set("B2", sum.OrdersCount)
	set("A3", "Chiffre d'affaires")
	set("B3", sum.TotalRevenue)
	set("A4", "Bénéfice")
	set("B4", sum.TotalProfit)

	headers := []string{"Client", "Modèle", "Couleur", "Taille", "Prix tissu", "Prix vente", "Bénéfice", "Quantité", "Statut", "Créée le"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		set(col+"6", h)
	}
	for i, o := range sum.Orders {
		row := fmt.Sprintf("%d", i+7)
		set("A"+row, o.ClientName)
		set("B"+row, o.Model)
		set("C"+row, o.FabricColor)
		set("D"+row, o.Size)
		set("E"+row, o.FabricPrice)
		set("F"+row, o.SellingPrice)
		set("G"+row, o.Profit)
		set("H"+row, o.Quantity())
		set("I"+row, entities.StatusByOptionalValue(o.Status).Label)
		set("J"+row, o.CreatedAt.Format("2006-01-02"))
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	name := fmt.Sprintf("commandes-%04d-%02d.xlsx", year, int(month))
	return buf.Bytes(), name, nil
}

func statsCacheKey(month time.Month, year int, byQuantity bool) string {
	policy := "unit"
	if byQuantity {
		policy = "qty"
	}
	return fmt.Sprintf("stats:%04d-%02d:%s", year, int(month), policy)
}
