package services

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/matthewskitchen/MatthewsKitchenBackEnd/entity"
	"github.com/matthewskitchen/MatthewsKitchenBackEnd/repository"

	"github.com/jung-kurt/gofpdf"
)

type ReportService struct {
	Repo *repository.OrderRepository
}

func NewReportService(repo *repository.OrderRepository) *ReportService {
	return &ReportService{Repo: repo}
}

// RangeReport is request-scoped — derived from the order store, never stored.
type RangeReport struct {
	From             string  `json:"from"`
	To               string  `json:"to"`
	TotalOrders      int     `json:"totalOrders"`
	Delivered        int     `json:"delivered"`
	Preparing        int     `json:"preparing"`
	DeliveredRevenue float64 `json:"deliveredRevenue"`
}

const dateLayout = "2006-01-02"

// Range computes order counts and delivered-only revenue over [from, to],
// inclusive calendar dates in the local zone. Orders without an ordered
// timestamp are excluded entirely.
func (s *ReportService) Range(from, to time.Time) (*RangeReport, error) {
	if to.Before(from) {
		return nil, ErrInvalidDateRange
	}
	start := startOfDay(from)
	end := startOfDay(to).AddDate(0, 0, 1)

	orders, err := s.Repo.FindOrderedBetween(start, end)
	if err != nil {
		return nil, err
	}

	rep := &RangeReport{
		From: from.Format(dateLayout),
		To:   to.Format(dateLayout),
	}
	for _, o := range orders {
		rep.TotalOrders++
		switch o.OrderStatus {
		case entity.StatusDelivered:
			rep.Delivered++
			// revenue นับเฉพาะ delivered
			rep.DeliveredRevenue += o.FinalAmount
		case entity.StatusPreparing:
			rep.Preparing++
		}
	}
	return rep, nil
}

func (s *ReportService) Day(date time.Time) (*RangeReport, error) {
	return s.Range(date, date)
}

// Month takes an ISO month ("2025-11") and reports over the whole month.
func (s *ReportService) Month(month string) (*RangeReport, error) {
	ym, err := time.ParseInLocation("2006-01", month, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: month must look like 2025-11", ErrInvalidDateRange)
	}
	start := ym
	end := ym.AddDate(0, 1, -1)
	return s.Range(start, end)
}

// PDF renders the range report as a one-page document: title, period line,
// and a two-column key/value table. Numbers come straight from Range.
func (s *ReportService) PDF(from, to time.Time) ([]byte, error) {
	rep, err := s.Range(from, to)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 12, "Mathews Kitchen - Sales Report", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Period: %s to %s", rep.From, rep.To), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	rows := [][2]string{
		{"Delivered Revenue", "Rs. " + strconv.FormatFloat(rep.DeliveredRevenue, 'f', 2, 64)},
		{"Total Delivered Orders", strconv.Itoa(rep.Delivered)},
		{"Total Orders", strconv.Itoa(rep.TotalOrders)},
	}
	for _, row := range rows {
		pdf.CellFormat(70, 9, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 9, row[1], "1", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf report: %w", err)
	}
	return buf.Bytes(), nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.In(time.Local).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
