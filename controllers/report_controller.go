package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/matthewskitchen/MatthewsKitchenBackEnd/pkg/resp"
	"github.com/matthewskitchen/MatthewsKitchenBackEnd/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Service *services.ReportService
}

func NewReportController(svc *services.ReportService) *ReportController {
	return &ReportController{Service: svc}
}

func parseDate(c *gin.Context, key string) (time.Time, bool) {
	t, err := time.ParseInLocation("2006-01-02", c.Query(key), time.Local)
	if err != nil {
		resp.BadRequest(c, fmt.Sprintf("query param %q must be a yyyy-MM-dd date", key))
		return time.Time{}, false
	}
	return t, true
}

// GET /admin/reports/day?date=2025-03-15
func (rc *ReportController) Day(c *gin.Context) {
	date, ok := parseDate(c, "date")
	if !ok {
		return
	}
	rep, err := rc.Service.Day(date)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rep)
}

// GET /admin/reports/month?month=2025-03
func (rc *ReportController) Month(c *gin.Context) {
	rep, err := rc.Service.Month(c.Query("month"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidDateRange) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rep)
}

// GET /admin/reports/range?from=2025-03-01&to=2025-03-31
func (rc *ReportController) Range(c *gin.Context) {
	from, ok := parseDate(c, "from")
	if !ok {
		return
	}
	to, ok := parseDate(c, "to")
	if !ok {
		return
	}
	rep, err := rc.Service.Range(from, to)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDateRange) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rep)
}

// GET /admin/reports/pdf?from=...&to=... → ดาวน์โหลดไฟล์
func (rc *ReportController) PDF(c *gin.Context) {
	from, ok := parseDate(c, "from")
	if !ok {
		return
	}
	to, ok := parseDate(c, "to")
	if !ok {
		return
	}
	pdfBytes, err := rc.Service.PDF(from, to)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDateRange) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	filename := fmt.Sprintf("report-%s_to_%s.pdf", from.Format("2006-01-02"), to.Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
