package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmarques/sales-dashboard-go/internal/domain/entity"
	"github.com/rmarques/sales-dashboard-go/internal/shared/types"
)

// statusForError traduz erros de entrada do usuário em 400; o resto é 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, types.ErrUnknownReportType),
		errors.Is(err, types.ErrInvalidDate),
		errors.Is(err, types.ErrInvalidDateRange),
		errors.Is(err, types.ErrUnsupportedFormat):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// reportFromQuery materializa o relatório descrito pelos parâmetros da URL.
func (s *Server) reportFromQuery(c *gin.Context) (*entity.Report, error) {
	reportType, err := entity.ParseReportType(c.Query("report"))
	if err != nil {
		return nil, err
	}
	filter, err := s.useCase.BuildFilter(
		c.Query("start_date"),
		c.Query("end_date"),
		c.QueryArray("products"),
		c.QueryArray("categories"),
	)
	if err != nil {
		return nil, err
	}
	return s.useCase.BuildReport(c.Request.Context(), reportType, filter)
}

func (s *Server) handleFilters(c *gin.Context) {
	options, err := s.useCase.FilterOptions(c.Request.Context())
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"data":    options,
	})
}

func (s *Server) handleReport(c *gin.Context) {
	rep, err := s.reportFromQuery(c)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"data":    rep,
	})
}

func (s *Server) handleTrend(c *gin.Context) {
	filter, err := s.useCase.BuildFilter(
		c.Query("start_date"),
		c.Query("end_date"),
		c.QueryArray("products"),
		c.QueryArray("categories"),
	)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	trend, err := s.useCase.MonthlyTrend(c.Request.Context(), filter)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"data":    trend,
	})
}

// handleExport devolve o artefato pedido como download direto, sem
// tocar o disco do servidor.
func (s *Server) handleExport(c *gin.Context) {
	rep, err := s.reportFromQuery(c)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	format := c.Query("format")
	data, contentType, err := s.useCase.RenderExport(rep, format)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=sales_report.%s", format))
	c.Data(http.StatusOK, contentType, data)
}

// handleChartPage serve o gráfico interativo isolado, pronto para ser
// embutido no dashboard via iframe.
func (s *Server) handleChartPage(c *gin.Context) {
	rep, err := s.reportFromQuery(c)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	page, _, err := s.useCase.RenderExport(rep, "html")
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

func (s *Server) redirectToDashboard(c *gin.Context) {
	c.Redirect(http.StatusFound, "/dashboard")
}
