// Package web expõe o painel de vendas por HTTP: uma página de
// dashboard renderizada no servidor, a página interativa de gráfico e
// uma pequena API JSON usada para integrações e downloads.
package web

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/rmarques/sales-dashboard-go/internal/application/usecase"
	"github.com/rmarques/sales-dashboard-go/internal/shared/types"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server serves the sales dashboard over HTTP.
type Server struct {
	useCase *usecase.ReportUseCase
	args    *types.CLIArgs
	tmpl    *template.Template
}

// NewServer cria o servidor web com o caso de uso resolvido e os
// argumentos já mesclados (flags, configuração, ambiente).
func NewServer(useCase *usecase.ReportUseCase, args *types.CLIArgs) *Server {
	// Parse all templates in the embedded FS
	tmpl := template.Must(template.New("dashboard").ParseFS(templateFS, "templates/*.html"))

	return &Server{
		useCase: useCase,
		args:    args,
		tmpl:    tmpl,
	}
}

// Router monta as rotas do painel.
func (s *Server) Router() *gin.Engine {
	router := gin.Default()
	router.SetHTMLTemplate(s.tmpl)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	router.GET("/", s.redirectToDashboard)
	router.GET("/dashboard", s.handleDashboard)
	router.GET("/chart", s.handleChartPage)

	api := router.Group("/api")
	{
		api.GET("/filters", s.handleFilters)
		api.GET("/report", s.handleReport)
		api.GET("/trend", s.handleTrend)
		api.GET("/export", s.handleExport)
	}

	return router
}

// Run sobe o servidor e bloqueia até ele encerrar.
func (s *Server) Run(addr string) error {
	fmt.Printf("Sales dashboard listening on %s\n", addr)
	return s.Router().Run(addr)
}
