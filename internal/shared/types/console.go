package types

// ConsoleInterface define a interface para saída no console.
type ConsoleInterface interface {
	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	Status(message string) StatusHandle
	Progress(items []string) ProgressHandle

	CreateTable() TableInterface
	DisplayTrendBars(monthlySales []MonthlySales)
	DisplayKPIs(summary KPISummary)

	ProgressWithTotal(total int) ProgressHandle
}

// StatusHandle é uma interface para atualizar uma mensagem de status.
type StatusHandle interface {
	Update(message string)
	Stop()
}

// ProgressHandle é uma interface para atualizar uma barra de progresso.
type ProgressHandle interface {
	Increment()
	Stop()
}

// TableInterface define a interface para criar e manipular tabelas.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}

// MonthlySales representa o total vendido em um mês, usado para gráficos de tendência.
type MonthlySales struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// KPISummary agrega os indicadores exibidos no painel.
type KPISummary struct {
	TotalAmount   float64 `json:"total_amount"`
	TotalQuantity float64 `json:"total_quantity"`
	ProductCount  int     `json:"product_count"`
	CategoryCount int     `json:"category_count"`
	HasQuantity   bool    `json:"-"`
	HasProducts   bool    `json:"-"`
	HasCategories bool    `json:"-"`
}
