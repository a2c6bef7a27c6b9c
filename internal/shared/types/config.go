package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Database       string   `json:"database" yaml:"database" toml:"database"`
	ReportName     string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType     string   `json:"report_type" yaml:"report_type" toml:"report_type"`
	ExportFormats  []string `json:"export_formats" yaml:"export_formats" toml:"export_formats"`
	Dir            string   `json:"dir" yaml:"dir" toml:"dir"`
	StartDate      string   `json:"start_date" yaml:"start_date" toml:"start_date"`
	EndDate        string   `json:"end_date" yaml:"end_date" toml:"end_date"`
	Products       []string `json:"products" yaml:"products" toml:"products"`
	Categories     []string `json:"categories" yaml:"categories" toml:"categories"`
	Trend          bool     `json:"trend" yaml:"trend" toml:"trend"`
	ListenAddr     string   `json:"listen_addr" yaml:"listen_addr" toml:"listen_addr"`
	RefreshSeconds int      `json:"refresh_seconds" yaml:"refresh_seconds" toml:"refresh_seconds"`
	Paused         bool     `json:"paused" yaml:"paused" toml:"paused"`
}
