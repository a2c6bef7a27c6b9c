package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile     string
	Database       string
	ReportName     string
	ReportType     string
	ExportFormats  []string
	Dir            string
	StartDate      string
	EndDate        string
	Products       []string
	Categories     []string
	Trend          bool
	ListenAddr     string
	RefreshSeconds int
	Paused         bool
}
