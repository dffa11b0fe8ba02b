package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile   string
	Inventory    []string
	Transactions []string
	BranchID     *int64
	BranchName   string
	Start        string
	End          string
	Search       string
	ReportName   string
	ReportType   []string
	Dir          string
	Trend        bool
	Period       string
}
