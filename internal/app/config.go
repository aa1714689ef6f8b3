package app

// Config holds runtime configuration for the application.
type Config struct {
	// Report files to extract. Extensions are not trusted.
	Inputs []string

	// Output
	OutputPath string // single input only
	OutputDir  string // defaults to each input's directory
	Format     string
	Manifest   bool

	// Extraction
	Encoding                string
	Strategy                string
	Lenient                 bool
	DisableTransferDecoding bool
	Columns                 map[string]string

	// Behavior
	Verbose bool
}

const (
	defaultFormat   = "csv"
	defaultEncoding = "utf-8"
	defaultStrategy = "largest-markup"
)

// ApplyDefaults fills fields left empty by flags, env and config file.
func ApplyDefaults(cfg *Config) {
	if cfg == nil { return }
	if trim(cfg.Format) == "" && trim(cfg.OutputPath) == "" { cfg.Format = defaultFormat }
	if trim(cfg.Encoding) == "" { cfg.Encoding = defaultEncoding }
	if trim(cfg.Strategy) == "" { cfg.Strategy = defaultStrategy }
}
