package cli

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	Config  string `long:"config" description:"Path to config file" default:"tubereport.yaml"`
	JSON    bool   `long:"json" description:"Output in JSON format"`
	Verbose bool   `long:"verbose" description:"Enable verbose output"`
	Version bool   `long:"version" description:"Show version and exit"`
}

// RunCommand — fetch new uploads, merge caches, rewrite the report.
type RunCommand struct {
	Output   string `long:"output" description:"Override the report output path"`
	CacheDir string `long:"cache-dir" description:"Override the cache directory"`

	globals *GlobalFlags
	version string
}

// StatusCommand — show per-channel cache state without network calls.
type StatusCommand struct {
	globals *GlobalFlags
	version string
}
