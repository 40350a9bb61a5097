package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/urldoc"
	"github.com/fwojciec/urldoc/csv"
	"github.com/fwojciec/urldoc/fs"
	"github.com/fwojciec/urldoc/goquery"
	"github.com/fwojciec/urldoc/harvest"
	"github.com/fwojciec/urldoc/htmltomarkdown"
	urlhttp "github.com/fwojciec/urldoc/http"
	"github.com/fwojciec/urldoc/pdfcpu"
	"github.com/fwojciec/urldoc/readability"
	urlslog "github.com/fwojciec/urldoc/slog"
	"github.com/fwojciec/urldoc/sqlite"
	"github.com/fwojciec/urldoc/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// ConfigPaths are YAML files consulted for flag values not given on
	// the command line. Missing files are ignored.
	ConfigPaths []string

	// SQLite database, opened when --db is set.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPaths: []string{DefaultConfigFile},
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("urldoc"),
		kong.Description("Download a list of URLs and extract their text into a CSV corpus"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Configuration(YAML, m.ConfigPaths...),
		kong.Vars{"user_agent": urlhttp.DefaultUserAgent},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger := newLogger(stdout, cli.LogLevel)

	layout := fs.NewLayout(cli.OutputDirectory)
	if err := layout.Ensure(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return err
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		Layout: layout,
	}

	fetcher := urlhttp.NewFetcher(
		urlhttp.WithTimeout(cli.Timeout),
		urlhttp.WithUserAgent(cli.UserAgent),
	)

	extractor := &harvest.Extractor{
		HTML: newHTMLExtractor(cli.Format, newContentFilter(cli.MainContent)),
		PDF:  pdfcpu.NewTextExtractor(),
	}

	writers := harvest.MultiWriter{
		urlslog.NewLoggingRecordWriter(&csv.RecordWriter{Path: layout.ContentPath()}, layout.ContentPath(), logger),
	}
	if cli.DB {
		m.DB = sqlite.NewDB(layout.DatabasePath())
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", layout.DatabasePath(), err)
		}
		defer m.Close()

		store := sqlite.NewRecordStore(m.DB)
		writers = append(writers, urlslog.NewLoggingRecordWriter(store, layout.DatabasePath(), logger))
	}

	deps.Batch = &harvest.Batch{
		Source: &csv.URLReader{Path: cli.InputCSV},
		Processor: &harvest.Processor{
			Fetcher:   urlslog.NewLoggingFetcher(fetcher, logger),
			Extractor: urlslog.NewLoggingTextExtractor(extractor, logger),
			FilesDir:  layout.FilesDir(),
		},
		Writer: writers,
	}

	cmd := &HarvestCmd{
		InputCSV: cli.InputCSV,
		URLField: cli.URLField,
	}
	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config kong.ConfigFlag `help:"YAML file with default flag values" placeholder:"FILE"`

	OutputDirectory string `short:"o" required:"" type:"path" help:"Directory for downloaded files and content.csv"`
	InputCSV        string `short:"i" name:"input-csv" required:"" type:"existingfile" help:"CSV file listing the URLs"`
	URLField        string `short:"u" name:"url-field" required:"" help:"Name of the column holding the URLs"`

	Timeout     time.Duration `default:"30s" help:"Timeout per download"`
	UserAgent   string        `default:"${user_agent}" help:"User-Agent header sent with every request"`
	Format      string        `enum:"text,markdown" default:"text" help:"Rendering of HTML documents (text, markdown)"`
	MainContent string        `enum:"none,trafilatura,readability" default:"none" help:"Boilerplate removal for HTML documents (none, trafilatura, readability)"`
	DB          bool          `help:"Also store the records in content.db under the output directory"`
	LogLevel    string        `enum:"debug,info,warn,error" default:"info" help:"Log level (debug, info, warn, error)"`
}

func newContentFilter(name string) urldoc.ContentFilter {
	switch name {
	case "trafilatura":
		return trafilatura.NewFilter()
	case "readability":
		return readability.NewFilter()
	default:
		return nil
	}
}

func newHTMLExtractor(format string, filter urldoc.ContentFilter) urldoc.TextExtractor {
	if format == "markdown" {
		return htmltomarkdown.NewTextExtractor(filter)
	}
	return goquery.NewTextExtractor(goquery.WithContentFilter(filter))
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}
