package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/veritest/veritest"
	"github.com/veritest/veritest/callable"
	"github.com/veritest/veritest/engine"
	"github.com/veritest/veritest/extension"
)

func main() {
	var (
		configFile  = flag.String("config", "", "Path to yaml run config")
		parallel    = flag.Int("parallel", 0, "Worker count (overrides config)")
		failFast    = flag.Bool("fail-fast", false, "Stop after the first failure")
		verbose     = flag.Bool("v", false, "Verbose logging")
		list        = flag.Bool("list", false, "List registered tests and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	cfg := engine.DefaultConfig()
	if *configFile != "" {
		loaded, err := engine.LoadConfig(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *parallel > 0 {
		cfg.Parallel = *parallel
	}
	if *failFast {
		cfg.FailFast = true
	}
	if *verbose {
		cfg.Verbose = true
		log, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = log.Sync() }()
		engine.SetLogger(log)
	}

	suite := demoSuite()

	if *list {
		for _, t := range suite.Tests() {
			fmt.Println(t.Name)
		}
		return
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(suite, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(suite, cfg); err != nil {
		os.Exit(1)
	}
}

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#90EE90"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	skipStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

func run(suite *engine.Suite, cfg *engine.Config) error {
	results, err := suite.Run(context.Background(), cfg)

	for _, r := range results {
		style := passStyle
		switch r.Status {
		case engine.StatusFailed, engine.StatusNotRun:
			style = failStyle
		case engine.StatusSkipped:
			style = skipStyle
		}
		fmt.Printf("%s  %s (%s)\n", style.Render(fmt.Sprintf("%-8s", r.Status)), r.Name, r.Duration.Round(time.Microsecond))
		if r.Err != nil {
			fmt.Printf("          %s\n", failStyle.Render(r.Err.Error()))
		}
	}
	return err
}

// demoSuite showcases resolution outcomes: clean runs, a failing body, a
// parameter nothing resolves, and a deliberately ambiguous parameter.
func demoSuite() *engine.Suite {
	s := engine.NewSuite("demo")

	must := func(err error) {
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	must(s.Use(extension.RunInfoResolver{}))
	must(s.Use(extension.Supply(8080)))
	must(s.Use(extension.SupplyFunc(func(ctx *extension.Context) (time.Time, error) {
		return time.Now(), nil
	})))
	must(s.Use(extension.SupplyFunc(func(ctx *extension.Context) (string, error) {
		return "res-" + ctx.ID()[:8], nil
	})))
	// Both claim apiToken parameters; the ambiguity is deliberate.
	must(s.Use(vaultToken{}))
	must(s.Use(envToken{}))

	must(s.Add("resolves run info", func(ri *extension.RunInfo) error {
		if ri.Name != "resolves run info" {
			return fmt.Errorf("unexpected run name %q", ri.Name)
		}
		return nil
	}))
	must(s.Add("resolves port and label", func(port int, label string) error {
		if port != 8080 || label == "" {
			return fmt.Errorf("got %d %q", port, label)
		}
		return nil
	}))
	must(s.Add("assertion fails", func(port int) error {
		return fmt.Errorf("expected port 9090, got %d", port)
	}))
	must(s.Add("nothing resolves a float", func(ratio float64) {}))
	must(s.Add("ambiguous token", func(tok apiToken) {}))
	must(s.Add("slow but fine", func(started time.Time) {
		time.Sleep(25 * time.Millisecond)
	}))

	return s
}

type apiToken string

type vaultToken struct{}

func (vaultToken) Supports(p *callable.Parameter, _ veritest.Value, _ *extension.Context) bool {
	return p.Type().Reflect() == callable.TypeFor[apiToken]().Reflect()
}

func (vaultToken) Resolve(*callable.Parameter, veritest.Value, *extension.Context) (veritest.Value, error) {
	return veritest.ValueOf(apiToken("vault:demo")), nil
}

type envToken struct{}

func (envToken) Supports(p *callable.Parameter, _ veritest.Value, _ *extension.Context) bool {
	return p.Type().Reflect() == callable.TypeFor[apiToken]().Reflect()
}

func (envToken) Resolve(*callable.Parameter, veritest.Value, *extension.Context) (veritest.Value, error) {
	return veritest.ValueOf(apiToken(os.Getenv("DEMO_TOKEN"))), nil
}
