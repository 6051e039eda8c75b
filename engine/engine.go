package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/veritest/veritest/callable"
	"github.com/veritest/veritest/errors"
	"github.com/veritest/veritest/extension"
	"github.com/veritest/veritest/invoker"
)

// Status classifies the outcome of one test invocation.
type Status int

const (
	// StatusPassed: arguments resolved and the callable returned cleanly.
	StatusPassed Status = iota
	// StatusFailed: arguments resolved but the callable body failed.
	StatusFailed
	// StatusNotRun: parameter resolution failed; the callable never ran.
	StatusNotRun
	// StatusSkipped: never attempted (fail-fast or cancellation).
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "passed"
	case StatusFailed:
		return "failed"
	case StatusNotRun:
		return "not run"
	default:
		return "skipped"
	}
}

// Result is the outcome of one test.
type Result struct {
	Err      error
	Name     string
	Duration time.Duration
	Status   Status
}

// Test pairs a display name with the callable to invoke.
type Test struct {
	Callable *callable.Callable
	Name     string
	Tags     []string
}

// Suite is a named collection of tests sharing one resolver registry.
// Registration is not safe concurrently with Run.
type Suite struct {
	registry *extension.Registry
	name     string
	tests    []Test
}

// NewSuite creates an empty suite with its own resolver registry.
func NewSuite(name string) *Suite {
	return &Suite{
		name:     name,
		registry: extension.NewRegistry(),
	}
}

// Name returns the suite's display name.
func (s *Suite) Name() string {
	return s.name
}

// Registry exposes the suite's resolver registry.
func (s *Suite) Registry() *extension.Registry {
	return s.registry
}

// Use registers a parameter resolver for every test in the suite.
func (s *Suite) Use(r extension.Resolver) error {
	return s.registry.Register(r)
}

// Add describes fn and appends it as a test. Parameters of fn are resolved
// through the suite registry at run time.
func (s *Suite) Add(name string, fn any, tags ...string) error {
	c, err := callable.ForFunc(name, fn)
	if err != nil {
		return err
	}
	s.tests = append(s.tests, Test{Name: name, Callable: c, Tags: tags})
	return nil
}

// Tests returns the registered tests in registration order.
func (s *Suite) Tests() []Test {
	return s.tests
}

// RunOne executes a single test by index under a fresh root context.
// Used by interactive tooling; out-of-range indexes report a not-found
// diagnostic.
func (s *Suite) RunOne(ctx context.Context, index int, cfg *Config) Result {
	if index < 0 || index >= len(s.tests) {
		return Result{
			Name:   fmt.Sprintf("#%d", index),
			Status: StatusNotRun,
			Err:    errors.NotFound(errors.PhaseRun, "test", fmt.Sprintf("#%d", index)),
		}
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if ctx.Err() != nil {
		return Result{Name: s.tests[index].Name, Status: StatusSkipped, Err: ctx.Err()}
	}
	return s.runOne(extension.NewContext(s.name), s.tests[index], cfg)
}

// Run executes every test and returns one Result per test, in registration
// order, plus the aggregated error of all non-passing tests. Independent
// tests run across cfg.Parallel workers; ctx cancellation stops scheduling
// between tests, never inside a resolution sequence.
func (s *Suite) Run(ctx context.Context, cfg *Config) ([]Result, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg.normalize()
	log := Logger()

	root := extension.NewContext(s.name)
	results := make([]Result, len(s.tests))

	var (
		wg      sync.WaitGroup
		stopped sync.Once
		stop    = make(chan struct{})
	)
	jobs := make(chan int)

	for w := 0; w < cfg.Parallel; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = s.runOne(root, s.tests[i], cfg)
				if cfg.FailFast && results[i].Status != StatusPassed {
					stopped.Do(func() { close(stop) })
				}
			}
		}()
	}

	for i := range s.tests {
		// Stop conditions win over scheduling when both are ready.
		if ctx.Err() != nil {
			results[i] = Result{Name: s.tests[i].Name, Status: StatusSkipped, Err: ctx.Err()}
			continue
		}
		select {
		case <-stop:
			results[i] = Result{Name: s.tests[i].Name, Status: StatusSkipped}
			continue
		default:
		}
		select {
		case <-ctx.Done():
			results[i] = Result{Name: s.tests[i].Name, Status: StatusSkipped, Err: ctx.Err()}
		case <-stop:
			results[i] = Result{Name: s.tests[i].Name, Status: StatusSkipped}
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	var agg error
	for _, r := range results {
		switch r.Status {
		case StatusFailed, StatusNotRun:
			agg = multierr.Append(agg, fmt.Errorf("%s: %w", r.Name, r.Err))
		}
	}

	log.Info("suite finished",
		zap.String("suite", s.name),
		zap.Int("tests", len(s.tests)),
		zap.Bool("ok", agg == nil),
	)
	return results, agg
}

func (s *Suite) runOne(root *extension.Context, t Test, cfg *Config) (res Result) {
	log := Logger()
	testCtx := root.Child(t.Name, t.Tags...)

	var opts []invoker.Option
	if cfg.Verbose {
		opts = append(opts, invoker.WithLogger(log))
	}
	iv := invoker.New(testCtx, s.registry, opts...)

	start := time.Now()
	res = Result{Name: t.Name}

	defer func() {
		res.Duration = time.Since(start)
		if r := recover(); r != nil {
			res.Status = StatusFailed
			res.Err = fmt.Errorf("test panic: %v", r)
		}
		log.Debug("test finished",
			zap.String("test", t.Name),
			zap.String("status", res.Status.String()),
			zap.Duration("duration", res.Duration),
			zap.Error(res.Err),
		)
	}()

	_, err := iv.InvokeStatic(t.Callable)
	switch {
	case err == nil:
		res.Status = StatusPassed
	default:
		res.Err = err
		// Resolution diagnostics mean the test could not run; anything
		// else is the test body's own failure. The two stay distinguishable
		// for reporting.
		if _, ok := errors.AsResolution(err); ok {
			res.Status = StatusNotRun
		} else {
			res.Status = StatusFailed
		}
	}
	return res
}
