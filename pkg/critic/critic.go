package critic

import (
	"log/slog"
	"sort"
	"time"

	"perlhq/critic/pkg/ptree"
	"perlhq/critic/pkg/ptree/lexer"
)

// Critic applies a fixed set of policies to documents. It holds no state
// between critiques and is safe for concurrent use.
type Critic struct {
	policies   []Policy
	severities map[string]Severity
	logger     *slog.Logger
	observer   Observer
}

// Observer receives timing and count callbacks from the runner, typically
// backed by telemetry metrics. A nil observer is ignored.
type Observer interface {
	PolicyChecked(policy string, violations int, duration time.Duration)
}

// Option configures a Critic.
type Option func(*Critic)

// WithSeverityOverrides replaces the default severity of the named policies
// on every violation they produce.
func WithSeverityOverrides(overrides map[string]Severity) Option {
	return func(c *Critic) { c.severities = overrides }
}

// WithObserver attaches an observer for per-policy telemetry.
func WithObserver(o Observer) Option {
	return func(c *Critic) { c.observer = o }
}

// New creates a Critic running the given policies. A nil logger falls back
// to slog.Default.
func New(policies []Policy, logger *slog.Logger, opts ...Option) *Critic {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Critic{
		policies: policies,
		logger:   logger.With("component", "critic"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Critique applies every policy to every statement of the document and
// returns the violations in source order. The document tree is borrowed for
// the duration of the call only.
func (c *Critic) Critique(doc *ptree.Node) []Violation {
	var out []Violation
	statements := ptree.Statements(doc)

	for _, p := range c.policies {
		start := time.Now()
		count := 0
		for _, stmt := range statements {
			for _, v := range p.Check(stmt) {
				v.Severity = c.severityFor(p)
				out = append(out, v)
				count++
			}
		}
		if c.observer != nil {
			c.observer.PolicyChecked(p.Name(), count, time.Since(start))
		}
	}

	sortBySource(out)
	return out
}

// CritiqueFile parses a Perl source file and critiques it.
func (c *Critic) CritiqueFile(path string) ([]Violation, error) {
	doc, err := lexer.ParseFile(path)
	if err != nil {
		return nil, err
	}
	violations := c.Critique(doc)
	c.logger.Debug("file critiqued",
		"file", path,
		"statements", len(ptree.Statements(doc)),
		"violations", len(violations),
	)
	return violations, nil
}

func (c *Critic) severityFor(p Policy) Severity {
	if sev, ok := c.severities[p.Name()]; ok {
		return sev
	}
	return p.DefaultSeverity()
}

// sortBySource orders violations by file, line, then column. The sort is
// stable so violations from different policies on the same node keep
// registration order.
func sortBySource(vs []Violation) {
	sort.SliceStable(vs, func(i, j int) bool {
		return sourceLess(vs[i].Location, vs[j].Location)
	})
}

func sourceLess(a, b ptree.Location) bool {
	if a.File != b.File {
		return a.File < b.File
	}
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Column < b.Column
}
