// Package analysis turns a batch of diary entries into a CBT or MBT report
// by prompting a hosted model and decoding its JSON reply.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/theimaginaryfoundation/diary-lens/analysis/provider"
)

const (
	emptyInputError   = "No diary entries provided for analysis"
	emptyInputSummary = "Unable to perform analysis without diary entries."
	failedSummary     = "Analysis failed due to an error."
)

// Status is the terminal state of one Analyze call.
type Status int

const (
	StatusOK Status = iota
	// StatusEmpty means no entries were given; no model call was made.
	StatusEmpty
	// StatusFailed means a failure was captured into an error envelope.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusEmpty:
		return "empty"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Report is the outcome of Analyze. Result is always populated: the decorated
// model reply on success, otherwise an error envelope. Err is set only when
// Status is StatusFailed.
type Report struct {
	Result Result
	Status Status
	Err    *Error
}

// Analyzer runs the format, prompt, model, parse chain. It holds no per-call
// state and is safe for concurrent use.
type Analyzer struct {
	model  provider.Model
	logger *zap.Logger
	now    func() time.Time
}

type Option func(*Analyzer)

// WithLogger sets the logger; the default discards.
func WithLogger(l *zap.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithClock overrides the clock used for analysis_date.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) {
		if now != nil {
			a.now = now
		}
	}
}

func NewAnalyzer(model provider.Model, opts ...Option) *Analyzer {
	a := &Analyzer{
		model:  model,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

var (
	cbtSchema = provider.MustGenerateSchema[CBTReport]()
	mbtSchema = provider.MustGenerateSchema[MBTReport]()
)

// ResponseSchema returns the JSON schema of the report requested for mode.
func ResponseSchema(mode Mode) (name string, schema map[string]any) {
	if mode == ModeCBT {
		return "CBTReport", cbtSchema
	}
	return "MBTReport", mbtSchema
}

// Analyze produces exactly one Result for entries under mode.
func (a *Analyzer) Analyze(ctx context.Context, entries []Entry, mode Mode) (rep Report) {
	if len(entries) == 0 {
		a.logger.Info("no diary entries, skipping analysis", zap.Stringer("mode", mode))
		return Report{
			Result: Envelope(emptyInputError, emptyInputSummary, false),
			Status: StatusEmpty,
		}
	}

	start := a.now()
	log := a.logger.With(zap.Stringer("mode", mode), zap.Int("entries", len(entries)))

	defer func() {
		if r := recover(); r != nil {
			rep = a.fail(log, mode, len(entries), &Error{Kind: KindUnexpected, Err: fmt.Errorf("%v", r)})
		}
	}()

	result, err := a.run(ctx, entries, mode)
	if err != nil {
		var aerr *Error
		if !errors.As(err, &aerr) {
			aerr = &Error{Kind: KindUnexpected, Err: err}
		}
		return a.fail(log, mode, len(entries), aerr)
	}

	result.stamp(mode, len(entries), isoTimestamp(a.now()))
	log.Info("analysis complete",
		zap.Duration("elapsed", a.now().Sub(start)),
		zap.String("risk_level", result.StringValue(keyRiskLevel)))
	return Report{Result: result, Status: StatusOK}
}

func (a *Analyzer) run(ctx context.Context, entries []Entry, mode Mode) (Result, error) {
	name, schema := ResponseSchema(mode)
	req := provider.Request{
		Prompt:     RenderPrompt(mode, FormatEntries(entries)),
		SchemaName: name,
		Schema:     schema,
	}
	a.logger.Debug("calling model", zap.Int("prompt_chars", len(req.Prompt)))

	text, err := a.model.Complete(ctx, req)
	if err != nil {
		return Result{}, &Error{Kind: KindModelInvocation, Err: err}
	}
	result, err := ParseResponse(text)
	if err != nil {
		return Result{}, &Error{Kind: KindParse, Err: err}
	}
	return result, nil
}

func (a *Analyzer) fail(log *zap.Logger, mode Mode, count int, err *Error) Report {
	log.Warn("analysis failed", zap.String("kind", string(err.Kind)), zap.Error(err.Err))
	result := Envelope(err.Error(), failedSummary, true)
	result.stamp(mode, count, isoTimestamp(a.now()))
	return Report{Result: result, Status: StatusFailed, Err: err}
}
