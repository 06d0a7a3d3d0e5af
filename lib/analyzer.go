package lib

import (
	"context"
	"strings"
	"time"
)

const unknownSelectorMessage = "Unknown analysis type."

// Entry is one recorded check.
type Entry struct {
	Selector  Selector
	Input     string
	OK        bool
	Result    string
	CheckedAt time.Time
}

type Recorder interface {
	Record(ctx context.Context, entry Entry) error
}

// Analyze runs the check named by sel against line. Unknown selectors never
// touch the session.
func Analyze(s *Session, sel Selector, line string) Report {
	switch sel {
	case SelectLexeme:
		return CheckLexeme(s, line)
	case SelectSyntax:
		return CheckSyntax(s, line)
	case SelectSemantics:
		return CheckSemantics(s, line)
	default:
		return verdict(sel, false, unknownSelectorMessage)
	}
}

// Analyzer binds a session to an optional recorder.
type Analyzer struct {
	session  *Session
	recorder Recorder
	now      func() time.Time
}

func NewAnalyzer(session *Session, recorder Recorder) *Analyzer {
	return &Analyzer{
		session:  session,
		recorder: recorder,
		now:      time.Now,
	}
}

func (a *Analyzer) Session() *Session {
	return a.session
}

// Run trims line, analyzes it and records the result. A recording failure is
// returned alongside the report, which is valid regardless.
func (a *Analyzer) Run(ctx context.Context, sel Selector, line string) (Report, error) {
	line = strings.TrimSpace(line)
	report := Analyze(a.session, sel, line)

	if a.recorder == nil {
		return report, nil
	}

	err := a.recorder.Record(ctx, Entry{
		Selector:  sel,
		Input:     line,
		OK:        report.OK,
		Result:    report.String(),
		CheckedAt: a.now(),
	})
	return report, err
}
