package results

import (
	"context"

	"go.uber.org/zap"

	"github.com/mind-engage/mindengage-marks/internal/metrics"
	"github.com/mind-engage/mindengage-marks/internal/observability"
)

// RecentLimit is the number of rows shown under the form.
const RecentLimit = 5

const MsgSaveFailed = "Could not save the result. Please try again."

// Service runs one page request: validate, store, then list recent rows.
// It keeps no state between requests.
type Service struct {
	store Store
	log   *zap.Logger
}

func NewService(store Store, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, log: log}
}

// Page is the initial load.
func (s *Service) Page(ctx context.Context) View {
	v := View{Errors: []string{}}
	v.Recent = s.recent(ctx)
	return v
}

// Submit handles a normalized submission.
func (s *Service) Submit(ctx context.Context, f Form) View {
	v := s.submit(ctx, f)
	v.Recent = s.recent(ctx)
	return v
}

func (s *Service) submit(ctx context.Context, f Form) View {
	rec, errs := Validate(f)
	if len(errs) > 0 {
		metrics.CountSubmission(metrics.OutcomeInvalid)
		return View{Errors: errs, Form: f}
	}

	row, err := s.store.Insert(ctx, rec)
	if err != nil {
		metrics.CountSubmission(metrics.OutcomeFailed)
		s.log.Error("save result failed", zap.Error(err))
		observability.CaptureErr(err)
		return View{Errors: []string{}, Form: f, Failure: MsgSaveFailed}
	}

	metrics.CountSubmission(metrics.OutcomeSaved)
	s.log.Info("result saved",
		zap.Int64("id", row.ID),
		zap.Int("total", row.Total),
		zap.Float64("percentage", row.Percentage))
	return View{
		Errors: []string{},
		Result: &Result{Name: row.Name, Total: row.Total, Percentage: row.Percentage},
	}
}

// recent is best effort: a failed read leaves the table empty.
func (s *Service) recent(ctx context.Context) []Summary {
	rows, err := s.store.Recent(ctx, RecentLimit)
	if err != nil {
		s.log.Warn("list recent results failed", zap.Error(err))
		observability.CaptureErr(err)
		return []Summary{}
	}
	return rows
}
