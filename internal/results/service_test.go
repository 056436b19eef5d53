package results_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/mind-engage/mindengage-marks/internal/results"
)

/* ---------------- in-memory fake that satisfies results.Store ---------------- */

type fakeStore struct {
	rows      []results.Row
	seq       int64
	insertErr error
	recentErr error
	inserts   int
}

func (s *fakeStore) Insert(_ context.Context, rec results.Record) (results.Row, error) {
	s.inserts++
	if s.insertErr != nil {
		return results.Row{}, s.insertErr
	}
	s.seq++
	r := results.Row{ID: s.seq, Record: rec}
	s.rows = append(s.rows, r)
	return r, nil
}

func (s *fakeStore) Recent(_ context.Context, limit int) ([]results.Summary, error) {
	if s.recentErr != nil {
		return nil, s.recentErr
	}
	out := []results.Summary{}
	for i := len(s.rows) - 1; i >= 0 && len(out) < limit; i-- {
		r := s.rows[i]
		out = append(out, results.Summary{ID: r.ID, Name: r.Name, Total: r.Total, Percentage: r.Percentage})
	}
	return out, nil
}

func submission(name string, marks ...string) results.Form {
	f := results.Form{Name: name}
	copy(f.Marks[:], marks)
	return f
}

func TestService_Page(t *testing.T) {
	st := &fakeStore{}
	v := results.NewService(st, nil).Page(context.Background())
	if len(v.Errors) != 0 || v.Result != nil || v.Failure != "" || v.Form != (results.Form{}) {
		t.Fatalf("unexpected initial view %+v", v)
	}
	if v.Recent == nil || len(v.Recent) != 0 {
		t.Fatalf("recent = %#v, want empty", v.Recent)
	}
}

func TestService_SubmitValid(t *testing.T) {
	st := &fakeStore{}
	svc := results.NewService(st, nil)

	v := svc.Submit(context.Background(), submission("Ann Lee", "100", "0", "100", "0", "100"))
	if len(v.Errors) != 0 || v.Failure != "" {
		t.Fatalf("unexpected errors %v / failure %q", v.Errors, v.Failure)
	}
	want := &results.Result{Name: "Ann Lee", Total: 300, Percentage: 60}
	if !reflect.DeepEqual(v.Result, want) {
		t.Fatalf("result = %+v, want %+v", v.Result, want)
	}
	if v.Form != (results.Form{}) {
		t.Fatalf("form should be cleared, got %+v", v.Form)
	}
	if st.inserts != 1 {
		t.Fatalf("inserts = %d, want 1", st.inserts)
	}
	if len(v.Recent) != 1 || v.Recent[0].ID != 1 || v.Recent[0].Name != "Ann Lee" {
		t.Fatalf("recent = %+v", v.Recent)
	}
}

func TestService_SubmitInvalidDoesNotPersist(t *testing.T) {
	cases := []results.Form{
		submission("A", "1", "2", "3", "4", "5"),
		submission("Ann Lee", "007", "50", "-5", "101", "50.5"),
		submission("Ann Lee", "1", "2", "3", "4"),
	}
	for _, f := range cases {
		st := &fakeStore{}
		v := results.NewService(st, nil).Submit(context.Background(), f)
		if len(v.Errors) == 0 {
			t.Fatalf("%+v: expected errors", f)
		}
		if st.inserts != 0 {
			t.Fatalf("%+v: store was written", f)
		}
		if v.Result != nil {
			t.Fatalf("%+v: result should be absent", f)
		}
		if v.Form != f {
			t.Fatalf("form not preserved: %+v vs %+v", v.Form, f)
		}
	}
}

func TestService_SubmitStoreFailure(t *testing.T) {
	st := &fakeStore{insertErr: fmt.Errorf("%w: insert result: disk I/O error near INSERT", results.ErrStorage)}
	f := submission("Ann Lee", "1", "2", "3", "4", "5")

	v := results.NewService(st, nil).Submit(context.Background(), f)
	if v.Result != nil {
		t.Fatalf("no success on store failure, got %+v", v.Result)
	}
	if v.Failure != results.MsgSaveFailed {
		t.Fatalf("failure = %q", v.Failure)
	}
	if v.Form != f {
		t.Fatalf("form should be kept for retry, got %+v", v.Form)
	}
	if v.Recent == nil {
		t.Fatal("recent should still be listed")
	}
}

func TestService_RecentFailureIsBestEffort(t *testing.T) {
	st := &fakeStore{recentErr: errors.New("boom")}
	v := results.NewService(st, nil).Submit(context.Background(), submission("Ann Lee", "1", "2", "3", "4", "5"))
	if v.Result == nil {
		t.Fatal("write succeeded, result expected")
	}
	if v.Recent == nil || len(v.Recent) != 0 {
		t.Fatalf("recent = %#v, want empty", v.Recent)
	}
}

func TestService_RecentShowsNewestFive(t *testing.T) {
	st := &fakeStore{}
	svc := results.NewService(st, nil)
	for i := 0; i < 7; i++ {
		svc.Submit(context.Background(), submission(fmt.Sprintf("Student %c", 'A'+i), "10", "10", "10", "10", "10"))
	}
	v := svc.Page(context.Background())
	if len(v.Recent) != results.RecentLimit {
		t.Fatalf("len = %d", len(v.Recent))
	}
	if v.Recent[0].ID != 7 || v.Recent[4].ID != 3 {
		t.Fatalf("order = %+v", v.Recent)
	}
}
