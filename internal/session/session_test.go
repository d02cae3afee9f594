package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/careerform/internal/draft"
	"github.com/abhisek/careerform/internal/form"
	"github.com/abhisek/careerform/internal/form/formtest"
	"github.com/abhisek/careerform/internal/store"
	"github.com/abhisek/careerform/internal/submit"
	"github.com/abhisek/careerform/internal/wizard"
)

var uuidV4 = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

type harness struct {
	store   *store.Store
	drafts  *draft.Adapter
	session *Session

	mu       sync.Mutex
	received []map[string]any
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var rec map[string]any
		if err := json.Unmarshal(body, &rec); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		h.mu.Lock()
		h.received = append(h.received, rec)
		h.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	h.store = st
	h.drafts = draft.NewAdapter(st.DraftRepo(), nil)
	h.session = h.newSession(srv.URL)
	return h
}

func (h *harness) newSession(url string) *Session {
	sink := submit.WithLogging(submit.NewHTTPSink(url), nil, h.store.SubmissionRepo())
	return New(Config{
		Drafts:     h.drafts,
		Controller: submit.NewController(submit.Config{Sink: sink, Drafts: h.drafts}),
	})
}

// answerAll enters every answer of formtest.Complete through the session,
// in display order.
func answerAll(s *Session) {
	want := formtest.Complete()
	for _, spec := range form.Specs() {
		switch spec.Kind {
		case form.KindMulti:
			for _, opt := range want.Checked(spec.Field) {
				s.Toggle(spec.Field, opt)
			}
		case form.KindSelect, form.KindRadio:
			if v := want.Selected(spec.Field); v != "" {
				s.Choose(spec.Field, v)
			}
		case form.KindDerived, form.KindSlider:
		default:
			if v := want.Value(spec.Field); v != "" {
				s.SetValue(spec.Field, v)
			}
		}
	}
}

func TestEndToEndSubmission(t *testing.T) {
	h := newHarness(t)
	s := h.session
	ctx := context.Background()

	answerAll(s)
	s.SetValue(form.TechSkillProficiency, "9")
	for !s.Machine().IsFinal() {
		require.NoError(t, s.Advance(ctx))
	}
	assert.Equal(t, wizard.AffordSubmit, s.Machine().Affordance())

	rec, err := s.BeginSubmit(ctx)
	require.NoError(t, err)
	assert.Equal(t, submit.StateSubmitting, s.SubmitState())
	require.NoError(t, s.Deliver(ctx, rec))
	assert.Equal(t, submit.StateSuccess, s.SubmitState())

	require.Len(t, h.received, 1)
	got := h.received[0]
	assert.Regexp(t, uuidV4, got["user_id"])
	assert.Equal(t, 0.94, got["academic_consistency"])
	assert.Equal(t, "Python, Go, Communication", got["skill_embedding"])
	assert.Equal(t, "Software Engineer", got["current_job_role"])
	assert.Equal(t, float64(9), got["tech_skill_proficiency"])
	assert.Equal(t, float64(24), got["age"])

	snap, err := h.drafts.Read(ctx)
	require.NoError(t, err)
	assert.Nil(t, snap, "draft should be cleared after success")

	events, err := h.store.SubmissionRepo().RecentSubmissions(ctx, 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, rec.UserID, events[0].UserID)

	s.Reset()
	assert.Equal(t, 1, s.Machine().Current())
	assert.Equal(t, "", s.Registry().Value(form.Age))
	assert.Equal(t, submit.StateIdle, s.SubmitState())
}

func TestFailedDeliveryKeepsDraft(t *testing.T) {
	h := newHarness(t)
	s := h.newSession("http://127.0.0.1:1")
	ctx := context.Background()

	answerAll(s)
	for !s.Machine().IsFinal() {
		require.NoError(t, s.Advance(ctx))
	}
	rec, err := s.BeginSubmit(ctx)
	require.NoError(t, err)

	err = s.Deliver(ctx, rec)
	var terr *submit.TransportError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, submit.StateFailure, s.SubmitState())

	snap, err := h.drafts.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "24", snap[string(form.Age)])
}

func TestRestoreRehydratesAndReappliesRules(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	answerAll(h.session)
	require.NoError(t, h.session.SaveDraft(ctx))

	fresh := h.newSession("http://unused")
	require.True(t, fresh.Restore(ctx))
	assert.Equal(t, 1, fresh.Machine().Current(), "step position is not restored")
	assert.Equal(t, "Bengaluru, India", fresh.Registry().Value(form.Location))
	assert.Equal(t, []string{"Python", "Go"}, fresh.Registry().Checked(form.TechnicalSkills))
	assert.Equal(t, "0.94", fresh.Registry().Value(form.AcademicConsistency))
	assert.True(t, fresh.JobRoleVisible())
	assert.Equal(t, "Software Engineer", fresh.Registry().Selected(form.CurrentJobRole))
}

func TestRestoreDropsStaleJobRole(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	repo := h.store.DraftRepo()
	require.NoError(t, repo.Put(ctx, draft.Key,
		[]byte(`{"current_status":"student","current_job_role":"Consultant"}`)))

	s := h.newSession("http://unused")
	require.True(t, s.Restore(ctx))
	assert.False(t, s.JobRoleVisible())
	assert.Equal(t, "", s.Registry().Selected(form.CurrentJobRole))
}

func TestStatusChangeClearsJobRole(t *testing.T) {
	s := New(Config{})
	s.Choose(form.CurrentStatus, form.StatusWorking)
	s.Choose(form.CurrentJobRole, "Teacher")
	assert.True(t, s.JobRoleVisible())

	s.Choose(form.CurrentStatus, form.StatusStudent)
	assert.False(t, s.JobRoleVisible())
	assert.Equal(t, "", s.Registry().Selected(form.CurrentJobRole))
}

func TestEditClearsAnnotationAndRecomputesDerived(t *testing.T) {
	s := New(Config{})
	ctx := context.Background()

	require.Error(t, s.Advance(ctx))
	_, ok := s.Machine().ErrorFor(form.Age)
	require.True(t, ok)

	s.SetValue(form.Age, "30")
	_, ok = s.Machine().ErrorFor(form.Age)
	assert.False(t, ok)

	s.Toggle(form.TechnicalSkills, "Python")
	s.Toggle(form.SoftSkills, "Communication")
	assert.Equal(t, "Python, Communication", s.Registry().Value(form.SkillEmbedding))

	s.SetValue(form.Class10Percentage, "80")
	assert.Equal(t, "", s.Registry().Value(form.AcademicConsistency))
	s.SetValue(form.Class12Percentage, "90")
	assert.Equal(t, "0.94", s.Registry().Value(form.AcademicConsistency))
}

func TestClearResetsEverything(t *testing.T) {
	h := newHarness(t)
	s := h.session
	ctx := context.Background()

	answerAll(s)
	s.SetValue(form.Openness, "9")
	require.NoError(t, s.Advance(ctx))
	require.NoError(t, s.Advance(ctx))
	assert.Equal(t, 3, s.Machine().Current())

	require.NoError(t, s.Clear(ctx))

	assert.Equal(t, 1, s.Machine().Current())
	assert.Equal(t, "5/10", s.SliderDisplay(form.Openness))
	assert.Equal(t, "3/5", s.SliderDisplay(form.AvgCourseDifficulty))
	assert.Equal(t, "Select languages...", s.MultiSummary(form.Languages))

	snap, err := h.drafts.Read(ctx)
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestDebouncedSave(t *testing.T) {
	h := newHarness(t)
	s := h.session
	ctx := context.Background()

	first := s.SetValue(form.Age, "2")
	second := s.SetValue(form.Age, "22")

	saved, err := s.SaveIfDue(ctx, first)
	require.NoError(t, err)
	assert.False(t, saved)

	saved, err = s.SaveIfDue(ctx, second)
	require.NoError(t, err)
	assert.True(t, saved)

	snap, err := h.drafts.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "22", snap[string(form.Age)])
}

func TestDisplayHelpers(t *testing.T) {
	s := New(Config{})

	s.SetValue(form.CourseKeywords, strings.Repeat("a", 600))
	assert.Equal(t, "500/500", s.CharCount(form.CourseKeywords))
	assert.Equal(t, "", s.CharCount(form.Age))

	s.Toggle(form.Languages, "English")
	s.Toggle(form.Languages, "Hindi")
	assert.Equal(t, "2 selected", s.MultiSummary(form.Languages))

	assert.Equal(t, "", s.SliderDisplay(form.Age))
}
