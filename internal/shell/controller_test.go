package shell

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ziadkadry99/axes/internal/content"
)

// recorder is a Surface that logs every call as a short string.
type recorder struct {
	mu    sync.Mutex
	calls []string
	cards []CardReveal
}

func (r *recorder) log(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) Show(reg Region)   { r.log("show %s", reg) }
func (r *recorder) Hide(reg Region)   { r.log("hide %s", reg) }
func (r *recorder) Remove(reg Region) { r.log("remove %s", reg) }
func (r *recorder) AddClass(reg Region, classes ...string) {
	r.log("add %s %s", reg, strings.Join(classes, ","))
}
func (r *recorder) RemoveClass(reg Region, classes ...string) {
	r.log("rm %s %s", reg, strings.Join(classes, ","))
}
func (r *recorder) SetText(reg Region, text string)   { r.log("text %s %s", reg, text) }
func (r *recorder) SetValue(reg Region, value string) { r.log("value %s %q", reg, value) }
func (r *recorder) ScrollTo(t ScrollTarget) {
	if t.Top {
		r.log("scroll top")
		return
	}
	r.log("scroll center %s", t.Center)
}
func (r *recorder) RenderCards(cards []CardReveal) {
	r.mu.Lock()
	r.cards = cards
	r.mu.Unlock()
	r.log("cards %d", len(cards))
}

func (r *recorder) has(call string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.calls {
		if c == call {
			return true
		}
	}
	return false
}

func (r *recorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
	r.cards = nil
}

// manualScheduler queues callbacks until the test runs them.
type manualScheduler struct {
	pending []scheduled
}

type scheduled struct {
	d  time.Duration
	fn func()
}

func (m *manualScheduler) AfterFunc(d time.Duration, fn func()) {
	m.pending = append(m.pending, scheduled{d: d, fn: fn})
}

// runNext runs the oldest pending callback and returns its delay.
func (m *manualScheduler) runNext(t *testing.T) time.Duration {
	t.Helper()
	if len(m.pending) == 0 {
		t.Fatal("no pending callbacks")
	}
	next := m.pending[0]
	m.pending = m.pending[1:]
	next.fn()
	return next.d
}

func testPage() *content.Page {
	return &content.Page{
		Welcome: "مرحبًا بكم",
		Intro:   content.Intro{Axes: []string{"الثقافة", "الإقتصاد"}},
		Sections: []content.Section{
			{ID: "culture", Category: "culture", Heading: "الثقافة"},
			{ID: "economy", Category: "economy", Heading: "الاقتصاد", Cards: []content.Card{
				{Title: "التجارة"}, {Title: "الصناعة"}, {Title: "الزراعة"},
			}},
		},
	}
}

func newTestController() (*Controller, *recorder, *manualScheduler) {
	rec := &recorder{}
	sched := &manualScheduler{}
	return NewController(testPage(), rec, sched, DefaultOptions()), rec, sched
}

func TestLoadOverlayLifecycle(t *testing.T) {
	ctrl, rec, sched := newTestController()
	ctrl.Load()

	if !rec.has("show introOverlay") || !rec.has("text introOverlay مرحبًا بكم") {
		t.Fatalf("overlay not shown: %v", rec.calls)
	}
	if rec.has("add introOverlay fade-out") {
		t.Fatal("overlay faded before the delay")
	}

	if d := sched.runNext(t); d != 2*time.Second {
		t.Errorf("fade delay = %v, want 2s", d)
	}
	if !rec.has("add introOverlay fade-out") {
		t.Error("expected fade-out after delay")
	}
	if rec.has("remove introOverlay") {
		t.Fatal("overlay removed before fade finished")
	}

	if d := sched.runNext(t); d != time.Second {
		t.Errorf("remove delay = %v, want 1s", d)
	}
	if !rec.has("remove introOverlay") {
		t.Error("expected overlay removal")
	}
}

func TestIntroClickMatch(t *testing.T) {
	ctrl, rec, sched := newTestController()

	if !ctrl.IntroClick(" الأقتصاد ") {
		t.Fatal("expected a match")
	}
	for _, want := range []string{
		"scroll center section:economy",
		"rm section:culture highlight",
		"rm section:economy highlight",
		"add section:economy highlight,zoomed",
	} {
		if !rec.has(want) {
			t.Errorf("missing %q in %v", want, rec.calls)
		}
	}

	if d := sched.runNext(t); d != time.Second {
		t.Errorf("zoom delay = %v, want 1s", d)
	}
	if !rec.has("rm section:economy zoomed") {
		t.Error("zoomed class not removed after delay")
	}
}

func TestIntroClickNoMatchDoesNothing(t *testing.T) {
	ctrl, rec, sched := newTestController()

	if ctrl.IntroClick("الجغرافيا") {
		t.Error("unexpected match")
	}
	if ctrl.IntroClick("   ") {
		t.Error("blank label should not match")
	}
	if len(rec.calls) != 0 {
		t.Errorf("expected no UI calls, got %v", rec.calls)
	}
	if len(sched.pending) != 0 {
		t.Errorf("expected no timers, got %d", len(sched.pending))
	}
}

func TestCategoryChangeFiltered(t *testing.T) {
	ctrl, rec, _ := newTestController()
	ctrl.CategoryChange(" economy ")

	for _, want := range []string{
		"add body filtered-mode",
		"show backToMain",
		"show filteredView",
		"add filteredView fade-in",
		"hide main",
		"hide intro",
		"hide headerTitle",
		"text filteredTitle عرض محور: الاقتصاد",
		"cards 3",
	} {
		if !rec.has(want) {
			t.Errorf("missing %q in %v", want, rec.calls)
		}
	}
	if ctrl.Filtered() != "economy" {
		t.Errorf("Filtered() = %q, want economy", ctrl.Filtered())
	}

	wantDelays := []time.Duration{300 * time.Millisecond, 550 * time.Millisecond, 800 * time.Millisecond}
	for i, c := range rec.cards {
		if c.Delay != wantDelays[i] {
			t.Errorf("card %d delay = %v, want %v", i, c.Delay, wantDelays[i])
		}
	}
}

func TestCategoryChangeUnknownCategory(t *testing.T) {
	ctrl, rec, _ := newTestController()
	ctrl.CategoryChange("sports")

	if !rec.has("add body filtered-mode") {
		t.Error("filtered mode should still be entered")
	}
	for _, c := range rec.calls {
		if strings.HasPrefix(c, "text filteredTitle") || strings.HasPrefix(c, "cards") {
			t.Errorf("unexpected call for unknown category: %q", c)
		}
	}
}

func TestCategoryChangeEmptyRestores(t *testing.T) {
	ctrl, rec, _ := newTestController()
	ctrl.CategoryChange("culture")
	rec.reset()

	ctrl.CategoryChange("  ")
	for _, want := range []string{
		"rm body filtered-mode",
		"hide backToMain",
		"hide filteredView",
		"show main",
		"show intro",
		"show headerTitle",
	} {
		if !rec.has(want) {
			t.Errorf("missing %q in %v", want, rec.calls)
		}
	}
	if ctrl.Filtered() != "" {
		t.Errorf("Filtered() = %q, want empty", ctrl.Filtered())
	}
}

func TestBack(t *testing.T) {
	ctrl, rec, sched := newTestController()
	ctrl.CategoryChange("economy")
	rec.reset()

	ctrl.Back()
	if !rec.has("rm filteredView fade-in") || !rec.has("add filteredView fade-out") {
		t.Fatalf("fade not started: %v", rec.calls)
	}
	if rec.has("show main") {
		t.Fatal("normal view restored before the fade")
	}

	if d := sched.runNext(t); d != 400*time.Millisecond {
		t.Errorf("back delay = %v, want 400ms", d)
	}
	for _, want := range []string{
		"rm body filtered-mode",
		"show main",
		`value categoryFilter ""`,
		"rm filteredView fade-out",
	} {
		if !rec.has(want) {
			t.Errorf("missing %q in %v", want, rec.calls)
		}
	}
	if ctrl.Filtered() != "" {
		t.Errorf("Filtered() = %q after back", ctrl.Filtered())
	}
}

func TestScrollThresholds(t *testing.T) {
	tests := []struct {
		y          float64
		wantTopBtn string
		wantSticky string
	}{
		{0, "hide scrollTopBtn", "rm header sticky"},
		{80, "hide scrollTopBtn", "rm header sticky"},
		{81, "hide scrollTopBtn", "add header sticky"},
		{300, "hide scrollTopBtn", "add header sticky"},
		{301, "show scrollTopBtn", "add header sticky"},
	}
	for _, tt := range tests {
		ctrl, rec, _ := newTestController()
		ctrl.Scroll(tt.y)
		if !rec.has(tt.wantTopBtn) || !rec.has(tt.wantSticky) {
			t.Errorf("Scroll(%v) = %v, want %q and %q", tt.y, rec.calls, tt.wantTopBtn, tt.wantSticky)
		}
	}
}

func TestScrollTop(t *testing.T) {
	ctrl, rec, _ := newTestController()
	ctrl.ScrollTop()
	if !rec.has("scroll top") {
		t.Errorf("expected scroll to top, got %v", rec.calls)
	}
}

func TestCloseDropsPendingCallbacks(t *testing.T) {
	ctrl, rec, sched := newTestController()
	ctrl.IntroClick("الثقافة")
	ctrl.Close()
	rec.reset()

	sched.runNext(t)
	if len(rec.calls) != 0 {
		t.Errorf("callback ran after Close: %v", rec.calls)
	}
}

func TestDispatch(t *testing.T) {
	ctrl, rec, _ := newTestController()

	events := []Event{
		{Type: EventLoad},
		{Type: EventIntro, Label: "الثقافة"},
		{Type: EventCategory, Value: "economy"},
		{Type: EventBack},
		{Type: EventScroll, Y: 500},
		{Type: EventScrollTop},
	}
	for _, ev := range events {
		if err := ctrl.Dispatch(ev); err != nil {
			t.Errorf("Dispatch(%s): %v", ev.Type, err)
		}
	}
	if !rec.has("scroll top") || !rec.has("show scrollTopBtn") {
		t.Errorf("events not dispatched: %v", rec.calls)
	}

	if err := ctrl.Dispatch(Event{Type: "resize"}); err == nil {
		t.Error("expected error for unknown event type")
	}
}

func TestRevealDelay(t *testing.T) {
	opts := DefaultOptions()
	if got := opts.RevealDelay(0); got != 300*time.Millisecond {
		t.Errorf("RevealDelay(0) = %v", got)
	}
	if got := opts.RevealDelay(4); got != 1300*time.Millisecond {
		t.Errorf("RevealDelay(4) = %v", got)
	}
}
