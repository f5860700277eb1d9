package shell

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ziadkadry99/axes/internal/content"
	"github.com/ziadkadry99/axes/internal/matcher"
)

// Options holds the presentation policy: delays and scroll thresholds.
type Options struct {
	OverlayDelay        time.Duration
	OverlayFade         time.Duration
	BackFade            time.Duration
	Zoom                time.Duration
	CardRevealBase      time.Duration
	CardRevealStep      time.Duration
	ScrollTopThreshold  float64
	StickyThreshold     float64
	FilteredTitlePrefix string
}

// DefaultOptions returns the timings of the original page.
func DefaultOptions() Options {
	return Options{
		OverlayDelay:        2 * time.Second,
		OverlayFade:         time.Second,
		BackFade:            400 * time.Millisecond,
		Zoom:                time.Second,
		CardRevealBase:      300 * time.Millisecond,
		CardRevealStep:      250 * time.Millisecond,
		ScrollTopThreshold:  300,
		StickyThreshold:     80,
		FilteredTitlePrefix: "عرض محور: ",
	}
}

// RevealDelay is the delay before the i-th filtered card animates in.
func (o Options) RevealDelay(i int) time.Duration {
	return o.CardRevealBase + time.Duration(i)*o.CardRevealStep
}

// Controller reacts to page events one at a time. Timed follow-ups take the
// same lock, so a callback never interleaves with an event.
type Controller struct {
	mu       sync.Mutex
	page     *content.Page
	surface  Surface
	sched    Scheduler
	opts     Options
	filtered string
	closed   bool
}

// NewController creates a controller for one page view.
func NewController(page *content.Page, surface Surface, sched Scheduler, opts Options) *Controller {
	return &Controller{
		page:    page,
		surface: surface,
		sched:   sched,
		opts:    opts,
	}
}

// after schedules fn under the controller lock. Callbacks scheduled before
// Close are dropped.
func (c *Controller) after(d time.Duration, fn func()) {
	c.sched.AfterFunc(d, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.closed {
			return
		}
		fn()
	})
}

// Close stops the controller from acting on pending timers.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}

// Filtered returns the category currently shown in the filtered view, or "".
func (c *Controller) Filtered() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filtered
}

// Load shows the welcome overlay, fades it out after OverlayDelay and removes
// it once the fade has run.
func (c *Controller) Load() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.surface.SetText(RegionOverlay, c.page.Welcome)
	c.surface.Show(RegionOverlay)
	c.surface.Hide(RegionBackButton)
	c.surface.Hide(RegionFilteredView)
	c.surface.Hide(RegionScrollTop)

	c.after(c.opts.OverlayDelay, func() {
		c.surface.AddClass(RegionOverlay, ClassFadeOut)
		c.after(c.opts.OverlayFade, func() {
			c.surface.Remove(RegionOverlay)
		})
	})
}

// IntroClick navigates to the section whose heading matches label. Labels
// without a counterpart do nothing; that is the expected outcome for clicks
// on stray text. It reports whether a section was found.
func (c *Controller) IntroClick(label string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if matcher.Normalize(label) == "" {
		return false
	}
	section, ok := c.page.MatchAxis(label)
	if !ok {
		return false
	}

	target := SectionRegion(section.ID)
	c.surface.ScrollTo(ScrollTarget{Center: target})
	for _, s := range c.page.Sections {
		c.surface.RemoveClass(SectionRegion(s.ID), ClassHighlight)
	}
	c.surface.AddClass(target, ClassHighlight, ClassZoomed)
	c.after(c.opts.Zoom, func() {
		c.surface.RemoveClass(target, ClassZoomed)
	})
	return true
}

// CategoryChange switches between the normal view and the filtered view of a
// single category. An empty value restores the normal view.
func (c *Controller) CategoryChange(value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	selected := strings.TrimSpace(value)
	if selected == "" {
		c.showNormal()
		return
	}

	c.filtered = selected
	c.surface.AddClass(RegionBody, ClassFilteredMode)
	c.surface.Show(RegionBackButton)
	c.surface.Show(RegionFilteredView)
	c.surface.AddClass(RegionFilteredView, ClassFadeIn)
	c.surface.Hide(RegionMain)
	c.surface.Hide(RegionIntro)
	c.surface.Hide(RegionHeaderTitle)

	section, err := c.page.SectionByCategory(selected)
	if err != nil {
		return
	}
	c.surface.SetText(RegionFilteredTitle, c.opts.FilteredTitlePrefix+section.Heading)

	reveals := make([]CardReveal, len(section.Cards))
	for i, card := range section.Cards {
		reveals[i] = CardReveal{Card: card, Delay: c.opts.RevealDelay(i)}
	}
	c.surface.RenderCards(reveals)
}

// Back fades the filtered view out and, after BackFade, restores the normal
// view and resets the category filter.
func (c *Controller) Back() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.surface.RemoveClass(RegionFilteredView, ClassFadeIn)
	c.surface.AddClass(RegionFilteredView, ClassFadeOut)

	c.after(c.opts.BackFade, func() {
		c.showNormal()
		c.surface.SetValue(RegionCategoryFilter, "")
		c.surface.RemoveClass(RegionFilteredView, ClassFadeOut)
	})
}

// Scroll updates the back-to-top button and the sticky header for the given
// vertical scroll offset.
func (c *Controller) Scroll(y float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if y > c.opts.ScrollTopThreshold {
		c.surface.Show(RegionScrollTop)
	} else {
		c.surface.Hide(RegionScrollTop)
	}

	if y > c.opts.StickyThreshold {
		c.surface.AddClass(RegionHeader, ClassSticky)
	} else {
		c.surface.RemoveClass(RegionHeader, ClassSticky)
	}
}

// ScrollTop scrolls back to the top of the page.
func (c *Controller) ScrollTop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.surface.ScrollTo(ScrollTarget{Top: true})
}

// showNormal restores the unfiltered page. Callers hold c.mu.
func (c *Controller) showNormal() {
	c.filtered = ""
	c.surface.RemoveClass(RegionBody, ClassFilteredMode)
	c.surface.Hide(RegionBackButton)
	c.surface.Hide(RegionFilteredView)
	c.surface.Show(RegionMain)
	c.surface.Show(RegionIntro)
	c.surface.Show(RegionHeaderTitle)
}

// Event is an interaction reported by the page.
type Event struct {
	Type  string  `json:"type"`
	Label string  `json:"label,omitempty"`
	Value string  `json:"value,omitempty"`
	Y     float64 `json:"y,omitempty"`
}

// Event types.
const (
	EventLoad      = "load"
	EventIntro     = "intro"
	EventCategory  = "category"
	EventBack      = "back"
	EventScroll    = "scroll"
	EventScrollTop = "scroll_top"
)

// Dispatch routes an event to the matching handler.
func (c *Controller) Dispatch(ev Event) error {
	switch ev.Type {
	case EventLoad:
		c.Load()
	case EventIntro:
		c.IntroClick(ev.Label)
	case EventCategory:
		c.CategoryChange(ev.Value)
	case EventBack:
		c.Back()
	case EventScroll:
		c.Scroll(ev.Y)
	case EventScrollTop:
		c.ScrollTop()
	default:
		return fmt.Errorf("unknown event type %q", ev.Type)
	}
	return nil
}
