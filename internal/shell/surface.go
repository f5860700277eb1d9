// Package shell drives the page's interactive behavior: the welcome overlay,
// intro navigation, the category filter and scroll-dependent controls.
//
// The controller never touches a DOM. It talks to a Surface, a small
// capability object that can show, hide and restyle named regions.
package shell

import (
	"time"

	"github.com/ziadkadry99/axes/internal/content"
)

// Region names a UI element the shell can act on.
type Region string

const (
	RegionBody           Region = "body"
	RegionOverlay        Region = "introOverlay"
	RegionHeader         Region = "header"
	RegionHeaderTitle    Region = "headerTitle"
	RegionMain           Region = "main"
	RegionIntro          Region = "intro"
	RegionBackButton     Region = "backToMain"
	RegionScrollTop      Region = "scrollTopBtn"
	RegionFilteredView   Region = "filteredView"
	RegionFilteredTitle  Region = "filteredTitle"
	RegionCategoryFilter Region = "categoryFilter"
)

// CSS classes toggled by the shell.
const (
	ClassFadeOut      = "fade-out"
	ClassFadeIn       = "fade-in"
	ClassFilteredMode = "filtered-mode"
	ClassHighlight    = "highlight"
	ClassZoomed       = "zoomed"
	ClassSticky       = "sticky"
)

const sectionPrefix = "section:"

// SectionRegion returns the region of the section with the given id.
func SectionRegion(id string) Region { return Region(sectionPrefix + id) }

// ScrollTarget is where a scroll should land: either the top of the page or
// centered on a region.
type ScrollTarget struct {
	Top    bool   `json:"top,omitempty"`
	Center Region `json:"center,omitempty"`
}

// CardReveal is a card placed in the filtered view together with the delay
// after which it animates in.
type CardReveal struct {
	Card  content.Card
	Delay time.Duration
}

// Surface is the set of UI capabilities the controller needs.
type Surface interface {
	Show(r Region)
	Hide(r Region)
	Remove(r Region)
	AddClass(r Region, classes ...string)
	RemoveClass(r Region, classes ...string)
	SetText(r Region, text string)
	SetValue(r Region, value string)
	ScrollTo(target ScrollTarget)
	RenderCards(cards []CardReveal)
}
