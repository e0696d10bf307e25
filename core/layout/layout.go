// ABOUTME: Copy-on-write operations over the Layout model used by the designer and the API
// ABOUTME: Every operation returns a new Layout and re-establishes sizing and section invariants

package layout

import (
	"strconv"

	"signage-app-api/core/domain"
	coreerrors "signage-app-api/core/errors"
)

// Default color scheme of a freshly designed screen
const (
	DefaultBackgroundColor = "#1a1a2e"
	DefaultTextColor       = "#ffffff"
	DefaultLeftWidth       = 70
	DefaultBottomBarHeight = 80
	DefaultScrollSpeed     = 50
)

// LeftRegion addresses the left column in region-level edits
const LeftRegion = "left"

// Default returns the layout a screen gets the first time it is opened in the designer
func Default() domain.Layout {
	return domain.Layout{
		LeftColumn: domain.LeftColumn{
			Width: DefaultLeftWidth,
			Region: domain.Region{
				ContentType: domain.ContentRSS,
				Options: domain.ContentOptions{
					ShowQRCode:     true,
					TransitionTime: domain.DefaultTransitionTime,
					AutoPlay:       true,
				},
			},
		},
		RightColumn: domain.RightColumn{
			Sections: domain.MinSections,
			Content:  resize(nil, domain.MinSections),
		},
		BottomBar: domain.BottomBar{
			Enabled:     true,
			Height:      DefaultBottomBarHeight,
			ContentType: domain.ContentRSS,
			ScrollSpeed: DefaultScrollSpeed,
		},
		BackgroundColor: DefaultBackgroundColor,
		TextColor:       DefaultTextColor,
	}
}

// SetSectionCount resizes the right column to n sections. Existing sections are kept by
// index, new slots are empty, and sections past n are dropped without confirmation.
func SetSectionCount(l domain.Layout, n int) (domain.Layout, error) {
	if n < domain.MinSections || n > domain.MaxSections {
		return l, coreerrors.Invalid("sections", "must be between %d and %d, got %d", domain.MinSections, domain.MaxSections, n)
	}
	out := l.Clone()
	out.RightColumn.Sections = n
	out.RightColumn.Content = resize(out.RightColumn.Content, n)
	return out, nil
}

// DroppedSections reports how many configured sections a resize to n would discard
func DroppedSections(l domain.Layout, n int) int {
	dropped := 0
	for i := n; i < len(l.RightColumn.Content); i++ {
		if !l.RightColumn.Content[i].IsEmpty() {
			dropped++
		}
	}
	return dropped
}

func resize(content []domain.Region, n int) []domain.Region {
	out := make([]domain.Region, n)
	copied := copy(out, content)
	for i := copied; i < n; i++ {
		out[i] = emptyRegion()
	}
	return out
}

func emptyRegion() domain.Region {
	return domain.Region{Options: domain.ContentOptions{TransitionTime: domain.DefaultTransitionTime}}
}

// SetLeftColumnWidth clamps pct to [50,80]. The right column is always the remainder.
func SetLeftColumnWidth(l domain.Layout, pct int) domain.Layout {
	out := l.Clone()
	out.LeftColumn.Width = clamp(pct, domain.MinLeftWidth, domain.MaxLeftWidth)
	return out
}

// SetLeftRegion replaces the left column's content binding, keeping its width
func SetLeftRegion(l domain.Layout, r domain.Region) (domain.Layout, error) {
	if r.ContentType.SectionOnly() {
		return l, coreerrors.Invalid("leftColumn.contentType", "%q is only available in right-column sections", r.ContentType)
	}
	if !r.ContentType.Valid() {
		return l, coreerrors.Invalid("leftColumn.contentType", "unknown content type %q", r.ContentType)
	}
	out := l.Clone()
	out.LeftColumn.Region = normalizeRegion(r.Clone())
	return out, nil
}

// SetSection replaces the configuration of section i
func SetSection(l domain.Layout, i int, r domain.Region) (domain.Layout, error) {
	if i < 0 || i >= len(l.RightColumn.Content) {
		return l, coreerrors.Invalid("rightColumn.content", "section %d out of range [0,%d)", i, len(l.RightColumn.Content))
	}
	if !r.ContentType.Valid() {
		return l, coreerrors.Invalid("rightColumn.content", "unknown content type %q", r.ContentType)
	}
	out := l.Clone()
	out.RightColumn.Content[i] = normalizeRegion(r.Clone())
	return out, nil
}

// SetRegion dispatches on a region reference: "left" or a zero-based section index
func SetRegion(l domain.Layout, ref string, r domain.Region) (domain.Layout, error) {
	if ref == LeftRegion {
		return SetLeftRegion(l, r)
	}
	i, err := strconv.Atoi(ref)
	if err != nil {
		return l, coreerrors.Invalid("region", "expected %q or a section index, got %q", LeftRegion, ref)
	}
	return SetSection(l, i, r)
}

// Region returns the region addressed by ref
func Region(l domain.Layout, ref string) (domain.Region, error) {
	if ref == LeftRegion {
		return l.LeftColumn.Region.Clone(), nil
	}
	i, err := strconv.Atoi(ref)
	if err != nil || i < 0 || i >= len(l.RightColumn.Content) {
		return domain.Region{}, coreerrors.Invalid("region", "no region %q", ref)
	}
	return l.RightColumn.Content[i].Clone(), nil
}

// SetContentType switches the content type of a region, keeping its other fields
func SetContentType(l domain.Layout, ref string, ct domain.ContentType) (domain.Layout, error) {
	r, err := Region(l, ref)
	if err != nil {
		return l, err
	}
	r.ContentType = ct
	return SetRegion(l, ref, r)
}

// AddImage appends an image URL to a region's slideshow list. Blank URLs are ignored.
func AddImage(l domain.Layout, ref, imageURL string) (domain.Layout, error) {
	r, err := Region(l, ref)
	if err != nil {
		return l, err
	}
	if imageURL == "" {
		return l.Clone(), nil
	}
	r.Images = append(r.Images, imageURL)
	return SetRegion(l, ref, r)
}

// RemoveImage drops the image at index idx from a region's slideshow list
func RemoveImage(l domain.Layout, ref string, idx int) (domain.Layout, error) {
	r, err := Region(l, ref)
	if err != nil {
		return l, err
	}
	if idx < 0 || idx >= len(r.Images) {
		return l, coreerrors.Invalid("images", "index %d out of range", idx)
	}
	images := make([]string, 0, len(r.Images)-1)
	images = append(images, r.Images[:idx]...)
	images = append(images, r.Images[idx+1:]...)
	r.Images = images
	return SetRegion(l, ref, r)
}

// SetBottomBar replaces the ticker configuration, clamping height and scroll speed.
// The ticker only supports RSS content.
func SetBottomBar(l domain.Layout, b domain.BottomBar) domain.Layout {
	out := l.Clone()
	out.BottomBar = normalizeBottomBar(b)
	return out
}

// SetColors updates background and text colors. Empty values keep the current ones.
func SetColors(l domain.Layout, background, text string) domain.Layout {
	out := l.Clone()
	if background != "" {
		out.BackgroundColor = background
	}
	if text != "" {
		out.TextColor = text
	}
	return out
}

// ClampTransitionTime bounds a rotation interval in seconds; zero selects the default
func ClampTransitionTime(seconds int) int {
	if seconds == 0 {
		return domain.DefaultTransitionTime
	}
	return clamp(seconds, domain.MinTransitionTime, domain.MaxTransitionTime)
}

// Normalize re-establishes every sizing and shape invariant on a decoded or hand-built layout
func Normalize(l domain.Layout) domain.Layout {
	out := l.Clone()
	out.LeftColumn.Width = clamp(out.LeftColumn.Width, domain.MinLeftWidth, domain.MaxLeftWidth)
	out.LeftColumn.Region = normalizeRegion(out.LeftColumn.Region)

	if out.RightColumn.Sections < domain.MinSections || out.RightColumn.Sections > domain.MaxSections {
		out.RightColumn.Sections = clamp(out.RightColumn.Sections, domain.MinSections, domain.MaxSections)
	}
	out.RightColumn.Content = resize(out.RightColumn.Content, out.RightColumn.Sections)
	for i := range out.RightColumn.Content {
		out.RightColumn.Content[i] = normalizeRegion(out.RightColumn.Content[i])
	}

	out.BottomBar = normalizeBottomBar(out.BottomBar)
	if out.BackgroundColor == "" {
		out.BackgroundColor = DefaultBackgroundColor
	}
	if out.TextColor == "" {
		out.TextColor = DefaultTextColor
	}
	return out
}

// Validate reports the first content-type misuse in the layout
func Validate(l domain.Layout) error {
	if !l.LeftColumn.ContentType.Valid() {
		return coreerrors.Invalid("leftColumn.contentType", "unknown content type %q", l.LeftColumn.ContentType)
	}
	if l.LeftColumn.ContentType.SectionOnly() {
		return coreerrors.Invalid("leftColumn.contentType", "%q is only available in right-column sections", l.LeftColumn.ContentType)
	}
	if len(l.RightColumn.Content) != l.RightColumn.Sections {
		return coreerrors.Invalid("rightColumn.content", "has %d entries for %d sections", len(l.RightColumn.Content), l.RightColumn.Sections)
	}
	for i, r := range l.RightColumn.Content {
		if !r.ContentType.Valid() {
			return coreerrors.Invalid("rightColumn.content", "section %d has unknown content type %q", i, r.ContentType)
		}
	}
	if l.BottomBar.ContentType != domain.ContentRSS && l.BottomBar.ContentType != domain.ContentNone {
		return coreerrors.Invalid("bottomBar.contentType", "only %q is supported", domain.ContentRSS)
	}
	return nil
}

func normalizeRegion(r domain.Region) domain.Region {
	r.Options.TransitionTime = ClampTransitionTime(r.Options.TransitionTime)
	return r
}

func normalizeBottomBar(b domain.BottomBar) domain.BottomBar {
	b.Height = clamp(b.Height, domain.MinBottomBarHeight, domain.MaxBottomBarHeight)
	b.ScrollSpeed = clamp(b.ScrollSpeed, domain.MinScrollSpeed, domain.MaxScrollSpeed)
	b.ContentType = domain.ContentRSS
	return b
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SectionRef is the region reference of right-column section i
func SectionRef(i int) string {
	return strconv.Itoa(i)
}
