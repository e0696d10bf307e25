// ABOUTME: Edit constructors wrapping the layout operations for drafts and direct updates
// ABOUTME: Each returns an Edit so handlers can route the same change to either path

package designer

import (
	"fmt"

	"signage-app-api/core/domain"
	coreerrors "signage-app-api/core/errors"
	"signage-app-api/core/layout"
)

func errDraftGone(screenID string) error {
	return &coreerrors.NotFoundError{Resource: "layout draft", ID: screenID}
}

// SetSections resizes the right column. Sections past n are dropped.
func SetSections(n int) Edit {
	return func(l domain.Layout) (domain.Layout, error) {
		return layout.SetSectionCount(l, n)
	}
}

// SetWidth sets the left column width, clamped
func SetWidth(pct int) Edit {
	return func(l domain.Layout) (domain.Layout, error) {
		return layout.SetLeftColumnWidth(l, pct), nil
	}
}

// SetRegion replaces a region binding; ref is "left" or a section index
func SetRegion(ref string, r domain.Region) Edit {
	return func(l domain.Layout) (domain.Layout, error) {
		return layout.SetRegion(l, ref, r)
	}
}

// SetContentType switches a region's content type
func SetContentType(ref string, ct domain.ContentType) Edit {
	return func(l domain.Layout) (domain.Layout, error) {
		return layout.SetContentType(l, ref, ct)
	}
}

// AddImage appends a slideshow image to a region
func AddImage(ref, url string) Edit {
	return func(l domain.Layout) (domain.Layout, error) {
		return layout.AddImage(l, ref, url)
	}
}

// RemoveImage drops a slideshow image by index
func RemoveImage(ref string, idx int) Edit {
	return func(l domain.Layout) (domain.Layout, error) {
		return layout.RemoveImage(l, ref, idx)
	}
}

// SetBottomBar replaces the ticker settings, clamped
func SetBottomBar(b domain.BottomBar) Edit {
	return func(l domain.Layout) (domain.Layout, error) {
		return layout.SetBottomBar(l, b), nil
	}
}

// SetColors sets the background and text colors
func SetColors(background, text string) Edit {
	return func(l domain.Layout) (domain.Layout, error) {
		return layout.SetColors(l, background, text), nil
	}
}

// Replace swaps in a whole layout after normalizing and validating it
func Replace(next domain.Layout) Edit {
	return func(domain.Layout) (domain.Layout, error) {
		n := layout.Normalize(next)
		if err := layout.Validate(n); err != nil {
			return domain.Layout{}, err
		}
		return n, nil
	}
}

// Chain applies edits in order, stopping at the first failure
func Chain(edits ...Edit) Edit {
	return func(l domain.Layout) (domain.Layout, error) {
		for i, e := range edits {
			next, err := e(l)
			if err != nil {
				return domain.Layout{}, fmt.Errorf("edit %d: %w", i, err)
			}
			l = next
		}
		return l, nil
	}
}
