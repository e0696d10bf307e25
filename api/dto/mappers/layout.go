// ABOUTME: Mappers for converting between layout DTOs and domain models
// ABOUTME: Region and ticker requests merge over the current configuration

package mappers

import (
	"sort"

	"signage-app-api/api/dto/requests"
	"signage-app-api/api/dto/responses"
	"signage-app-api/core/designer"
	"signage-app-api/core/domain"
	"signage-app-api/core/layout"
)

// ToRegion builds the region a request describes. Options missing from the request
// keep the values of current.
func ToRegion(req requests.RegionRequest, current domain.Region) domain.Region {
	r := domain.Region{
		ContentType:  domain.ContentType(req.ContentType),
		ContentID:    req.ContentID,
		RSSURL:       req.RSSURL,
		CustomRSSURL: req.CustomRSSURL,
		YouTubeURL:   req.YouTubeURL,
		WidgetCode:   req.WidgetCode,
		Options:      current.Options,
	}
	if len(req.Images) > 0 {
		r.Images = append([]string(nil), req.Images...)
	}
	if o := req.ContentOptions; o != nil {
		if o.ShowQRCode != nil {
			r.Options.ShowQRCode = *o.ShowQRCode
		}
		if o.TransitionTime != nil {
			r.Options.TransitionTime = *o.TransitionTime
		}
		if o.AutoPlay != nil {
			r.Options.AutoPlay = *o.AutoPlay
		}
	}
	return r
}

// ApplyBottomBar merges a ticker request over current
func ApplyBottomBar(current domain.BottomBar, req requests.BottomBarRequest) domain.BottomBar {
	b := current
	if req.Enabled != nil {
		b.Enabled = *req.Enabled
	}
	if req.Height != nil {
		b.Height = *req.Height
	}
	if req.ScrollSpeed != nil {
		b.ScrollSpeed = *req.ScrollSpeed
	}
	if req.RSSURL != nil {
		b.RSSURL = *req.RSSURL
	}
	if req.CustomRSSURL != nil {
		b.CustomRSSURL = *req.CustomRSSURL
	}
	return b
}

// RegionEdit returns an edit that applies req to the region addressed by ref
func RegionEdit(ref string, req requests.RegionRequest) designer.Edit {
	return func(l domain.Layout) (domain.Layout, error) {
		current, err := layout.Region(l, ref)
		if err != nil {
			return l, err
		}
		return designer.SetRegion(ref, ToRegion(req, current))(l)
	}
}

// BottomBarEdit returns an edit that merges req into the layout's ticker
func BottomBarEdit(req requests.BottomBarRequest) designer.Edit {
	return func(l domain.Layout) (domain.Layout, error) {
		return designer.SetBottomBar(ApplyBottomBar(l.BottomBar, req))(l)
	}
}

// DraftEdits turns a batch request into one chained edit. The section count is
// applied first and region edits run in key order.
func DraftEdits(req requests.DraftEditRequest) designer.Edit {
	var edits []designer.Edit
	if req.Sections != nil {
		edits = append(edits, designer.SetSections(*req.Sections))
	}
	if req.Width != nil {
		edits = append(edits, designer.SetWidth(*req.Width))
	}

	refs := make([]string, 0, len(req.Regions))
	for ref := range req.Regions {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	for _, ref := range refs {
		edits = append(edits, RegionEdit(ref, req.Regions[ref]))
	}

	if req.BottomBar != nil {
		edits = append(edits, BottomBarEdit(*req.BottomBar))
	}
	if req.BackgroundColor != nil || req.TextColor != nil {
		edits = append(edits, designer.SetColors(deref(req.BackgroundColor), deref(req.TextColor)))
	}
	return designer.Chain(edits...)
}

// ToLayoutResponse wraps a layout for the API
func ToLayoutResponse(screenID string, l domain.Layout, stored bool) *responses.LayoutResponse {
	return &responses.LayoutResponse{
		ScreenID:         screenID,
		Layout:           l,
		RightColumnWidth: l.RightColumnWidth(),
		Stored:           stored,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
