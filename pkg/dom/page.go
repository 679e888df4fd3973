package dom

import "slices"

// ConvertPage is the markup the submit handler is bound to.
type ConvertPage struct {
	*Document
	Convert      *Element
	VideoURL     *Element
	Error        *Element
	Success      *Element
	DownloadLink *Element
}

// PageState is a point-in-time copy of what the convert page shows.
type PageState struct {
	VideoURL     string `json:"video_url"`
	ErrorShown   bool   `json:"error_shown"`
	SuccessShown bool   `json:"success_shown"`
	DownloadHref string `json:"download_href"`
}

// NewConvertPage builds the page as it looks on load: both indicators
// hidden and the download link pointing nowhere.
func NewConvertPage() *ConvertPage {
	doc := NewDocument()

	p := &ConvertPage{
		Document:     doc,
		VideoURL:     doc.Create("input", "", VideoURLName),
		Convert:      doc.Create("button", ConvertID, ""),
		Error:        doc.Create("div", ErrorID, "", "notification", HiddenClass),
		Success:      doc.Create("div", SuccessID, "", "notification", HiddenClass),
		DownloadLink: doc.Create("a", DownloadLinkID, ""),
	}
	p.DownloadLink.SetAttribute(HrefAttr, defaultLinkHref)
	return p
}

// Snapshot reads the whole page under one lock.
func (p *ConvertPage) Snapshot() PageState {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return PageState{
		VideoURL:     p.VideoURL.value,
		ErrorShown:   !slices.Contains(p.Error.classes, HiddenClass),
		SuccessShown: !slices.Contains(p.Success.classes, HiddenClass),
		DownloadHref: p.DownloadLink.attrs[HrefAttr],
	}
}
