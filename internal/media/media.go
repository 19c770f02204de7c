// Package media is the narrow contract the catalog holds against the media
// subsystem. The catalog stores and passes media ids only; it never touches
// file bytes.
package media

import "strings"

type View struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
}

type Renderer interface {
	Render(mediaID string) *View
}

// URLRenderer resolves media ids against a static base URL. The real media
// pipeline lives outside this service.
type URLRenderer struct {
	BaseURL string
}

func NewURLRenderer(baseURL string) *URLRenderer {
	return &URLRenderer{BaseURL: strings.TrimRight(baseURL, "/")}
}

func (r *URLRenderer) Render(mediaID string) *View {
	if mediaID == "" {
		return nil
	}
	return &View{
		URL:          r.BaseURL + "/" + mediaID,
		ThumbnailURL: r.BaseURL + "/" + mediaID + "/thumbnail",
	}
}
