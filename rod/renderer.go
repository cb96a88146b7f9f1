package rod

import (
	"context"
	"time"

	"github.com/fwojciec/webscrape"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Renderer implements webscrape.Renderer at compile time.
var _ webscrape.Renderer = (*Renderer)(nil)

// DefaultSettleDelay is how long Render waits after the load event so
// that lazy-loaded content and client-side rendering can finish.
const DefaultSettleDelay = 5 * time.Second

// imagesJS collects image URLs, including lazy-loaded sources that sit
// in data-src or data-lazy-src until the image scrolls into view. Only
// absolute http(s) URLs are kept.
const imagesJS = `() => {
	const imgs = Array.from(document.querySelectorAll('img'));
	return imgs
		.map(img => img.src || img.getAttribute('data-src') || img.getAttribute('data-lazy-src'))
		.filter(src => src && src.startsWith('http'));
}`

// linksJS collects anchor text and resolved href pairs. Anchors with
// empty text (icon-only links) are dropped.
const linksJS = `() => {
	const links = Array.from(document.querySelectorAll('a[href]'));
	return links
		.map(a => ({text: a.textContent.trim(), url: a.href}))
		.filter(l => l.text && l.url);
}`

// consentJS clicks through common cookie/consent overlays so they do
// not end up in the rendered HTML. Best effort; returns whether a
// button was clicked.
const consentJS = `() => {
	const selectors = [
		'#onetrust-accept-btn-handler',
		'button[id*="accept"]',
		'button[class*="accept"]',
		'button[id*="consent"]',
		'button[class*="consent"]',
		'button[aria-label*="accept" i]',
		'[role="dialog"] button',
	];
	for (const sel of selectors) {
		const el = document.querySelector(sel);
		if (el && el.offsetParent !== null) {
			el.click();
			return true;
		}
	}
	return false;
}`

// Renderer retrieves rendered pages using Chrome browser automation.
// It captures the post-JavaScript HTML along with image and link
// side-channels evaluated in the page.
//
// Renderer is safe for concurrent use by multiple goroutines.
type Renderer struct {
	manager     *BrowserManager
	settleDelay time.Duration
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithSettleDelay sets the wait after the page load event before the
// HTML is captured. Defaults to DefaultSettleDelay.
func WithSettleDelay(d time.Duration) RendererOption {
	return func(r *Renderer) {
		r.settleDelay = d
	}
}

// NewRenderer creates a Renderer backed by a managed headless Chrome
// browser. Close must be called when the Renderer is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewRenderer(opts ...RendererOption) (*Renderer, error) {
	manager, err := NewBrowserManager()
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		manager:     manager,
		settleDelay: DefaultSettleDelay,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Render navigates to the URL, waits for dynamic content to settle,
// dismisses consent overlays, and returns the rendered page with its
// image and link side-channels populated.
func (r *Renderer) Render(ctx context.Context, url string) (*webscrape.RenderedPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := r.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return nil, err
	}
	if err := page.WaitLoad(); err != nil {
		return nil, err
	}

	// Consent dismissal is best effort; a failed click never fails the render.
	_, _ = page.Eval(consentJS)

	if r.settleDelay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.settleDelay):
		}
	}

	html, err := page.HTML()
	if err != nil {
		return nil, err
	}

	rendered := &webscrape.RenderedPage{
		URL:    url,
		Title:  pageTitle(page),
		HTML:   html,
		Images: evalImages(page),
		Links:  evalLinks(page),
	}

	r.manager.IncrementPageCount()
	return rendered, nil
}

// Close releases browser resources.
func (r *Renderer) Close() error {
	return r.manager.Close()
}

// pageTitle returns the document title, or "" if it cannot be read.
func pageTitle(page *rod.Page) string {
	info, err := page.Info()
	if err != nil {
		return ""
	}
	return info.Title
}

// evalImages runs the image side-channel script. Evaluation failures
// yield an empty list rather than failing the render.
func evalImages(page *rod.Page) []string {
	obj, err := page.Eval(imagesJS)
	if err != nil {
		return nil
	}

	var urls []string
	for _, v := range obj.Value.Arr() {
		if s := v.Str(); s != "" {
			urls = append(urls, s)
		}
	}
	return urls
}

// evalLinks runs the link side-channel script. Evaluation failures
// yield an empty list rather than failing the render.
func evalLinks(page *rod.Page) []webscrape.Link {
	obj, err := page.Eval(linksJS)
	if err != nil {
		return nil
	}

	var links []webscrape.Link
	for _, v := range obj.Value.Arr() {
		m := v.Map()
		link := webscrape.Link{Text: m["text"].Str(), URL: m["url"].Str()}
		if link.Text != "" && link.URL != "" {
			links = append(links, link)
		}
	}
	return links
}
