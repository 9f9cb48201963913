package host

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/time/rate"
)

// Preset is one row of the host's preset picker: a display name and the
// opaque reference the host resolves it by. The host owns the content; this
// client never interprets Ref beyond handing it back.
type Preset struct {
	Name string
	Ref  string
}

// Client handles HTTP requests to the host application.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
	baseURL string
}

// New creates a new host client.
func New(baseURL string, reqPerSec float64) *Client {
	if reqPerSec <= 0 {
		reqPerSec = 5.0
	}

	return &Client{
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(reqPerSec), 5),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListPresets fetches the host's preset picker page for the given family and
// returns the live preset list. The picker is rendered as a <select> whose
// data-preset-family attribute names the family; every <option> inside it is
// one preset. Separator and header rows are excluded here so callers only
// ever see real presets.
func (c *Client) ListPresets(ctx context.Context, family string) ([]Preset, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	pageURL := c.baseURL + "/presets/" + url.PathEscape(family)
	req, err := http.NewRequestWithContext(ctx, "GET", pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", "presetdeck/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, pageURL)
	}

	return parsePresetOptions(resp.Body, family)
}

// Apply is the only write path into host-owned state: it sets the host's
// preset control for the family to ref. The host performs the actual load
// through its own pipeline; this call does not wait for it.
func (c *Client) Apply(ctx context.Context, family, ref string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	applyURL := c.baseURL + "/presets/" + url.PathEscape(family) + "/select"
	form := url.Values{"value": {ref}}
	req, err := http.NewRequestWithContext(ctx, "POST", applyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", "presetdeck/1.0")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("applying preset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("HTTP %d applying preset %q", resp.StatusCode, ref)
	}
	return nil
}

// FetchBody retrieves the raw body of a preset for read-only preview.
// The bytes are displayed verbatim and never parsed.
func (c *Client) FetchBody(ctx context.Context, family, ref string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	bodyURL := c.baseURL + "/presets/" + url.PathEscape(family) + "/body?value=" + url.QueryEscape(ref)
	req, err := http.NewRequestWithContext(ctx, "GET", bodyURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", "presetdeck/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching preset body: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d fetching body for %q", resp.StatusCode, ref)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 1<<20))
}

// parsePresetOptions walks the page and collects the <option> elements of the
// select matching the family. An empty family matches the first select that
// carries the attribute at all.
func parsePresetOptions(r io.Reader, family string) ([]Preset, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	sel := findPresetSelect(doc, family)
	if sel == nil {
		return nil, fmt.Errorf("no preset select for family %q", family)
	}

	var presets []Preset
	seen := map[string]struct{}{}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "option" {
			if p, ok := parseOption(n); ok {
				if _, exists := seen[p.Name]; !exists {
					seen[p.Name] = struct{}{}
					presets = append(presets, p)
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(sel)

	return presets, nil
}

func findPresetSelect(n *html.Node, family string) *html.Node {
	if n.Type == html.ElementNode && n.Data == "select" {
		for _, attr := range n.Attr {
			if attr.Key == "data-preset-family" && (family == "" || attr.Val == family) {
				return n
			}
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if sel := findPresetSelect(child, family); sel != nil {
			return sel
		}
	}
	return nil
}

// parseOption turns an <option> into a Preset, rejecting separator rows
// (value "---"), header rows (name containing "=="), and rows missing either
// a name or a value.
func parseOption(n *html.Node) (Preset, bool) {
	value := ""
	for _, attr := range n.Attr {
		if attr.Key == "value" {
			value = attr.Val
			break
		}
	}
	name := strings.TrimSpace(textContent(n))

	if name == "" || value == "" {
		return Preset{}, false
	}
	if value == "---" || strings.Contains(name, "==") {
		return Preset{}, false
	}

	return Preset{Name: name, Ref: value}, true
}

// textContent returns all text content within a node.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		sb.WriteString(textContent(child))
	}
	return sb.String()
}
