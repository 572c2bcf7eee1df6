package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/detailyang/third-party-api-clients/pkg/rest"
)

// GetAllPages fetches path and every page linked from it through
// `Link: <...>; rel="next"` headers. Each page must be a JSON array; the
// elements of all pages are returned in order.
func (c *Client) GetAllPages(ctx context.Context, path string) ([]json.RawMessage, error) {
	var items []json.RawMessage

	next := path
	for page := 0; next != ""; page++ {
		if page >= c.maxPages {
			return nil, fmt.Errorf("%w: stopped after %d pages of %s", ErrTooManyPages, c.maxPages, path)
		}

		resp, err := c.Get(ctx, next)
		if err != nil {
			return nil, err
		}

		pageItems, err := decodePage(resp.Body)
		if err != nil {
			return nil, err
		}

		items = append(items, pageItems...)

		link := nextLink(resp.Headers)
		if link == "" {
			break
		}

		next, err = c.resolveLink(next, link)
		if err != nil {
			return nil, &rest.TransportError{Method: http.MethodGet, URL: link, Err: err}
		}

		// Follow-up requests carry the bearer token, so they must stay on
		// the base URL's origin.
		if !c.sameOrigin(next) {
			return nil, &rest.TransportError{Method: http.MethodGet, URL: next, Err: ErrCrossOriginLink}
		}
	}

	return items, nil
}

func decodePage(body []byte) ([]json.RawMessage, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	var pageItems []json.RawMessage

	err := json.Unmarshal(body, &pageItems)
	if err != nil {
		return nil, &rest.SerializationError{Op: "decode", Type: "[]json.RawMessage", Err: err}
	}

	return pageItems, nil
}

// resolveLink turns link into an absolute URL relative to the page that
// carried it.
func (c *Client) resolveLink(current, link string) (string, error) {
	base, err := url.Parse(c.resolve(current, nil))
	if err != nil {
		return "", fmt.Errorf("parsing page url: %w", err)
	}

	ref, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("parsing next link: %w", err)
	}

	return base.ResolveReference(ref).String(), nil
}

func (c *Client) sameOrigin(target string) bool {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return false
	}

	parsed, err := url.Parse(target)
	if err != nil {
		return false
	}

	return strings.EqualFold(base.Scheme, parsed.Scheme) && strings.EqualFold(base.Host, parsed.Host)
}

// nextLink extracts the rel="next" target from RFC 5988 Link headers.
func nextLink(headers http.Header) string {
	for _, header := range headers.Values("Link") {
		for _, entry := range strings.Split(header, ",") {
			target, params, found := strings.Cut(strings.TrimSpace(entry), ";")
			if !found {
				continue
			}

			target = strings.TrimSpace(target)
			if !strings.HasPrefix(target, "<") || !strings.HasSuffix(target, ">") {
				continue
			}

			if hasRelNext(params) {
				return target[1 : len(target)-1]
			}
		}
	}

	return ""
}

func hasRelNext(params string) bool {
	for _, param := range strings.Split(params, ";") {
		key, value, found := strings.Cut(strings.TrimSpace(param), "=")
		if !found || !strings.EqualFold(strings.TrimSpace(key), "rel") {
			continue
		}

		for _, rel := range strings.Fields(strings.Trim(strings.TrimSpace(value), `"`)) {
			if strings.EqualFold(rel, "next") {
				return true
			}
		}
	}

	return false
}
