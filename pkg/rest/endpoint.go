package rest

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Endpoint describes one remote operation: its verb, its path template with
// {named} placeholders and the optional query parameters it accepts, in the
// order they are sent.
type Endpoint struct {
	// Name identifies the operation in errors and logs, e.g. "webhooks.get_page".
	Name   string
	Method string
	Path   string
	Query  []string
	// Paginated endpoints are dispatched through Transport.GetAllPages.
	Paginated bool
}

// EncodePath percent-escapes a single path segment. The dot segments "."
// and ".." are escaped as well so path normalisation on the server cannot
// move the request to a parent resource.
func EncodePath(segment string) string {
	switch segment {
	case ".":
		return "%2E"
	case "..":
		return "%2E%2E"
	default:
		return url.PathEscape(segment)
	}
}

// Params returns the placeholder names of the path template in order.
func (e Endpoint) Params() []string {
	var names []string

	remaining := e.Path
	for {
		start := strings.IndexByte(remaining, '{')
		if start < 0 {
			return names
		}

		end := strings.IndexByte(remaining[start:], '}')
		if end < 0 {
			return names
		}

		names = append(names, remaining[start+1:start+end])
		remaining = remaining[start+end+1:]
	}
}

// Expand substitutes values into the path template in placeholder order.
// Each value is escaped on its own so the template's slashes survive and a
// value can never introduce new path segments, dot segments, a query or a
// fragment.
func (e Endpoint) Expand(values ...string) (string, error) {
	var (
		builder strings.Builder
		used    int
	)

	remaining := e.Path
	for {
		start := strings.IndexByte(remaining, '{')
		if start < 0 {
			builder.WriteString(remaining)

			break
		}

		end := strings.IndexByte(remaining[start:], '}')
		if end < 0 {
			builder.WriteString(remaining)

			break
		}

		if used >= len(values) {
			return "", fmt.Errorf("%s: %w: template %q wants more than %d", e.Name, ErrPathParamCount, e.Path, len(values))
		}

		builder.WriteString(remaining[:start])
		builder.WriteString(EncodePath(values[used]))
		used++

		remaining = remaining[start+end+1:]
	}

	if used != len(values) {
		return "", fmt.Errorf("%s: %w: template %q takes %d, got %d", e.Name, ErrPathParamCount, e.Path, used, len(values))
	}

	return builder.String(), nil
}

// URL builds the relative request URL: the expanded path followed by the
// query string when at least one argument is present. No trailing "?" is
// emitted for an empty query.
func (e Endpoint) URL(path []string, query Values) (string, error) {
	expanded, err := e.Expand(path...)
	if err != nil {
		return "", err
	}

	args, err := e.QueryArgs(query)
	if err != nil {
		return "", err
	}

	if args.Len() == 0 {
		return expanded, nil
	}

	return expanded + "?" + args.Encode(), nil
}

// QueryArgs assembles the query-argument set for the endpoint from values,
// walking the declared parameter names in order.
func (e Endpoint) QueryArgs(values Values) (*QueryArgs, error) {
	for name := range values {
		if !e.declares(name) {
			return nil, fmt.Errorf("%s: %w: %q", e.Name, ErrUnknownQueryParam, name)
		}
	}

	args := NewQueryArgs()
	for _, name := range e.Query {
		value, ok := values[name]
		if !ok {
			continue
		}

		args.Add(name, value)
	}

	return args, nil
}

func (e Endpoint) declares(name string) bool {
	for _, declared := range e.Query {
		if declared == name {
			return true
		}
	}

	return false
}

func (e Endpoint) hasBody() bool {
	return e.Method == http.MethodPost || e.Method == http.MethodPut || e.Method == http.MethodPatch
}
