// Package rest is the shared binding layer behind every service client in
// this module.
//
// # Overview
//
// Each remote operation is described once by an Endpoint: a name, an HTTP
// verb, a path template with {named} placeholders and the optional query
// parameters it accepts. Service packages (docusign, shipbob, slack) keep a
// table of Endpoints and expose one method per entry; the method hands its
// identifiers, query fields and body to one of the typed helpers (Get, Post,
// Put, Delete, GetAllPages), which build the relative URL, call the
// Transport and decode the JSON result.
//
//	var getWebhooks = rest.Endpoint{
//	  Name:   "webhooks.get_page",
//	  Method: http.MethodGet,
//	  Path:   "/webhook",
//	  Query:  []string{"Limit", "Page", "Topic"},
//	}
//
//	hooks, err := rest.Get[[]Webhook](ctx, transport, getWebhooks, rest.Call{
//	  Query: rest.Values{"Page": int64(2), "Topic": "order_shipped"},
//	})
//
// # Paths and queries
//
// Path values are escaped one segment at a time with EncodePath, so a value
// containing "/", "?" or "#" stays inside its segment. Query values are only
// sent when present: a non-empty string, a positive integer, true, or a
// fmt.Stringer with non-empty text. Present values are sent in the order the
// Endpoint declares them, and no "?" is appended when nothing is present.
//
// # Errors
//
// Bindings return two kinds of runtime error unchanged: *TransportError for
// network failures and non-2xx statuses, and *SerializationError when a body
// cannot be encoded or a response cannot be decoded. Helpers such as
// IsNotFound and StatusCode inspect them through errors.As.
//
// # Transport
//
// Transport is implemented by the module's retrying HTTP client; apiclients
// builds one per service from a Config. Tests substitute a fake.
package rest
