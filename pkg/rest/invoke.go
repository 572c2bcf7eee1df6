package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
)

// Call holds the inputs of a single endpoint invocation.
type Call struct {
	Path  []string
	Query Values
	// Body is JSON-encoded when non-nil.
	Body any
}

// Invoke sends one request for ep and returns the raw response. GET
// endpoints marked Paginated must go through GetAllPages instead.
func Invoke(ctx context.Context, transport Transport, ep Endpoint, call Call) (*Response, error) {
	if transport == nil {
		return nil, ErrNilTransport
	}

	target, err := ep.URL(call.Path, call.Query)
	if err != nil {
		return nil, err
	}

	var payload []byte

	if !isNilBody(call.Body) && ep.hasBody() {
		payload, err = encode(call.Body)
		if err != nil {
			return nil, err
		}
	}

	switch ep.Method {
	case http.MethodGet:
		return transport.Get(ctx, target)
	case http.MethodPost:
		return transport.Post(ctx, target, payload)
	case http.MethodPut:
		return transport.Put(ctx, target, payload)
	case http.MethodDelete:
		return transport.Delete(ctx, target)
	default:
		return nil, fmt.Errorf("%s: %w: %s", ep.Name, ErrUnsupportedMethod, ep.Method)
	}
}

// Get invokes ep and decodes the response into T.
func Get[T any](ctx context.Context, transport Transport, ep Endpoint, call Call) (*T, error) {
	return invokeDecode[T](ctx, transport, ep, call)
}

// Post invokes ep with the call body and decodes the response into T.
func Post[T any](ctx context.Context, transport Transport, ep Endpoint, call Call) (*T, error) {
	return invokeDecode[T](ctx, transport, ep, call)
}

// Put invokes ep with the call body and decodes the response into T.
func Put[T any](ctx context.Context, transport Transport, ep Endpoint, call Call) (*T, error) {
	return invokeDecode[T](ctx, transport, ep, call)
}

// Delete invokes ep and discards any response body.
func Delete(ctx context.Context, transport Transport, ep Endpoint, call Call) error {
	_, err := Invoke(ctx, transport, ep, call)

	return err
}

// GetAllPages follows every page of a list endpoint and decodes each element
// into T.
func GetAllPages[T any](ctx context.Context, transport Transport, ep Endpoint, call Call) ([]T, error) {
	if transport == nil {
		return nil, ErrNilTransport
	}

	target, err := ep.URL(call.Path, call.Query)
	if err != nil {
		return nil, err
	}

	raw, err := transport.GetAllPages(ctx, target)
	if err != nil {
		return nil, err
	}

	items := make([]T, 0, len(raw))
	for _, element := range raw {
		var item T

		err := decode(element, &item)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

func invokeDecode[T any](ctx context.Context, transport Transport, ep Endpoint, call Call) (*T, error) {
	resp, err := Invoke(ctx, transport, ep, call)
	if err != nil {
		return nil, err
	}

	if resp == nil {
		return nil, fmt.Errorf("%s: %w", ep.Name, ErrUnexpectedResponse)
	}

	var result T

	err = decode(resp.Body, &result)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// isNilBody reports whether body is nil or a nil pointer, map or slice held
// in an interface. Such bodies are sent as no payload rather than "null".
func isNilBody(body any) bool {
	if body == nil {
		return true
	}

	value := reflect.ValueOf(body)
	switch value.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return value.IsNil()
	default:
		return false
	}
}

func encode(body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &SerializationError{Op: "encode", Type: typeName(body), Err: err}
	}

	return payload, nil
}

func decode(data []byte, target any) error {
	err := json.Unmarshal(data, target)
	if err != nil {
		return &SerializationError{Op: "decode", Type: typeName(target), Err: err}
	}

	return nil
}

func typeName(value any) string {
	t := reflect.TypeOf(value)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t == nil {
		return "nil"
	}

	return t.String()
}
