package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// ErrNoBody is returned when a route needs a JSON body and the request had
// none, or had one that did not parse.
var ErrNoBody = errors.New("request has no JSON body")

// JSONBody is the optionally decoded request body.
type JSONBody struct {
	raw json.RawMessage
}

// Present reports whether the body was valid JSON.
func (b JSONBody) Present() bool {
	return b.raw != nil
}

// IsObject reports whether the body is a JSON object.
func (b JSONBody) IsObject() bool {
	trimmed := bytes.TrimLeft(b.raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// Decode unmarshals the body into v.
func (b JSONBody) Decode(v any) error {
	if !b.Present() {
		return ErrNoBody
	}
	return json.Unmarshal(b.raw, v)
}

// Request is the parsed form of an incoming HTTP request.
type Request struct {
	Method string
	Path   string
	// Headers holds one value per canonical header name; when a header
	// repeats, the last value wins.
	Headers map[string]string
	// Query holds one value per key; when a key repeats, the last value wins.
	Query    map[string]string
	BodyText string
	Body     JSONBody
}

// Header returns the named header and whether it was sent.
func (r *Request) Header(name string) (string, bool) {
	v, ok := r.Headers[http.CanonicalHeaderKey(name)]
	return v, ok
}

// Origin is the value echoed in Access-Control-Allow-Origin: the Origin
// header, else Referer, else "*".
func (r *Request) Origin() string {
	if v, ok := r.Header("Origin"); ok {
		return v
	}
	if v, ok := r.Header("Referer"); ok {
		return v
	}
	return "*"
}

// Credential is the raw Authorization header, "" when absent.
func (r *Request) Credential() string {
	v, _ := r.Header("Authorization")
	return v
}

// ParseRequest reads r fully. Only a failure to read the body is an error;
// a body that is not JSON leaves Body absent.
func ParseRequest(r *http.Request) (*Request, error) {
	headers := lastHeaderValues(r.Header)

	query := make(map[string]string)
	// ParseQuery keeps the pairs it could parse even when it reports an error.
	values, _ := url.ParseQuery(r.URL.RawQuery)
	for key, vs := range values {
		if len(vs) > 0 {
			query[key] = vs[len(vs)-1]
		}
	}

	var text []byte
	if r.Body != nil {
		var err error
		text, err = io.ReadAll(r.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read request body: %w", err)
		}
	}

	req := &Request{
		Method:   r.Method,
		Path:     r.URL.Path,
		Headers:  headers,
		Query:    query,
		BodyText: string(text),
	}
	if json.Valid(text) {
		req.Body = JSONBody{raw: json.RawMessage(text)}
	}
	return req, nil
}

// lastHeaderValues keeps the last value of each header.
func lastHeaderValues(h http.Header) map[string]string {
	headers := make(map[string]string, len(h))
	for name, values := range h {
		if len(values) > 0 {
			headers[name] = values[len(values)-1]
		}
	}
	return headers
}

type requestKey struct{}

func withRequest(ctx context.Context, req *Request) context.Context {
	return context.WithValue(ctx, requestKey{}, req)
}

// requestFrom returns the parsed request stored by the parse middleware.
func requestFrom(ctx context.Context) *Request {
	req, _ := ctx.Value(requestKey{}).(*Request)
	if req == nil {
		return &Request{Headers: map[string]string{}, Query: map[string]string{}}
	}
	return req
}
