package httpapi

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestParseRequest(t *testing.T) {
	r := httptest.NewRequest("POST", "/move-window?a=1&b=2&a=3", strings.NewReader(`{"id": 7}`))
	r.Header.Add("Origin", "http://first")
	r.Header.Add("Origin", "http://second")
	r.Header.Set("Authorization", "foobar")

	req, err := ParseRequest(r)
	if err != nil {
		t.Fatalf("ParseRequest error: %v", err)
	}
	if req.Method != "POST" || req.Path != "/move-window" {
		t.Fatalf("method/path = %s %s", req.Method, req.Path)
	}
	if got := req.Origin(); got != "http://second" {
		t.Errorf("Origin() = %q, want last value", got)
	}
	if got := req.Credential(); got != "foobar" {
		t.Errorf("Credential() = %q", got)
	}
	if req.Query["a"] != "3" || req.Query["b"] != "2" {
		t.Errorf("Query = %v", req.Query)
	}
	if req.BodyText != `{"id": 7}` {
		t.Errorf("BodyText = %q", req.BodyText)
	}
	if !req.Body.Present() || !req.Body.IsObject() {
		t.Fatal("Body should be a present JSON object")
	}
	var v struct{ ID int }
	if err := req.Body.Decode(&v); err != nil || v.ID != 7 {
		t.Fatalf("Decode = %v, id %d", err, v.ID)
	}
}

func TestParseRequest_NoQueryNoBody(t *testing.T) {
	req, err := ParseRequest(httptest.NewRequest("GET", "/windows", nil))
	if err != nil {
		t.Fatalf("ParseRequest error: %v", err)
	}
	if req.Query == nil || len(req.Query) != 0 {
		t.Errorf("Query = %v, want empty map", req.Query)
	}
	if req.Body.Present() {
		t.Error("Body present for empty request")
	}
	if err := req.Body.Decode(&struct{}{}); !errors.Is(err, ErrNoBody) {
		t.Errorf("Decode error = %v, want ErrNoBody", err)
	}
	if got := req.Origin(); got != "*" {
		t.Errorf("Origin() = %q, want *", got)
	}
	if got := req.Credential(); got != "" {
		t.Errorf("Credential() = %q, want empty", got)
	}
}

func TestParseRequest_InvalidJSONIsAbsent(t *testing.T) {
	req, err := ParseRequest(httptest.NewRequest("POST", "/move-window", strings.NewReader("id=7")))
	if err != nil {
		t.Fatalf("ParseRequest error: %v", err)
	}
	if req.Body.Present() {
		t.Fatal("Body present for non-JSON text")
	}
	if req.BodyText != "id=7" {
		t.Fatalf("BodyText = %q", req.BodyText)
	}
}

func TestRequestOrigin_RefererFallback(t *testing.T) {
	r := httptest.NewRequest("GET", "/state", nil)
	r.Header.Set("Referer", "http://example.test/page")
	req, _ := ParseRequest(r)
	if got := req.Origin(); got != "http://example.test/page" {
		t.Fatalf("Origin() = %q, want referer", got)
	}
}

func TestJSONBody_IsObject(t *testing.T) {
	tests := []struct {
		body string
		want bool
	}{
		{`{}`, true},
		{"  \n{\"id\":1}", true},
		{`null`, false},
		{`[1,2]`, false},
		{`"text"`, false},
		{`42`, false},
	}
	for _, tt := range tests {
		req, _ := ParseRequest(httptest.NewRequest("POST", "/", strings.NewReader(tt.body)))
		if got := req.Body.IsObject(); got != tt.want {
			t.Errorf("IsObject(%q) = %v, want %v", tt.body, got, tt.want)
		}
	}
}

func TestEncodeJSON(t *testing.T) {
	got, err := encodeJSON(nil)
	if err != nil || string(got) != `""` {
		t.Fatalf("encodeJSON(nil) = %q, %v", got, err)
	}
	got, err = encodeJSON(map[string]string{"name": "<a & b>"})
	if err != nil || string(got) != `{"name":"<a & b>"}` {
		t.Fatalf("encodeJSON = %q, %v; want unescaped HTML", got, err)
	}
}
