package form

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formkit/pkg/element"
	"github.com/goliatone/go-formkit/pkg/submit"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProcessCollectsValuesInOrder(t *testing.T) {
	f := New(WithLogger(discardLogger()))
	f.Add(
		element.NewString("a", "hello"),
		element.NewInt("b", 5),
	)

	values := f.Process(context.Background())
	want := map[string]any{"a": "hello", "b": 5}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b"}, f.Names()); diff != "" {
		t.Fatalf("key order mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessSkipsFailingElements(t *testing.T) {
	f := New(WithLogger(discardLogger()))
	var broken element.String // zero value, never constructed
	f.Add(element.NewString("ok", "fine"), &broken, element.NewInt("n", 1))

	values := f.Process(context.Background())
	want := map[string]any{"ok": "fine", "n": 1}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Fatalf("failed read should be skipped, not fatal (-want +got):\n%s", diff)
	}
}

func TestDuplicateNamesLastWriteWins(t *testing.T) {
	f := New(WithLogger(discardLogger()))
	f.Add(element.NewString("a", "first"), element.NewString("a", "second"))

	values := f.Process(context.Background())
	if values["a"] != "second" {
		t.Fatalf("later element should win, got %v", values["a"])
	}
	if diff := cmp.Diff([]string{"a"}, f.Names()); diff != "" {
		t.Fatalf("names should dedup (-want +got):\n%s", diff)
	}
}

func TestSubmitLogNeverRequiresTarget(t *testing.T) {
	f := New(WithLogger(discardLogger()))
	f.Add(element.NewString("a", "hello"))
	if _, err := f.Submit(context.Background(), submit.Log, ""); err != nil {
		t.Fatalf("log submit should not fail: %v", err)
	}
}

func TestSubmitHTTPWithoutTargetFails(t *testing.T) {
	f := New(WithLogger(discardLogger()))
	f.Add(element.NewString("a", "hello"))
	_, err := f.Submit(context.Background(), submit.HTTPPost, "")
	if !errors.Is(err, submit.ErrTargetRequired) {
		t.Fatalf("expected ErrTargetRequired, got %v", err)
	}
}

func TestSubmitPostsAggregatedValues(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
		io.WriteString(w, "created")
	}))
	defer srv.Close()

	f := New(WithLogger(discardLogger()))
	f.Add(element.NewString("a", "hello"), element.NewInt("b", 5))

	res, err := f.Submit(context.Background(), submit.HTTPPost, srv.URL)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if gotBody != "a=hello&b=5" {
		t.Fatalf("body mismatch: %q", gotBody)
	}
	if string(res.Body) != "created" {
		t.Fatalf("response body mismatch: %q", res.Body)
	}
}
