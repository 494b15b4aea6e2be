package convert

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func TestIsURL(t *testing.T) {
	testCases := []struct {
		src  string
		want bool
	}{
		{"input.png", false},
		{"./photos/input.png", false},
		{"/abs/path/input.png", false},
		{"C:\\images\\input.png", false},
		{"http://example.com/input.png", true},
		{"https://example.com/input.png", true},
		{"ftp://example.com/input.png", false},
	}

	for _, tc := range testCases {
		if got := isURL(tc.src); got != tc.want {
			t.Errorf("expected isURL(%q) to be %v, got %v", tc.src, tc.want, got)
		}
	}
}

func TestFetcherLocal(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "input.png", []byte("pixels"), 0644); err != nil {
		t.Fatal(err)
	}

	f := NewFetcher(fs, zap.NewNop())

	bs, err := f.Get("input.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(bs, []byte("pixels")) {
		t.Errorf("expected file bytes, got %q", bs)
	}

	if _, err := f.Get("missing.png"); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestFetcherDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/gone.png" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("pixels"))
	}))
	defer srv.Close()

	f := NewFetcher(afero.NewMemMapFs(), zap.NewNop())

	bs, err := f.Get(srv.URL + "/input.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(bs, []byte("pixels")) {
		t.Errorf("expected body bytes, got %q", bs)
	}

	if _, err := f.Get(srv.URL + "/gone.png"); err == nil {
		t.Error("expected an error for a 404 response")
	}
}
