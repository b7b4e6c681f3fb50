package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrymomot/browserkit/pkg/cookie"
)

func TestDocumentJar_InsertionOrder(t *testing.T) {
	t.Parallel()
	jar := cookie.NewDocumentJar()

	jar.SetCookie("a=1")
	jar.SetCookie("b=2")
	jar.SetCookie("c=3")
	jar.SetCookie("a=updated") // overwrite keeps original position

	if got := jar.Cookies(); got != "a=updated; b=2; c=3" {
		t.Errorf("Cookies() = %q", got)
	}
	if jar.Len() != 3 {
		t.Errorf("Len() = %d, want 3", jar.Len())
	}
}

func TestDocumentJar_ExpiredWriteDeletes(t *testing.T) {
	t.Parallel()
	jar := cookie.NewDocumentJar()

	jar.SetCookie("keep=1")
	jar.SetCookie("gone=1")

	past := time.Now().Add(-24 * time.Hour).UTC().Format(http.TimeFormat)
	jar.SetCookie("gone=; expires=" + past)

	if got := jar.Cookies(); got != "keep=1" {
		t.Errorf("Cookies() = %q, want keep=1", got)
	}
}

func TestDocumentJar_FutureExpiresKeeps(t *testing.T) {
	t.Parallel()
	jar := cookie.NewDocumentJar()

	future := time.Now().Add(24 * time.Hour).UTC().Format(http.TimeFormat)
	jar.SetCookie("session=abc; expires=" + future + "; path=/; secure")

	if got := jar.Cookies(); got != "session=abc" {
		t.Errorf("Cookies() = %q, want attributes stripped", got)
	}
}

func TestDocumentJar_IgnoresMalformedWrites(t *testing.T) {
	t.Parallel()
	jar := cookie.NewDocumentJar()

	jar.SetCookie("")
	jar.SetCookie("no-equals-sign")
	jar.SetCookie("=value-without-name")

	if got := jar.Cookies(); got != "" {
		t.Errorf("Cookies() = %q, want empty", got)
	}
}

func TestHeaderJar(t *testing.T) {
	t.Parallel()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Cookie", "session=abc; theme=dark")
	w := httptest.NewRecorder()

	jar := cookie.NewHeaderJar(w, r)
	store := cookie.New(jar)

	got, err := store.Get("theme")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "dark" {
		t.Errorf("Get() = %q, want dark", got)
	}

	if err := store.Set("lang", "en", cookie.WithDays(365)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	setCookie := w.Header().Get("Set-Cookie")
	if !strings.HasPrefix(setCookie, "lang=en; expires=") {
		t.Errorf("Set-Cookie = %q", setCookie)
	}
}

func TestHeaderJar_ZeroValue(t *testing.T) {
	t.Parallel()
	var jar cookie.HeaderJar

	if got := jar.Cookies(); got != "" {
		t.Errorf("Cookies() = %q, want empty", got)
	}
	jar.SetCookie("a=1") // must not panic
}
