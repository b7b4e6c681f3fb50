package cookie

import (
	"net/http"
	"strings"
	"sync"
	"time"
)

// Jar abstracts the ambient cookie store: a single string holding all
// current cookies (document.cookie style) plus a write entry point that
// accepts one serialized cookie at a time. The Store never caches what a
// Jar holds; every operation goes back to it.
type Jar interface {
	// Cookies returns the current "name=value; name2=value2" view
	Cookies() string

	// SetCookie applies one serialized cookie write,
	// "name=value[; attr=...]"
	SetCookie(cookie string)
}

// DocumentJar is an in-memory Jar that emulates browser cookie-string
// semantics: writes overwrite by name, a past expires attribute deletes,
// and Cookies preserves first-write order. Path and domain attributes are
// accepted but not used for scoping — a single jar models a single
// document. Safe for concurrent use.
type DocumentJar struct {
	mu     sync.Mutex
	order  []string
	values map[string]string
}

func NewDocumentJar() *DocumentJar {
	return &DocumentJar{
		values: make(map[string]string),
	}
}

func (j *DocumentJar) Cookies() string {
	j.mu.Lock()
	defer j.mu.Unlock()

	if len(j.order) == 0 {
		return ""
	}
	pairs := make([]string, 0, len(j.order))
	for _, name := range j.order {
		pairs = append(pairs, name+"="+j.values[name])
	}
	return strings.Join(pairs, "; ")
}

func (j *DocumentJar) SetCookie(cookie string) {
	parts := strings.Split(cookie, ";")
	if len(parts) == 0 {
		return
	}

	name, value, ok := strings.Cut(strings.TrimSpace(parts[0]), "=")
	if !ok || name == "" {
		return
	}

	expired := false
	for _, attr := range parts[1:] {
		k, v, _ := strings.Cut(strings.TrimSpace(attr), "=")
		if strings.EqualFold(k, "expires") {
			if at, err := parseExpires(v); err == nil && !at.After(time.Now()) {
				expired = true
			}
		}
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if expired {
		j.delete(name)
		return
	}
	if _, exists := j.values[name]; !exists {
		j.order = append(j.order, name)
	}
	j.values[name] = value
}

// Len returns the number of cookies currently held
func (j *DocumentJar) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.order)
}

func (j *DocumentJar) delete(name string) {
	if _, exists := j.values[name]; !exists {
		return
	}
	delete(j.values, name)
	for i, n := range j.order {
		if n == name {
			j.order = append(j.order[:i], j.order[i+1:]...)
			break
		}
	}
}

func parseExpires(v string) (time.Time, error) {
	at, err := time.Parse(http.TimeFormat, v)
	if err != nil {
		at, err = time.Parse(time.RFC1123, v)
	}
	return at, err
}

// HeaderJar adapts an HTTP exchange into a Jar: reads come from the
// request's Cookie header, writes append Set-Cookie response headers.
// Follows net/http's per-request model; not for sharing across requests.
type HeaderJar struct {
	w http.ResponseWriter
	r *http.Request
}

func NewHeaderJar(w http.ResponseWriter, r *http.Request) HeaderJar {
	return HeaderJar{w: w, r: r}
}

func (j HeaderJar) Cookies() string {
	if j.r == nil {
		return ""
	}
	return j.r.Header.Get("Cookie")
}

func (j HeaderJar) SetCookie(cookie string) {
	if j.w == nil {
		return
	}
	j.w.Header().Add("Set-Cookie", cookie)
}
