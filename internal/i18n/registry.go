package i18n

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"golang.org/x/text/language"

	"github.com/byond/leadquiz/internal/analysis"
)

// ErrUnknownLocale is returned by Get for a locale without a pack.
var ErrUnknownLocale = errors.New("unknown locale")

// Registry holds the available bundles. The first bundle registered is the
// fallback for unmatched preferences.
type Registry struct {
	order   []string
	bundles map[string]*Bundle
	matcher language.Matcher
}

// NewRegistry creates a registry. A later bundle replaces an earlier one
// with the same locale but keeps its position.
func NewRegistry(bundles ...*Bundle) *Registry {
	r := &Registry{bundles: make(map[string]*Bundle)}
	for _, b := range bundles {
		r.add(b)
	}
	r.rebuild()
	return r
}

func (r *Registry) add(b *Bundle) {
	if _, ok := r.bundles[b.Locale()]; !ok {
		r.order = append(r.order, b.Locale())
	}
	r.bundles[b.Locale()] = b
}

func (r *Registry) rebuild() {
	tags := make([]language.Tag, len(r.order))
	for i, loc := range r.order {
		tags[i] = r.bundles[loc].Tag()
	}
	r.matcher = language.NewMatcher(tags)
}

// LoadFS parses every *.yaml and *.yml pack in dir of fsys, in name order.
func LoadFS(fsys fs.FS, dir string) ([]*Bundle, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read locales %s: %w", dir, err)
	}

	var out []*Bundle
	for _, e := range entries {
		ext := path.Ext(e.Name())
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		p := path.Join(dir, e.Name())
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read pack %s: %w", p, err)
		}
		pack, err := ParsePack(data, p)
		if err != nil {
			return nil, err
		}
		out = append(out, NewBundle(pack))
	}
	return out, nil
}

// Load parses the packs in a directory on disk.
func Load(dir string) ([]*Bundle, error) {
	return LoadFS(os.DirFS(dir), ".")
}

// Embedded returns a registry of the packs compiled into the binary.
func Embedded() (*Registry, error) {
	bundles, err := LoadFS(embedded, "locales")
	if err != nil {
		return nil, err
	}
	return NewRegistry(bundles...), nil
}

// Default returns the embedded registry overlaid with the packs in dir.
// An empty dir yields the embedded packs only.
func Default(dir string) (*Registry, error) {
	r, err := Embedded()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return r, nil
	}
	extra, err := Load(dir)
	if err != nil {
		return nil, err
	}
	for _, b := range extra {
		r.add(b)
	}
	r.rebuild()
	return r, nil
}

// Match picks the bundle that best serves the given preferences, in order.
// Preferences may be BCP 47 tags ("de-AT") or POSIX locale names
// ("de_DE.UTF-8"). Unparseable or unmatched preferences yield the fallback.
func (r *Registry) Match(prefs ...string) *Bundle {
	if len(r.order) == 0 {
		return nil
	}
	var tags []language.Tag
	for _, p := range prefs {
		if t, ok := parseTag(p); ok {
			tags = append(tags, t)
		}
	}
	_, idx, conf := r.matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(r.order) {
		idx = 0
	}
	return r.bundles[r.order[idx]]
}

func parseTag(s string) (language.Tag, bool) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "" || s == "C" || s == "POSIX" {
		return language.Und, false
	}
	t, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return t, true
}

// Get returns the bundle for an exact locale code.
func (r *Registry) Get(locale string) (*Bundle, error) {
	b, ok := r.bundles[locale]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownLocale, locale, strings.Join(r.order, ", "))
	}
	return b, nil
}

// Locales returns the registered locale codes in registration order.
func (r *Registry) Locales() []string {
	return append([]string(nil), r.order...)
}

// Bundles returns the registered bundles in registration order.
func (r *Registry) Bundles() []*Bundle {
	out := make([]*Bundle, len(r.order))
	for i, loc := range r.order {
		out[i] = r.bundles[loc]
	}
	return out
}

// Next returns the bundle after current, wrapping around.
func (r *Registry) Next(current *Bundle) *Bundle {
	if len(r.order) == 0 {
		return current
	}
	for i, loc := range r.order {
		if current != nil && loc == current.Locale() {
			return r.bundles[r.order[(i+1)%len(r.order)]]
		}
	}
	return r.bundles[r.order[0]]
}

// Entries merges the option annotations of every bundle.
func (r *Registry) Entries() []analysis.Entry {
	var out []analysis.Entry
	for _, b := range r.Bundles() {
		out = append(out, b.Entries()...)
	}
	return out
}

// Lookup returns the built-in analysis tables extended with every pack's
// option annotations.
func (r *Registry) Lookup() *analysis.Lookup {
	l := analysis.DefaultLookup()
	l.Add(r.Entries()...)
	return l
}
