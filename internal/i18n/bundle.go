package i18n

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/byond/leadquiz/internal/analysis"
	"github.com/byond/leadquiz/internal/quiz"
)

// Bundle is the resolved string table and quiz content of one locale.
// Nested message trees are flattened into dotted keys; list elements use
// their index as a key segment ("packages.0.title").
type Bundle struct {
	locale string
	name   string
	tag    language.Tag
	steps  []PackStep
	msgs   map[string]string
	lens   map[string]int
}

// NewBundle builds a Bundle from a validated pack.
func NewBundle(p *Pack) *Bundle {
	b := &Bundle{
		locale: p.Locale,
		name:   p.Name,
		tag:    language.Make(p.Locale),
		steps:  p.Quiz.Steps,
		msgs:   make(map[string]string),
		lens:   make(map[string]int),
	}
	for k, v := range p.Messages {
		b.flatten(k, v)
	}
	return b
}

func (b *Bundle) flatten(prefix string, v any) {
	switch n := v.(type) {
	case map[string]any:
		for k, child := range n {
			b.flatten(prefix+"."+k, child)
		}
	case []any:
		b.lens[prefix] = len(n)
		for i, child := range n {
			b.flatten(prefix+"."+strconv.Itoa(i), child)
		}
	case string:
		b.msgs[prefix] = n
	case nil:
	default:
		b.msgs[prefix] = fmt.Sprint(n)
	}
}

// Locale returns the BCP 47 code of the bundle.
func (b *Bundle) Locale() string { return b.locale }

// Name returns the display name of the language.
func (b *Bundle) Name() string { return b.name }

// Tag returns the parsed language tag.
func (b *Bundle) Tag() language.Tag { return b.tag }

// T returns the text for key. A missing key returns the key itself so gaps
// stay visible on screen instead of rendering blank.
func (b *Bundle) T(key string) string {
	if b == nil {
		return key
	}
	if s, ok := b.msgs[key]; ok {
		return s
	}
	return key
}

// Tf formats the text for key with args.
func (b *Bundle) Tf(key string, args ...any) string {
	if !b.Has(key) {
		return key
	}
	return fmt.Sprintf(b.T(key), args...)
}

// Has reports whether key resolves to text.
func (b *Bundle) Has(key string) bool {
	if b == nil {
		return false
	}
	_, ok := b.msgs[key]
	return ok
}

// Len returns the number of elements of the list at key, or 0.
func (b *Bundle) Len(key string) int {
	if b == nil {
		return 0
	}
	return b.lens[key]
}

// List returns the string elements of the list at key.
func (b *Bundle) List(key string) []string {
	n := b.Len(key)
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if s, ok := b.msgs[key+"."+strconv.Itoa(i)]; ok {
			out = append(out, s)
		}
	}
	return out
}

// Keys returns every message key, sorted.
func (b *Bundle) Keys() []string {
	keys := make([]string, 0, len(b.msgs))
	for k := range b.msgs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Catalog builds the quiz questions of this locale.
func (b *Bundle) Catalog() (quiz.Catalog, error) {
	steps := make([]quiz.Step, len(b.steps))
	for i, s := range b.steps {
		opts := make([]string, len(s.Options))
		for j, o := range s.Options {
			opts[j] = o.Text
		}
		steps[i] = quiz.Step{ID: s.ID, Question: s.Question, Options: opts}
	}
	c, err := quiz.NewCatalog(steps)
	if err != nil {
		return quiz.Catalog{}, fmt.Errorf("locale %s: %w", b.locale, err)
	}
	return c, nil
}

// Entries returns the option→category annotations of the pack, for merging
// into the analysis lookup.
func (b *Bundle) Entries() []analysis.Entry {
	var out []analysis.Entry
	for _, s := range b.steps {
		if s.Dimension == "" {
			continue
		}
		for _, o := range s.Options {
			if o.Category == "" {
				continue
			}
			out = append(out, analysis.Entry{
				Dimension: analysis.Dimension(s.Dimension),
				Text:      o.Text,
				Category:  analysis.CategoryKey(o.Category),
			})
		}
	}
	return out
}

// Analysis is a Result resolved to display text.
type Analysis struct {
	Main []string `json:"main_text"`
	Sub  []string `json:"sub_text"`
	Tags []string `json:"tags"`
}

// MainText joins the main paragraph.
func (a Analysis) MainText() string { return strings.Join(a.Main, " ") }

// SubText joins the secondary paragraph.
func (a Analysis) SubText() string { return strings.Join(a.Sub, " ") }

// Compose resolves the template references of res. Unknown keys fall back
// to the key text, like T.
func (b *Bundle) Compose(res analysis.Result) Analysis {
	out := Analysis{
		Main: make([]string, len(res.MainText)),
		Sub:  make([]string, len(res.SubText)),
		Tags: append([]string(nil), res.Tags...),
	}
	for i, r := range res.MainText {
		out.Main[i] = b.T(r.Key())
	}
	for i, r := range res.SubText {
		out.Sub[i] = b.T(r.Key())
	}
	return out
}

// Missing returns the keys that do not resolve in this bundle.
func (b *Bundle) Missing(keys []string) []string {
	var out []string
	for _, k := range keys {
		if !b.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

// Steps returns the raw quiz steps with their annotations.
func (b *Bundle) Steps() []PackStep {
	return b.steps
}
