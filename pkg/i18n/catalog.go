package i18n

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"
)

var (
	strictPolicyOnce sync.Once
	strictPolicy     *bluemonday.Policy
)

func messageSanitizer() *bluemonday.Policy {
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}

// Catalog stores translated messages per locale, loaded from YAML documents.
// Nested mappings are flattened to dotted keys, so
//
//	field:
//	  required: Please fill in this field.
//
// becomes "field.required". Lookups fall back to the configured fallback
// locale before reporting a missing translation.
type Catalog struct {
	locales  map[string]map[string]string
	fallback string
	sanitize bool
}

// CatalogOption configures a Catalog at construction time.
type CatalogOption func(*Catalog)

// WithFallback sets the locale consulted when a key is absent from the
// requested locale.
func WithFallback(locale string) CatalogOption {
	return func(c *Catalog) {
		c.fallback = strings.TrimSpace(locale)
	}
}

// WithSanitizer strips any HTML markup from loaded messages using a strict
// policy. Use this when catalog files come from untrusted sources and
// messages end up in rendered markup.
func WithSanitizer() CatalogOption {
	return func(c *Catalog) {
		c.sanitize = true
	}
}

// NewCatalog constructs an empty catalog.
func NewCatalog(opts ...CatalogOption) *Catalog {
	c := &Catalog{locales: make(map[string]map[string]string)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LoadLocale parses a YAML document and merges its messages into the given
// locale. Later loads win on key collisions.
func (c *Catalog) LoadLocale(locale string, data []byte) error {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return fmt.Errorf("i18n: locale must not be empty")
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("i18n: parse catalog for %q: %w", locale, err)
	}

	flat := make(map[string]string)
	flatten("", doc, flat)

	if c.sanitize {
		policy := messageSanitizer()
		for key, msg := range flat {
			flat[key] = strings.TrimSpace(policy.Sanitize(msg))
		}
	}

	target, ok := c.locales[locale]
	if !ok {
		target = make(map[string]string, len(flat))
		c.locales[locale] = target
	}
	for key, msg := range flat {
		target[key] = msg
	}
	return nil
}

// LoadFS loads every .yaml/.yml file under root in fsys, using the file stem
// as the locale code (locales/de.yaml feeds the "de" locale).
func (c *Catalog) LoadFS(fsys fs.FS, root string) error {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return fmt.Errorf("i18n: read catalog dir %q: %w", root, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := path.Ext(name)
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(root, name))
		if err != nil {
			return fmt.Errorf("i18n: read catalog file %q: %w", name, err)
		}
		locale := strings.TrimSuffix(name, ext)
		if err := c.LoadLocale(locale, data); err != nil {
			return err
		}
	}
	return nil
}

// Locales lists the loaded locale codes.
func (c *Catalog) Locales() []string {
	out := make([]string, 0, len(c.locales))
	for locale := range c.locales {
		out = append(out, locale)
	}
	return out
}

// Locale returns a Translator view bound to the given locale code.
func (c *Catalog) Locale(code string) Translator {
	return localeView{catalog: c, code: strings.TrimSpace(code)}
}

type localeView struct {
	catalog *Catalog
	code    string
}

func (v localeView) Translate(key string) (string, error) {
	if msg, ok := v.catalog.lookup(v.code, key); ok {
		return msg, nil
	}
	if v.catalog.fallback != "" && v.catalog.fallback != v.code {
		if msg, ok := v.catalog.lookup(v.catalog.fallback, key); ok {
			return msg, nil
		}
	}
	return "", fmt.Errorf("%w: %q in locale %q", ErrMissingTranslation, key, v.code)
}

func (c *Catalog) lookup(locale, key string) (string, bool) {
	messages, ok := c.locales[locale]
	if !ok {
		return "", false
	}
	msg, ok := messages[key]
	return msg, ok
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for key, value := range node {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch typed := value.(type) {
		case map[string]any:
			flatten(full, typed, out)
		case nil:
			// Empty YAML nodes carry no message.
		default:
			out[full] = fmt.Sprint(typed)
		}
	}
}
