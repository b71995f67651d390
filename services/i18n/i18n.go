package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
)

//go:embed *.json
var localeFS embed.FS

// catalog maps dot keys ("slider.next") to messages for one locale
type catalog map[string]string

var (
	mu       sync.RWMutex
	catalogs = map[string]catalog{}
)

const defaultLang = "es"

// Supported lists the locales the site is published in, default first
var Supported = []string{"es", "en"}

// DefaultLang returns the locale used when none is requested
func DefaultLang() string {
	return defaultLang
}

// IsSupported reports whether lang is one of the published locales
func IsSupported(lang string) bool {
	for _, l := range Supported {
		if l == lang {
			return true
		}
	}
	return false
}

// Load parses the embedded <lang>.json files. Every supported locale must be
// present; keys missing from a non-default locale are logged and fall back
// to the default at lookup time.
func Load() error {
	loaded := map[string]catalog{}
	for _, lang := range Supported {
		c, err := readCatalog(lang + ".json")
		if err != nil {
			return err
		}
		loaded[lang] = c
		log.Printf("[INFO] Loaded locale %s (%d keys)", lang, len(c))
	}

	for _, lang := range Supported[1:] {
		if missing := missingKeys(loaded[defaultLang], loaded[lang]); len(missing) > 0 {
			log.Printf("[WARNING] Locale %s lacks %d keys: %s", lang, len(missing), strings.Join(missing, ", "))
		}
	}

	mu.Lock()
	catalogs = loaded
	mu.Unlock()
	return nil
}

func readCatalog(name string) (catalog, error) {
	content, err := localeFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read locale %s: %w", name, err)
	}
	var tree map[string]interface{}
	if err := json.Unmarshal(content, &tree); err != nil {
		return nil, fmt.Errorf("failed to parse locale %s: %w", name, err)
	}
	c := catalog{}
	c.add("", tree)
	return c, nil
}

// add stores the leaves of tree under dot-joined keys
func (c catalog) add(prefix string, tree map[string]interface{}) {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch child := v.(type) {
		case map[string]interface{}:
			c.add(key, child)
		case string:
			c[key] = child
		default:
			c[key] = fmt.Sprint(child)
		}
	}
}

// missingKeys lists the keys of want absent from have, sorted
func missingKeys(want, have catalog) []string {
	var missing []string
	for k := range want {
		if _, ok := have[k]; !ok {
			missing = append(missing, k)
		}
	}
	sort.Strings(missing)
	return missing
}

// T translates key into the locale carried by ctx. vars fills {name}
// placeholders.
func T(ctx context.Context, key string, vars ...map[string]interface{}) string {
	return Translate(GetLocale(ctx), key, vars...)
}

// Translate looks key up in lang, then in the default locale, and finally
// returns the key itself
func Translate(lang, key string, vars ...map[string]interface{}) string {
	mu.RLock()
	msg, ok := catalogs[lang][key]
	if !ok {
		msg, ok = catalogs[defaultLang][key]
	}
	mu.RUnlock()

	if !ok {
		return key
	}
	return interpolate(msg, vars...)
}

func interpolate(msg string, vars ...map[string]interface{}) string {
	if len(vars) == 0 || len(vars[0]) == 0 {
		return msg
	}
	pairs := make([]string, 0, len(vars[0])*2)
	for k, v := range vars[0] {
		pairs = append(pairs, "{"+k+"}", fmt.Sprint(v))
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

type contextKey string

// LocaleContextKey holds the request locale, set by the locale middleware
const LocaleContextKey contextKey = "locale"

// GetLocale returns the locale stored in ctx, or the default
func GetLocale(ctx context.Context) string {
	if ctx == nil {
		return defaultLang
	}
	if lang, ok := ctx.Value(LocaleContextKey).(string); ok && lang != "" {
		return lang
	}
	return defaultLang
}
