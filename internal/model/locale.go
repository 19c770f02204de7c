package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Locale is the closed set of content languages a shop can carry.
type Locale string

const (
	LocaleEN     Locale = "en"
	LocaleZhHant Locale = "zhHant"
	LocaleZhHans Locale = "zhHans"
)

// DefaultLocale is the fallback when the requested locale has no value.
const DefaultLocale = LocaleEN

func AllLocales() []Locale {
	return []Locale{LocaleEN, LocaleZhHant, LocaleZhHans}
}

// ParseLocale accepts request-side identifiers in their common spellings
// ("en", "zh-Hant", "zh_hant", "zhHant") and maps them to the storage locale.
func ParseLocale(s string) (Locale, bool) {
	normalized := strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(s))
	switch normalized {
	case "en":
		return LocaleEN, true
	case "zhhant":
		return LocaleZhHant, true
	case "zhhans":
		return LocaleZhHans, true
	}
	return "", false
}

// LocaleText holds one string per locale; any subset may be empty.
// Stored as a jsonb column.
type LocaleText struct {
	EN     string `json:"en,omitempty"`
	ZhHant string `json:"zhHant,omitempty"`
	ZhHans string `json:"zhHans,omitempty"`
}

func (t LocaleText) Get(locale Locale) string {
	switch locale {
	case LocaleEN:
		return t.EN
	case LocaleZhHant:
		return t.ZhHant
	case LocaleZhHans:
		return t.ZhHans
	}
	return ""
}

func (t *LocaleText) Set(locale Locale, value string) {
	switch locale {
	case LocaleEN:
		t.EN = value
	case LocaleZhHant:
		t.ZhHant = value
	case LocaleZhHans:
		t.ZhHans = value
	}
}

// Resolve returns the value for the requested locale, falling back to the
// default locale and then the first populated locale. Returns "" only when
// every locale is empty.
func (t LocaleText) Resolve(locale Locale) string {
	if v := t.Get(locale); v != "" {
		return v
	}
	if v := t.Get(DefaultLocale); v != "" {
		return v
	}
	for _, l := range AllLocales() {
		if v := t.Get(l); v != "" {
			return v
		}
	}
	return ""
}

func (t LocaleText) IsEmpty() bool {
	return t.EN == "" && t.ZhHant == "" && t.ZhHans == ""
}

func (t LocaleText) Value() (driver.Value, error) {
	return json.Marshal(t)
}

func (t *LocaleText) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = LocaleText{}
		return nil
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	}
	return fmt.Errorf("cannot scan %T into LocaleText", src)
}

// ParseLocaleKey splits a flat import key like "name.zhHant" into its field
// name and locale. Unrecognized locale suffixes are rejected rather than
// silently accepted.
func ParseLocaleKey(key string) (field string, locale Locale, err error) {
	idx := strings.LastIndex(key, ".")
	if idx <= 0 || idx == len(key)-1 {
		return "", "", fmt.Errorf("malformed locale key %q", key)
	}
	l, ok := ParseLocale(key[idx+1:])
	if !ok {
		return "", "", fmt.Errorf("unrecognized locale suffix in key %q", key)
	}
	return key[:idx], l, nil
}

// LocaleTextFromMap builds a LocaleText from a loosely-typed object, keeping
// only recognized locale keys. ok is false when no recognized key carries a
// non-empty string.
func LocaleTextFromMap(m map[string]interface{}) (LocaleText, bool) {
	var t LocaleText
	ok := false
	for k, raw := range m {
		l, known := ParseLocale(k)
		if !known {
			continue
		}
		s, isString := raw.(string)
		if !isString {
			continue
		}
		t.Set(l, s)
		if s != "" {
			ok = true
		}
	}
	return t, ok
}
