package entity

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Fields is a schemaless record as read from a multipart form, a JSON body
// or a stored document. Accessors are lenient: they coerce what they can and
// report absence instead of failing.
type Fields map[string]interface{}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Has reports whether key is present with a non-nil, non-empty value.
func (f Fields) Has(key string) bool {
	v, ok := f[key]
	if !ok || v == nil {
		return false
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) != ""
	}
	return true
}

func (f Fields) String(key string) string {
	switch v := f[key].(type) {
	case string:
		return v
	case nil:
		return ""
	case []string:
		if len(v) > 0 {
			return v[0]
		}
		return ""
	case int, int64, float64, bool:
		return strings.TrimSpace(jsonText(v))
	default:
		return ""
	}
}

// Strings returns a list value. A string holding a JSON array is decoded; any
// other non-empty string is treated as a single element.
func (f Fields) Strings(key string) []string {
	switch v := f[key].(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		if strings.HasPrefix(s, "[") {
			var list []string
			if err := json.Unmarshal([]byte(s), &list); err == nil {
				return list
			}
		}
		return []string{v}
	default:
		return nil
	}
}

// IsList reports whether the stored value is already a list.
func (f Fields) IsList(key string) bool {
	switch f[key].(type) {
	case []string, []interface{}:
		return true
	default:
		return false
	}
}

// Int parses the leading integer of the value, the way a lenient form parser
// would: "42", " 42sqft" and 42.9 all yield 42.
func (f Fields) Int(key string) (int, bool) {
	switch v := f[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		return ParseLeadingInt(v)
	default:
		return 0, false
	}
}

func (f Fields) IntOr(key string, fallback int) int {
	if n, ok := f.Int(key); ok {
		return n
	}
	return fallback
}

func (f Fields) Bool(key string) bool {
	switch v := f[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(v))
		return b
	default:
		return false
	}
}

func (f Fields) Time(key string) (time.Time, bool) {
	switch v := f[key].(type) {
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, true
	case string:
		return ParseDate(v)
	default:
		return time.Time{}, false
	}
}

func (f Fields) TimePtr(key string) *time.Time {
	if t, ok := f.Time(key); ok {
		return &t
	}
	return nil
}

func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Merge copies every key of other into f, overwriting.
func (f Fields) Merge(other Fields) {
	for k, v := range other {
		f[k] = v
	}
}

func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func ParseLeadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

func jsonText(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
