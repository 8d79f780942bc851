// Package schema is the validation layer for inbound documents. Every parser
// is strict: a field outside the declared shape is an error, defaults are
// applied for optional fields, date-like values are coerced to time.Time and
// enums only accept their closed set. Parsers collect every problem into an
// ordered issue list rather than failing on the first one.
package schema

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/codewithjaspreet/og-backend/internal/apperr"
)

var (
	validate = validator.New()
	phoneRe  = regexp.MustCompile(`^[\d+\-() ]{7,20}$`)
)

// Issue aliases the apperr issue type; parsers produce them in order.
type Issue = apperr.Issue

// object walks one level of a raw JSON document. Field helpers mark keys as
// seen; unknownFields reports everything left over.
type object struct {
	raw    map[string]any
	path   string
	issues *[]Issue
	seen   map[string]struct{}
}

func newObject(raw map[string]any, path string, issues *[]Issue) *object {
	if raw == nil {
		raw = map[string]any{}
	}
	return &object{raw: raw, path: path, issues: issues, seen: map[string]struct{}{}}
}

func (o *object) fieldPath(name string) string {
	if o.path == "" {
		return name
	}
	return o.path + "." + name
}

func (o *object) issue(path, msg string) {
	*o.issues = append(*o.issues, Issue{Path: path, Message: msg})
}

// take marks the key as consumed. A key that is present with a null value is
// treated as absent, matching the permissive handling of the mobile clients.
func (o *object) take(name string) (any, bool) {
	o.seen[name] = struct{}{}
	v, ok := o.raw[name]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// unknownFields emits one issue per undeclared key, in sorted order so the
// issue list is deterministic.
func (o *object) unknownFields(entity string) {
	var extra []string
	for k := range o.raw {
		if _, ok := o.seen[k]; !ok {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	for _, k := range extra {
		o.issue(o.fieldPath(k), fmt.Sprintf("Unknown field in %s", entity))
	}
}

func (o *object) requiredString(name, requiredMsg string) string {
	v, ok := o.take(name)
	if !ok {
		o.issue(o.fieldPath(name), requiredMsg)
		return ""
	}
	s, ok := v.(string)
	if !ok {
		o.issue(o.fieldPath(name), name+" must be a string")
		return ""
	}
	s = strings.TrimSpace(s)
	if s == "" {
		o.issue(o.fieldPath(name), requiredMsg)
	}
	return s
}

func (o *object) optionalString(name, def string) string {
	v, ok := o.take(name)
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok {
		o.issue(o.fieldPath(name), name+" must be a string")
		return def
	}
	return strings.TrimSpace(s)
}

func (o *object) optionalBool(name string, def bool) bool {
	v, ok := o.take(name)
	if !ok {
		return def
	}
	b, ok := v.(bool)
	if !ok {
		o.issue(o.fieldPath(name), name+" must be a boolean")
		return def
	}
	return b
}

// nonNegativeNumber applies the shared "number ≥ 0, default 0" rule used by
// monetary, duration and measurement fields.
func (o *object) nonNegativeNumber(name string, def float64) float64 {
	v, ok := o.take(name)
	if !ok {
		return def
	}
	f, ok := toFloat(v)
	if !ok {
		o.issue(o.fieldPath(name), name+" must be a number")
		return def
	}
	if f < 0 {
		o.issue(o.fieldPath(name), name+" must be greater than or equal to 0")
		return def
	}
	return f
}

func (o *object) requiredNumberMin(name string, min float64, requiredMsg string) float64 {
	v, ok := o.take(name)
	if !ok {
		o.issue(o.fieldPath(name), requiredMsg)
		return 0
	}
	f, ok := toFloat(v)
	if !ok {
		o.issue(o.fieldPath(name), name+" must be a number")
		return 0
	}
	if f < min {
		o.issue(o.fieldPath(name), fmt.Sprintf("%s must be greater than or equal to %v", name, min))
		return 0
	}
	return f
}

func (o *object) optionalDate(name string) *time.Time {
	v, ok := o.take(name)
	if !ok {
		return nil
	}
	t, err := coerceDate(v)
	if err != nil {
		o.issue(o.fieldPath(name), name+" must be a valid date")
		return nil
	}
	return &t
}

func (o *object) optionalEnum(name string, allowed ...string) string {
	v, ok := o.take(name)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	for _, a := range allowed {
		if s == a {
			return s
		}
	}
	o.issue(o.fieldPath(name), fmt.Sprintf("%s must be one of %s", name, strings.Join(allowed, ", ")))
	return ""
}

func (o *object) anyList(name string) []any {
	v, ok := o.take(name)
	if !ok {
		return []any{}
	}
	l, ok := v.([]any)
	if !ok {
		o.issue(o.fieldPath(name), name+" must be an array")
		return []any{}
	}
	return l
}

// nestedObject returns the raw map for a nested value object, or nil when the
// field is absent.
func (o *object) nestedObject(name string) (map[string]any, bool) {
	v, ok := o.take(name)
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	if !ok {
		o.issue(o.fieldPath(name), name+" must be an object")
		return nil, false
	}
	return m, true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// coerceDate accepts RFC3339 timestamps, plain calendar dates and epoch
// milliseconds, the three shapes the legacy clients send.
func coerceDate(v any) (time.Time, error) {
	switch d := v.(type) {
	case time.Time:
		return d, nil
	case string:
		s := strings.TrimSpace(d)
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
	case float64:
		return time.UnixMilli(int64(d)).UTC(), nil
	}
	return time.Time{}, errors.New("value is not date-like")
}
