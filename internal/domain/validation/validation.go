// Package validation holds the entity validators. Each validator is a pure
// function over a candidate record that returns every problem it finds, in a
// fixed order, and an empty list when the record is valid.
package validation

import (
	"fmt"
	"net/url"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"acredge/internal/domain/entity"
)

var validate = validator.New()

func IsURL(s string) bool {
	return validate.Var(s, "required,url") == nil
}

func IsEmail(s string) bool {
	return validate.Var(s, "required,email") == nil
}

// hasExtension checks the path extension of a URL or filename, ignoring any
// query string.
func hasExtension(raw string, exts ...string) bool {
	p := raw
	if u, err := url.Parse(raw); err == nil && u.Path != "" {
		p = u.Path
	}
	ext := strings.ToLower(path.Ext(p))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

func minLength(s string, n int) bool {
	return utf8.RuneCountInString(s) >= n
}

func oneOf(s string, allowed ...string) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}

type collector struct {
	errs []string
}

func (c *collector) add(msg string) {
	c.errs = append(c.errs, msg)
}

func (c *collector) check(ok bool, msg string) {
	if !ok {
		c.add(msg)
	}
}

func (c *collector) required(f entity.Fields, key, msg string) {
	c.check(f.Has(key), msg)
}

func (c *collector) integer(f entity.Fields, key, msg string) {
	_, ok := f.Int(key)
	c.check(ok, msg)
}

func (c *collector) date(f entity.Fields, key, msg string) {
	_, ok := f.Time(key)
	c.check(ok, msg)
}

// urls checks every non-empty element of a list field.
func (c *collector) urls(f entity.Fields, key, noun string) {
	for i, u := range f.Strings(key) {
		if u != "" && !IsURL(u) {
			c.add(fmt.Sprintf("Invalid URL format for %s at index %d", noun, i))
		}
	}
}

func (c *collector) result() []string {
	return c.errs
}
