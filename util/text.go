package util

import (
	"net/url"
	"strconv"
	"strings"
)

// ResolveURL makes href absolute against base.
// Protocol-relative links get https, blank links stay blank.
func ResolveURL(base, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "//") {
		return "https:" + href
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}

	bu, err := url.Parse(base)
	if err != nil {
		return href
	}
	ru, err := url.Parse(href)
	if err != nil {
		return href
	}
	return bu.ResolveReference(ru).String()
}

// SubstringAfter returns the part of s after the first sep, or s when sep is absent.
func SubstringAfter(s, sep string) string {
	if _, after, ok := strings.Cut(s, sep); ok {
		return after
	}
	return s
}

// SubstringBefore returns the part of s before the first sep, or s when sep is absent.
func SubstringBefore(s, sep string) string {
	if before, _, ok := strings.Cut(s, sep); ok {
		return before
	}
	return s
}

// Digits keeps only the ASCII digits of s and parses them. It returns 0 when there are none.
func Digits(s string) int {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return n
}

// NormSpace collapses runs of whitespace into single spaces and trims the ends.
func NormSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SplitTrim splits s by sep, trims every part and drops empty ones.
func SplitTrim(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
