package pagination

import (
	"net/url"
	"strconv"
	"strings"
)

// PageURL returns basePath with its param query parameter set to page.
//
// An existing param keeps its position in the query string; later
// duplicates are dropped. Otherwise the parameter is appended. Other
// parameters and any fragment are left untouched, and "&amp;" separators
// copied out of rendered HTML are read as plain "&".
func PageURL(basePath, param string, page int) string {
	if param == "" {
		param = DefaultParam
	}
	return SetParam(basePath, param, strconv.Itoa(page))
}

// SetParam sets key=value in the query string of rawURL.
func SetParam(rawURL, key, value string) string {
	rawURL = strings.ReplaceAll(rawURL, "&amp;", "&")

	fragment := ""
	if i := strings.IndexByte(rawURL, '#'); i >= 0 {
		rawURL, fragment = rawURL[:i], rawURL[i:]
	}

	path, rawQuery, _ := strings.Cut(rawURL, "?")
	pair := url.QueryEscape(key) + "=" + url.QueryEscape(value)

	var parts []string
	replaced := false
	for _, part := range strings.Split(rawQuery, "&") {
		if part == "" {
			continue
		}
		if queryKey(part) == key {
			if replaced {
				continue
			}
			part = pair
			replaced = true
		}
		parts = append(parts, part)
	}
	if !replaced {
		parts = append(parts, pair)
	}

	return path + "?" + strings.Join(parts, "&") + fragment
}

// ParamValue returns the first value of key in the query string of rawURL.
func ParamValue(rawURL, key string) (string, bool) {
	rawURL = strings.ReplaceAll(rawURL, "&amp;", "&")
	if i := strings.IndexByte(rawURL, '#'); i >= 0 {
		rawURL = rawURL[:i]
	}
	_, rawQuery, _ := strings.Cut(rawURL, "?")
	for _, part := range strings.Split(rawQuery, "&") {
		if part == "" || queryKey(part) != key {
			continue
		}
		_, v, _ := strings.Cut(part, "=")
		if unescaped, err := url.QueryUnescape(v); err == nil {
			return unescaped, true
		}
		return v, true
	}
	return "", false
}

func queryKey(part string) string {
	k, _, _ := strings.Cut(part, "=")
	if unescaped, err := url.QueryUnescape(k); err == nil {
		return unescaped
	}
	return k
}
