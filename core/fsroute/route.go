package fsroute

import (
	"fmt"
	"path"
	"strings"
)

type segmentKind uint8

// Ordered from the most to the least specific.
const (
	segStatic segmentKind = iota
	segParam
	segCatchAll
	segOptionalCatchAll
)

type segment struct {
	kind  segmentKind
	value string // literal for static segments, param name otherwise
}

// Route describes a single route discovered in the routes directory.
type Route struct {
	// Pattern is the URL pattern in file-system notation, e.g. "/users/[id]".
	Pattern string
	// Name is the file name relative to the routes root, slash separated.
	Name string
	// FilePath is the routes directory joined with Name.
	FilePath string

	segments []segment
}

// parseRoute converts a slash-separated file name with its extension already
// stripped into route segments.
func parseRoute(name string) ([]segment, string, error) {
	parts := strings.Split(name, "/")
	if parts[len(parts)-1] == "index" {
		parts = parts[:len(parts)-1]
	}

	segments := make([]segment, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))

	for i, part := range parts {
		seg, err := parseSegment(part)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %q: %w", ErrInvalidRoute, name, err)
		}

		if seg.kind != segStatic {
			if _, ok := seen[seg.value]; ok {
				return nil, "", fmt.Errorf("%w: %q in %q", ErrDuplicateParam, seg.value, name)
			}
			seen[seg.value] = struct{}{}
		}

		if (seg.kind == segCatchAll || seg.kind == segOptionalCatchAll) && i != len(parts)-1 {
			return nil, "", fmt.Errorf("%w: %q", ErrCatchAllLast, name)
		}

		segments = append(segments, seg)
	}

	return segments, "/" + strings.Join(parts, "/"), nil
}

func parseSegment(s string) (segment, error) {
	switch {
	case s == "":
		return segment{}, fmt.Errorf("empty segment")
	case strings.HasPrefix(s, "[[...") && strings.HasSuffix(s, "]]"):
		return paramSegment(segOptionalCatchAll, s[5:len(s)-2])
	case strings.HasPrefix(s, "[...") && strings.HasSuffix(s, "]"):
		return paramSegment(segCatchAll, s[4:len(s)-1])
	case strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]"):
		return paramSegment(segParam, s[1:len(s)-1])
	case strings.ContainsAny(s, "[]"):
		return segment{}, fmt.Errorf("unbalanced brackets in %q", s)
	default:
		return segment{kind: segStatic, value: s}, nil
	}
}

func paramSegment(kind segmentKind, name string) (segment, error) {
	if name == "" || strings.ContainsAny(name, "[]./") {
		return segment{}, fmt.Errorf("invalid param name %q", name)
	}
	return segment{kind: kind, value: name}, nil
}

// match reports whether the route matches the request path segments and
// returns the extracted path parameters.
func (rt Route) match(parts []string) (map[string]string, bool) {
	var params map[string]string
	set := func(key, value string) {
		if params == nil {
			params = make(map[string]string, len(rt.segments))
		}
		params[key] = value
	}

	for i, seg := range rt.segments {
		switch seg.kind {
		case segStatic:
			if i >= len(parts) || parts[i] != seg.value {
				return nil, false
			}
		case segParam:
			if i >= len(parts) {
				return nil, false
			}
			set(seg.value, parts[i])
		case segCatchAll:
			if i >= len(parts) {
				return nil, false
			}
			set(seg.value, strings.Join(parts[i:], "/"))
			return params, true
		case segOptionalCatchAll:
			if i < len(parts) {
				set(seg.value, strings.Join(parts[i:], "/"))
			}
			return params, true
		}
	}

	return params, len(parts) == len(rt.segments)
}

// less orders routes by specificity, comparing segment by segment.
// A missing segment ranks before any other kind, so "/docs" precedes
// "/docs/[[...slug]]".
func less(a, b Route) bool {
	for i := 0; i < len(a.segments) || i < len(b.segments); i++ {
		ra, rb := rank(a.segments, i), rank(b.segments, i)
		if ra != rb {
			return ra < rb
		}
	}
	return a.Pattern < b.Pattern
}

func rank(segments []segment, i int) int {
	if i >= len(segments) {
		return -1
	}
	return int(segments[i].kind)
}

// splitPath splits a URL path into non-empty segments, ignoring trailing slashes.
func splitPath(p string) []string {
	p = strings.Trim(path.Clean("/"+p), "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
