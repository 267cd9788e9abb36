package domain

import (
	"errors"
	"strconv"
	"strings"
)

// PathSegment is one step from a container to its child: an object key or,
// when IsIndex is set, an array index.
type PathSegment struct {
	Key     string
	Index   int
	IsIndex bool
}

func KeySegment(key string) PathSegment {
	return PathSegment{Key: key}
}

func IndexSegment(index int) PathSegment {
	return PathSegment{Index: index, IsIndex: true}
}

type ConfigPath []PathSegment

// String renders the path in the syntax accepted by ParseConfigPath.
func (p ConfigPath) String() string {
	var b strings.Builder
	for i, segment := range p {
		if segment.IsIndex {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(segment.Index))
			b.WriteByte(']')
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(segment.Key)
	}
	return b.String()
}

// MaxPathIndex is the largest array index a path may address. SetAtPath pads
// arrays with nulls up to the index, so the bound caps that allocation.
const MaxPathIndex = 9999

var reservedPathKeys = map[string]struct{}{
	"__proto__":   {},
	"constructor": {},
	"prototype":   {},
}

// ParseConfigPath turns "a.b[0].c" into a ConfigPath. It never returns a
// partial path: any malformed input yields a *PathError.
func ParseConfigPath(raw string) (ConfigPath, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, &PathError{Raw: raw, Reason: "path is empty"}
	}

	path := make(ConfigPath, 0, strings.Count(trimmed, ".")+1)
	expectKey := true
	for i := 0; i < len(trimmed); {
		switch c := trimmed[i]; {
		case c == '.':
			if expectKey {
				return nil, &PathError{Raw: raw, Reason: "empty segment"}
			}
			expectKey = true
			i++
		case c == '[':
			if expectKey {
				if len(path) == 0 {
					return nil, &PathError{Raw: raw, Reason: "path must start with a key"}
				}
				return nil, &PathError{Raw: raw, Reason: "empty segment before index"}
			}
			end := strings.IndexByte(trimmed[i:], ']')
			if end < 0 {
				return nil, &PathError{Raw: raw, Reason: "unclosed '['"}
			}
			index, ok := parseIndex(trimmed[i+1 : i+end])
			if !ok {
				return nil, &PathError{Raw: raw, Reason: "index must be a non-negative integer"}
			}
			if index > MaxPathIndex {
				return nil, &PathError{Raw: raw, Reason: "index out of range (max " + strconv.Itoa(MaxPathIndex) + ")"}
			}
			path = append(path, IndexSegment(index))
			i += end + 1
		case c == ']':
			return nil, &PathError{Raw: raw, Reason: "unexpected ']'"}
		default:
			if !expectKey {
				return nil, &PathError{Raw: raw, Reason: "expected '.' or '[' after index"}
			}
			end := i
			for end < len(trimmed) && !strings.ContainsRune(".[]", rune(trimmed[end])) {
				end++
			}
			key := strings.TrimSpace(trimmed[i:end])
			if key == "" {
				return nil, &PathError{Raw: raw, Reason: "empty segment"}
			}
			if _, reserved := reservedPathKeys[key]; reserved {
				return nil, &PathError{Raw: raw, Reason: "segment " + strconv.Quote(key) + " is reserved"}
			}
			path = append(path, KeySegment(key))
			expectKey = false
			i = end
		}
	}

	if expectKey {
		return nil, &PathError{Raw: raw, Reason: "empty segment"}
	}

	return path, nil
}

func parseIndex(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	index, err := strconv.Atoi(raw)
	if errors.Is(err, strconv.ErrRange) {
		return MaxPathIndex + 1, true
	}
	if err != nil {
		return 0, false
	}
	return index, true
}
