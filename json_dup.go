package endpoints

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/piotrkosecki/endpoints/i18n"
)

// DetectJSONDuplicateKeys scans raw JSON and reports object keys that occur
// more than once, with JSON Pointer paths and byte offsets. Go unmarshalers
// silently keep the last occurrence, so strict callers run this before
// decoding. maxIssues <= 0 means unlimited.
func DetectJSONDuplicateKeys(data []byte, strict Strictness, maxIssues int) (Issues, error) {
	if strict.OnDuplicateKey == Ignore {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	type frame struct {
		object    bool
		keys      map[string]struct{}
		expectKey bool
		curKey    string
		nextIndex int
	}
	var stack []frame
	var iss Issues

	// afterValue restores key expectation in objects and advances array indexes.
	afterValue := func() {
		if n := len(stack); n > 0 {
			top := &stack[n-1]
			if top.object {
				top.expectKey = true
			} else {
				top.nextIndex++
			}
		}
	}
	pathTo := func(key string) string {
		b := &strings.Builder{}
		for i := range stack[:len(stack)-1] {
			f := stack[i]
			b.WriteByte('/')
			if f.object {
				b.WriteString(escapePointerSegment(f.curKey))
			} else {
				b.WriteString(strconv.Itoa(f.nextIndex))
			}
		}
		b.WriteByte('/')
		b.WriteString(escapePointerSegment(key))
		return b.String()
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return iss, nil
		}
		if err != nil {
			return iss, err
		}
		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{':
				stack = append(stack, frame{object: true, keys: map[string]struct{}{}, expectKey: true})
			case '[':
				stack = append(stack, frame{})
			case '}', ']':
				stack = stack[:len(stack)-1]
				afterValue()
			}
		case string:
			if n := len(stack); n > 0 && stack[n-1].object && stack[n-1].expectKey {
				top := &stack[n-1]
				if _, dup := top.keys[v]; dup {
					iss = AppendIssues(iss, Issue{
						Path:    pathTo(v),
						Code:    CodeDuplicateKey,
						Message: i18n.T(CodeDuplicateKey, nil),
						Offset:  dec.InputOffset(),
					})
					if maxIssues > 0 && len(iss) >= maxIssues {
						return iss, nil
					}
				}
				top.keys[v] = struct{}{}
				top.curKey = v
				top.expectKey = false
				continue
			}
			afterValue()
		default:
			afterValue()
		}
	}
}

// escapePointerSegment applies RFC 6901 escaping.
func escapePointerSegment(s string) string {
	if !strings.ContainsAny(s, "~/") {
		return s
	}
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}
