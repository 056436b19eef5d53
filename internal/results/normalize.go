package results

import (
	"net/url"
	"strconv"
	"strings"
)

const FieldName = "name"

// MarkField returns the form key of the i-th subject, counting from zero.
func MarkField(i int) string { return "s" + strconv.Itoa(i+1) }

// Normalize builds a Form from a field lookup. Missing fields become "".
func Normalize(get func(key string) (string, bool)) Form {
	var f Form
	f.Name = field(get, FieldName)
	for i := range f.Marks {
		f.Marks[i] = field(get, MarkField(i))
	}
	return f
}

// FormFromValues normalizes a parsed urlencoded body.
func FormFromValues(v url.Values) Form {
	return Normalize(func(k string) (string, bool) {
		vs, ok := v[k]
		if !ok || len(vs) == 0 {
			return "", false
		}
		return vs[0], true
	})
}

// FormFromMap normalizes a decoded JSON object.
func FormFromMap(m map[string]string) Form {
	return Normalize(func(k string) (string, bool) {
		s, ok := m[k]
		return s, ok
	})
}

func field(get func(string) (string, bool), key string) string {
	v, ok := get(key)
	if !ok {
		return ""
	}
	return strings.TrimSpace(v)
}
