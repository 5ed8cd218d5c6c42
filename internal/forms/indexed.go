package forms

import (
	"net/url"
	"regexp"
	"sort"
	"strconv"
)

// Fields is the attribute set of one row in an array-indexed form list,
// e.g. {"city": "London", "orderIndex": "0"}.
type Fields map[string]string

var indexedKeyRe = regexp.MustCompile(`^([a-zA-Z][a-zA-Z0-9]*)\[(\d+)\]\[([a-zA-Z][a-zA-Z0-9]*)\]$`)

// DecodeIndexed reads the array-indexed field contract the admin forms
// submit (prefix[i][attr], e.g. stops[0][city], artists[1][orderIndex]) out
// of form values and returns the rows in index order. Gaps in the index
// sequence are compacted; keys that do not match the contract are ignored.
// This is the parse boundary: callers convert the rows into typed inputs
// before anything else sees them.
func DecodeIndexed(values url.Values, prefix string) []Fields {
	rows := make(map[int]Fields)
	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}
		m := indexedKeyRe.FindStringSubmatch(key)
		if m == nil || m[1] != prefix {
			continue
		}
		idx, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		row, ok := rows[idx]
		if !ok {
			row = make(Fields)
			rows[idx] = row
		}
		row[m[3]] = vals[0]
	}

	indices := make([]int, 0, len(rows))
	for idx := range rows {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	out := make([]Fields, 0, len(indices))
	for _, idx := range indices {
		out = append(out, rows[idx])
	}
	return out
}

// EncodeIndexed emits rows under the array-indexed field contract: row i,
// attribute a becomes prefix[i][a]. The row position is the index, so the
// encoded list is dense by construction.
func EncodeIndexed(prefix string, rows []Fields) url.Values {
	values := make(url.Values, len(rows))
	for i, row := range rows {
		for attr, val := range row {
			values.Set(prefix+"["+strconv.Itoa(i)+"]["+attr+"]", val)
		}
	}
	return values
}
