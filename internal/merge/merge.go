// Package merge implements the partial-update rules shared by clients,
// their embedded sub-entities, and users: present scalars replace, absent
// ones are retained, and multi-valued fields grow by append-without-duplicate.
package merge

import "encoding/json"

// Scalar returns the incoming value when present and non-empty, otherwise
// the stored one.
func Scalar(cur string, in *string) string {
	if in != nil && *in != "" {
		return *in
	}
	return cur
}

// Int is Scalar for numeric fields; zero counts as absent.
func Int(cur int, in *int) int {
	if in != nil && *in != 0 {
		return *in
	}
	return cur
}

// List unions incoming values onto cur. An absent or empty incoming list
// keeps cur. A single incoming value already contained in cur keeps cur and
// reports false so the caller can log the no-op. Otherwise the incoming
// values are appended to the end in order; a multi-element incoming list is
// not deduplicated against itself. Containment is exact equality.
func List[T comparable](cur, in []T) ([]T, bool) {
	if len(in) == 0 {
		return cur, false
	}
	if len(in) == 1 && contains(cur, in[0]) {
		return cur, false
	}
	out := make([]T, 0, len(cur)+len(in))
	out = append(out, cur...)
	out = append(out, in...)
	return out, true
}

func contains[T comparable](list []T, v T) bool {
	for _, have := range list {
		if have == v {
			return true
		}
	}
	return false
}

// FlexList decodes a JSON field that may be a single value or an array of
// values. Absent fields stay nil.
type FlexList[T comparable] []T

func (f *FlexList[T]) UnmarshalJSON(b []byte) error {
	var list []T
	if err := json.Unmarshal(b, &list); err == nil {
		*f = list
		return nil
	}
	var one T
	if err := json.Unmarshal(b, &one); err != nil {
		return err
	}
	*f = FlexList[T]{one}
	return nil
}
