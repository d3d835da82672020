package gen

import "github.com/lucaskalb/choicex/choice"

// Dicts generates a map[K]V with size in [minSize, maxSize]. Per
// spec.md §4.2, it generates up to maxSize key attempts before giving
// up (duplicate keys are simply skipped rather than retried
// indefinitely, so a small key space can still legitimately produce a
// map smaller than minSize — the caller is responsible for choosing a
// key Possibility wide enough to avoid that in practice).
func Dicts[K comparable, V any](keyP Possibility[K], valP Possibility[V], minSize, maxSize int) Possibility[map[K]V] {
	if maxSize < minSize {
		maxSize = minSize
	}
	return From(func(tc *choice.TestCase) (map[K]V, error) {
		out := make(map[K]V, maxSize)
		for attempts := 0; attempts < maxSize && len(out) < maxSize; attempts++ {
			k, err := keyP.Produce(tc)
			if err != nil {
				return nil, err
			}
			if _, dup := out[k]; dup {
				continue
			}
			v, err := valP.Produce(tc)
			if err != nil {
				return nil, err
			}
			out[k] = v
		}
		if len(out) < minSize {
			return nil, choice.ErrInvalid
		}
		return out, nil
	})
}
