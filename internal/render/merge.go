package render

// Merge deep-merges src into dst. Nested maps merge recursively, including
// ordered *Map values in dst whose existing keys keep their position; slices
// and scalars from src replace the value in dst.
func Merge(dst, src map[string]any) {
	for k, v := range src {
		dst[k] = mergeValue(dst[k], v)
	}
}

func mergeValue(existing, v any) any {
	mv, ok := v.(map[string]any)
	if !ok {
		return v
	}
	switch cur := existing.(type) {
	case map[string]any:
		Merge(cur, mv)
		return cur
	case *Map:
		if cur == nil {
			break
		}
		for _, k := range sortedKeys(mv) {
			old, _ := cur.Get(k)
			cur.Set(k, mergeValue(old, mv[k]))
		}
		return cur
	}
	cp := map[string]any{}
	Merge(cp, mv)
	return cp
}
