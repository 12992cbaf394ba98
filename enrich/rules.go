package enrich

// ruleSet is one priority-ordered rule table: exact-key entries are checked
// before the per-type default, and whichever matches is returned whole.
type ruleSet struct {
	byKey    map[string]map[string]any
	defaults map[string]any
}

// lookup resolves the fields for key. The result is always a fresh copy.
func (r ruleSet) lookup(key string) map[string]any {
	if fields, ok := r.byKey[key]; ok {
		return cloneFields(fields)
	}

	return cloneFields(r.defaults)
}

// cloneFields deep-copies a field map so table data can never leak into a
// mutable document.
func cloneFields(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}

	out := make(map[string]any, len(src))
	for k, v := range src {
		out[k] = cloneValue(v)
	}

	return out
}

func cloneValue(v any) any {
	switch vv := v.(type) {
	case []string:
		return append([]string(nil), vv...)
	case []any:
		out := make([]any, len(vv))
		for i, e := range vv {
			out[i] = cloneValue(e)
		}

		return out
	case map[string]any:
		return cloneFields(vv)
	default:
		return v
	}
}
