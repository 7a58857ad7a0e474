package hslog

// typeFilter decides which event types a Watcher delivers.
// A nil *typeFilter allows every type.
type typeFilter struct {
	include map[EventType]struct{}
	exclude map[EventType]struct{}
}

// newTypeFilter builds a filter from include and exclude lists.
// Returns nil if both lists are empty.
func newTypeFilter(include, exclude []EventType) *typeFilter {
	if len(include) == 0 && len(exclude) == 0 {
		return nil
	}
	f := &typeFilter{}
	f.setInclude(include)
	f.setExclude(exclude)
	return f
}

func (f *typeFilter) setInclude(types []EventType) {
	f.include = typeSet(types)
}

func (f *typeFilter) setExclude(types []EventType) {
	f.exclude = typeSet(types)
}

func typeSet(types []EventType) map[EventType]struct{} {
	if len(types) == 0 {
		return nil
	}
	m := make(map[EventType]struct{}, len(types))
	for _, t := range types {
		m[t] = struct{}{}
	}
	return m
}

// Allows returns true if events of type t pass the filter.
// If include is non-empty, only types in include are allowed.
// Types in exclude are always rejected.
func (f *typeFilter) Allows(t EventType) bool {
	if f == nil {
		return true
	}
	if len(f.include) > 0 {
		if _, ok := f.include[t]; !ok {
			return false
		}
	}
	if _, ok := f.exclude[t]; ok {
		return false
	}
	return true
}
