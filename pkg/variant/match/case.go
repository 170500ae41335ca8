package match

// Case binds one case identifier to a handler. Tables are ordered slices:
// the structural scan walks cases in declared order, so the first matching
// key wins and callers control tie-breaks by ordering their table.
type Case[R any] struct {
	key       any
	isDefault bool
	run0      func() R
	run1      func(v any) R
}

// Cases is a per-call case table. It is consumed synchronously by Match and
// never retained.
type Cases[R any] []Case[R]

// On binds a key to a handler taking no payload.
func On[R any](key any, run func() R) Case[R] {
	return Case[R]{key: key, run0: run}
}

// OnValue binds a key to a payload-carrying handler. The payload is the
// matched property value (structural scan), the whole subject (discriminant
// dispatch), or the unwrapped container payload (shape-sniffing). A value
// handler matched against a bare primitive subject receives nil.
func OnValue[R any](key any, run func(v any) R) Case[R] {
	return Case[R]{key: key, run1: run}
}

// Default binds the fallback handler invoked when no case key matches.
func Default[R any](run func() R) Case[R] {
	return Case[R]{isDefault: true, run0: run}
}

// DefaultValue is a payload-carrying fallback. Under discriminant dispatch
// it receives the whole subject; elsewhere nil.
func DefaultValue[R any](run func(v any) R) Case[R] {
	return Case[R]{isDefault: true, run1: run}
}

// invoke runs the handler, passing v only to payload-carrying handlers.
func (c Case[R]) invoke(v any) R {
	if c.run1 != nil {
		return c.run1(v)
	}
	return c.run0()
}

// invokeEmpty runs the handler with no payload.
func (c Case[R]) invokeEmpty() R {
	if c.run1 != nil {
		return c.run1(nil)
	}
	return c.run0()
}

// find looks up a non-default case by exact key equality. Keys only match
// when their dynamic types are identical; there is no coercion between
// numeric and string keys.
func (cs Cases[R]) find(key any) (Case[R], bool) {
	for _, c := range cs {
		if !c.isDefault && sameKey(c.key, key) {
			return c, true
		}
	}
	return Case[R]{}, false
}

func (cs Cases[R]) findDefault() (Case[R], bool) {
	for _, c := range cs {
		if c.isDefault {
			return c, true
		}
	}
	return Case[R]{}, false
}
