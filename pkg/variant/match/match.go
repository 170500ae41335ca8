package match

import (
	"reflect"

	"github.com/ib-77/variant/pkg/variant"
)

// Match classifies subject and routes it to exactly one handler of the case
// table, returning that handler's result. At most one discriminant field
// name may be supplied; when given, structural subjects dispatch on that
// field's value instead of being scanned key by key.
//
// Classification runs in a fixed priority order:
//  1. primitive subjects dispatch on exact key equality
//  2. structural subjects without a discriminant are scanned for the first
//     case key present as a map key or exported field
//  3. structural subjects with a discriminant dispatch on the field's value
//  4. container subjects are shape-sniffed via the variant shape interfaces
//     (IsOk, IsErr, IsSome, IsNone, in that order)
//  5. anything else fails with *InvalidMatchError
//
// An unmatched structural subject without a default does not fail at step 2;
// it falls through to shape-sniffing, so container types whose fields are
// unexported still reach step 4.
func Match[R any](subject any, cases Cases[R], discriminant ...string) (R, error) {
	var zero R

	if isPrimitive(subject) {
		if c, ok := cases.find(subject); ok {
			return c.invokeEmpty(), nil
		}
		if d, ok := cases.findDefault(); ok {
			return d.invokeEmpty(), nil
		}
		return zero, &NoCaseFoundError{Value: subject}
	}

	if variant.IsNil(subject) {
		return zero, &InvalidMatchError{}
	}

	if len(discriminant) > 0 {
		return matchDiscriminant(subject, cases, discriminant[0])
	}

	if isStructural(subject) {
		if r, ok := matchStructural(subject, cases); ok {
			return r, nil
		}
	}

	return matchShape(subject, cases)
}

// MustMatch is Match panicking with the typed match error instead of
// returning it.
func MustMatch[R any](subject any, cases Cases[R], discriminant ...string) R {
	r, err := Match(subject, cases, discriminant...)
	if err != nil {
		panic(err)
	}
	return r
}

// matchDiscriminant reads the named field of the subject and dispatches on
// its value, handing the whole subject to the chosen handler. A subject
// lacking the field dispatches on nil, so a default still catches it; with
// no default the error names the absent field.
func matchDiscriminant[R any](subject any, cases Cases[R], field string) (R, error) {
	var zero R

	dv, found := fieldValue(subject, field)
	if c, ok := cases.find(dv); ok {
		return c.invoke(subject), nil
	}
	if d, ok := cases.findDefault(); ok {
		return d.invoke(subject), nil
	}
	return zero, &NoCaseFoundError{Value: dv, Field: field, FieldMissing: !found}
}

// matchStructural scans the case table in declared order for the first key
// present as a property of the subject. Payload-carrying handlers receive
// the property's value; bare handlers run without it, which lets tag-only
// and payload-carrying cases share one table. Reports false when neither a
// case key nor a default resolved, so the caller can continue classifying.
func matchStructural[R any](subject any, cases Cases[R]) (R, bool) {
	var zero R

	for _, c := range cases {
		if c.isDefault {
			continue
		}
		name, ok := c.key.(string)
		if !ok {
			continue
		}
		if v, present := fieldValue(subject, name); present {
			return c.invoke(v), true
		}
	}
	if d, ok := cases.findDefault(); ok {
		return d.invokeEmpty(), true
	}
	return zero, false
}

// matchShape sniffs container subjects through the variant capability
// interfaces, in a fixed order. A recognized shape whose handler is absent
// is an error; the table has no say in the order.
func matchShape[R any](subject any, cases Cases[R]) (R, error) {
	var zero R

	if s, ok := subject.(variant.OkShape); ok && s.IsOk() {
		c, ok := cases.find("Ok")
		if !ok {
			return zero, &MissingCaseError{Case: "Ok"}
		}
		return c.invoke(payload(subject)), nil
	}
	if s, ok := subject.(variant.ErrShape); ok && s.IsErr() {
		c, ok := cases.find("Err")
		if !ok {
			return zero, &MissingCaseError{Case: "Err"}
		}
		return c.invoke(payload(subject)), nil
	}
	if s, ok := subject.(variant.SomeShape); ok && s.IsSome() {
		c, ok := cases.find("Some")
		if !ok {
			return zero, &MissingCaseError{Case: "Some"}
		}
		return c.invoke(payload(subject)), nil
	}
	if s, ok := subject.(variant.NoneShape); ok && s.IsNone() {
		c, ok := cases.find("None")
		if !ok {
			return zero, &MissingCaseError{Case: "None"}
		}
		return c.invokeEmpty(), nil
	}

	return zero, &InvalidMatchError{}
}

func payload(subject any) any {
	if v, ok := subject.(variant.Valuer); ok {
		return v.Value()
	}
	return nil
}

// isPrimitive reports whether subject is an atomic scalar: a string, bool,
// or numeric value.
func isPrimitive(subject any) bool {
	if subject == nil {
		return false
	}
	switch reflect.TypeOf(subject).Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

// isStructural reports whether subject can carry named properties: a map
// with string keys, a struct, or a pointer to a struct.
func isStructural(subject any) bool {
	t := reflect.TypeOf(subject)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Map:
		return t.Key().Kind() == reflect.String
	case reflect.Struct:
		return true
	}
	return false
}

// fieldValue looks up a named property of the subject: a map entry for maps
// with string keys, an exported field for structs. Unexported struct fields
// are invisible to matching.
func fieldValue(subject any, name string) (any, bool) {
	v := reflect.ValueOf(subject)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		mv := v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key()))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	case reflect.Struct:
		f, ok := v.Type().FieldByName(name)
		if !ok || !f.IsExported() {
			return nil, false
		}
		return v.FieldByIndex(f.Index).Interface(), true
	}
	return nil, false
}

// sameKey compares a case key against a lookup value using exact equality:
// identical dynamic types, no numeric or string coercion.
func sameKey(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
