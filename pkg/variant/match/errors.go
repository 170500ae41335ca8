package match

import "fmt"

// MissingCaseError reports a subject of a recognized container shape
// (Ok/Err/Some/None) whose required handler was omitted from the table.
type MissingCaseError struct {
	Case string
}

func (e *MissingCaseError) Error() string {
	return fmt.Sprintf("match: no handler for required case %q", e.Case)
}

// NoCaseFoundError reports a primitive or discriminant value that matched no
// case key and had no default. Field names the discriminant when one was
// supplied; FieldMissing additionally reports that the subject lacked that
// field entirely, so dispatch fell to the nil value.
type NoCaseFoundError struct {
	Value        any
	Field        string
	FieldMissing bool
}

func (e *NoCaseFoundError) Error() string {
	switch {
	case e.FieldMissing:
		return fmt.Sprintf("match: subject has no discriminant field %q", e.Field)
	case e.Field != "":
		return fmt.Sprintf("match: no case found for discriminant %q value %v", e.Field, e.Value)
	default:
		return fmt.Sprintf("match: no case found for value %v", e.Value)
	}
}

// InvalidMatchError reports a subject that fits none of the classification
// strategies.
type InvalidMatchError struct{}

func (e *InvalidMatchError) Error() string {
	return "match: no matching case found for subject"
}
