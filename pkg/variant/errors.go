package variant

// LogicError signals programmer misuse of a container: unwrapping the
// variant that is not held. It is carried as a panic value, never returned,
// and is not meant to be recovered from except at a boundary the caller
// chooses.
type LogicError struct {
	msg string
}

func (e *LogicError) Error() string {
	return e.msg
}
