package copilot

import "fmt"

const (
	ReasonUnknownAction = "unknown action"
	ReasonMissingField  = "missing field"
	ReasonNotAString    = "not a string"
	ReasonFieldTooLong  = "field too long"
)

// ValidationError keeps the failing action/field/reason for the internal
// log. The handler collapses every instance to one opaque caller message so
// schema details never leak.
type ValidationError struct {
	Action string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validate %s: %s", e.Action, e.Reason)
	}
	return fmt.Sprintf("validate %s: field %q: %s", e.Action, e.Field, e.Reason)
}
