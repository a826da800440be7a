package services

// AlreadyProcessedError reports a decision attempt on an application that has
// already left the pending state. Status carries what the caller observed.
type AlreadyProcessedError struct {
	Status string
}

func (e *AlreadyProcessedError) Error() string {
	return "application already " + e.Status
}

// ValidationError is a caller-correctable input problem on a named field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Message
}
