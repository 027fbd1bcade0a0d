package chain

// Stage identifies the chain stage that decided a request.
type Stage int

const (
	// StageNone means no handler decided the request.
	StageNone Stage = iota
	// StageExistence is the user lookup stage.
	StageExistence
	// StageCredentials is the password comparison stage.
	StageCredentials
	// StageAuthorization is the role check stage.
	StageAuthorization
)

// String returns the string representation of the stage.
func (s Stage) String() string {
	switch s {
	case StageExistence:
		return "existence"
	case StageCredentials:
		return "credentials"
	case StageAuthorization:
		return "authorization"
	default:
		return "none"
	}
}

// Result is the structured outcome of a chain traversal: which stage decided
// the request, and why when it was rejected.
type Result struct {
	Allowed bool
	Stage   Stage
	Reason  string
}

// allow marks a request as decided in its favor at stage.
func allow(stage Stage) Result {
	return Result{Allowed: true, Stage: stage}
}

// reject halts the chain at stage with a reason.
func reject(stage Stage, reason string) Result {
	return Result{Allowed: false, Stage: stage, Reason: reason}
}
