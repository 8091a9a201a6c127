package reorder

// State is a step of a Session.
type State string

func (s State) String() string {
	return string(s)
}

const (
	AwaitIdentifier       State = "await_identifier"
	Validating            State = "validating"
	Fetching              State = "fetching"
	CheckingPreconditions State = "checking_preconditions"
	Normalizing           State = "normalizing"
	Reordering            State = "reordering"
	Assembling            State = "assembling"
	Committing            State = "committing"
	Done                  State = "done"
	Failed                State = "failed"
)

// Terminal reports whether a Session stops in s.
func (s State) Terminal() bool {
	return s == Done || s == Failed
}
