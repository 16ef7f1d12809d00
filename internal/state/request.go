package state

// Status is the coarse lifecycle of the surfaced operation.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSucceeded
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSucceeded:
		return "succeeded"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// RequestState tracks in-flight operations. Only the most recently started
// operation ("surfaced") may set the terminal status and messages; results
// of superseded operations still decrement the in-flight counter but cannot
// overwrite what the user sees. The terminal status is always Succeeded or
// Error; Idle only ever appears before the first operation.
type RequestState struct {
	LastOp   OpID
	InFlight int
	Status   Status
	Err      string
	Info     string
}

// Busy reports whether any operation is still running. The UI gates inputs
// and shows the spinner on this, not on Status.
func (r RequestState) Busy() bool {
	return r.InFlight > 0
}

func reduceOpStarted(st RequestState, a OpStarted) RequestState {
	st.InFlight++
	st.LastOp = a.ID
	st.Status = StatusLoading
	st.Err = ""
	st.Info = ""
	return st
}

func reduceOpDone(st RequestState, a OpDone) RequestState {
	if st.InFlight > 0 {
		st.InFlight--
	}
	if a.ID != st.LastOp {
		return st
	}
	if a.Err != "" {
		st.Status = StatusError
		st.Err = a.Err
	} else {
		st.Status = StatusSucceeded
		st.Info = a.Info
	}
	return st
}
