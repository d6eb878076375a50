package simulation

// Phase is the current stage of the simulation.
type Phase int

const (
	Idle Phase = iota
	Uploading
	Encrypting
	Stored
	Decrypting
	Complete
	// Failed is entered when the file cannot be read, hashed or handed back.
	Failed
)

var phaseNames = map[Phase]string{
	Idle:       "idle",
	Uploading:  "uploading",
	Encrypting: "encrypting",
	Stored:     "stored",
	Decrypting: "decrypting",
	Complete:   "complete",
	Failed:     "failed",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// Busy reports whether a timed phase is in progress.
func (p Phase) Busy() bool {
	return p == Uploading || p == Encrypting || p == Decrypting
}

// AcceptsFile reports whether a new file may be selected in this phase.
func (p Phase) AcceptsFile() bool {
	return p == Idle || p == Complete
}

// ParsePhase is the inverse of Phase.String.
func ParsePhase(s string) (Phase, bool) {
	for p, name := range phaseNames {
		if name == s {
			return p, true
		}
	}
	return Idle, false
}
