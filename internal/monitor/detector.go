package monitor

// Transition classifies a cycle's digest against the last committed one.
type Transition int

const (
	// TransitionBaseline is the first successful cycle; there is nothing
	// to compare against yet.
	TransitionBaseline Transition = iota
	// TransitionChanged means the filtered outage set differs from the
	// last committed one.
	TransitionChanged
	// TransitionUnchanged means the filtered outage set is identical to
	// the last committed one.
	TransitionUnchanged
)

func (t Transition) String() string {
	switch t {
	case TransitionBaseline:
		return "baseline"
	case TransitionChanged:
		return "changed"
	case TransitionUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// Detector is the only state carried across poll cycles: the fingerprint of
// the last committed outage set.
type Detector struct {
	last string
}

// NewDetector creates a Detector seeded with a prior digest. An empty prior
// means no baseline has been captured yet.
func NewDetector(prior string) *Detector {
	return &Detector{last: prior}
}

// Classify compares digest against the committed one without storing it.
func (d *Detector) Classify(digest string) Transition {
	switch d.last {
	case "":
		return TransitionBaseline
	case digest:
		return TransitionUnchanged
	default:
		return TransitionChanged
	}
}

// Commit stores digest as the new comparison point.
func (d *Detector) Commit(digest string) {
	d.last = digest
}

// Last returns the committed digest, empty until the first Commit.
func (d *Detector) Last() string {
	return d.last
}
