package stats

// State is the serializable form of an Aggregator, persisted alongside
// the user-progress snapshot and restored at startup.
type State struct {
	ByCategory   map[string]CorrectTotal `json:"byCategory"`
	ByDifficulty map[string]CorrectTotal `json:"byDifficulty"`
	ByType       map[string]typeAgg      `json:"byType"`
	Scores       []int                   `json:"scores"`
	Recent       []Sample                `json:"recent"`
	TotalTime    float64                 `json:"totalTime"`
}

// Snapshot captures the aggregator's rolling state.
func (a *Aggregator) Snapshot() *State {
	a.mu.Lock()
	defer a.mu.Unlock()

	st := &State{
		ByCategory:   make(map[string]CorrectTotal, len(a.byCategory)),
		ByDifficulty: make(map[string]CorrectTotal, len(a.byDifficulty)),
		ByType:       make(map[string]typeAgg, len(a.byType)),
		Scores:       append([]int(nil), a.scores...),
		Recent:       append([]Sample(nil), a.recent...),
		TotalTime:    a.totalTime,
	}
	for k, v := range a.byCategory {
		st.ByCategory[k] = v
	}
	for k, v := range a.byDifficulty {
		st.ByDifficulty[k] = v
	}
	for k, v := range a.byType {
		st.ByType[k] = v
	}
	return st
}

// Restore replaces the aggregator's state from a snapshot. A nil state
// leaves the aggregator empty.
func (a *Aggregator) Restore(st *State) {
	if st == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	a.byCategory = make(map[string]CorrectTotal, len(st.ByCategory))
	for k, v := range st.ByCategory {
		a.byCategory[k] = v
	}
	a.byDifficulty = make(map[string]CorrectTotal, len(st.ByDifficulty))
	for k, v := range st.ByDifficulty {
		a.byDifficulty[k] = v
	}
	a.byType = make(map[string]typeAgg, len(st.ByType))
	for k, v := range st.ByType {
		a.byType[k] = v
	}
	a.scores = append([]int(nil), st.Scores...)
	a.recent = append([]Sample(nil), st.Recent...)
	a.totalTime = st.TotalTime
}
