package chunkvec

// releaseLog counts Release calls per element id.
type releaseLog struct {
	released map[int]int
}

func newReleaseLog() *releaseLog {
	return &releaseLog{released: make(map[int]int)}
}

func (log *releaseLog) make(id int) tracked {
	return tracked{id: id, log: log}
}

func (log *releaseLog) count(id int) int {
	return log.released[id]
}

func (log *releaseLog) total() int {
	n := 0
	for _, c := range log.released {
		n += c
	}
	return n
}

// tracked is an instrumented element type which records its release.
type tracked struct {
	id  int
	log *releaseLog
}

func (e tracked) Release() {
	if e.log == nil {
		panic("release of a zero placeholder")
	}
	e.log.released[e.id]++
}

// handle releases through a pointer receiver.
type handle struct {
	closed *int
}

func (h *handle) Release() {
	*h.closed++
}
