package util

// Progress counts completed jobs and reports them on stderr via Verbosef.
// It is safe to call JobDone from multiple goroutines, and every method is
// a no-op on a nil receiver so callers need not guard against disabled
// progress reporting.
type Progress struct {
	jobs chan error
	done chan struct{}
}

func NewProgress(total int) *Progress {
	p := &Progress{make(chan error), make(chan struct{})}
	go func() {
		completed, errors := 0, 0
		for err := range p.jobs {
			if err == nil {
				completed++
			} else {
				errors++
			}
			ratio := 100.0 * float64(completed) / float64(total)
			Verbosef("\r%d of %d jobs complete (%0.2f%% done, %d errors)",
				completed, total, ratio, errors)
		}
		Verbosef("\n")
		p.done <- struct{}{}
	}()
	return p
}

func (p *Progress) JobDone(err error) {
	if p == nil {
		return
	}
	p.jobs <- err
}

func (p *Progress) Close() {
	if p == nil {
		return
	}
	close(p.jobs)
	<-p.done
}
