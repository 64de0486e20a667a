package batch

import (
	"sync"

	"github.com/tzok/mcq-cli/matching"
	"github.com/tzok/mcq-cli/structures"
)

// Pipeline loads structures and makes selections over one target and an
// ordered batch of models. The zero value loads from disk with the default
// auto-partition factory, sequentially, discarding warnings.
type Pipeline struct {
	// Loader loads one structure per path. Defaults to structures.FileLoader.
	Loader structures.Loader

	// Factory builds Auto and query selections. Defaults to
	// matching.AutoFactory.
	Factory matching.SelectionFactory

	// Parser parses explicit query directives. May be nil; query directives
	// then fail with matching.ErrNoQueryParser.
	Parser matching.QueryParser

	// Workers bounds concurrent model processing. Values below 2 keep the
	// batch sequential. Ordering of results is preserved either way.
	Workers int

	// Warn receives non-fatal warnings. May be nil. With Workers > 1 it must
	// be safe for concurrent use.
	Warn func(structures.Warning)

	// Done, when set, is called once per model with that model's error (nil
	// on success), for progress reporting. Same concurrency requirement as
	// Warn.
	Done func(error)
}

// SelectTarget loads the target structure, resolves its name (no override
// list applies to the singular target) and makes a selection on it.
func (p *Pipeline) SelectTarget(path, directive string) (matching.Selection, error) {
	return p.selectOne(path, directive, nil)
}

// SelectModels loads and selects every model path in order, returning one
// selection per path in the same order. Names come from the namesCsv
// override list when it reconciles cleanly against the paths, otherwise
// they are derived per model. The directive is shared by the whole batch.
// Any single load or selection failure aborts the whole batch; there is no
// partial result.
func (p *Pipeline) SelectModels(
	paths []string, directive, namesCsv string,
) ([]matching.Selection, error) {
	overrides, warn := NameMap(paths, namesCsv)
	if warn != nil {
		p.warn(*warn)
	}

	if p.Workers > 1 && len(paths) > 1 {
		return p.selectConcurrent(paths, directive, overrides)
	}

	selections := make([]matching.Selection, len(paths))
	for i, path := range paths {
		sel, err := p.selectOne(path, directive, overrides)
		p.done(err)
		if err != nil {
			return nil, err
		}
		selections[i] = sel
	}
	return selections, nil
}

// selectConcurrent fans the model batch out over a bounded pool of workers,
// writing each result into its path's slot so ordering is preserved. After
// the first failure the remaining jobs are skipped and only that first
// error is returned.
func (p *Pipeline) selectConcurrent(
	paths []string, directive string, overrides map[string]string,
) ([]matching.Selection, error) {
	type job struct {
		i    int
		path string
	}

	selections := make([]matching.Selection, len(paths))
	jobs := make(chan job, p.Workers)

	var mu sync.Mutex
	var firstErr error
	failed := func() bool {
		mu.Lock()
		defer mu.Unlock()
		return firstErr != nil
	}

	wg := new(sync.WaitGroup)
	for w := 0; w < p.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				if failed() {
					continue
				}
				sel, err := p.selectOne(j.path, directive, overrides)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
				} else {
					selections[j.i] = sel
				}
				p.done(err)
			}
		}()
	}
	for i, path := range paths {
		jobs <- job{i, path}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return selections, nil
}

func (p *Pipeline) selectOne(
	path, directive string, overrides map[string]string,
) (matching.Selection, error) {
	s, warns, err := p.loader().Load(path)
	if err != nil {
		return matching.Selection{}, err
	}
	p.warn(warns...)

	name, ok := overrides[path]
	if !ok {
		name = ModelName(path, s)
	}
	return matching.Select(s, name, directive, p.factory(), p.Parser)
}

func (p *Pipeline) loader() structures.Loader {
	if p.Loader != nil {
		return p.Loader
	}
	return structures.FileLoader{}
}

func (p *Pipeline) factory() matching.SelectionFactory {
	if p.Factory != nil {
		return p.Factory
	}
	return matching.AutoFactory{}
}

func (p *Pipeline) warn(warns ...structures.Warning) {
	if p.Warn == nil {
		return
	}
	for _, w := range warns {
		p.Warn(w)
	}
}

func (p *Pipeline) done(err error) {
	if p.Done != nil {
		p.Done(err)
	}
}
