package landscape

import "sync"

// Rendered pairs one encoded buffer with its metadata.
type Rendered struct {
	Bytes []byte
	Meta  Metadata
}

type variantResult struct {
	variant Variant
	out     Rendered
}

// RenderAll renders every supported variant of the same forecast in
// parallel. Renders share nothing but the read-only catalog, so the only
// coordination needed is collecting the results.
func (e *Engine) RenderAll(f *Forecast, tl Timeline, events []EventOverlay) (map[Variant]Rendered, error) {
	results := make(chan variantResult, len(Variants))

	var errcList []<-chan error
	for _, v := range Variants {
		errc := make(chan error, 1)
		errcList = append(errcList, errc)
		go func(v Variant, errc chan<- error) {
			defer close(errc)
			b, meta, err := e.Render(f, tl, events, v)
			if err != nil {
				errc <- err
				return
			}
			results <- variantResult{variant: v, out: Rendered{Bytes: b, Meta: meta}}
		}(v, errc)
	}

	if err := waitForAll(errcList...); err != nil {
		return nil, err
	}
	close(results)

	out := make(map[Variant]Rendered, len(Variants))
	for r := range results {
		out[r.variant] = r.out
	}
	return out, nil
}

func waitForAll(errs ...<-chan error) error {
	for err := range mergeErrors(errs...) {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}
