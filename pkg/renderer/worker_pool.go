package renderer

import (
	"runtime"
	"sync"
)

// rowPool fans scanlines out to a fixed set of workers. Every scanline
// writes to a disjoint slice of the framebuffer, so the WaitGroup is the
// only synchronization needed; the compressor runs only after Run returns.
type rowPool struct {
	numWorkers int
	renderRow  func(j int)
}

// newRowPool creates a pool; numWorkers <= 0 means one worker per CPU
func newRowPool(numWorkers int, renderRow func(j int)) *rowPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &rowPool{numWorkers: numWorkers, renderRow: renderRow}
}

// Run renders rows [0, rows) across the pool and blocks until all complete
func (p *rowPool) Run(rows int) {
	tasks := make(chan int, rows)
	var wg sync.WaitGroup
	for w := 0; w < p.numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range tasks {
				p.renderRow(j)
			}
		}()
	}
	for j := 0; j < rows; j++ {
		tasks <- j
	}
	close(tasks)
	wg.Wait()
}
