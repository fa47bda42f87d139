// Package worker runs independent Monte-Carlo replicate blocks across a
// fixed number of goroutines. Blocks are the unit of both scheduling and RNG
// seeding, so a simulation result does not depend on the worker count, and
// each block writes only to its own slice of the output.
package worker

import (
	"runtime"
	"sync"
)

// BlockSize is the number of replicates assigned to one block.
const BlockSize = 2048

// Block describes a half-open replicate range [Lo, Hi).
type Block struct {
	Index int
	Lo    int
	Hi    int
}

// Pool fans replicate blocks out to a fixed number of goroutine workers.
type Pool struct {
	concurrency int
}

// NewPool creates a pool with the given concurrency.
// If concurrency <= 0, defaults to runtime.NumCPU().
func NewPool(concurrency int) *Pool {
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}
	return &Pool{concurrency: concurrency}
}

// Run partitions total replicates into BlockSize-wide blocks and invokes fn
// once per block. fn must confine its writes to the block's range; under
// that contract no synchronization beyond the final join is needed.
func (p *Pool) Run(total int, fn func(Block)) {
	if total <= 0 {
		return
	}
	nblocks := (total + BlockSize - 1) / BlockSize

	// Cap concurrency to the number of blocks
	workers := p.concurrency
	if workers > nblocks {
		workers = nblocks
	}

	jobs := make(chan Block, nblocks)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for b := range jobs {
				fn(b)
			}
		}()
	}

	for i := 0; i < nblocks; i++ {
		lo := i * BlockSize
		hi := lo + BlockSize
		if hi > total {
			hi = total
		}
		jobs <- Block{Index: i, Lo: lo, Hi: hi}
	}
	close(jobs)

	wg.Wait()
}
