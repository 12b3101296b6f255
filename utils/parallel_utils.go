package utils

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/notargets/gohydro/types"
)

type PartitionMap struct {
	MaxIndex       int // MaxIndex is partitioned into ParallelDegree partitions
	ParallelDegree int
	Partitions     [][2]int // Beginning and end index of partitions
}

func NewPartitionMap(ParallelDegree, maxIndex int) (pm *PartitionMap) {
	pm = &PartitionMap{
		MaxIndex:       maxIndex,
		ParallelDegree: ParallelDegree,
		Partitions:     make([][2]int, ParallelDegree),
	}
	for n := 0; n < ParallelDegree; n++ {
		pm.Partitions[n] = pm.Split1D(n)
	}
	return
}

func (pm *PartitionMap) GetBucketRange(bucketNum int) (nMin, nMax int) {
	nMin, nMax = pm.Partitions[bucketNum][0], pm.Partitions[bucketNum][1]
	return
}

func (pm *PartitionMap) GetBucketDimension(bn int) (nMax int) {
	var (
		n1, n2 = pm.GetBucketRange(bn)
	)
	nMax = n2 - n1
	return
}

func (pm *PartitionMap) Split1D(threadNum int) (bucket [2]int) {
	// Splits one dimension into ParallelDegree pieces, with a maximum imbalance of one item
	var (
		Npart            = pm.MaxIndex / (pm.ParallelDegree)
		startAdd, endAdd int
		remainder        int
	)
	remainder = pm.MaxIndex % pm.ParallelDegree
	if remainder != 0 { // spread the remainder over the first chunks evenly
		if threadNum+1 > remainder {
			startAdd = remainder
			endAdd = 0
		} else {
			startAdd = threadNum
			endAdd = 1
		}
	}
	bucket[0] = threadNum*Npart + startAdd
	bucket[1] = bucket[0] + Npart + endAdd
	return
}

// SetParallelDegree resolves a requested worker count against the work available.
// A non-positive request uses every CPU; there are never more workers than items.
func SetParallelDegree(ProcLimit, maxIndex int) (np int) {
	if ProcLimit > 0 {
		np = ProcLimit
	} else {
		np = runtime.NumCPU()
	}
	if np > maxIndex {
		np = maxIndex
	}
	return
}

/*
ParallelFor runs fn once for every item in [0, nItems) on a team of nthreads
goroutines and returns when all of them have finished.

With ScheduleDynamic, workers claim chunk items at a time from a shared
counter, so a fast worker takes more of the range. With ScheduleStatic the
range is pre-split into one contiguous bucket per worker. Either way each item
is handed to exactly one worker exactly once.

A team of one runs on the calling goroutine. If fn returns an error the
workers stop claiming new items and the first error is returned.
*/
func ParallelFor(nthreads int, sched types.Schedule, chunk, nItems int,
	fn func(myThread, n int) error) (err error) {
	var (
		NP     = SetParallelDegree(nthreads, nItems)
		g      errgroup.Group
		failed atomic.Bool
	)
	if NP < 1 {
		return
	}
	if chunk < 1 {
		chunk = 1
	}
	if NP == 1 { // No team needed, run on the calling goroutine
		for n := 0; n < nItems; n++ {
			if err = fn(0, n); err != nil {
				return
			}
		}
		return
	}
	switch sched {
	case types.ScheduleStatic:
		pm := NewPartitionMap(NP, nItems)
		for np := 0; np < NP; np++ {
			np := np
			g.Go(func() error {
				nMin, nMax := pm.GetBucketRange(np)
				for n := nMin; n < nMax; n++ {
					if failed.Load() {
						return nil
					}
					if err := fn(np, n); err != nil {
						failed.Store(true)
						return err
					}
				}
				return nil
			})
		}
	default:
		var next atomic.Int64
		for np := 0; np < NP; np++ {
			np := np
			g.Go(func() error {
				for !failed.Load() {
					nEnd := int(next.Add(int64(chunk)))
					nStart := nEnd - chunk
					if nStart >= nItems {
						return nil
					}
					nEnd = min(nEnd, nItems)
					for n := nStart; n < nEnd; n++ {
						if err := fn(np, n); err != nil {
							failed.Store(true)
							return err
						}
					}
				}
				return nil
			})
		}
	}
	err = g.Wait()
	return
}
