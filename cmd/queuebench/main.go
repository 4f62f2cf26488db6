// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command queuebench compares the lock-free ring against the two-lock
// reference queue under varying producer/consumer counts.
//
// Usage:
//
//	go run ./cmd/queuebench -capacity 1024 -ops 10000000 -mix 4,4 -mix 8,8
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"
	"unsafe"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
	"github.com/wlsqc123/lockfree-queue"
)

func main() {
	capacity := flag.Int("capacity", 1024, "queue capacity (rounds up to a power of 2)")
	ops := flag.Int("ops", 10_000_000, "operations per producer thread")
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var runs []run
	flag.Func("mix", "producer,consumer pair to benchmark, repeatable (default 1,1 2,2 4,4)", func(s string) error {
		var p, c int
		if _, err := fmt.Sscanf(s, "%d,%d", &p, &c); err != nil {
			return fmt.Errorf("invalid -mix %q: %w", s, err)
		}
		runs = append(runs, run{producers: p, consumers: c})
		return nil
	})
	flag.Parse()

	if len(runs) == 0 {
		runs = []run{{1, 1}, {2, 2}, {4, 4}}
	}

	log.Info("queuebench starting", "capacity", *capacity, "opsPerThread", *ops, "mixes", len(runs))

	for _, r := range runs {
		ring := queue.NewRing[testPayload](*capacity)
		log.Info("queue created", "queue", "Ring (lock-free)", "requestedCapacity", *capacity, "roundedCapacity", ring.Cap())
		benchmark("Ring (lock-free)", ring, r.producers, r.consumers, *ops, log)

		mutexQueue := queue.NewMutexQueue[testPayload](*capacity)
		log.Info("queue created", "queue", "MutexQueue (two-lock)", "requestedCapacity", *capacity, "roundedCapacity", mutexQueue.Cap())
		benchmark("MutexQueue (two-lock)", mutexQueue, r.producers, r.consumers, *ops, log)
	}
}

type run struct {
	producers, consumers int
}

// testPayload pads to a cache line so per-op cost isn't dominated by a
// tiny payload copy.
type testPayload struct {
	value   int
	padding [56]byte
}

func benchmark(name string, q queue.Queue[testPayload], numProducers, numConsumers, opsPerThread int, log *slog.Logger) {
	total := numProducers * opsPerThread
	opsPerConsumer := total / numConsumers

	var pushOK, popOK atomix.Int64
	var unexpected atomix.Int64

	var wg sync.WaitGroup
	start := time.Now()

	for p := 0; p < numProducers; p++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			sw := spin.Wait{}
			local := int64(0)
			for i := 0; i < opsPerThread; i++ {
				item := testPayload{value: id*opsPerThread + i}
				for {
					err := q.TryEnqueueErr(item)
					if err == nil {
						break
					}
					if !queue.IsFull(err) {
						unexpected.Add(1)
					}
					sw.Once()
				}
				local++
			}
			pushOK.Add(local)
		}(p)
	}

	for c := 0; c < numConsumers; c++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			sw := spin.Wait{}
			var item testPayload
			local := int64(0)
			for local < int64(n) {
				err := q.TryDequeueErr(&item)
				if err == nil {
					local++
					continue
				}
				if !queue.IsEmpty(err) {
					unexpected.Add(1)
				}
				sw.Once()
			}
			popOK.Add(local)
		}(opsPerConsumer)
	}

	wg.Wait()
	elapsed := time.Since(start)

	log.Info("drain started", "queue", name, "remaining", q.Len())
	drained := 0
	q.Close(func(testPayload) { drained++ })
	log.Info("drain finished", "queue", name, "drained", drained)

	opsPerSec := float64(total*2) / elapsed.Seconds()
	throughputMB := opsPerSec * float64(unsafe.Sizeof(testPayload{})) / (1024 * 1024)

	log.Info("benchmark complete",
		"queue", name,
		"producers", numProducers,
		"consumers", numConsumers,
		"elapsed", elapsed,
		"pushOK", pushOK.Load(),
		"popOK", popOK.Load(),
		"unexpectedErrors", unexpected.Load(),
		"opsPerSec", int64(opsPerSec),
		"approxThroughputMBs", throughputMB,
	)
}
