/*
batch.go - Concurrent payroll runs

PURPOSE:
  Computing payslips for a whole company is embarrassingly parallel:
  each employee's computation only reads its own inputs and allocates
  fresh output, so a bounded worker pool fans the work out with no
  coordination beyond the result channel. One employee's failure is
  isolated to their own result; the run always completes.
*/
package payslip

import (
	"context"
	"sort"
	"sync"
)

// BatchInput pairs an employee with their manually-entered statutory
// values for the period.
type BatchInput struct {
	Employee  Employee
	Statutory StatutoryDiscounts
}

// BatchResult is the per-employee outcome of a payroll run.
type BatchResult struct {
	Employee Employee
	Payslip  *Payslip
	Err      error
}

// BatchRunner computes payslips for many employees concurrently.
type BatchRunner struct {
	Builder *Builder

	// Workers bounds concurrency. Zero means a sensible default.
	Workers int
}

const defaultWorkers = 8

// Run computes one payslip per input. Results are returned in input
// order regardless of completion order; per-employee errors are carried
// in the result, never aborting the run.
func (r *BatchRunner) Run(ctx context.Context, inputs []BatchInput, month, year int) []BatchResult {
	workers := r.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	if workers > len(inputs) {
		workers = len(inputs)
	}

	type indexed struct {
		idx    int
		result BatchResult
	}

	jobs := make(chan int)
	out := make(chan indexed, len(inputs))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				in := inputs[idx]
				slip, err := r.Builder.Build(ctx, in.Employee, in.Statutory, month, year)
				out <- indexed{idx: idx, result: BatchResult{
					Employee: in.Employee,
					Payslip:  slip,
					Err:      err,
				}}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i := range inputs {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(out)
	}()

	collected := make([]indexed, 0, len(inputs))
	for res := range out {
		collected = append(collected, res)
	}
	sort.Slice(collected, func(i, j int) bool { return collected[i].idx < collected[j].idx })

	results := make([]BatchResult, len(collected))
	for i, c := range collected {
		results[i] = c.result
	}
	return results
}
