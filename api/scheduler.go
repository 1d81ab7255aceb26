/*
scheduler.go - Automated monthly payroll close

PURPOSE:
  Periodically checks whether the previous month's payroll has been run
  for every employee and runs it automatically for anyone missing.
  The automatic run stores draft payslips with no statutory values;
  operators re-run the period through the API once INSS/IRRF figures
  are entered.

DESIGN:
  - Runs a background goroutine with configurable check interval
  - Detects employees with no stored payslip for the previous month
  - Skips employees whose payslip already exists
  - Per-employee failures are logged, never abort the sweep

CONFIGURATION:
  - CheckInterval: How often to check (default: 1 hour)
  - Enabled: Whether scheduler is active (default: true)

USAGE:
  scheduler := NewPayrollScheduler(store, handler)
  scheduler.Start()
  // ... later
  scheduler.Stop()

SEE ALSO:
  - handlers.go: RunPayroll endpoint (manual runs)
  - payslip/batch.go: concurrent run machinery
*/
package api

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/warp/payroll-engine/payslip"
	"github.com/warp/payroll-engine/store/sqlite"
)

// PayrollScheduler runs the previous month's payroll for employees
// that don't have a stored payslip yet.
type PayrollScheduler struct {
	Store         *sqlite.Store
	Handler       *Handler
	CheckInterval time.Duration
	Enabled       bool

	ticker *time.Ticker
	stop   chan bool
	wg     sync.WaitGroup
	mu     sync.Mutex
}

// NewPayrollScheduler creates a new scheduler.
func NewPayrollScheduler(store *sqlite.Store, handler *Handler) *PayrollScheduler {
	return &PayrollScheduler{
		Store:         store,
		Handler:       handler,
		CheckInterval: 1 * time.Hour,
		Enabled:       true,
		stop:          make(chan bool),
	}
}

// Start begins the scheduler.
func (ps *PayrollScheduler) Start() {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	if !ps.Enabled {
		log.Println("[Scheduler] Disabled, not starting")
		return
	}

	ps.ticker = time.NewTicker(ps.CheckInterval)
	ps.wg.Add(1)

	go ps.run()

	log.Printf("[Scheduler] Started with check interval: %v", ps.CheckInterval)
}

// Stop stops the scheduler.
func (ps *PayrollScheduler) Stop() {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	if ps.ticker != nil {
		ps.ticker.Stop()
		close(ps.stop)
		ps.wg.Wait()
		log.Println("[Scheduler] Stopped")
	}
}

func (ps *PayrollScheduler) run() {
	defer ps.wg.Done()

	// Run immediately on start
	ps.checkAndProcess()

	for {
		select {
		case <-ps.ticker.C:
			ps.checkAndProcess()
		case <-ps.stop:
			return
		}
	}
}

// previousMonth returns the month/year immediately before the given time.
func previousMonth(now time.Time) (month, year int) {
	prev := now.AddDate(0, -1, -now.Day()+1)
	return int(prev.Month()), prev.Year()
}

func (ps *PayrollScheduler) checkAndProcess() {
	ctx := context.Background()
	month, year := previousMonth(time.Now())

	employees, err := ps.Store.ListEmployees(ctx)
	if err != nil {
		log.Printf("[Scheduler] Error listing employees: %v", err)
		return
	}

	// Only employees without a stored payslip for the period
	var missing []payslip.BatchInput
	skippedCount := 0
	for _, emp := range employees {
		existing, err := ps.Store.GetPayslip(ctx, emp.ID, month, year)
		if err != nil {
			log.Printf("[Scheduler] Error checking payslip for %s: %v", emp.ID, err)
			continue
		}
		if existing != nil {
			skippedCount++
			continue
		}
		missing = append(missing, payslip.BatchInput{Employee: emp})
	}

	if len(missing) == 0 {
		return
	}

	log.Printf("[Scheduler] Running %02d/%d payroll for %d employees", month, year, len(missing))

	results := ps.Handler.Runner.Run(ctx, missing, month, year)

	processedCount := 0
	for _, res := range results {
		if res.Err != nil {
			log.Printf("[Scheduler] Error building payslip for %s: %v", res.Employee.ID, res.Err)
			continue
		}
		if err := ps.Store.SavePayslip(ctx, res.Payslip); err != nil {
			log.Printf("[Scheduler] Error storing payslip for %s: %v", res.Employee.ID, err)
			continue
		}
		for _, warning := range res.Payslip.Warnings {
			log.Printf("[Scheduler] Warning for %s: %s", res.Employee.ID, warning.String())
		}
		processedCount++
	}

	log.Printf("[Scheduler] Completed: %d processed, %d skipped (already stored)", processedCount, skippedCount)
}

// RunNow triggers an immediate check (for testing/admin).
func (ps *PayrollScheduler) RunNow() {
	ps.checkAndProcess()
}

// GetNextRunTime returns when the next scheduled check will occur.
func (ps *PayrollScheduler) GetNextRunTime() time.Time {
	return time.Now().Add(ps.CheckInterval)
}
