package metrics

import (
	"sync/atomic"
	"time"
)

type Collector struct {
	totalRequests     uint64
	errorRequests     uint64
	rateLimited       uint64
	totalDurationMs   uint64
	payrollRuns       uint64
	payslipsProduced  uint64
	documentsAnalyzed uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	if status == 429 {
		atomic.AddUint64(&c.rateLimited, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) RecordPayrollRun(payslips int) {
	atomic.AddUint64(&c.payrollRuns, 1)
	atomic.AddUint64(&c.payslipsProduced, uint64(payslips))
}

func (c *Collector) RecordAnalysis() {
	atomic.AddUint64(&c.documentsAnalyzed, 1)
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":          total,
		"errorsTotal":            atomic.LoadUint64(&c.errorRequests),
		"rateLimitedTotal":       atomic.LoadUint64(&c.rateLimited),
		"avgDurationMs":          avg,
		"totalDurationMs":        totalMs,
		"payrollRunsTotal":       atomic.LoadUint64(&c.payrollRuns),
		"payslipsTotal":          atomic.LoadUint64(&c.payslipsProduced),
		"documentsAnalyzedTotal": atomic.LoadUint64(&c.documentsAnalyzed),
	}
}
