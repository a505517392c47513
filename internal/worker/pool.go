// Package worker runs the asynchronous receipt-printing pool. Print jobs are
// queued after the checkout transaction commits and are at-most-once:
// a failed or dropped print is logged, never retried into the sale's result
// and never able to roll anything back.
package worker

import (
	"context"

	"fornopos/internal/model"
	"fornopos/internal/printing"

	"github.com/rs/zerolog/log"
)

// PrintJob carries one committed order to the printer.
type PrintJob struct {
	Order   *model.Order
	Reprint bool
}

// Dispatcher enqueues print jobs onto an in-process buffered channel.
// The worker pool drains it.
type Dispatcher struct {
	jobs    chan PrintJob
	printer printing.Printer
}

func NewDispatcher(printer printing.Printer, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 32
	}
	return &Dispatcher{
		jobs:    make(chan PrintJob, queueSize),
		printer: printer,
	}
}

// EnqueuePrint queues a receipt job without blocking. When the queue is full
// the job is dropped and logged — the sale is already final and must not wait
// on the printer.
func (d *Dispatcher) EnqueuePrint(o *model.Order, reprint bool) {
	select {
	case d.jobs <- PrintJob{Order: o, Reprint: reprint}:
	default:
		log.Warn().Str("order", printing.Describe(o)).Msg("print queue full, receipt dropped")
	}
}

// Start launches numWorkers goroutines consuming the queue until ctx is done.
func (d *Dispatcher) Start(ctx context.Context, numWorkers int) {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	for i := 0; i < numWorkers; i++ {
		go d.run(ctx, i)
	}
	log.Info().Int("workers", numWorkers).Msg("print worker pool started")
}

func (d *Dispatcher) run(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Int("worker", id).Msg("print worker shutting down")
			return
		case job := <-d.jobs:
			d.process(job)
		}
	}
}

func (d *Dispatcher) process(job PrintJob) {
	if err := d.printer.PrintCustomerReceipt(job.Order); err != nil {
		log.Error().Err(err).Str("order", printing.Describe(job.Order)).Msg("customer receipt failed")
	}
	// Kitchen copies are skipped on reprints — the kitchen already cooked it.
	if job.Reprint {
		return
	}
	if err := d.printer.PrintKitchenReceipt(job.Order); err != nil {
		log.Error().Err(err).Str("order", printing.Describe(job.Order)).Msg("kitchen receipt failed")
	}
}
