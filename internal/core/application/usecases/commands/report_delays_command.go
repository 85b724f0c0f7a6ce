package commands

import (
	"errors"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const maxDelayBatchSize = 1000

var ErrReportDelaysCommandIsNotConstructed = errors.New(
	"ReportDelaysCommand must be created via NewReportDelaysCommand constructor",
)

// ReportDelaysCommand scans for overdue operations, at most batchSize per run.
type ReportDelaysCommand struct {
	batchSize int

	guard guard.ConstructorGuard
}

func NewReportDelaysCommand(batchSize int) (ReportDelaysCommand, error) {
	if batchSize < 1 || batchSize > maxDelayBatchSize {
		return ReportDelaysCommand{}, errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, maxDelayBatchSize)
	}

	return ReportDelaysCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c *ReportDelaysCommand) Validate() error {
	return c.guard.Validate(ErrReportDelaysCommandIsNotConstructed)
}

func (c *ReportDelaysCommand) BatchSize() int {
	return c.batchSize
}
