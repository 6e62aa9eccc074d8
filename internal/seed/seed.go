// Package seed loads the bundled sample exam into the question bank.
package seed

import (
	"context"
	_ "embed"
	"errors"

	"github.com/jfarleigh/certrun/internal/bank"
	"github.com/jfarleigh/certrun/internal/store"
)

//go:embed sample.json
var sampleJSON []byte

// Run imports the bundled sample exam through the regular import path,
// so the data passes the same schema and bias checks as user imports.
// It is a no-op when an exam with the same name already exists, which
// makes repeated runs safe.
func Run(ctx context.Context, svc *bank.Service) (*store.Exam, bool, error) {
	exam, err := svc.Import(ctx, sampleJSON, false)
	if err != nil {
		var conflict *bank.ErrConflict
		if errors.As(err, &conflict) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return exam, true, nil
}
