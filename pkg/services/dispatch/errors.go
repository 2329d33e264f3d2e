package dispatch

import (
	"errors"
	"fmt"

	"github.com/de-tools/report-pilot/pkg/models/domain"
)

// ErrUnsupportedReport is returned when the dispatcher receives a report
// identifier outside its known kinds.
var ErrUnsupportedReport = errors.New("unsupported report type")

// ErrUserRequired is returned by personalized ML generators invoked without
// an authenticated user.
var ErrUserRequired = errors.New("report requires an authenticated user")

// GeneratorError wraps a failure raised inside a generator with the report
// kind it belongs to.
type GeneratorError struct {
	Kind domain.ReportKind
	Err  error
}

func (e *GeneratorError) Error() string {
	return fmt.Sprintf("generator %q failed: %v", e.Kind, e.Err)
}

func (e *GeneratorError) Unwrap() error {
	return e.Err
}
