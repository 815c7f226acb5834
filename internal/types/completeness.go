package types

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// CompletenessReport lists draft fields that are still empty or malformed.
// Required-field marking is advisory: the wizard shows it but never blocks
// navigation or generation on it.
type CompletenessReport struct {
	MissingFields []string
}

// Complete reports whether every advisory requirement is satisfied
func (r CompletenessReport) Complete() bool {
	return len(r.MissingFields) == 0
}

// CheckCompleteness evaluates the advisory validation rules on a draft
func CheckCompleteness(d PortfolioDraft) CompletenessReport {
	err := validate.Struct(d)
	if err == nil {
		return CompletenessReport{}
	}

	var report CompletenessReport
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			name := strings.TrimPrefix(fe.Namespace(), "PortfolioDraft.")
			report.MissingFields = append(report.MissingFields, strings.ToLower(name))
		}
	}
	return report
}
