package services

import "fmt"

// Integrity flag codes.
const (
	FlagMarginBelowFloor     = "margin_below_floor"
	FlagMarginBelowGuardrail = "margin_below_guardrail"
)

// CheckIntegrity maps a realized gross margin to a verdict plus structured
// flags. Both thresholds are strict less-than: a margin exactly at the floor
// is not blocked and a margin exactly at the guardrail is not a warning.
func CheckIntegrity(grossMargin float64, rt RateTable) (IntegrityStatus, []IntegrityFlag) {
	var flags []IntegrityFlag

	switch {
	case grossMargin < rt.MarginFloor:
		flags = append(flags, IntegrityFlag{
			Code:     FlagMarginBelowFloor,
			Severity: SeverityError,
			Message:  fmt.Sprintf("gross margin %.1f%% is below the %.1f%% floor", grossMargin*100, rt.MarginFloor*100),
		})
	case grossMargin < rt.MarginGuardrail:
		flags = append(flags, IntegrityFlag{
			Code:     FlagMarginBelowGuardrail,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("gross margin %.1f%% is below the %.1f%% guardrail", grossMargin*100, rt.MarginGuardrail*100),
		})
	}

	return verdictFor(flags), flags
}

// verdictFor reduces a flag set to an overall verdict. Errors take strict
// priority over warnings: a single error blocks the quote regardless of how
// many warnings accompany it.
func verdictFor(flags []IntegrityFlag) IntegrityStatus {
	status := IntegrityPassed
	for _, f := range flags {
		switch f.Severity {
		case SeverityError:
			return IntegrityBlocked
		case SeverityWarning:
			status = IntegrityWarning
		}
	}
	return status
}
