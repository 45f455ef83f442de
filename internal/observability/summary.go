package observability

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jonathan/salary-predictor/internal/types"
)

const (
	summaryTitle      = "Career Salary Predictor Result"
	summaryDisclaimer = "Disclaimer: Not financial advice; estimates vary."
	unknownInput      = "Unknown"
)

// FormatMoney renders whole US dollars with thousands separators, e.g. $98,088.
// Halves round away from zero; NaN and ±Inf render as $0.
func FormatMoney(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	whole := int64(math.Round(v))
	if whole < 0 {
		return "-$" + humanize.Comma(-whole)
	}
	return "$" + humanize.Comma(whole)
}

func formatRange(r types.SalaryRange) string {
	return fmt.Sprintf("%s (%s - %s)", FormatMoney(r.Mid), FormatMoney(r.Low), FormatMoney(r.High))
}

// SummaryText is the plain-text result a user can paste elsewhere.
func SummaryText(est *types.Estimate) string {
	if est == nil {
		return ""
	}

	major := est.InputsUsed.MajorGroup
	if major == "" {
		major = unknownInput
	}
	region := est.InputsUsed.Region
	if region == "" {
		region = unknownInput
	}

	return strings.Join([]string{
		summaryTitle,
		fmt.Sprintf("Major: %s", major),
		fmt.Sprintf("Region: %s", region),
		fmt.Sprintf("Starting (Low / Median / High): %s / %s / %s",
			FormatMoney(est.Starting.Low), FormatMoney(est.Starting.Mid), FormatMoney(est.Starting.High)),
		fmt.Sprintf("5-Year Median: %s", formatRange(est.Year5)),
		fmt.Sprintf("10-Year Median: %s", formatRange(est.Year10)),
		fmt.Sprintf("Confidence: %d/100", est.Confidence.Score),
		summaryDisclaimer,
	}, "\n")
}
