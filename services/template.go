package services

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/HSouheill/client_desk/models"
)

const tenureLayout = "02 Jan 2006"

// TemplateVars are the values substituted into {{name}}, {{amount}} and
// {{tenure}}.
type TemplateVars struct {
	Name   string
	Amount string
	Tenure string
}

// Render replaces every placeholder occurrence. Unknown placeholders are left
// as they are.
func Render(body string, vars TemplateVars) string {
	r := strings.NewReplacer(
		"{{name}}", vars.Name,
		"{{amount}}", vars.Amount,
		"{{tenure}}", vars.Tenure,
	)
	return r.Replace(body)
}

// VarsFromRecord derives template values from a stored submission.
func VarsFromRecord(rec *models.ClientRecord, loc *time.Location) TemplateVars {
	return TemplateVars{
		Name:   rec.ClientName,
		Amount: FormatAmount(rec.Amount),
		Tenure: FormatTenure(rec.TenureStartDate, rec.TenureEndDate, loc),
	}
}

// FormatAmount renders a rupee amount with two decimals.
func FormatAmount(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}

// FormatTenure renders "start to end", just the start, or nothing.
func FormatTenure(start, end *time.Time, loc *time.Location) string {
	if start == nil {
		return ""
	}
	if loc == nil {
		loc = time.UTC
	}
	out := start.In(loc).Format(tenureLayout)
	if end != nil {
		out += " to " + end.In(loc).Format(tenureLayout)
	}
	return out
}
