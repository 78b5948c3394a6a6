// Package dashboard derives the admin review view from the full list of
// client submissions: filtered and sorted records plus headline totals.
//
// Everything here is a pure function of its inputs. Callers rebuild the view
// on every filter change.
package dashboard

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/HSouheill/client_desk/models"
)

// FilterAll disables the status or service-type filter.
const FilterAll = "all"

// FilterCriteria is the admin's current filter selection. A zero StartDate
// or EndDate leaves that side of the range open.
type FilterCriteria struct {
	Status      string         `json:"status"`
	ServiceType string         `json:"serviceType"`
	Search      string         `json:"search,omitempty"`
	StartDate   time.Time      `json:"startDate,omitempty"`
	EndDate     time.Time      `json:"endDate,omitempty"`
	Location    *time.Location `json:"-"`
}

// Stats counts submissions per status across the unfiltered set.
type Stats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// View is what the dashboard renders.
type View struct {
	Records        []models.ClientRecord `json:"records"`
	Stats          Stats                 `json:"stats"`
	FilteredAmount decimal.Decimal       `json:"filteredAmount"`
	TotalAmount    decimal.Decimal       `json:"totalAmount"`
	Criteria       FilterCriteria        `json:"criteria"`
}

// ParseCriteria builds criteria from the dashboard's query parameters.
// Empty status or service type means "all"; dates are YYYY-MM-DD.
func ParseCriteria(status, serviceType, search, startDate, endDate string, loc *time.Location) (FilterCriteria, error) {
	if loc == nil {
		loc = time.Local
	}
	fc := FilterCriteria{
		Status:      strings.TrimSpace(status),
		ServiceType: strings.TrimSpace(serviceType),
		Search:      search,
		Location:    loc,
	}
	if fc.Status == "" {
		fc.Status = FilterAll
	}
	if fc.ServiceType == "" {
		fc.ServiceType = FilterAll
	}

	switch models.ClientStatus(fc.Status) {
	case models.StatusPending, models.StatusApproved, models.StatusRejected:
	default:
		if fc.Status != FilterAll {
			return FilterCriteria{}, fmt.Errorf("unknown status filter %q", fc.Status)
		}
	}

	switch models.ServiceType(fc.ServiceType) {
	case models.ServiceTypeNewSale, models.ServiceTypeUpsale:
	default:
		if fc.ServiceType != FilterAll {
			return FilterCriteria{}, fmt.Errorf("unknown service type filter %q", fc.ServiceType)
		}
	}

	var err error
	if fc.StartDate, err = parseDay(startDate, loc); err != nil {
		return FilterCriteria{}, fmt.Errorf("startDate: %w", err)
	}
	if fc.EndDate, err = parseDay(endDate, loc); err != nil {
		return FilterCriteria{}, fmt.Errorf("endDate: %w", err)
	}
	return fc, nil
}

func parseDay(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(models.DateLayout, s, loc)
}

// Build applies fc to records and computes the aggregates. records is not
// modified.
func Build(records []models.ClientRecord, fc FilterCriteria) View {
	filtered := Filter(records, fc)

	return View{
		Records:        filtered,
		Stats:          Count(records),
		FilteredAmount: SumAmounts(filtered),
		TotalAmount:    SumAmounts(records),
		Criteria:       fc,
	}
}

// Filter returns the records matching fc, newest first.
func Filter(records []models.ClientRecord, fc FilterCriteria) []models.ClientRecord {
	loc := fc.Location
	if loc == nil {
		loc = time.Local
	}
	from, to := dayBounds(fc.StartDate, fc.EndDate, loc)
	search := strings.ToLower(fc.Search)
	searching := strings.TrimSpace(fc.Search) != ""

	out := make([]models.ClientRecord, 0, len(records))
	for _, r := range records {
		if fc.Status != "" && fc.Status != FilterAll && string(r.Status) != fc.Status {
			continue
		}
		if fc.ServiceType != "" && fc.ServiceType != FilterAll && string(r.ServiceType) != fc.ServiceType {
			continue
		}
		if searching && !matchesSearch(r, search) {
			continue
		}
		if !from.IsZero() && r.CreatedAt.Before(from) {
			continue
		}
		if !to.IsZero() && r.CreatedAt.After(to) {
			continue
		}
		out = append(out, r)
	}

	slices.SortStableFunc(out, func(a, b models.ClientRecord) int {
		return cmp.Compare(b.CreatedAt.UnixNano(), a.CreatedAt.UnixNano())
	})
	return out
}

// matchesSearch looks at the submitter-side fields only. The client's own
// name is deliberately not searchable.
func matchesSearch(r models.ClientRecord, lowered string) bool {
	return strings.Contains(strings.ToLower(r.Email), lowered) ||
		strings.Contains(strings.ToLower(r.EmployeeName), lowered) ||
		strings.Contains(strings.ToLower(r.EmployeePaymentName), lowered)
}

// dayBounds widens calendar dates to the first and last instant of their
// day in loc.
func dayBounds(start, end time.Time, loc *time.Location) (time.Time, time.Time) {
	var from, to time.Time
	if !start.IsZero() {
		y, m, d := start.In(loc).Date()
		from = time.Date(y, m, d, 0, 0, 0, 0, loc)
	}
	if !end.IsZero() {
		y, m, d := end.In(loc).Date()
		to = time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), loc)
	}
	return from, to
}

// Count tallies records per status. Records with a status outside the
// workflow only count toward Total.
func Count(records []models.ClientRecord) Stats {
	s := Stats{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case models.StatusPending:
			s.Pending++
		case models.StatusApproved:
			s.Approved++
		case models.StatusRejected:
			s.Rejected++
		}
	}
	return s
}

// SumAmounts adds record amounts in decimal to avoid float drift.
func SumAmounts(records []models.ClientRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(decimal.NewFromFloat(r.Amount))
	}
	return total
}
