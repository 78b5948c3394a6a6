package dashboard

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/HSouheill/client_desk/models"
)

var ist = time.FixedZone("IST", 5*3600+1800)

func record(status models.ClientStatus, amount float64, created time.Time) models.ClientRecord {
	return models.ClientRecord{
		ID:                  primitive.NewObjectID(),
		EmployeePaymentName: "Ravi",
		EmployeeName:        "ravi.k",
		ClientName:          "Client",
		Email:               "client@example.com",
		Amount:              amount,
		ServiceType:         models.ServiceTypeNewSale,
		Status:              status,
		CreatedAt:           created,
	}
}

func all() FilterCriteria {
	return FilterCriteria{Status: FilterAll, ServiceType: FilterAll, Location: ist}
}

func TestBuildAmounts(t *testing.T) {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, ist)
	records := []models.ClientRecord{
		record(models.StatusPending, 100, base),
		record(models.StatusApproved, 200, base.Add(time.Hour)),
		record(models.StatusRejected, 300, base.Add(2*time.Hour)),
	}

	fc := all()
	fc.Status = string(models.StatusApproved)
	view := Build(records, fc)

	require.Len(t, view.Records, 1)
	assert.True(t, view.FilteredAmount.Equal(decimal.NewFromInt(200)), view.FilteredAmount.String())
	assert.True(t, view.TotalAmount.Equal(decimal.NewFromInt(600)), view.TotalAmount.String())
	assert.Equal(t, Stats{Total: 3, Pending: 1, Approved: 1, Rejected: 1}, view.Stats)
}

func TestBuildDoesNotMutateInput(t *testing.T) {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, ist)
	records := []models.ClientRecord{
		record(models.StatusPending, 1, base),
		record(models.StatusPending, 2, base.Add(time.Hour)),
	}
	first := records[0].ID

	Build(records, all())
	assert.Equal(t, first, records[0].ID)
}

func TestFilterSortsNewestFirst(t *testing.T) {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, ist)
	records := []models.ClientRecord{
		record(models.StatusPending, 1, base.Add(time.Hour)),
		record(models.StatusPending, 2, base),
		record(models.StatusPending, 3, base.Add(3*time.Hour)),
	}

	out := Filter(records, all())
	require.Len(t, out, 3)
	assert.Equal(t, 3.0, out[0].Amount)
	assert.Equal(t, 1.0, out[1].Amount)
	assert.Equal(t, 2.0, out[2].Amount)
}

func TestFilterServiceType(t *testing.T) {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, ist)
	upsale := record(models.StatusPending, 50, base)
	upsale.ServiceType = models.ServiceTypeUpsale
	records := []models.ClientRecord{record(models.StatusPending, 10, base), upsale}

	fc := all()
	fc.ServiceType = string(models.ServiceTypeUpsale)
	out := Filter(records, fc)
	require.Len(t, out, 1)
	assert.Equal(t, models.ServiceTypeUpsale, out[0].ServiceType)
}

func TestSearch(t *testing.T) {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, ist)

	byClient := record(models.StatusPending, 1, base)
	byClient.ClientName = "Meera Textiles"
	byClient.Email = "accounts@example.com"

	byEmployee := record(models.StatusPending, 2, base)
	byEmployee.EmployeeName = "meera.s"

	byPaymentName := record(models.StatusPending, 3, base)
	byPaymentName.EmployeePaymentName = "MEERA Sharma"

	byEmail := record(models.StatusPending, 4, base)
	byEmail.Email = "meera@example.com"

	records := []models.ClientRecord{byClient, byEmployee, byPaymentName, byEmail}

	t.Run("client name alone never matches", func(t *testing.T) {
		fc := all()
		fc.Search = "Textiles"
		assert.Empty(t, Filter(records, fc))
	})

	t.Run("matches submitter fields case-insensitively", func(t *testing.T) {
		fc := all()
		fc.Search = "Meera"
		out := Filter(records, fc)
		require.Len(t, out, 3)
		for _, r := range out {
			assert.NotEqual(t, byClient.ID, r.ID)
		}
	})

	t.Run("blank search is ignored", func(t *testing.T) {
		fc := all()
		fc.Search = "   "
		assert.Len(t, Filter(records, fc), 4)
	})

	t.Run("client name exclusion holds under other filters", func(t *testing.T) {
		fc := all()
		fc.Search = "textiles"
		fc.Status = string(models.StatusPending)
		fc.ServiceType = string(models.ServiceTypeNewSale)
		fc.StartDate = base
		fc.EndDate = base
		assert.Empty(t, Filter(records, fc))
	})
}

func TestDateRangeIsInclusiveOfBoundaryDays(t *testing.T) {
	start := time.Date(2024, 5, 10, 0, 0, 0, 0, ist)
	end := time.Date(2024, 5, 12, 0, 0, 0, 0, ist)

	atStart := record(models.StatusPending, 1, start)
	atEnd := record(models.StatusPending, 2, time.Date(2024, 5, 12, 23, 59, 59, 999_000_000, ist))
	before := record(models.StatusPending, 3, start.Add(-time.Nanosecond))
	after := record(models.StatusPending, 4, time.Date(2024, 5, 13, 0, 0, 0, 0, ist))

	fc := all()
	fc.StartDate = start
	fc.EndDate = end

	out := Filter([]models.ClientRecord{atStart, atEnd, before, after}, fc)
	require.Len(t, out, 2)
	assert.Equal(t, atEnd.ID, out[0].ID)
	assert.Equal(t, atStart.ID, out[1].ID)
}

func TestDateRangeOpenEnds(t *testing.T) {
	early := record(models.StatusPending, 1, time.Date(2023, 1, 1, 9, 0, 0, 0, ist))
	late := record(models.StatusPending, 2, time.Date(2025, 1, 1, 9, 0, 0, 0, ist))
	records := []models.ClientRecord{early, late}

	t.Run("start only", func(t *testing.T) {
		fc := all()
		fc.StartDate = time.Date(2024, 1, 1, 0, 0, 0, 0, ist)
		out := Filter(records, fc)
		require.Len(t, out, 1)
		assert.Equal(t, late.ID, out[0].ID)
	})

	t.Run("end only", func(t *testing.T) {
		fc := all()
		fc.EndDate = time.Date(2024, 1, 1, 0, 0, 0, 0, ist)
		out := Filter(records, fc)
		require.Len(t, out, 1)
		assert.Equal(t, early.ID, out[0].ID)
	})
}

func TestDateRangeUsesLocalCalendarDay(t *testing.T) {
	// 20:00 UTC on the 9th is already the 10th in IST.
	r := record(models.StatusPending, 1, time.Date(2024, 5, 9, 20, 0, 0, 0, time.UTC))

	fc := all()
	fc.StartDate = time.Date(2024, 5, 10, 0, 0, 0, 0, ist)
	fc.EndDate = fc.StartDate
	assert.Len(t, Filter([]models.ClientRecord{r}, fc), 1)
}

func TestCountIgnoresUnknownStatus(t *testing.T) {
	odd := record("archived", 1, time.Now())
	s := Count([]models.ClientRecord{odd, record(models.StatusPending, 1, time.Now())})
	assert.Equal(t, Stats{Total: 2, Pending: 1}, s)
}

func TestSumAmountsAvoidsFloatDrift(t *testing.T) {
	records := []models.ClientRecord{
		record(models.StatusPending, 0.1, time.Now()),
		record(models.StatusPending, 0.2, time.Now()),
	}
	assert.Equal(t, "0.3", SumAmounts(records).String())
}

func TestParseCriteria(t *testing.T) {
	t.Run("defaults to all", func(t *testing.T) {
		fc, err := ParseCriteria("", "", "", "", "", ist)
		require.NoError(t, err)
		assert.Equal(t, FilterAll, fc.Status)
		assert.Equal(t, FilterAll, fc.ServiceType)
		assert.True(t, fc.StartDate.IsZero())
		assert.True(t, fc.EndDate.IsZero())
	})

	t.Run("parses dates in the dashboard zone", func(t *testing.T) {
		fc, err := ParseCriteria("approved", "new sale", "ravi", "2024-05-10", "2024-05-12", ist)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, ist), fc.StartDate)
		assert.Equal(t, "new sale", fc.ServiceType)
		assert.Equal(t, "ravi", fc.Search)
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		_, err := ParseCriteria("archived", "", "", "", "", ist)
		assert.Error(t, err)
		_, err = ParseCriteria("", "renewal", "", "", "", ist)
		assert.Error(t, err)
		_, err = ParseCriteria("", "", "", "10/05/2024", "", ist)
		assert.Error(t, err)
	})
}
