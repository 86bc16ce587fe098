package payroll

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/production"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/rate"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/style"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/worker"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOrgID = "org-1"

func authContext(t *testing.T, organizationID string) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"user_id":         "user-1",
		"organization_id": organizationID,
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type fakeEntryRepo struct {
	entries []production.Entry
}

func (f *fakeEntryRepo) Create(ctx context.Context, e production.Entry) (production.Entry, error) {
	return e, nil
}

func (f *fakeEntryRepo) GetByID(ctx context.Context, id string, organizationID string) (production.Entry, error) {
	return production.Entry{}, production.ErrEntryNotFound
}

func (f *fakeEntryRepo) Update(ctx context.Context, e production.Entry) error { return nil }

func (f *fakeEntryRepo) Delete(ctx context.Context, id string, organizationID string) error {
	return nil
}

func (f *fakeEntryRepo) ListByWorkerAndRange(ctx context.Context, workerID string, organizationID string, startDate, endDate string) ([]production.Entry, error) {
	var out []production.Entry
	for _, e := range f.entries {
		if e.WorkerID != workerID || e.OrganizationID != organizationID {
			continue
		}
		if e.ProductionDate < startDate || e.ProductionDate > endDate {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEntryRepo) ListBySectionAndRange(ctx context.Context, sectionID string, organizationID string, startDate, endDate string) ([]production.Entry, error) {
	return nil, nil
}

func (f *fakeEntryRepo) ListBySectionStyleAndRange(ctx context.Context, sectionID string, styleID string, organizationID string, startDate, endDate string) ([]production.Entry, error) {
	return nil, nil
}

func (f *fakeEntryRepo) ListByOrganizationAndDate(ctx context.Context, organizationID string, date string) ([]production.EntryWithDetails, error) {
	return nil, nil
}

func (f *fakeEntryRepo) ListByWorkerAndRangeWithDetails(ctx context.Context, workerID string, organizationID string, startDate, endDate string) ([]production.EntryWithDetails, error) {
	return nil, nil
}

type fakeStyleRateRepo struct {
	rates map[string][]rate.StyleRate
}

func (f *fakeStyleRateRepo) Create(ctx context.Context, r rate.StyleRate) (rate.StyleRate, error) {
	return r, nil
}

func (f *fakeStyleRateRepo) ListByStyle(ctx context.Context, styleID string, organizationID string) ([]rate.StyleRate, error) {
	return f.rates[styleID], nil
}

type fakeStyleRepo struct {
	styles map[string]style.Style
}

func (f *fakeStyleRepo) Create(ctx context.Context, s style.Style) (style.Style, error) {
	return s, nil
}

func (f *fakeStyleRepo) GetByID(ctx context.Context, id string, organizationID string) (style.Style, error) {
	st, ok := f.styles[id]
	if !ok || st.OrganizationID != organizationID {
		return style.Style{}, style.ErrStyleNotFound
	}
	return st, nil
}

func (f *fakeStyleRepo) ListByOrganization(ctx context.Context, organizationID string) ([]style.Style, error) {
	return nil, nil
}

func (f *fakeStyleRepo) Update(ctx context.Context, id string, organizationID string, name string, description *string) error {
	return nil
}

func (f *fakeStyleRepo) Delete(ctx context.Context, id string, organizationID string) error {
	return nil
}

type fakeWorkerRepo struct {
	workers map[string]worker.Worker
}

func (f *fakeWorkerRepo) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	return w, nil
}

func (f *fakeWorkerRepo) GetByID(ctx context.Context, id string, organizationID string) (worker.Worker, error) {
	w, ok := f.workers[id]
	if !ok || w.OrganizationID != organizationID {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	return w, nil
}

func (f *fakeWorkerRepo) ListByOrganization(ctx context.Context, organizationID string) ([]worker.WorkerWithSection, error) {
	return nil, nil
}

func (f *fakeWorkerRepo) ListBySection(ctx context.Context, sectionID string, organizationID string) ([]worker.Worker, error) {
	return nil, nil
}

func (f *fakeWorkerRepo) ExistsByManualID(ctx context.Context, organizationID string, manualID string) (bool, error) {
	return false, nil
}

func (f *fakeWorkerRepo) Update(ctx context.Context, id string, organizationID string, name string, sectionID string) error {
	return nil
}

func (f *fakeWorkerRepo) Delete(ctx context.Context, id string, organizationID string) error {
	return nil
}

func newTestService(entries []production.Entry, rates map[string][]rate.StyleRate) *PayrollServiceImpl {
	svc := NewPayrollService(
		&fakeEntryRepo{entries: entries},
		&fakeStyleRateRepo{rates: rates},
		&fakeStyleRepo{styles: map[string]style.Style{
			"style-1": {ID: "style-1", Name: "Polo Shirt", OrganizationID: testOrgID},
		}},
		&fakeWorkerRepo{workers: map[string]worker.Worker{
			"worker-1": {ID: "worker-1", Name: "Amina", OrganizationID: testOrgID, SectionID: "section-1"},
		}},
	)
	return svc.(*PayrollServiceImpl)
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestCalculateWorkerPayroll_RateChangeMidPeriod(t *testing.T) {
	entries := []production.Entry{
		{ID: "entry-2", WorkerID: "worker-1", StyleID: "style-1", OrganizationID: testOrgID, Quantity: 50, ProductionDate: "2024-03-15"},
		{ID: "entry-1", WorkerID: "worker-1", StyleID: "style-1", OrganizationID: testOrgID, Quantity: 100, ProductionDate: "2024-02-10"},
	}
	rates := map[string][]rate.StyleRate{
		"style-1": {
			{ID: "rate-1", StyleID: "style-1", OrganizationID: testOrgID, Rate: mustDecimal(t, "2.00"), EffectiveDate: "2024-01-01"},
			{ID: "rate-2", StyleID: "style-1", OrganizationID: testOrgID, Rate: mustDecimal(t, "2.50"), EffectiveDate: "2024-03-01"},
		},
	}

	svc := newTestService(entries, rates)
	resp, err := svc.CalculateWorkerPayroll(authContext(t, testOrgID), "worker-1", "2024-02-01", "2024-03-31")
	require.NoError(t, err)

	assert.True(t, resp.TotalPay.Equal(mustDecimal(t, "325.00")), "total pay = %s", resp.TotalPay)
	require.Len(t, resp.Details, 2)

	// Sorted by production date: the February entry at the old rate first.
	assert.Equal(t, "entry-1", resp.Details[0].EntryID)
	assert.True(t, resp.Details[0].Rate.Equal(mustDecimal(t, "2.00")))
	assert.True(t, resp.Details[0].Pay.Equal(mustDecimal(t, "200.00")))

	assert.Equal(t, "entry-2", resp.Details[1].EntryID)
	assert.True(t, resp.Details[1].Rate.Equal(mustDecimal(t, "2.50")))
	assert.True(t, resp.Details[1].Pay.Equal(mustDecimal(t, "125.00")))

	require.NotNil(t, resp.Details[0].StyleName)
	assert.Equal(t, "Polo Shirt", *resp.Details[0].StyleName)
}

func TestCalculateWorkerPayroll_SkipsEntriesWithoutRate(t *testing.T) {
	entries := []production.Entry{
		{ID: "entry-1", WorkerID: "worker-1", StyleID: "style-1", OrganizationID: testOrgID, Quantity: 40, ProductionDate: "2023-12-20"},
		{ID: "entry-2", WorkerID: "worker-1", StyleID: "style-1", OrganizationID: testOrgID, Quantity: 10, ProductionDate: "2024-01-05"},
	}
	rates := map[string][]rate.StyleRate{
		"style-1": {
			{ID: "rate-1", StyleID: "style-1", OrganizationID: testOrgID, Rate: mustDecimal(t, "3.00"), EffectiveDate: "2024-01-01"},
		},
	}

	svc := newTestService(entries, rates)
	resp, err := svc.CalculateWorkerPayroll(authContext(t, testOrgID), "worker-1", "2023-12-01", "2024-01-31")
	require.NoError(t, err)

	// The December entry predates every rate and is dropped entirely.
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "entry-2", resp.Details[0].EntryID)
	assert.True(t, resp.TotalPay.Equal(mustDecimal(t, "30.00")), "total pay = %s", resp.TotalPay)
}

func TestCalculateWorkerPayroll_InvertedRangeIsEmpty(t *testing.T) {
	entries := []production.Entry{
		{ID: "entry-1", WorkerID: "worker-1", StyleID: "style-1", OrganizationID: testOrgID, Quantity: 100, ProductionDate: "2024-02-10"},
	}
	rates := map[string][]rate.StyleRate{
		"style-1": {
			{ID: "rate-1", StyleID: "style-1", OrganizationID: testOrgID, Rate: mustDecimal(t, "2.00"), EffectiveDate: "2024-01-01"},
		},
	}

	svc := newTestService(entries, rates)
	resp, err := svc.CalculateWorkerPayroll(authContext(t, testOrgID), "worker-1", "2024-03-01", "2024-02-01")
	require.NoError(t, err)

	assert.Empty(t, resp.Details)
	assert.True(t, resp.TotalPay.IsZero())
}

func TestCalculateWorkerPayroll_WorkerNotFound(t *testing.T) {
	svc := newTestService(nil, nil)
	_, err := svc.CalculateWorkerPayroll(authContext(t, testOrgID), "missing", "2024-01-01", "2024-01-31")
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}

func TestCalculateWorkerPayroll_OtherOrganizationWorker(t *testing.T) {
	svc := newTestService(nil, nil)
	_, err := svc.CalculateWorkerPayroll(authContext(t, "org-2"), "worker-1", "2024-01-01", "2024-01-31")
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}

func TestCalculateWorkerPayroll_RejectsMalformedDates(t *testing.T) {
	svc := newTestService(nil, nil)
	_, err := svc.CalculateWorkerPayroll(authContext(t, testOrgID), "worker-1", "2024-1-01", "2024-01-31")

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "start_date", verrs[0].Field)
}
