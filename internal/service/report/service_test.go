package report

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/production"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/rate"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/section"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/style"
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

// fakeEntryRepo resolves section membership through workerSections, the same
// query-time join the real repository performs against the workers table.
type fakeEntryRepo struct {
	entries        []production.Entry
	workerSections map[string]string
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
	return nil, nil
}

func (f *fakeEntryRepo) ListBySectionAndRange(ctx context.Context, sectionID string, organizationID string, startDate, endDate string) ([]production.Entry, error) {
	var out []production.Entry
	for _, e := range f.entries {
		if e.OrganizationID != organizationID || f.workerSections[e.WorkerID] != sectionID {
			continue
		}
		if e.ProductionDate < startDate || e.ProductionDate > endDate {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEntryRepo) ListBySectionStyleAndRange(ctx context.Context, sectionID string, styleID string, organizationID string, startDate, endDate string) ([]production.Entry, error) {
	all, err := f.ListBySectionAndRange(ctx, sectionID, organizationID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	var out []production.Entry
	for _, e := range all {
		if e.StyleID == styleID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEntryRepo) ListByOrganizationAndDate(ctx context.Context, organizationID string, date string) ([]production.EntryWithDetails, error) {
	var out []production.EntryWithDetails
	for _, e := range f.entries {
		if e.OrganizationID != organizationID || e.ProductionDate != date {
			continue
		}
		out = append(out, production.EntryWithDetails{Entry: e})
	}
	return out, nil
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

type fakeSectionRepo struct {
	sections map[string]section.Section
}

func (f *fakeSectionRepo) Create(ctx context.Context, s section.Section) (section.Section, error) {
	return s, nil
}

func (f *fakeSectionRepo) GetByID(ctx context.Context, id string, organizationID string) (section.Section, error) {
	sec, ok := f.sections[id]
	if !ok || sec.OrganizationID != organizationID {
		return section.Section{}, section.ErrSectionNotFound
	}
	return sec, nil
}

func (f *fakeSectionRepo) ListByOrganization(ctx context.Context, organizationID string) ([]section.SectionWithManager, error) {
	return nil, nil
}

func (f *fakeSectionRepo) ListByManager(ctx context.Context, managerID string, organizationID string) ([]section.Section, error) {
	return nil, nil
}

func (f *fakeSectionRepo) Update(ctx context.Context, id string, organizationID string, name string, managerID string) error {
	return nil
}

func (f *fakeSectionRepo) Delete(ctx context.Context, id string, organizationID string) error {
	return nil
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func newTestService(entries []production.Entry, rates map[string][]rate.StyleRate) *ReportServiceImpl {
	svc := NewReportService(
		&fakeEntryRepo{
			entries: entries,
			workerSections: map[string]string{
				"worker-1": "section-1",
				"worker-2": "section-1",
				"worker-3": "section-2",
			},
		},
		&fakeStyleRateRepo{rates: rates},
		&fakeStyleRepo{styles: map[string]style.Style{
			"style-1": {ID: "style-1", Name: "Polo Shirt", OrganizationID: testOrgID},
			"style-2": {ID: "style-2", Name: "Cargo Pants", OrganizationID: testOrgID},
		}},
		&fakeSectionRepo{sections: map[string]section.Section{
			"section-1": {ID: "section-1", Name: "Sewing", OrganizationID: testOrgID, ManagerID: "user-1"},
			"section-2": {ID: "section-2", Name: "Finishing", OrganizationID: testOrgID, ManagerID: "user-1"},
		}},
	)
	return svc.(*ReportServiceImpl)
}

func testFixture(t *testing.T) ([]production.Entry, map[string][]rate.StyleRate) {
	t.Helper()
	entries := []production.Entry{
		{ID: "entry-1", WorkerID: "worker-1", StyleID: "style-1", OrganizationID: testOrgID, Quantity: 100, ProductionDate: "2024-02-10"},
		{ID: "entry-2", WorkerID: "worker-2", StyleID: "style-1", OrganizationID: testOrgID, Quantity: 50, ProductionDate: "2024-03-15"},
		{ID: "entry-3", WorkerID: "worker-2", StyleID: "style-2", OrganizationID: testOrgID, Quantity: 30, ProductionDate: "2024-02-20"},
		// Different section, must not leak into section-1 summaries.
		{ID: "entry-4", WorkerID: "worker-3", StyleID: "style-1", OrganizationID: testOrgID, Quantity: 999, ProductionDate: "2024-02-12"},
	}
	rates := map[string][]rate.StyleRate{
		"style-1": {
			{ID: "rate-1", StyleID: "style-1", OrganizationID: testOrgID, Rate: mustDecimal(t, "2.00"), EffectiveDate: "2024-01-01"},
			{ID: "rate-2", StyleID: "style-1", OrganizationID: testOrgID, Rate: mustDecimal(t, "2.50"), EffectiveDate: "2024-03-01"},
		},
		"style-2": {
			{ID: "rate-3", StyleID: "style-2", OrganizationID: testOrgID, Rate: mustDecimal(t, "4.00"), EffectiveDate: "2024-01-01"},
		},
	}
	return entries, rates
}

func TestSectionSummary_GroupsByStyle(t *testing.T) {
	entries, rates := testFixture(t)
	svc := newTestService(entries, rates)

	resp, err := svc.SectionSummary(authContext(t, testOrgID), "section-1", "2024-02-01", "2024-03-31")
	require.NoError(t, err)

	assert.Equal(t, int64(180), resp.TotalQuantity)
	// 100*2.00 + 50*2.50 + 30*4.00
	assert.True(t, resp.TotalPay.Equal(mustDecimal(t, "445.00")), "total pay = %s", resp.TotalPay)

	require.Len(t, resp.StyleSummaries, 2)
	// Sorted by style name: Cargo Pants before Polo Shirt.
	assert.Equal(t, "Cargo Pants", resp.StyleSummaries[0].StyleName)
	assert.Equal(t, int64(30), resp.StyleSummaries[0].Quantity)
	assert.True(t, resp.StyleSummaries[0].Pay.Equal(mustDecimal(t, "120.00")))

	assert.Equal(t, "Polo Shirt", resp.StyleSummaries[1].StyleName)
	assert.Equal(t, int64(150), resp.StyleSummaries[1].Quantity)
	assert.True(t, resp.StyleSummaries[1].Pay.Equal(mustDecimal(t, "325.00")))

	// The per-style rows sum to the section totals exactly.
	var quantitySum int64
	paySum := decimal.Zero
	for _, row := range resp.StyleSummaries {
		quantitySum += row.Quantity
		paySum = paySum.Add(row.Pay)
	}
	assert.Equal(t, resp.TotalQuantity, quantitySum)
	assert.True(t, resp.TotalPay.Equal(paySum))
}

func TestSectionSummary_RatelessEntriesCountQuantityOnly(t *testing.T) {
	entries := []production.Entry{
		{ID: "entry-1", WorkerID: "worker-1", StyleID: "style-1", OrganizationID: testOrgID, Quantity: 25, ProductionDate: "2023-12-15"},
	}
	rates := map[string][]rate.StyleRate{
		"style-1": {
			{ID: "rate-1", StyleID: "style-1", OrganizationID: testOrgID, Rate: mustDecimal(t, "2.00"), EffectiveDate: "2024-01-01"},
		},
	}
	svc := newTestService(entries, rates)

	resp, err := svc.SectionSummary(authContext(t, testOrgID), "section-1", "2023-12-01", "2023-12-31")
	require.NoError(t, err)

	assert.Equal(t, int64(25), resp.TotalQuantity)
	assert.True(t, resp.TotalPay.IsZero())
	require.Len(t, resp.StyleSummaries, 1)
	assert.Equal(t, int64(25), resp.StyleSummaries[0].Quantity)
	assert.True(t, resp.StyleSummaries[0].Pay.IsZero())
}

func TestStyleSummaryForSection_MatchesSectionRow(t *testing.T) {
	entries, rates := testFixture(t)
	svc := newTestService(entries, rates)
	ctx := authContext(t, testOrgID)

	full, err := svc.SectionSummary(ctx, "section-1", "2024-02-01", "2024-03-31")
	require.NoError(t, err)

	narrowed, err := svc.StyleSummaryForSection(ctx, "section-1", "style-1", "2024-02-01", "2024-03-31")
	require.NoError(t, err)

	var (
		found       bool
		rowQuantity int64
		rowPay      decimal.Decimal
	)
	for _, row := range full.StyleSummaries {
		if row.StyleID == "style-1" {
			found, rowQuantity, rowPay = true, row.Quantity, row.Pay
		}
	}
	require.True(t, found)
	assert.Equal(t, rowQuantity, narrowed.TotalQuantity)
	assert.True(t, rowPay.Equal(narrowed.TotalPay))
}

func TestSectionSummary_SectionNotFound(t *testing.T) {
	entries, rates := testFixture(t)
	svc := newTestService(entries, rates)

	_, err := svc.SectionSummary(authContext(t, testOrgID), "missing", "2024-02-01", "2024-03-31")
	assert.ErrorIs(t, err, section.ErrSectionNotFound)
}

func TestSectionSummary_InvertedRangeIsEmpty(t *testing.T) {
	entries, rates := testFixture(t)
	svc := newTestService(entries, rates)

	resp, err := svc.SectionSummary(authContext(t, testOrgID), "section-1", "2024-03-31", "2024-02-01")
	require.NoError(t, err)

	assert.Zero(t, resp.TotalQuantity)
	assert.True(t, resp.TotalPay.IsZero())
	assert.Empty(t, resp.StyleSummaries)
}

func TestOrganizationDailyProduction(t *testing.T) {
	entries, rates := testFixture(t)
	svc := newTestService(entries, rates)

	resp, err := svc.OrganizationDailyProduction(authContext(t, testOrgID), "2024-02-10")
	require.NoError(t, err)

	assert.Equal(t, "2024-02-10", resp.Date)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "entry-1", resp.Entries[0].ID)
}
