package master

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/section"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/worker"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/pkg/validator"
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

type fakeWorkerRepo struct {
	workers   map[string]worker.Worker
	manualIDs map[string]bool
	created   []worker.Worker
}

func (f *fakeWorkerRepo) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	w.ID = "worker-new"
	f.created = append(f.created, w)
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
	return f.manualIDs[organizationID+"/"+manualID], nil
}

func (f *fakeWorkerRepo) Update(ctx context.Context, id string, organizationID string, name string, sectionID string) error {
	return nil
}

func (f *fakeWorkerRepo) Delete(ctx context.Context, id string, organizationID string) error {
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

func newWorkerService(taken ...string) (worker.WorkerService, *fakeWorkerRepo) {
	manualIDs := make(map[string]bool)
	for _, id := range taken {
		manualIDs[testOrgID+"/"+id] = true
	}
	repo := &fakeWorkerRepo{
		workers:   map[string]worker.Worker{},
		manualIDs: manualIDs,
	}
	sections := &fakeSectionRepo{sections: map[string]section.Section{
		"section-1": {ID: "section-1", Name: "Sewing", OrganizationID: testOrgID, ManagerID: "user-1"},
	}}
	return NewWorkerService(repo, sections), repo
}

func TestCreateWorker_WithManualID(t *testing.T) {
	svc, repo := newWorkerService()
	manualID := "W-042"

	resp, err := svc.Create(authContext(t, testOrgID), worker.CreateWorkerRequest{
		Name:      "Amina",
		SectionID: "section-1",
		ManualID:  &manualID,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.ManualID)
	assert.Equal(t, "W-042", *resp.ManualID)
	require.Len(t, repo.created, 1)
	assert.Equal(t, testOrgID, repo.created[0].OrganizationID)
}

func TestCreateWorker_DuplicateManualID(t *testing.T) {
	svc, repo := newWorkerService("W-042")
	manualID := "W-042"

	_, err := svc.Create(authContext(t, testOrgID), worker.CreateWorkerRequest{
		Name:      "Rahim",
		SectionID: "section-1",
		ManualID:  &manualID,
	})
	assert.ErrorIs(t, err, worker.ErrManualIDExists)
	assert.Empty(t, repo.created)
}

func TestCreateWorker_SameManualIDDifferentOrganization(t *testing.T) {
	// Uniqueness is per organization, so another org reusing the badge
	// number is fine.
	svc, _ := newWorkerService("W-042")
	manualID := "W-042"

	sections := svc.(*WorkerServiceImpl).sectionRepo.(*fakeSectionRepo)
	sections.sections["section-2"] = section.Section{ID: "section-2", Name: "Cutting", OrganizationID: "org-2", ManagerID: "user-2"}

	_, err := svc.Create(authContext(t, "org-2"), worker.CreateWorkerRequest{
		Name:      "Amina",
		SectionID: "section-2",
		ManualID:  &manualID,
	})
	require.NoError(t, err)
}

func TestCreateWorker_InvalidManualID(t *testing.T) {
	svc, _ := newWorkerService()
	manualID := "has spaces!"

	_, err := svc.Create(authContext(t, testOrgID), worker.CreateWorkerRequest{
		Name:      "Amina",
		SectionID: "section-1",
		ManualID:  &manualID,
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "manual_id", verrs[0].Field)
}

func TestCreateWorker_UnknownSection(t *testing.T) {
	svc, _ := newWorkerService()

	_, err := svc.Create(authContext(t, testOrgID), worker.CreateWorkerRequest{
		Name:      "Amina",
		SectionID: "missing",
	})
	assert.ErrorIs(t, err, worker.ErrSectionNotFound)
}
