package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"turnusplan/backend/internal/dto"
)

func setupOrgService() (OrgService, *mockRepos) {
	repo, mocks := newMockRepository()
	return NewOrgService(repo, zap.NewNop()), mocks
}

func TestCreateMunicipality_Success(t *testing.T) {
	svc, mocks := setupOrgService()

	result, err := svc.CreateMunicipality(context.Background(), &dto.CreateMunicipalityRequest{
		Name:        "Trondheim",
		Description: "Trondheim kommune",
	})

	if err != nil {
		t.Fatalf("CreateMunicipality should succeed: %v", err)
	}
	if result.ID == "" {
		t.Error("municipality id should not be empty")
	}
	if _, err := mocks.municipality.GetByID(context.Background(), result.ID); err != nil {
		t.Errorf("municipality not persisted: %v", err)
	}
}

func TestListMunicipalities(t *testing.T) {
	svc, _ := setupOrgService()

	if _, err := svc.CreateMunicipality(context.Background(), &dto.CreateMunicipalityRequest{Name: "Oslo"}); err != nil {
		t.Fatalf("CreateMunicipality failed: %v", err)
	}
	if _, err := svc.CreateMunicipality(context.Background(), &dto.CreateMunicipalityRequest{Name: "Bergen"}); err != nil {
		t.Fatalf("CreateMunicipality failed: %v", err)
	}

	result, err := svc.ListMunicipalities(context.Background())
	if err != nil {
		t.Fatalf("ListMunicipalities should succeed: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("expected 2 municipalities, got %d", len(result))
	}
	if result[0].Name != "Oslo" || result[1].Name != "Bergen" {
		t.Errorf("unexpected order: %s, %s", result[0].Name, result[1].Name)
	}
}

func TestCreateDepartment_Success(t *testing.T) {
	svc, _ := setupOrgService()

	mun, err := svc.CreateMunicipality(context.Background(), &dto.CreateMunicipalityRequest{Name: "Oslo"})
	if err != nil {
		t.Fatalf("CreateMunicipality failed: %v", err)
	}

	result, err := svc.CreateDepartment(context.Background(), &dto.CreateDepartmentRequest{
		MunicipalityID: mun.ID,
		Name:           "Kirurgisk avdeling",
	})

	if err != nil {
		t.Fatalf("CreateDepartment should succeed: %v", err)
	}
	if result.ID == "" {
		t.Error("department id should not be empty")
	}
}

func TestCreateDepartment_MunicipalityNotFound(t *testing.T) {
	svc, _ := setupOrgService()

	_, err := svc.CreateDepartment(context.Background(), &dto.CreateDepartmentRequest{
		MunicipalityID: "missing",
		Name:           "Kirurgisk avdeling",
	})

	if !errors.Is(err, ErrMunicipalityNotFound) {
		t.Errorf("expected ErrMunicipalityNotFound, got: %v", err)
	}
}

func TestListDepartments_FilterByMunicipality(t *testing.T) {
	svc, _ := setupOrgService()

	oslo, _ := svc.CreateMunicipality(context.Background(), &dto.CreateMunicipalityRequest{Name: "Oslo"})
	bergen, _ := svc.CreateMunicipality(context.Background(), &dto.CreateMunicipalityRequest{Name: "Bergen"})

	for _, d := range []dto.CreateDepartmentRequest{
		{MunicipalityID: oslo.ID, Name: "Kirurgisk"},
		{MunicipalityID: oslo.ID, Name: "Medisinsk"},
		{MunicipalityID: bergen.ID, Name: "Akutt"},
	} {
		if _, err := svc.CreateDepartment(context.Background(), &d); err != nil {
			t.Fatalf("CreateDepartment failed: %v", err)
		}
	}

	all, err := svc.ListDepartments(context.Background(), &dto.DepartmentListRequest{})
	if err != nil {
		t.Fatalf("ListDepartments should succeed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 departments unfiltered, got %d", len(all))
	}

	filtered, err := svc.ListDepartments(context.Background(), &dto.DepartmentListRequest{MunicipalityID: oslo.ID})
	if err != nil {
		t.Fatalf("ListDepartments should succeed: %v", err)
	}
	if len(filtered) != 2 {
		t.Errorf("expected 2 departments for Oslo, got %d", len(filtered))
	}
	for _, d := range filtered {
		if d.MunicipalityID != oslo.ID {
			t.Errorf("department %s has wrong municipality %s", d.Name, d.MunicipalityID)
		}
	}
}
