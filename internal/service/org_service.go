package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"turnusplan/backend/internal/dto"
	"turnusplan/backend/internal/model"
	"turnusplan/backend/internal/repository"
)

// ── org module errors ──

var (
	ErrMunicipalityNotFound = errors.New("municipality not found")
	ErrDepartmentNotFound   = errors.New("department not found")
)

// OrgService manages municipalities and departments.
type OrgService interface {
	CreateMunicipality(ctx context.Context, req *dto.CreateMunicipalityRequest) (*dto.CreatedResponse, error)
	ListMunicipalities(ctx context.Context) ([]dto.MunicipalityResponse, error)
	// CreateDepartment stores a department; the referenced municipality must exist.
	CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.CreatedResponse, error)
	ListDepartments(ctx context.Context, req *dto.DepartmentListRequest) ([]dto.DepartmentResponse, error)
}

type orgService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewOrgService creates the OrgService.
func NewOrgService(repo *repository.Repository, logger *zap.Logger) OrgService {
	return &orgService{repo: repo, logger: logger}
}

func (s *orgService) CreateMunicipality(ctx context.Context, req *dto.CreateMunicipalityRequest) (*dto.CreatedResponse, error) {
	m := &model.Municipality{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Municipality.Create(ctx, m); err != nil {
		s.logger.Error("create municipality failed", zap.Error(err))
		return nil, err
	}
	return &dto.CreatedResponse{ID: m.MunicipalityID}, nil
}

func (s *orgService) ListMunicipalities(ctx context.Context) ([]dto.MunicipalityResponse, error) {
	ms, err := s.repo.Municipality.List(ctx)
	if err != nil {
		s.logger.Error("list municipalities failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.MunicipalityResponse, 0, len(ms))
	for i := range ms {
		result = append(result, dto.MunicipalityResponse{
			ID:          ms[i].MunicipalityID,
			Name:        ms[i].Name,
			Description: ms[i].Description,
		})
	}
	return result, nil
}

func (s *orgService) CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.CreatedResponse, error) {
	if _, err := s.repo.Municipality.GetByID(ctx, req.MunicipalityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMunicipalityNotFound
		}
		s.logger.Error("load municipality failed", zap.Error(err))
		return nil, err
	}

	dept := &model.Department{
		MunicipalityID: req.MunicipalityID,
		Name:           req.Name,
		Settings:       model.JSONMap{},
	}
	if err := s.repo.Department.Create(ctx, dept); err != nil {
		s.logger.Error("create department failed", zap.Error(err))
		return nil, err
	}
	return &dto.CreatedResponse{ID: dept.DepartmentID}, nil
}

func (s *orgService) ListDepartments(ctx context.Context, req *dto.DepartmentListRequest) ([]dto.DepartmentResponse, error) {
	depts, err := s.repo.Department.List(ctx, req.MunicipalityID)
	if err != nil {
		s.logger.Error("list departments failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.DepartmentResponse, 0, len(depts))
	for i := range depts {
		result = append(result, dto.DepartmentResponse{
			ID:             depts[i].DepartmentID,
			MunicipalityID: depts[i].MunicipalityID,
			Name:           depts[i].Name,
		})
	}
	return result, nil
}
