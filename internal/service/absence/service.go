package absence

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/madrasahq/school-hr-backend/internal/domain/absence"
	"github.com/madrasahq/school-hr-backend/internal/domain/employee"
	reportsvc "github.com/madrasahq/school-hr-backend/internal/service/report"
)

type AbsenceServiceImpl struct {
	absenceRepo  absence.Repository
	employeeRepo employee.Repository
}

func NewAbsenceService(absenceRepo absence.Repository, employeeRepo employee.Repository) absence.Service {
	return &AbsenceServiceImpl{
		absenceRepo:  absenceRepo,
		employeeRepo: employeeRepo,
	}
}

// getUserID extracts user_id from JWT claims
func (s *AbsenceServiceImpl) getUserID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id not found in claims")
	}
	return userID, nil
}

func (s *AbsenceServiceImpl) Register(ctx context.Context, req absence.CreateRecordRequest) (absence.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return absence.RecordResponse{}, err
	}

	userID, err := s.getUserID(ctx)
	if err != nil {
		return absence.RecordResponse{}, err
	}

	rec := req.ToRecord()

	// Inverted spans are rejected here so they never reach storage and
	// never show up in a report snapshot.
	if rec.EndDate != nil && rec.EndDate.Before(rec.StartDate) {
		return absence.RecordResponse{}, absence.ErrInvalidRecord
	}

	if _, err := s.employeeRepo.GetByID(ctx, rec.EmployeeID, userID); err != nil {
		return absence.RecordResponse{}, absence.ErrEmployeeNotFound
	}

	rec.ID = uuid.New().String()
	rec.UserID = userID

	created, err := s.absenceRepo.Create(ctx, rec)
	if err != nil {
		return absence.RecordResponse{}, err
	}
	return absence.ToRecordResponse(created), nil
}

func (s *AbsenceServiceImpl) Update(ctx context.Context, id string, req absence.UpdateRecordRequest) (absence.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return absence.RecordResponse{}, err
	}

	userID, err := s.getUserID(ctx)
	if err != nil {
		return absence.RecordResponse{}, err
	}

	existing, err := s.absenceRepo.GetByID(ctx, id, userID)
	if err != nil {
		return absence.RecordResponse{}, err
	}

	rec := req.ToRecord()
	if rec.EndDate != nil && rec.EndDate.Before(rec.StartDate) {
		return absence.RecordResponse{}, absence.ErrInvalidRecord
	}

	if rec.EmployeeID != existing.EmployeeID {
		if _, err := s.employeeRepo.GetByID(ctx, rec.EmployeeID, userID); err != nil {
			return absence.RecordResponse{}, absence.ErrEmployeeNotFound
		}
	}

	rec.ID = existing.ID
	rec.UserID = userID
	rec.CreatedAt = existing.CreatedAt

	updated, err := s.absenceRepo.Update(ctx, rec)
	if err != nil {
		return absence.RecordResponse{}, err
	}
	return absence.ToRecordResponse(updated), nil
}

func (s *AbsenceServiceImpl) Delete(ctx context.Context, id string) error {
	userID, err := s.getUserID(ctx)
	if err != nil {
		return err
	}
	return s.absenceRepo.Delete(ctx, id, userID)
}

func (s *AbsenceServiceImpl) List(ctx context.Context) ([]absence.RecordResponse, error) {
	userID, err := s.getUserID(ctx)
	if err != nil {
		return nil, err
	}

	recs, err := s.absenceRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	return absence.ToRecordResponses(recs), nil
}

func (s *AbsenceServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]absence.RecordResponse, error) {
	userID, err := s.getUserID(ctx)
	if err != nil {
		return nil, err
	}

	recs, err := s.absenceRepo.ListByEmployee(ctx, employeeID, userID)
	if err != nil {
		return nil, err
	}
	return absence.ToRecordResponses(recs), nil
}

func (s *AbsenceServiceImpl) EmployeeStats(ctx context.Context, employeeID string) (absence.EmployeeStatsResponse, error) {
	userID, err := s.getUserID(ctx)
	if err != nil {
		return absence.EmployeeStatsResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID, userID); err != nil {
		return absence.EmployeeStatsResponse{}, absence.ErrEmployeeNotFound
	}

	recs, err := s.absenceRepo.ListByEmployee(ctx, employeeID, userID)
	if err != nil {
		return absence.EmployeeStatsResponse{}, err
	}

	return absence.EmployeeStatsResponse{
		EmployeeID:  employeeID,
		AbsenceDays: reportsvc.TotalDaysForEmployee(recs, employeeID, absence.KindAbsence),
		LeaveDays:   reportsvc.TotalDaysForEmployee(recs, employeeID, absence.KindLeave),
	}, nil
}
