package blocked

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Service управляет ручными блокировками филиалов
type Service struct {
	repo   BlockedTimeRepository
	logger Logger
}

func NewService(repo BlockedTimeRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Create блокирует интервал [From, To) филиала
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*BlockedTimeResponse, error) {
	if err := validateCreate(req); err != nil {
		s.logger.Warn("CreateBlockedTime: validation failed for branch=%d: %v", req.BranchID, err)
		return nil, err
	}

	from, to := req.From, req.To
	created, err := s.repo.Create(ctx, &domain.BlockedTime{
		BranchID: req.BranchID,
		From:     &from,
		To:       &to,
		Reason:   req.Reason,
	})
	if err != nil {
		s.logger.Error("CreateBlockedTime: repository error for branch=%d: %v", req.BranchID, err)
		return nil, fmt.Errorf("%w: CreateBlockedTime - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBlockedTime: branch=%d blocked from %s to %s, id=%d",
		req.BranchID, from.Format(time.RFC3339), to.Format(time.RFC3339), created.ID)
	resp := FromDomain(created)
	return &resp, nil
}

// List возвращает блокировки филиала, которые могут пересекать [from, to)
func (s *Service) List(ctx context.Context, branchID int64, from, to time.Time) ([]BlockedTimeResponse, error) {
	if branchID <= 0 || !to.After(from) {
		return nil, fmt.Errorf("%w: invalid period", ErrInvalidInput)
	}

	list, err := s.repo.ListByBranchAndPeriod(ctx, branchID, from, to)
	if err != nil {
		s.logger.Error("ListBlockedTimes: repository error for branch=%d: %v", branchID, err)
		return nil, fmt.Errorf("%w: ListBlockedTimes - repository error: %v", ErrInternal, err)
	}

	result := make([]BlockedTimeResponse, len(list))
	for i, b := range list {
		result[i] = FromDomain(b)
	}
	return result, nil
}

func validateCreate(req *CreateRequest) error {
	if req.BranchID <= 0 {
		return fmt.Errorf("%w: branch_id must be positive", ErrInvalidInput)
	}
	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}
	if !req.To.After(req.From) {
		return fmt.Errorf("%w: to must be after from", ErrInvalidInput)
	}
	if req.To.Sub(req.From) > MaxBlockDuration {
		return fmt.Errorf("%w: block is longer than %s", ErrInvalidInput, MaxBlockDuration)
	}
	if req.Reason != nil && utf8.RuneCountInString(*req.Reason) > domain.MaxNotesLength {
		return fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	return nil
}
