package usecases

import (
	"context"

	"github.com/quickdesk-io/quickdesk/internal/domain/ticket"
	vo "github.com/quickdesk-io/quickdesk/internal/domain/ticket/valueobjects"
	"github.com/quickdesk-io/quickdesk/internal/shared/authorization"
	"github.com/quickdesk-io/quickdesk/internal/shared/logger"
)

type GetDashboardQuery struct {
	RequesterID   uint
	RequesterRole authorization.UserRole
}

// GetDashboardResult summarizes the ticket workload. End users see counts
// for their own tickets; agents and admins see the whole queue.
type GetDashboardResult struct {
	Open       int64 `json:"open"`
	InProgress int64 `json:"in_progress"`
	Resolved   int64 `json:"resolved"`
	Closed     int64 `json:"closed"`
	Total      int64 `json:"total"`
}

type GetDashboardUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetDashboardUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context, query GetDashboardQuery) (*GetDashboardResult, error) {
	var creatorID *uint
	if !query.RequesterRole.IsStaff() {
		id := query.RequesterID
		creatorID = &id
	}

	counts, err := uc.ticketRepo.CountByStatus(ctx, creatorID)
	if err != nil {
		uc.logger.Errorw("failed to load dashboard counts", "error", err)
		return nil, err
	}

	result := &GetDashboardResult{
		Open:       counts[vo.StatusOpen],
		InProgress: counts[vo.StatusInProgress],
		Resolved:   counts[vo.StatusResolved],
		Closed:     counts[vo.StatusClosed],
	}
	result.Total = result.Open + result.InProgress + result.Resolved + result.Closed

	return result, nil
}
