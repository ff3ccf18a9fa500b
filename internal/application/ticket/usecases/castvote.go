package usecases

import (
	"context"

	"github.com/quickdesk-io/quickdesk/internal/domain/ticket"
	vo "github.com/quickdesk-io/quickdesk/internal/domain/ticket/valueobjects"
	"github.com/quickdesk-io/quickdesk/internal/shared/authorization"
	"github.com/quickdesk-io/quickdesk/internal/shared/errors"
	"github.com/quickdesk-io/quickdesk/internal/shared/logger"
)

// TransactionRunner executes a function inside a database transaction. The
// context passed to fn carries the transaction for the repositories.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CastVoteCommand struct {
	TicketID      uint
	Value         string
	VoterID       uint
	RequesterRole authorization.UserRole
}

type CastVoteResult struct {
	TicketID  uint
	Value     string
	Upvotes   int
	Downvotes int
}

type CastVoteUseCase struct {
	ticketRepo ticket.TicketRepository
	voteRepo   ticket.VoteRepository
	txRunner   TransactionRunner
	logger     logger.Interface
}

func NewCastVoteUseCase(
	ticketRepo ticket.TicketRepository,
	voteRepo ticket.VoteRepository,
	txRunner TransactionRunner,
	logger logger.Interface,
) *CastVoteUseCase {
	return &CastVoteUseCase{
		ticketRepo: ticketRepo,
		voteRepo:   voteRepo,
		txRunner:   txRunner,
		logger:     logger,
	}
}

// Execute records or replaces the voter's vote. The vote row and the
// denormalized counters on the ticket change in one transaction, so the
// counter pair always reflects the distinct-voter distribution.
func (uc *CastVoteUseCase) Execute(ctx context.Context, cmd CastVoteCommand) (*CastVoteResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	value, err := vo.NewVoteValue(cmd.Value)
	if err != nil {
		return nil, errors.NewValidationError("vote must be up or down")
	}

	var result *CastVoteResult

	txErr := uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return errors.NewNotFoundError("ticket not found")
		}

		if !authorization.CanVoteTicket(cmd.VoterID, cmd.RequesterRole, t.CreatorID()) {
			return errors.NewForbiddenError("you cannot vote on this ticket")
		}

		existing, err := uc.voteRepo.GetByUserAndTicket(txCtx, cmd.VoterID, cmd.TicketID)
		if err != nil {
			return err
		}

		var previous *vo.VoteValue
		if existing != nil {
			prev := existing.Value
			previous = &prev
		}

		if err := t.ApplyVote(previous, value); err != nil {
			return errors.NewValidationError(err.Error())
		}

		if existing == nil {
			vote := &ticket.Vote{
				TicketID: cmd.TicketID,
				UserID:   cmd.VoterID,
				Value:    value,
			}
			if err := uc.voteRepo.Save(txCtx, vote); err != nil {
				return err
			}
		} else if existing.Value != value {
			existing.Value = value
			if err := uc.voteRepo.Update(txCtx, existing); err != nil {
				return err
			}
		}

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}

		result = &CastVoteResult{
			TicketID:  t.ID(),
			Value:     value.String(),
			Upvotes:   t.Upvotes(),
			Downvotes: t.Downvotes(),
		}
		return nil
	})

	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("vote recorded",
		"ticket_id", cmd.TicketID,
		"voter_id", cmd.VoterID,
		"value", result.Value)

	return result, nil
}
