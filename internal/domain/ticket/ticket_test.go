package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/quickdesk-io/quickdesk/internal/domain/ticket/valueobjects"
	"github.com/quickdesk-io/quickdesk/internal/shared/authorization"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// newValidTicket creates a ticket with sensible defaults for testing.
func newValidTicket(t *testing.T) *Ticket {
	t.Helper()
	tk, err := NewTicket("Test ticket", "Detailed description", 1, vo.PriorityMedium, 1)
	require.NoError(t, err)
	return tk
}

// reconstructedTicket builds a persisted-style ticket via ReconstructTicket.
func reconstructedTicket(t *testing.T, status vo.TicketStatus) *Ticket {
	t.Helper()
	now := time.Now().UTC()
	tk, err := ReconstructTicket(
		1,
		"Persisted ticket", "desc",
		2, vo.PriorityHigh,
		status,
		10,  // creatorID
		nil, // assigneeID
		0, 0,
		now, now,
	)
	require.NoError(t, err)
	return tk
}

func voteValuePtr(v vo.VoteValue) *vo.VoteValue {
	return &v
}

// ---------------------------------------------------------------------------
// Constructor Tests
// ---------------------------------------------------------------------------

func TestNewTicket_ValidInput(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		desc    string
		cat     uint
		pri     vo.Priority
		creator uint
	}{
		{
			name:    "all valid fields - low priority",
			subject: "Login page broken", desc: "Cannot log in after update",
			cat: 1, pri: vo.PriorityLow, creator: 1,
		},
		{
			name:    "all valid fields - urgent priority",
			subject: "Overcharged", desc: "Billed twice this month",
			cat: 2, pri: vo.PriorityUrgent, creator: 42,
		},
		{
			name:    "boundary subject length 200",
			subject: strings.Repeat("a", 200), desc: "desc",
			cat: 3, pri: vo.PriorityMedium, creator: 5,
		},
		{
			name:    "boundary description length 5000",
			subject: "subject", desc: strings.Repeat("b", 5000),
			cat: 1, pri: vo.PriorityHigh, creator: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, err := NewTicket(tt.subject, tt.desc, tt.cat, tt.pri, tt.creator)
			require.NoError(t, err)
			assert.Equal(t, tt.subject, tk.Subject())
			assert.Equal(t, tt.desc, tk.Description())
			assert.Equal(t, tt.cat, tk.CategoryID())
			assert.Equal(t, tt.pri, tk.Priority())
			assert.Equal(t, tt.creator, tk.CreatorID())
			assert.Equal(t, vo.StatusOpen, tk.Status())
			assert.Nil(t, tk.AssigneeID())
			assert.Zero(t, tk.Upvotes())
			assert.Zero(t, tk.Downvotes())
			assert.False(t, tk.CreatedAt().IsZero())
		})
	}
}

func TestNewTicket_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		desc    string
		cat     uint
		pri     vo.Priority
		creator uint
		errMsg  string
	}{
		{"empty subject", "", "desc", 1, vo.PriorityLow, 1, "subject is required"},
		{"subject too long", strings.Repeat("a", 201), "desc", 1, vo.PriorityLow, 1, "maximum length"},
		{"empty description", "subject", "", 1, vo.PriorityLow, 1, "description is required"},
		{"description too long", "subject", strings.Repeat("b", 5001), 1, vo.PriorityLow, 1, "maximum length"},
		{"zero category", "subject", "desc", 0, vo.PriorityLow, 1, "category ID is required"},
		{"invalid priority", "subject", "desc", 1, vo.Priority("critical"), 1, "invalid priority"},
		{"zero creator", "subject", "desc", 1, vo.PriorityLow, 0, "creator ID is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, err := NewTicket(tt.subject, tt.desc, tt.cat, tt.pri, tt.creator)
			require.Error(t, err)
			assert.Nil(t, tk)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestReconstructTicket_InvalidInput(t *testing.T) {
	now := time.Now().UTC()

	_, err := ReconstructTicket(0, "s", "d", 1, vo.PriorityLow, vo.StatusOpen, 1, nil, 0, 0, now, now)
	assert.ErrorContains(t, err, "ID cannot be zero")

	_, err = ReconstructTicket(1, "s", "d", 1, vo.PriorityLow, vo.StatusOpen, 1, nil, -1, 0, now, now)
	assert.ErrorContains(t, err, "cannot be negative")

	_, err = ReconstructTicket(1, "s", "d", 1, vo.PriorityLow, vo.TicketStatus("pending"), 1, nil, 0, 0, now, now)
	assert.ErrorContains(t, err, "invalid status")
}

// ---------------------------------------------------------------------------
// Status Transition Tests
// ---------------------------------------------------------------------------

func TestChangeStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    vo.TicketStatus
		to      vo.TicketStatus
		wantErr bool
	}{
		{"open to in_progress", vo.StatusOpen, vo.StatusInProgress, false},
		{"open to resolved", vo.StatusOpen, vo.StatusResolved, false},
		{"open to closed", vo.StatusOpen, vo.StatusClosed, false},
		{"in_progress to resolved", vo.StatusInProgress, vo.StatusResolved, false},
		{"in_progress to closed", vo.StatusInProgress, vo.StatusClosed, false},
		{"resolved to closed", vo.StatusResolved, vo.StatusClosed, false},
		{"in_progress back to open", vo.StatusInProgress, vo.StatusOpen, true},
		{"resolved back to in_progress", vo.StatusResolved, vo.StatusInProgress, true},
		{"resolved back to open", vo.StatusResolved, vo.StatusOpen, true},
		{"closed to open", vo.StatusClosed, vo.StatusOpen, true},
		{"closed to in_progress", vo.StatusClosed, vo.StatusInProgress, true},
		{"closed to resolved", vo.StatusClosed, vo.StatusResolved, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := reconstructedTicket(t, tt.from)
			err := tk.ChangeStatus(tt.to, 99)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "cannot transition")
				assert.Equal(t, tt.from, tk.Status())
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.to, tk.Status())
			}
		})
	}
}

func TestChangeStatus_SameStatusIsNoop(t *testing.T) {
	tk := reconstructedTicket(t, vo.StatusInProgress)
	before := tk.UpdatedAt()

	err := tk.ChangeStatus(vo.StatusInProgress, 99)

	require.NoError(t, err)
	assert.Equal(t, vo.StatusInProgress, tk.Status())
	assert.Equal(t, before, tk.UpdatedAt())
}

func TestChangeStatus_InvalidStatus(t *testing.T) {
	tk := newValidTicket(t)
	err := tk.ChangeStatus(vo.TicketStatus("archived"), 99)
	assert.ErrorContains(t, err, "invalid status")
}

// ---------------------------------------------------------------------------
// Assignment Tests
// ---------------------------------------------------------------------------

func TestAssignTo(t *testing.T) {
	tk := reconstructedTicket(t, vo.StatusOpen)

	require.NoError(t, tk.AssignTo(7, 99))
	require.NotNil(t, tk.AssigneeID())
	assert.Equal(t, uint(7), *tk.AssigneeID())

	// reassignment is allowed until the ticket closes
	require.NoError(t, tk.AssignTo(8, 99))
	assert.Equal(t, uint(8), *tk.AssigneeID())
}

func TestAssignTo_Invalid(t *testing.T) {
	tk := reconstructedTicket(t, vo.StatusOpen)
	assert.ErrorContains(t, tk.AssignTo(0, 99), "cannot be zero")

	closed := reconstructedTicket(t, vo.StatusClosed)
	assert.ErrorContains(t, closed.AssignTo(7, 99), "closed")
}

// ---------------------------------------------------------------------------
// Vote Counter Tests
// ---------------------------------------------------------------------------

func TestApplyVote(t *testing.T) {
	tests := []struct {
		name          string
		upvotes       int
		downvotes     int
		previous      *vo.VoteValue
		next          vo.VoteValue
		wantUpvotes   int
		wantDownvotes int
		wantErr       bool
	}{
		{"first upvote", 0, 0, nil, vo.VoteUp, 1, 0, false},
		{"first downvote", 0, 0, nil, vo.VoteDown, 0, 1, false},
		{"toggle up to down", 3, 1, voteValuePtr(vo.VoteUp), vo.VoteDown, 2, 2, false},
		{"toggle down to up", 3, 1, voteValuePtr(vo.VoteDown), vo.VoteUp, 4, 0, false},
		{"repeat same vote is noop", 3, 1, voteValuePtr(vo.VoteUp), vo.VoteUp, 3, 1, false},
		{"upvote underflow", 0, 1, voteValuePtr(vo.VoteUp), vo.VoteDown, 0, 1, true},
		{"invalid value", 0, 0, nil, vo.VoteValue("sideways"), 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Now().UTC()
			tk, err := ReconstructTicket(1, "s", "d", 1, vo.PriorityLow, vo.StatusOpen, 1, nil, tt.upvotes, tt.downvotes, now, now)
			require.NoError(t, err)

			err = tk.ApplyVote(tt.previous, tt.next)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantUpvotes, tk.Upvotes())
			assert.Equal(t, tt.wantDownvotes, tk.Downvotes())
		})
	}
}

// ---------------------------------------------------------------------------
// Visibility Tests
// ---------------------------------------------------------------------------

func TestCanBeViewedBy(t *testing.T) {
	tk := reconstructedTicket(t, vo.StatusOpen) // creator 10
	require.NoError(t, tk.AssignTo(20, 99))

	assert.True(t, tk.CanBeViewedBy(10, authorization.RoleEndUser), "creator can view own ticket")
	assert.True(t, tk.CanBeViewedBy(20, authorization.RoleEndUser), "assignee can view")
	assert.True(t, tk.CanBeViewedBy(30, authorization.RoleAgent), "agent can view any")
	assert.True(t, tk.CanBeViewedBy(30, authorization.RoleAdmin), "admin can view any")
	assert.False(t, tk.CanBeViewedBy(30, authorization.RoleEndUser), "unrelated end user cannot view")
}

// ---------------------------------------------------------------------------
// Comment and Attachment Tests
// ---------------------------------------------------------------------------

func TestAddComment(t *testing.T) {
	tk := reconstructedTicket(t, vo.StatusOpen)

	c, err := NewComment(tk.ID(), 5, "looking into this")
	require.NoError(t, err)
	require.NoError(t, tk.AddComment(c))
	assert.Len(t, tk.Comments(), 1)

	other, err := NewComment(tk.ID()+1, 5, "wrong ticket")
	require.NoError(t, err)
	assert.ErrorContains(t, tk.AddComment(other), "mismatch")
	assert.ErrorContains(t, tk.AddComment(nil), "nil")
}

func TestSetID(t *testing.T) {
	tk := newValidTicket(t)

	require.NoError(t, tk.SetID(42))
	assert.Equal(t, uint(42), tk.ID())
	assert.ErrorContains(t, tk.SetID(43), "already set")
}
