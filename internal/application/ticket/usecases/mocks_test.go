package usecases

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/quickdesk-io/quickdesk/internal/domain/category"
	"github.com/quickdesk-io/quickdesk/internal/domain/shared/events"
	"github.com/quickdesk-io/quickdesk/internal/domain/ticket"
	vo "github.com/quickdesk-io/quickdesk/internal/domain/ticket/valueobjects"
	"github.com/quickdesk-io/quickdesk/internal/domain/user"
	uservo "github.com/quickdesk-io/quickdesk/internal/domain/user/valueobjects"
	"github.com/quickdesk-io/quickdesk/internal/shared/authorization"
	"github.com/quickdesk-io/quickdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc            func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc          func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc          func(ctx context.Context, ticketID uint) error
	GetByIDFunc         func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListFunc            func(ctx context.Context, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	CountByStatusFunc   func(ctx context.Context, creatorID *uint) (map[vo.TicketStatus]int64, error)
	CountByCategoryFunc func(ctx context.Context, categoryID uint) (int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filters)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) CountByStatus(ctx context.Context, creatorID *uint) (map[vo.TicketStatus]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, creatorID)
	}
	return nil, nil
}

func (m *mockTicketRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	if m.CountByCategoryFunc != nil {
		return m.CountByCategoryFunc(ctx, categoryID)
	}
	return 0, nil
}

type mockCommentRepository struct {
	SaveFunc          func(ctx context.Context, comment *ticket.Comment) error
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, comment *ticket.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockAttachmentRepository struct {
	SaveFunc            func(ctx context.Context, attachment *ticket.Attachment) error
	GetByIDFunc         func(ctx context.Context, attachmentID uint) (*ticket.Attachment, error)
	GetByTicketIDFunc   func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error)
	GetByStoredNameFunc func(ctx context.Context, storedName string) (*ticket.Attachment, error)
	DeleteFunc          func(ctx context.Context, attachmentID uint) error
}

func (m *mockAttachmentRepository) Save(ctx context.Context, attachment *ticket.Attachment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, attachment)
	}
	return nil
}

func (m *mockAttachmentRepository) GetByID(ctx context.Context, attachmentID uint) (*ticket.Attachment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, attachmentID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) GetByStoredName(ctx context.Context, storedName string) (*ticket.Attachment, error) {
	if m.GetByStoredNameFunc != nil {
		return m.GetByStoredNameFunc(ctx, storedName)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) Delete(ctx context.Context, attachmentID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, attachmentID)
	}
	return nil
}

type mockVoteRepository struct {
	SaveFunc               func(ctx context.Context, vote *ticket.Vote) error
	UpdateFunc             func(ctx context.Context, vote *ticket.Vote) error
	GetByUserAndTicketFunc func(ctx context.Context, userID, ticketID uint) (*ticket.Vote, error)
	DeleteByTicketIDFunc   func(ctx context.Context, ticketID uint) error
}

func (m *mockVoteRepository) Save(ctx context.Context, vote *ticket.Vote) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, vote)
	}
	return nil
}

func (m *mockVoteRepository) Update(ctx context.Context, vote *ticket.Vote) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, vote)
	}
	return nil
}

func (m *mockVoteRepository) GetByUserAndTicket(ctx context.Context, userID, ticketID uint) (*ticket.Vote, error) {
	if m.GetByUserAndTicketFunc != nil {
		return m.GetByUserAndTicketFunc(ctx, userID, ticketID)
	}
	return nil, nil
}

func (m *mockVoteRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	if m.DeleteByTicketIDFunc != nil {
		return m.DeleteByTicketIDFunc(ctx, ticketID)
	}
	return nil
}

type mockCategoryRepository struct {
	SaveFunc      func(ctx context.Context, c *category.Category) error
	UpdateFunc    func(ctx context.Context, c *category.Category) error
	DeleteFunc    func(ctx context.Context, categoryID uint) error
	GetByIDFunc   func(ctx context.Context, categoryID uint) (*category.Category, error)
	GetByNameFunc func(ctx context.Context, name string) (*category.Category, error)
	ListFunc      func(ctx context.Context) ([]*category.Category, error)
}

func (m *mockCategoryRepository) Save(ctx context.Context, c *category.Category) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCategoryRepository) Update(ctx context.Context, c *category.Category) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCategoryRepository) Delete(ctx context.Context, categoryID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, categoryID)
	}
	return nil
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, categoryID uint) (*category.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, categoryID)
	}
	return nil, nil
}

func (m *mockCategoryRepository) GetByName(ctx context.Context, name string) (*category.Category, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]*category.Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockUserRepository struct {
	SaveFunc          func(ctx context.Context, u *user.User) error
	UpdateFunc        func(ctx context.Context, u *user.User) error
	DeleteFunc        func(ctx context.Context, userID uint) error
	GetByIDFunc       func(ctx context.Context, userID uint) (*user.User, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*user.User, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
	ListFunc          func(ctx context.Context, filters user.UserFilter) ([]*user.User, int64, error)
	ListByRoleFunc    func(ctx context.Context, role authorization.UserRole) ([]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, userID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) List(ctx context.Context, filters user.UserFilter) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filters)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) ListByRole(ctx context.Context, role authorization.UserRole) ([]*user.User, error) {
	if m.ListByRoleFunc != nil {
		return m.ListByRoleFunc(ctx, role)
	}
	return nil, nil
}

type mockEventDispatcher struct {
	PublishFunc    func(event events.DomainEvent) error
	PublishAllFunc func(evts []events.DomainEvent) error
}

func (m *mockEventDispatcher) Publish(event events.DomainEvent) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(event)
	}
	return nil
}

func (m *mockEventDispatcher) PublishAll(evts []events.DomainEvent) error {
	if m.PublishAllFunc != nil {
		return m.PublishAllFunc(evts)
	}
	return nil
}

// mockTxRunner executes the callback directly without a real transaction.
type mockTxRunner struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockFileStore struct {
	SaveFunc   func(r io.Reader, originalName string) (string, int64, error)
	PathFunc   func(storedName string) (string, error)
	RemoveFunc func(storedName string) error
	removed    []string
}

func (m *mockFileStore) Save(r io.Reader, originalName string) (string, int64, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(r, originalName)
	}
	return "stored.bin", 1, nil
}

func (m *mockFileStore) Path(storedName string) (string, error) {
	if m.PathFunc != nil {
		return m.PathFunc(storedName)
	}
	return storedName, nil
}

func (m *mockFileStore) Remove(storedName string) error {
	m.removed = append(m.removed, storedName)
	if m.RemoveFunc != nil {
		return m.RemoveFunc(storedName)
	}
	return nil
}

// mockRenderer wraps the input so tests can assert pass-through.
type mockRenderer struct {
	RenderFunc func(markdown string) (string, error)
}

func (m *mockRenderer) Render(markdown string) (string, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(markdown)
	}
	return "<p>" + markdown + "</p>", nil
}

func newTestLogger() logger.Interface {
	return logger.NewLogger()
}

func testTime() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func newTestTicket(t *testing.T, id uint, status vo.TicketStatus, creatorID uint) *ticket.Ticket {
	t.Helper()

	tkt, err := ticket.ReconstructTicket(
		id,
		"Printer on floor 3 is jammed",
		"Paper jam every time I print double-sided.",
		3,
		vo.PriorityMedium,
		status,
		creatorID,
		nil,
		0,
		0,
		testTime(),
		testTime(),
	)
	if err != nil {
		t.Fatalf("failed to build test ticket: %v", err)
	}
	return tkt
}

func newTestUser(t *testing.T, id uint, role authorization.UserRole, active bool) *user.User {
	t.Helper()

	email, err := uservo.NewEmail(fmt.Sprintf("user%d@example.com", id))
	if err != nil {
		t.Fatalf("failed to build test email: %v", err)
	}
	u, err := user.ReconstructUser(id, email, "Test User", role, "$2a$10$hash", active, testTime(), testTime())
	if err != nil {
		t.Fatalf("failed to build test user: %v", err)
	}
	return u
}
