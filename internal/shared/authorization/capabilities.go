package authorization

// Capability names a single permitted action. Role permissions are modeled as
// a flat capability-set lookup per role rather than role hierarchies, so the
// overlap between roles stays in one table.
type Capability string

const (
	CapTicketCreate       Capability = "ticket.create"
	CapTicketViewOwn      Capability = "ticket.view.own"
	CapTicketViewAny      Capability = "ticket.view.any"
	CapTicketCommentOwn   Capability = "ticket.comment.own"
	CapTicketCommentAny   Capability = "ticket.comment.any"
	CapTicketVoteOwn      Capability = "ticket.vote.own"
	CapTicketVoteAny      Capability = "ticket.vote.any"
	CapTicketStatusUpdate Capability = "ticket.status.update"
	CapTicketAssign       Capability = "ticket.assign"
	CapTicketDelete       Capability = "ticket.delete"
	CapUserManage         Capability = "user.manage"
	CapCategoryManage     Capability = "category.manage"
)

var rolePermissions = map[UserRole]map[Capability]bool{
	RoleEndUser: {
		CapTicketCreate:     true,
		CapTicketViewOwn:    true,
		CapTicketCommentOwn: true,
		CapTicketVoteOwn:    true,
	},
	RoleAgent: {
		CapTicketCreate:       true,
		CapTicketViewOwn:      true,
		CapTicketViewAny:      true,
		CapTicketCommentOwn:   true,
		CapTicketCommentAny:   true,
		CapTicketVoteOwn:      true,
		CapTicketVoteAny:      true,
		CapTicketStatusUpdate: true,
		CapTicketAssign:       true,
	},
	RoleAdmin: {
		CapTicketCreate:       true,
		CapTicketViewOwn:      true,
		CapTicketViewAny:      true,
		CapTicketCommentOwn:   true,
		CapTicketCommentAny:   true,
		CapTicketVoteOwn:      true,
		CapTicketVoteAny:      true,
		CapTicketStatusUpdate: true,
		CapTicketAssign:       true,
		CapTicketDelete:       true,
		CapUserManage:         true,
		CapCategoryManage:     true,
	},
}

// HasCapability reports whether the role grants the capability.
func HasCapability(role UserRole, cap Capability) bool {
	perms, ok := rolePermissions[role]
	if !ok {
		return false
	}
	return perms[cap]
}

// CanViewTicket reports whether a user may read a ticket owned by ownerID.
func CanViewTicket(userID uint, role UserRole, ownerID uint) bool {
	if HasCapability(role, CapTicketViewAny) {
		return true
	}
	return HasCapability(role, CapTicketViewOwn) && userID == ownerID
}

// CanCommentTicket reports whether a user may comment on a ticket owned by ownerID.
func CanCommentTicket(userID uint, role UserRole, ownerID uint) bool {
	if HasCapability(role, CapTicketCommentAny) {
		return true
	}
	return HasCapability(role, CapTicketCommentOwn) && userID == ownerID
}

// CanVoteTicket reports whether a user may vote on a ticket owned by ownerID.
func CanVoteTicket(userID uint, role UserRole, ownerID uint) bool {
	if HasCapability(role, CapTicketVoteAny) {
		return true
	}
	return HasCapability(role, CapTicketVoteOwn) && userID == ownerID
}
