package valueobjects

import "fmt"

// VoteValue is the direction of a single user's vote on a ticket.
type VoteValue string

const (
	VoteUp   VoteValue = "up"
	VoteDown VoteValue = "down"
)

func (v VoteValue) String() string {
	return string(v)
}

func (v VoteValue) IsValid() bool {
	return v == VoteUp || v == VoteDown
}

func NewVoteValue(s string) (VoteValue, error) {
	v := VoteValue(s)
	if !v.IsValid() {
		return "", fmt.Errorf("invalid vote value: %s", s)
	}
	return v, nil
}
