package domain

import "errors"

// MemberStatus marks whether a portal member may still sign in.
type MemberStatus string

const (
	MemberActive   MemberStatus = "active"
	MemberInactive MemberStatus = "inactive"
)

var ErrMemberNotFound = errors.New("member not found")
var ErrMemberExists = errors.New("member already exists")

// Member is a row in the admin user-management screen. Distinct from Account:
// members are display/management records, accounts can authenticate.
type Member struct {
	ID     string       `json:"id"`
	Email  string       `json:"email"`
	Name   string       `json:"name"`
	Role   Role         `json:"role"`
	Status MemberStatus `json:"status"`
}
