package domain

import "time"

// MemberStatus is the membership state of a congregation member.
type MemberStatus string

const (
	MemberActive   MemberStatus = "active"
	MemberInactive MemberStatus = "inactive"
)

// Member is a congregation member record, scoped to one church. Members are
// registry entries; they may or may not correspond to a platform account.
type Member struct {
	MemberID      string       `json:"memberID"` // Primary Key (UUID)
	ChurchID      string       `json:"churchID"`
	FirstName     string       `json:"firstName"`
	LastName      string       `json:"lastName"`
	Email         string       `json:"email,omitempty"`
	Phone         string       `json:"phone,omitempty"` // normalized, digits only
	Gender        string       `json:"gender,omitempty"`
	MaritalStatus string       `json:"maritalStatus,omitempty"`
	JoinedDate    *time.Time   `json:"joinedDate,omitempty"`
	Status        MemberStatus `json:"status"`
	AuditFields
}

// MemberNote is an append-only annotation on a member. Notes are only ever
// appended; editing or deleting targets one note by ID through its own endpoint.
type MemberNote struct {
	NoteID    string    `json:"noteID"`
	MemberID  string    `json:"memberID"`
	ChurchID  string    `json:"churchID"`
	Body      string    `json:"body"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
