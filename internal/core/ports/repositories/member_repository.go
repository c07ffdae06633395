package repositories

import (
	"context"

	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
)

// MemberRepository defines persistence operations for congregation members
// and their append-only notes. All lookups are church-scoped.
type MemberRepository interface {
	SaveMember(ctx context.Context, member domain.Member) error
	FindMemberByID(ctx context.Context, churchID, memberID string) (*domain.Member, error)
	ListMembers(ctx context.Context, churchID string, status *domain.MemberStatus, limit, offset int) ([]domain.Member, error)
	UpdateMember(ctx context.Context, member domain.Member) error
	DeleteMember(ctx context.Context, churchID, memberID string) error

	AddNote(ctx context.Context, note domain.MemberNote) error
	ListNotes(ctx context.Context, churchID, memberID string) ([]domain.MemberNote, error)
	FindNoteByID(ctx context.Context, churchID, memberID, noteID string) (*domain.MemberNote, error)
	UpdateNote(ctx context.Context, note domain.MemberNote) error
	DeleteNote(ctx context.Context, churchID, memberID, noteID string) error
}

// TeamRepository defines persistence operations for volunteer teams.
type TeamRepository interface {
	SaveTeam(ctx context.Context, team domain.VolunteerTeam) error
	FindTeamByID(ctx context.Context, churchID, teamID string) (*domain.VolunteerTeam, error)
	ListTeams(ctx context.Context, churchID string, limit, offset int) ([]domain.VolunteerTeam, error)
	UpdateTeam(ctx context.Context, team domain.VolunteerTeam) error
	// DeleteTeam deactivates an active team. Roster rows are kept for history.
	DeleteTeam(ctx context.Context, churchID, teamID, requestingAccountID string) error

	AddTeamMember(ctx context.Context, churchID string, tm domain.TeamMember) error
	RemoveTeamMember(ctx context.Context, churchID, teamID, memberID string) error
	ListTeamMembers(ctx context.Context, churchID, teamID string) ([]domain.TeamMember, error)
}
