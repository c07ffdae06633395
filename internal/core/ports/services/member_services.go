package services

import (
	"context"

	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	"github.com/shepherdsuite/church_mgmt_app/internal/dto"
	"github.com/shepherdsuite/church_mgmt_app/internal/utils/pagination"
)

// MemberReaderSvc defines read operations for congregation members
type MemberReaderSvc interface {
	// GetMemberByID retrieves a member within the church, or ErrNotFound when
	// the member does not exist in that church.
	GetMemberByID(ctx context.Context, churchID, memberID string) (*domain.Member, error)

	// ListMembers retrieves a paginated list of the church's members,
	// optionally filtered by status.
	ListMembers(ctx context.Context, churchID string, status *domain.MemberStatus, params pagination.Params) ([]domain.Member, error)
}

// MemberWriterSvc defines write operations for congregation members
type MemberWriterSvc interface {
	CreateMember(ctx context.Context, churchID, requestingAccountID string, req dto.CreateMemberRequest) (*domain.Member, error)
	UpdateMember(ctx context.Context, churchID, memberID, requestingAccountID string, req dto.UpdateMemberRequest) (*domain.Member, error)
	// DeleteMember removes the member record from the church.
	DeleteMember(ctx context.Context, churchID, memberID, requestingAccountID string) error
}

// MemberNoteSvc defines operations for pastoral notes attached to a member.
type MemberNoteSvc interface {
	AddNote(ctx context.Context, churchID, memberID, requestingAccountID string, req dto.MemberNoteRequest) (*domain.MemberNote, error)
	ListNotes(ctx context.Context, churchID, memberID string) ([]domain.MemberNote, error)
	// UpdateNote edits a note's body. Only the note's author may edit it.
	UpdateNote(ctx context.Context, churchID, memberID, noteID, requestingAccountID string, req dto.MemberNoteRequest) (*domain.MemberNote, error)
	// DeleteNote removes a note. Only the note's author or an ADMIN may delete it.
	DeleteNote(ctx context.Context, churchID, memberID, noteID, requestingAccountID string) error
}

// MemberSvcFacade combines all member-related service interfaces
type MemberSvcFacade interface {
	MemberReaderSvc
	MemberWriterSvc
	MemberNoteSvc
}

// TeamSvcFacade defines operations for volunteer teams and their rosters.
type TeamSvcFacade interface {
	// CreateTeam persists a new volunteer team. Creation is gated on the
	// church creator's plan entitlements.
	CreateTeam(ctx context.Context, churchID, requestingAccountID string, req dto.CreateTeamRequest) (*domain.VolunteerTeam, error)
	GetTeamByID(ctx context.Context, churchID, teamID string) (*domain.VolunteerTeam, error)
	ListTeams(ctx context.Context, churchID string, params pagination.Params) ([]domain.VolunteerTeam, error)
	UpdateTeam(ctx context.Context, churchID, teamID, requestingAccountID string, req dto.UpdateTeamRequest) (*domain.VolunteerTeam, error)
	// DeleteTeam deactivates a team, freeing its slot on the creator's plan.
	// Requires church ADMIN.
	DeleteTeam(ctx context.Context, churchID, teamID, requestingAccountID string) error

	// AddTeamMember places an existing church member on the team's roster.
	AddTeamMember(ctx context.Context, churchID, teamID, requestingAccountID string, req dto.AddTeamMemberRequest) error
	RemoveTeamMember(ctx context.Context, churchID, teamID, memberID, requestingAccountID string) error
	ListTeamMembers(ctx context.Context, churchID, teamID string) ([]domain.TeamMember, error)
}
