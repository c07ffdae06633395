package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shepherdsuite/church_mgmt_app/internal/apperrors"
	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	portsrepo "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/services"
	"github.com/shepherdsuite/church_mgmt_app/internal/dto"
	"github.com/shepherdsuite/church_mgmt_app/internal/utils/pagination"
)

// teamService implements the TeamSvcFacade interface
type teamService struct {
	BaseService
	teamRepo    portsrepo.TeamRepository
	churchRepo  portsrepo.ChurchRepository
	entitlement portssvc.EntitlementSvc
}

// NewTeamService creates a new team service with the provided dependencies
func NewTeamService(teamRepo portsrepo.TeamRepository, churchRepo portsrepo.ChurchRepository, entitlement portssvc.EntitlementSvc, authorizer portssvc.ChurchAuthorizerSvc) portssvc.TeamSvcFacade {
	return &teamService{
		BaseService: BaseService{ChurchAuthorizer: authorizer},
		teamRepo:    teamRepo,
		churchRepo:  churchRepo,
		entitlement: entitlement,
	}
}

var _ portssvc.TeamSvcFacade = (*teamService)(nil)

// CreateTeam persists a new volunteer team. Team creation counts against the
// church creator's plan.
func (s *teamService) CreateTeam(ctx context.Context, churchID, requestingAccountID string, req dto.CreateTeamRequest) (*domain.VolunteerTeam, error) {
	if err := s.AuthorizeChurchAction(ctx, requestingAccountID, churchID, domain.ChurchRoleStaff); err != nil {
		return nil, err
	}

	church, err := s.churchRepo.FindChurchByID(ctx, churchID)
	if err != nil {
		return nil, err
	}
	if err := s.entitlement.RequireEntitlement(ctx, church.CreatedBy, domain.ActionCreateVolunteerTeam); err != nil {
		return nil, err
	}

	now := time.Now()
	team := domain.VolunteerTeam{
		TeamID:      uuid.NewString(),
		ChurchID:    churchID,
		Name:        req.Name,
		Description: req.Description,
		LeadMember:  req.LeadMemberID,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingAccountID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingAccountID,
		},
	}
	if err := s.teamRepo.SaveTeam(ctx, team); err != nil {
		s.LogError(ctx, err, "Failed to save team", slog.String("church_id", churchID))
		return nil, err
	}

	s.LogInfo(ctx, "Volunteer team created",
		slog.String("team_id", team.TeamID),
		slog.String("church_id", churchID))
	return &team, nil
}

// GetTeamByID retrieves a team within the church.
func (s *teamService) GetTeamByID(ctx context.Context, churchID, teamID string) (*domain.VolunteerTeam, error) {
	team, err := s.teamRepo.FindTeamByID(ctx, churchID, teamID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find team", slog.String("team_id", teamID))
		}
		return nil, err
	}
	return team, nil
}

// ListTeams retrieves a paginated list of the church's teams.
func (s *teamService) ListTeams(ctx context.Context, churchID string, params pagination.Params) ([]domain.VolunteerTeam, error) {
	teams, err := s.teamRepo.ListTeams(ctx, churchID, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list teams", slog.String("church_id", churchID))
		return nil, err
	}
	if teams == nil {
		return []domain.VolunteerTeam{}, nil
	}
	return teams, nil
}

// UpdateTeam updates a team's details.
func (s *teamService) UpdateTeam(ctx context.Context, churchID, teamID, requestingAccountID string, req dto.UpdateTeamRequest) (*domain.VolunteerTeam, error) {
	if err := s.AuthorizeChurchAction(ctx, requestingAccountID, churchID, domain.ChurchRoleStaff); err != nil {
		return nil, err
	}

	team, err := s.teamRepo.FindTeamByID(ctx, churchID, teamID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		team.Name = req.Name
	}
	if req.Description != "" {
		team.Description = req.Description
	}
	if req.LeadMemberID != "" {
		team.LeadMember = req.LeadMemberID
	}
	if req.IsActive != nil {
		team.IsActive = *req.IsActive
	}
	team.LastUpdatedAt = time.Now()
	team.LastUpdatedBy = requestingAccountID

	if err := s.teamRepo.UpdateTeam(ctx, *team); err != nil {
		s.LogError(ctx, err, "Failed to update team", slog.String("team_id", teamID))
		return nil, err
	}
	return team, nil
}

// DeleteTeam deactivates a team. Deactivation frees the team's slot against
// the church creator's plan limit.
func (s *teamService) DeleteTeam(ctx context.Context, churchID, teamID, requestingAccountID string) error {
	if err := s.AuthorizeChurchAction(ctx, requestingAccountID, churchID, domain.ChurchRoleAdmin); err != nil {
		return err
	}

	if err := s.teamRepo.DeleteTeam(ctx, churchID, teamID, requestingAccountID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete team", slog.String("team_id", teamID))
		}
		return err
	}

	s.LogInfo(ctx, "Volunteer team deactivated",
		slog.String("team_id", teamID),
		slog.String("church_id", churchID))
	return nil
}

// AddTeamMember places an existing church member on the team's roster.
func (s *teamService) AddTeamMember(ctx context.Context, churchID, teamID, requestingAccountID string, req dto.AddTeamMemberRequest) error {
	if err := s.AuthorizeChurchAction(ctx, requestingAccountID, churchID, domain.ChurchRoleStaff); err != nil {
		return err
	}

	if _, err := s.teamRepo.FindTeamByID(ctx, churchID, teamID); err != nil {
		return err
	}

	tm := domain.TeamMember{
		TeamID:      teamID,
		MemberID:    req.MemberID,
		ServedSince: time.Now(),
	}
	if err := s.teamRepo.AddTeamMember(ctx, churchID, tm); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to add team member",
				slog.String("team_id", teamID),
				slog.String("member_id", req.MemberID))
		}
		return err
	}
	return nil
}

// RemoveTeamMember removes a member from the team's roster.
func (s *teamService) RemoveTeamMember(ctx context.Context, churchID, teamID, memberID, requestingAccountID string) error {
	if err := s.AuthorizeChurchAction(ctx, requestingAccountID, churchID, domain.ChurchRoleStaff); err != nil {
		return err
	}
	return s.teamRepo.RemoveTeamMember(ctx, churchID, teamID, memberID)
}

// ListTeamMembers lists the team's roster.
func (s *teamService) ListTeamMembers(ctx context.Context, churchID, teamID string) ([]domain.TeamMember, error) {
	if _, err := s.teamRepo.FindTeamByID(ctx, churchID, teamID); err != nil {
		return nil, err
	}
	members, err := s.teamRepo.ListTeamMembers(ctx, churchID, teamID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list team members", slog.String("team_id", teamID))
		return nil, err
	}
	if members == nil {
		return []domain.TeamMember{}, nil
	}
	return members, nil
}
