package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shepherdsuite/church_mgmt_app/internal/apperrors"
	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	portsrepo "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/repositories"
)

type PgxTeamRepository struct {
	BaseRepository
}

// newPgxTeamRepository creates a new repository for volunteer teams.
func newPgxTeamRepository(pool *pgxpool.Pool) portsrepo.TeamRepository {
	return &PgxTeamRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TeamRepository = (*PgxTeamRepository)(nil)

const teamSelectColumns = `
	t.team_id, t.church_id, t.name, t.description, t.lead_member_id, t.is_active,
	t.created_at, t.created_by, t.last_updated_at, t.last_updated_by
`

func (r *PgxTeamRepository) SaveTeam(ctx context.Context, team domain.VolunteerTeam) error {
	query := `
		INSERT INTO volunteer_teams (
			team_id, church_id, name, description, lead_member_id, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		team.TeamID, team.ChurchID, team.Name, team.Description, team.LeadMember, team.IsActive,
		team.CreatedAt, team.CreatedBy, team.LastUpdatedAt, team.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" {
				return apperrors.NewConflictError("team " + team.Name + " already exists")
			}
			if pgErr.Code == "23503" {
				return apperrors.NewValidationFailedError("church or lead member does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save team "+team.TeamID, err)
	}
	return nil
}

func (r *PgxTeamRepository) FindTeamByID(ctx context.Context, churchID, teamID string) (*domain.VolunteerTeam, error) {
	query := `SELECT ` + teamSelectColumns + ` FROM volunteer_teams t WHERE t.church_id = $1 AND t.team_id = $2;`
	var t domain.VolunteerTeam
	err := r.Pool.QueryRow(ctx, query, churchID, teamID).Scan(
		&t.TeamID, &t.ChurchID, &t.Name, &t.Description, &t.LeadMember, &t.IsActive,
		&t.CreatedAt, &t.CreatedBy, &t.LastUpdatedAt, &t.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find team "+teamID, err)
	}
	return &t, nil
}

func (r *PgxTeamRepository) ListTeams(ctx context.Context, churchID string, limit, offset int) ([]domain.VolunteerTeam, error) {
	query := `
		SELECT ` + teamSelectColumns + `
		FROM volunteer_teams t
		WHERE t.church_id = $1
		ORDER BY t.name
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, churchID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list teams for church "+churchID, err)
	}
	defer rows.Close()

	teams := []domain.VolunteerTeam{}
	for rows.Next() {
		var t domain.VolunteerTeam
		if err := rows.Scan(
			&t.TeamID, &t.ChurchID, &t.Name, &t.Description, &t.LeadMember, &t.IsActive,
			&t.CreatedAt, &t.CreatedBy, &t.LastUpdatedAt, &t.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan team row", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read team rows", err)
	}
	return teams, nil
}

func (r *PgxTeamRepository) UpdateTeam(ctx context.Context, team domain.VolunteerTeam) error {
	query := `
		UPDATE volunteer_teams SET
			name = $3, description = $4, lead_member_id = $5, is_active = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE church_id = $1 AND team_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		team.ChurchID, team.TeamID,
		team.Name, team.Description, team.LeadMember, team.IsActive,
		team.LastUpdatedAt, team.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update team "+team.TeamID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTeamRepository) DeleteTeam(ctx context.Context, churchID, teamID, requestingAccountID string) error {
	// Soft delete: the row stays for roster history, but stops counting
	// against the creator's plan.
	query := `
		UPDATE volunteer_teams SET
			is_active = FALSE, last_updated_at = NOW(), last_updated_by = $3
		WHERE church_id = $1 AND team_id = $2 AND is_active;
	`
	tag, err := r.Pool.Exec(ctx, query, churchID, teamID, requestingAccountID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete team "+teamID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTeamRepository) AddTeamMember(ctx context.Context, churchID string, tm domain.TeamMember) error {
	// The member must belong to the same church as the team.
	query := `
		INSERT INTO team_members (team_id, member_id, served_since)
		SELECT $1, m.member_id, $3
		FROM members m
		WHERE m.member_id = $2 AND m.church_id = $4
		ON CONFLICT (team_id, member_id) DO NOTHING;
	`
	tag, err := r.Pool.Exec(ctx, query, tm.TeamID, tm.MemberID, tm.ServedSince, churchID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.NewValidationFailedError("team or member does not exist")
		}
		return apperrors.NewAppError(500, "failed to add member "+tm.MemberID+" to team "+tm.TeamID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("member not found in this church")
	}
	return nil
}

func (r *PgxTeamRepository) RemoveTeamMember(ctx context.Context, churchID, teamID, memberID string) error {
	query := `
		DELETE FROM team_members tm
		USING volunteer_teams t
		WHERE tm.team_id = t.team_id
		  AND t.church_id = $1 AND tm.team_id = $2 AND tm.member_id = $3;
	`
	tag, err := r.Pool.Exec(ctx, query, churchID, teamID, memberID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to remove member "+memberID+" from team "+teamID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTeamRepository) ListTeamMembers(ctx context.Context, churchID, teamID string) ([]domain.TeamMember, error) {
	query := `
		SELECT tm.team_id, tm.member_id, m.first_name || ' ' || m.last_name, tm.served_since
		FROM team_members tm
		JOIN volunteer_teams t ON t.team_id = tm.team_id
		JOIN members m ON m.member_id = tm.member_id
		WHERE t.church_id = $1 AND tm.team_id = $2
		ORDER BY tm.served_since;
	`
	rows, err := r.Pool.Query(ctx, query, churchID, teamID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list members of team "+teamID, err)
	}
	defer rows.Close()

	members := []domain.TeamMember{}
	for rows.Next() {
		var tm domain.TeamMember
		if err := rows.Scan(&tm.TeamID, &tm.MemberID, &tm.MemberName, &tm.ServedSince); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan team member row", err)
		}
		members = append(members, tm)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read team member rows", err)
	}
	return members, nil
}
