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

type PgxMemberRepository struct {
	BaseRepository
}

// newPgxMemberRepository creates a new repository for congregation members.
func newPgxMemberRepository(pool *pgxpool.Pool) portsrepo.MemberRepository {
	return &PgxMemberRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.MemberRepository = (*PgxMemberRepository)(nil)

const memberSelectColumns = `
	m.member_id, m.church_id, m.first_name, m.last_name, m.email, m.phone,
	m.gender, m.marital_status, m.joined_date, m.status,
	m.created_at, m.created_by, m.last_updated_at, m.last_updated_by
`

func scanMember(row pgx.Row) (*domain.Member, error) {
	var m domain.Member
	err := row.Scan(
		&m.MemberID, &m.ChurchID, &m.FirstName, &m.LastName, &m.Email, &m.Phone,
		&m.Gender, &m.MaritalStatus, &m.JoinedDate, &m.Status,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan member row", err)
	}
	return &m, nil
}

func (r *PgxMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	query := `
		INSERT INTO members (
			member_id, church_id, first_name, last_name, email, phone,
			gender, marital_status, joined_date, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		member.MemberID, member.ChurchID, member.FirstName, member.LastName, member.Email, member.Phone,
		member.Gender, member.MaritalStatus, member.JoinedDate, member.Status,
		member.CreatedAt, member.CreatedBy, member.LastUpdatedAt, member.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" {
				return apperrors.NewConflictError("member ID " + member.MemberID + " already exists")
			}
			if pgErr.Code == "23503" {
				return apperrors.NewValidationFailedError("church does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save member "+member.MemberID, err)
	}
	return nil
}

func (r *PgxMemberRepository) FindMemberByID(ctx context.Context, churchID, memberID string) (*domain.Member, error) {
	query := `SELECT ` + memberSelectColumns + ` FROM members m WHERE m.church_id = $1 AND m.member_id = $2;`
	return scanMember(r.Pool.QueryRow(ctx, query, churchID, memberID))
}

func (r *PgxMemberRepository) ListMembers(ctx context.Context, churchID string, status *domain.MemberStatus, limit, offset int) ([]domain.Member, error) {
	query := `SELECT ` + memberSelectColumns + ` FROM members m WHERE m.church_id = $1`
	args := []any{churchID}
	if status != nil {
		query += ` AND m.status = $2`
		args = append(args, *status)
	}
	query += ` ORDER BY m.last_name, m.first_name LIMIT $` + itoa(len(args)+1) + ` OFFSET $` + itoa(len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list members for church "+churchID, err)
	}
	defer rows.Close()

	members := []domain.Member{}
	for rows.Next() {
		var m domain.Member
		if err := rows.Scan(
			&m.MemberID, &m.ChurchID, &m.FirstName, &m.LastName, &m.Email, &m.Phone,
			&m.Gender, &m.MaritalStatus, &m.JoinedDate, &m.Status,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan member row", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read member rows", err)
	}
	return members, nil
}

func (r *PgxMemberRepository) UpdateMember(ctx context.Context, member domain.Member) error {
	query := `
		UPDATE members SET
			first_name = $3, last_name = $4, email = $5, phone = $6,
			gender = $7, marital_status = $8, joined_date = $9, status = $10,
			last_updated_at = $11, last_updated_by = $12
		WHERE church_id = $1 AND member_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		member.ChurchID, member.MemberID,
		member.FirstName, member.LastName, member.Email, member.Phone,
		member.Gender, member.MaritalStatus, member.JoinedDate, member.Status,
		member.LastUpdatedAt, member.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update member "+member.MemberID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxMemberRepository) DeleteMember(ctx context.Context, churchID, memberID string) error {
	query := `DELETE FROM members WHERE church_id = $1 AND member_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, churchID, memberID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete member "+memberID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxMemberRepository) AddNote(ctx context.Context, note domain.MemberNote) error {
	query := `
		INSERT INTO member_notes (note_id, member_id, church_id, body, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		note.NoteID, note.MemberID, note.ChurchID, note.Body, note.CreatedBy, note.CreatedAt, note.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.NewValidationFailedError("member does not exist")
		}
		return apperrors.NewAppError(500, "failed to add note to member "+note.MemberID, err)
	}
	return nil
}

func (r *PgxMemberRepository) ListNotes(ctx context.Context, churchID, memberID string) ([]domain.MemberNote, error) {
	query := `
		SELECT note_id, member_id, church_id, body, created_by, created_at, updated_at
		FROM member_notes
		WHERE church_id = $1 AND member_id = $2
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, churchID, memberID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list notes for member "+memberID, err)
	}
	defer rows.Close()

	notes := []domain.MemberNote{}
	for rows.Next() {
		var n domain.MemberNote
		if err := rows.Scan(&n.NoteID, &n.MemberID, &n.ChurchID, &n.Body, &n.CreatedBy, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan member note row", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read member note rows", err)
	}
	return notes, nil
}

func (r *PgxMemberRepository) FindNoteByID(ctx context.Context, churchID, memberID, noteID string) (*domain.MemberNote, error) {
	query := `
		SELECT note_id, member_id, church_id, body, created_by, created_at, updated_at
		FROM member_notes
		WHERE church_id = $1 AND member_id = $2 AND note_id = $3;
	`
	var n domain.MemberNote
	err := r.Pool.QueryRow(ctx, query, churchID, memberID, noteID).Scan(
		&n.NoteID, &n.MemberID, &n.ChurchID, &n.Body, &n.CreatedBy, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find note "+noteID, err)
	}
	return &n, nil
}

func (r *PgxMemberRepository) UpdateNote(ctx context.Context, note domain.MemberNote) error {
	query := `
		UPDATE member_notes SET body = $4, updated_at = $5
		WHERE church_id = $1 AND member_id = $2 AND note_id = $3;
	`
	tag, err := r.Pool.Exec(ctx, query, note.ChurchID, note.MemberID, note.NoteID, note.Body, note.UpdatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update note "+note.NoteID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxMemberRepository) DeleteNote(ctx context.Context, churchID, memberID, noteID string) error {
	query := `DELETE FROM member_notes WHERE church_id = $1 AND member_id = $2 AND note_id = $3;`
	tag, err := r.Pool.Exec(ctx, query, churchID, memberID, noteID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete note "+noteID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
