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
	"github.com/shepherdsuite/church_mgmt_app/internal/utils"
	"github.com/shepherdsuite/church_mgmt_app/internal/utils/pagination"
)

// memberService implements the MemberSvcFacade interface
type memberService struct {
	BaseService
	memberRepo portsrepo.MemberRepository
}

// NewMemberService creates a new member service with the provided dependencies
func NewMemberService(memberRepo portsrepo.MemberRepository, authorizer portssvc.ChurchAuthorizerSvc) portssvc.MemberSvcFacade {
	return &memberService{
		BaseService: BaseService{ChurchAuthorizer: authorizer},
		memberRepo:  memberRepo,
	}
}

var _ portssvc.MemberSvcFacade = (*memberService)(nil)

// GetMemberByID retrieves a member within the church.
func (s *memberService) GetMemberByID(ctx context.Context, churchID, memberID string) (*domain.Member, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, churchID, memberID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find member", slog.String("member_id", memberID))
		}
		return nil, err
	}
	return member, nil
}

// ListMembers retrieves a paginated list of the church's members.
func (s *memberService) ListMembers(ctx context.Context, churchID string, status *domain.MemberStatus, params pagination.Params) ([]domain.Member, error) {
	members, err := s.memberRepo.ListMembers(ctx, churchID, status, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list members", slog.String("church_id", churchID))
		return nil, err
	}
	if members == nil {
		return []domain.Member{}, nil
	}
	return members, nil
}

// CreateMember registers a congregation member.
func (s *memberService) CreateMember(ctx context.Context, churchID, requestingAccountID string, req dto.CreateMemberRequest) (*domain.Member, error) {
	if err := s.AuthorizeChurchAction(ctx, requestingAccountID, churchID, domain.ChurchRoleStaff); err != nil {
		return nil, err
	}

	phone := req.Phone
	if phone != "" {
		normalized, err := utils.NormalizePhone(phone)
		if err != nil {
			return nil, apperrors.NewValidationFailedError(err.Error())
		}
		phone = normalized
	}

	now := time.Now()
	member := domain.Member{
		MemberID:      uuid.NewString(),
		ChurchID:      churchID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         phone,
		Gender:        req.Gender,
		MaritalStatus: req.MaritalStatus,
		JoinedDate:    req.JoinedDate,
		Status:        domain.MemberActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingAccountID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingAccountID,
		},
	}

	if err := s.memberRepo.SaveMember(ctx, member); err != nil {
		s.LogError(ctx, err, "Failed to save member", slog.String("church_id", churchID))
		return nil, err
	}

	s.LogInfo(ctx, "Member registered",
		slog.String("member_id", member.MemberID),
		slog.String("church_id", churchID))
	return &member, nil
}

// UpdateMember updates a member record.
func (s *memberService) UpdateMember(ctx context.Context, churchID, memberID, requestingAccountID string, req dto.UpdateMemberRequest) (*domain.Member, error) {
	if err := s.AuthorizeChurchAction(ctx, requestingAccountID, churchID, domain.ChurchRoleStaff); err != nil {
		return nil, err
	}

	member, err := s.memberRepo.FindMemberByID(ctx, churchID, memberID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != "" {
		member.FirstName = req.FirstName
	}
	if req.LastName != "" {
		member.LastName = req.LastName
	}
	if req.Email != "" {
		member.Email = req.Email
	}
	if req.Phone != "" {
		phone, err := utils.NormalizePhone(req.Phone)
		if err != nil {
			return nil, apperrors.NewValidationFailedError(err.Error())
		}
		member.Phone = phone
	}
	if req.Gender != "" {
		member.Gender = req.Gender
	}
	if req.MaritalStatus != "" {
		member.MaritalStatus = req.MaritalStatus
	}
	if req.JoinedDate != nil {
		member.JoinedDate = req.JoinedDate
	}
	if req.Status != "" {
		member.Status = req.Status
	}
	member.LastUpdatedAt = time.Now()
	member.LastUpdatedBy = requestingAccountID

	if err := s.memberRepo.UpdateMember(ctx, *member); err != nil {
		s.LogError(ctx, err, "Failed to update member", slog.String("member_id", memberID))
		return nil, err
	}
	return member, nil
}

// DeleteMember removes the member record from the church.
func (s *memberService) DeleteMember(ctx context.Context, churchID, memberID, requestingAccountID string) error {
	if err := s.AuthorizeChurchAction(ctx, requestingAccountID, churchID, domain.ChurchRoleAdmin); err != nil {
		return err
	}
	if err := s.memberRepo.DeleteMember(ctx, churchID, memberID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete member", slog.String("member_id", memberID))
		}
		return err
	}
	s.LogInfo(ctx, "Member deleted",
		slog.String("member_id", memberID),
		slog.String("church_id", churchID))
	return nil
}

// AddNote appends a pastoral note to a member.
func (s *memberService) AddNote(ctx context.Context, churchID, memberID, requestingAccountID string, req dto.MemberNoteRequest) (*domain.MemberNote, error) {
	if err := s.AuthorizeChurchAction(ctx, requestingAccountID, churchID, domain.ChurchRoleStaff); err != nil {
		return nil, err
	}

	// The member must exist in this church.
	if _, err := s.memberRepo.FindMemberByID(ctx, churchID, memberID); err != nil {
		return nil, err
	}

	now := time.Now()
	note := domain.MemberNote{
		NoteID:    uuid.NewString(),
		MemberID:  memberID,
		ChurchID:  churchID,
		Body:      req.Body,
		CreatedBy: requestingAccountID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.memberRepo.AddNote(ctx, note); err != nil {
		s.LogError(ctx, err, "Failed to add member note", slog.String("member_id", memberID))
		return nil, err
	}
	return &note, nil
}

// ListNotes lists a member's notes, newest first.
func (s *memberService) ListNotes(ctx context.Context, churchID, memberID string) ([]domain.MemberNote, error) {
	if _, err := s.memberRepo.FindMemberByID(ctx, churchID, memberID); err != nil {
		return nil, err
	}
	return s.memberRepo.ListNotes(ctx, churchID, memberID)
}

// UpdateNote edits a note's body. Only the note's author may edit it.
func (s *memberService) UpdateNote(ctx context.Context, churchID, memberID, noteID, requestingAccountID string, req dto.MemberNoteRequest) (*domain.MemberNote, error) {
	note, err := s.memberRepo.FindNoteByID(ctx, churchID, memberID, noteID)
	if err != nil {
		return nil, err
	}
	if note.CreatedBy != requestingAccountID {
		return nil, apperrors.NewForbiddenError("only the note's author can edit it")
	}

	note.Body = req.Body
	note.UpdatedAt = time.Now()
	if err := s.memberRepo.UpdateNote(ctx, *note); err != nil {
		s.LogError(ctx, err, "Failed to update member note", slog.String("note_id", noteID))
		return nil, err
	}
	return note, nil
}

// DeleteNote removes a note. Only the note's author or a church ADMIN may delete it.
func (s *memberService) DeleteNote(ctx context.Context, churchID, memberID, noteID, requestingAccountID string) error {
	note, err := s.memberRepo.FindNoteByID(ctx, churchID, memberID, noteID)
	if err != nil {
		return err
	}
	if note.CreatedBy != requestingAccountID {
		if err := s.AuthorizeChurchAction(ctx, requestingAccountID, churchID, domain.ChurchRoleAdmin); err != nil {
			return apperrors.NewForbiddenError("only the note's author or a church admin can delete it")
		}
	}
	return s.memberRepo.DeleteNote(ctx, churchID, memberID, noteID)
}
