package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	portssvc "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/services"
	"github.com/shepherdsuite/church_mgmt_app/internal/dto"
)

// memberHandler handles congregation members and their pastoral notes.
type memberHandler struct {
	memberSvc portssvc.MemberSvcFacade
}

func newMemberHandler(memberSvc portssvc.MemberSvcFacade) *memberHandler {
	return &memberHandler{memberSvc: memberSvc}
}

// registerMemberRoutes registers member endpoints under a church-scoped group.
func registerMemberRoutes(rg *gin.RouterGroup, memberSvc portssvc.MemberSvcFacade) {
	h := newMemberHandler(memberSvc)

	members := rg.Group("/members")
	{
		members.POST("", h.createMember)
		members.GET("", h.listMembers)
		members.GET("/:memberID", h.getMember)
		members.PATCH("/:memberID", h.updateMember)
		members.DELETE("/:memberID", h.deleteMember)

		notes := members.Group("/:memberID/notes")
		{
			notes.POST("", h.addNote)
			notes.GET("", h.listNotes)
			notes.PATCH("/:noteID", h.updateNote)
			notes.DELETE("/:noteID", h.deleteNote)
		}
	}
}

// createMember godoc
// @Summary Register a congregation member
// @Description Requires church STAFF.
// @Tags members
// @Accept json
// @Produce json
// @Param churchID path string true "Church ID"
// @Param member body dto.CreateMemberRequest true "Member details"
// @Success 201 {object} dto.Envelope{data=dto.MemberResponse}
// @Failure 400 {object} dto.Envelope
// @Security BearerAuth
// @Router /churches/{churchID}/members [post]
func (h *memberHandler) createMember(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	member, err := h.memberSvc.CreateMember(c.Request.Context(), c.Param("churchID"), accountID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(dto.ToMemberResponse(member)))
}

// listMembers godoc
// @Summary List the church's members
// @Tags members
// @Produce json
// @Param churchID path string true "Church ID"
// @Param status query string false "Filter by status (active/inactive)"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Envelope{data=dto.ListMembersResponse}
// @Security BearerAuth
// @Router /churches/{churchID}/members [get]
func (h *memberHandler) listMembers(c *gin.Context) {
	params, ok := parsePagination(c)
	if !ok {
		return
	}

	var status *domain.MemberStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.MemberStatus(raw)
		if s != domain.MemberActive && s != domain.MemberInactive {
			c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrorBody{Message: "status must be active or inactive"}))
			return
		}
		status = &s
	}

	members, err := h.memberSvc.ListMembers(c.Request.Context(), c.Param("churchID"), status, params)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.ListMembersResponse{
		Members: make([]dto.MemberResponse, len(members)),
		Page:    params.Page,
		Limit:   params.Limit,
	}
	for i := range members {
		resp.Members[i] = dto.ToMemberResponse(&members[i])
	}
	c.JSON(http.StatusOK, dto.OK(resp))
}

// getMember godoc
// @Summary Get a member
// @Tags members
// @Produce json
// @Param churchID path string true "Church ID"
// @Param memberID path string true "Member ID"
// @Success 200 {object} dto.Envelope{data=dto.MemberResponse}
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /churches/{churchID}/members/{memberID} [get]
func (h *memberHandler) getMember(c *gin.Context) {
	member, err := h.memberSvc.GetMemberByID(c.Request.Context(), c.Param("churchID"), c.Param("memberID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToMemberResponse(member)))
}

// updateMember godoc
// @Summary Update a member record
// @Description Requires church STAFF.
// @Tags members
// @Accept json
// @Produce json
// @Param churchID path string true "Church ID"
// @Param memberID path string true "Member ID"
// @Param member body dto.UpdateMemberRequest true "Fields to update"
// @Success 200 {object} dto.Envelope{data=dto.MemberResponse}
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /churches/{churchID}/members/{memberID} [patch]
func (h *memberHandler) updateMember(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	member, err := h.memberSvc.UpdateMember(c.Request.Context(), c.Param("churchID"), c.Param("memberID"), accountID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToMemberResponse(member)))
}

// deleteMember godoc
// @Summary Delete a member record
// @Description Requires church ADMIN.
// @Tags members
// @Produce json
// @Param churchID path string true "Church ID"
// @Param memberID path string true "Member ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /churches/{churchID}/members/{memberID} [delete]
func (h *memberHandler) deleteMember(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	if err := h.memberSvc.DeleteMember(c.Request.Context(), c.Param("churchID"), c.Param("memberID"), accountID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// addNote godoc
// @Summary Add a pastoral note to a member
// @Description Requires church STAFF.
// @Tags member-notes
// @Accept json
// @Produce json
// @Param churchID path string true "Church ID"
// @Param memberID path string true "Member ID"
// @Param note body dto.MemberNoteRequest true "Note body"
// @Success 201 {object} dto.Envelope{data=dto.MemberNoteResponse}
// @Security BearerAuth
// @Router /churches/{churchID}/members/{memberID}/notes [post]
func (h *memberHandler) addNote(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req dto.MemberNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	note, err := h.memberSvc.AddNote(c.Request.Context(), c.Param("churchID"), c.Param("memberID"), accountID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(dto.ToMemberNoteResponse(note)))
}

// listNotes godoc
// @Summary List a member's notes
// @Tags member-notes
// @Produce json
// @Param churchID path string true "Church ID"
// @Param memberID path string true "Member ID"
// @Success 200 {object} dto.Envelope{data=[]dto.MemberNoteResponse}
// @Security BearerAuth
// @Router /churches/{churchID}/members/{memberID}/notes [get]
func (h *memberHandler) listNotes(c *gin.Context) {
	notes, err := h.memberSvc.ListNotes(c.Request.Context(), c.Param("churchID"), c.Param("memberID"))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.MemberNoteResponse, len(notes))
	for i := range notes {
		resp[i] = dto.ToMemberNoteResponse(&notes[i])
	}
	c.JSON(http.StatusOK, dto.OK(resp))
}

// updateNote godoc
// @Summary Edit a member note
// @Description Only the note's author may edit it.
// @Tags member-notes
// @Accept json
// @Produce json
// @Param churchID path string true "Church ID"
// @Param memberID path string true "Member ID"
// @Param noteID path string true "Note ID"
// @Param note body dto.MemberNoteRequest true "New note body"
// @Success 200 {object} dto.Envelope{data=dto.MemberNoteResponse}
// @Failure 403 {object} dto.Envelope
// @Security BearerAuth
// @Router /churches/{churchID}/members/{memberID}/notes/{noteID} [patch]
func (h *memberHandler) updateNote(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req dto.MemberNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	note, err := h.memberSvc.UpdateNote(c.Request.Context(), c.Param("churchID"), c.Param("memberID"), c.Param("noteID"), accountID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToMemberNoteResponse(note)))
}

// deleteNote godoc
// @Summary Delete a member note
// @Description Only the note's author or a church ADMIN may delete it.
// @Tags member-notes
// @Produce json
// @Param churchID path string true "Church ID"
// @Param memberID path string true "Member ID"
// @Param noteID path string true "Note ID"
// @Success 204 "No Content"
// @Failure 403 {object} dto.Envelope
// @Security BearerAuth
// @Router /churches/{churchID}/members/{memberID}/notes/{noteID} [delete]
func (h *memberHandler) deleteNote(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	if err := h.memberSvc.DeleteNote(c.Request.Context(), c.Param("churchID"), c.Param("memberID"), c.Param("noteID"), accountID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
