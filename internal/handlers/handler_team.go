package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/services"
	"github.com/shepherdsuite/church_mgmt_app/internal/dto"
)

// teamHandler handles volunteer teams and their rosters.
type teamHandler struct {
	teamSvc portssvc.TeamSvcFacade
}

func newTeamHandler(teamSvc portssvc.TeamSvcFacade) *teamHandler {
	return &teamHandler{teamSvc: teamSvc}
}

// registerTeamRoutes registers team endpoints under a church-scoped group.
func registerTeamRoutes(rg *gin.RouterGroup, teamSvc portssvc.TeamSvcFacade) {
	h := newTeamHandler(teamSvc)

	teams := rg.Group("/teams")
	{
		teams.POST("", h.createTeam)
		teams.GET("", h.listTeams)
		teams.GET("/:teamID", h.getTeam)
		teams.PATCH("/:teamID", h.updateTeam)
		teams.DELETE("/:teamID", h.deleteTeam)

		roster := teams.Group("/:teamID/members")
		{
			roster.POST("", h.addTeamMember)
			roster.GET("", h.listTeamMembers)
			roster.DELETE("/:memberID", h.removeTeamMember)
		}
	}
}

// createTeam godoc
// @Summary Create a volunteer team
// @Description Requires church STAFF. Gated on the church creator's plan.
// @Tags teams
// @Accept json
// @Produce json
// @Param churchID path string true "Church ID"
// @Param team body dto.CreateTeamRequest true "Team details"
// @Success 201 {object} dto.Envelope{data=dto.TeamResponse}
// @Failure 403 {object} dto.Envelope "Plan limit reached"
// @Security BearerAuth
// @Router /churches/{churchID}/teams [post]
func (h *teamHandler) createTeam(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req dto.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	team, err := h.teamSvc.CreateTeam(c.Request.Context(), c.Param("churchID"), accountID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(dto.ToTeamResponse(team)))
}

// listTeams godoc
// @Summary List the church's volunteer teams
// @Tags teams
// @Produce json
// @Param churchID path string true "Church ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Envelope{data=[]dto.TeamResponse}
// @Security BearerAuth
// @Router /churches/{churchID}/teams [get]
func (h *teamHandler) listTeams(c *gin.Context) {
	params, ok := parsePagination(c)
	if !ok {
		return
	}

	teams, err := h.teamSvc.ListTeams(c.Request.Context(), c.Param("churchID"), params)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.TeamResponse, len(teams))
	for i := range teams {
		resp[i] = dto.ToTeamResponse(&teams[i])
	}
	c.JSON(http.StatusOK, dto.OK(resp))
}

// getTeam godoc
// @Summary Get a volunteer team
// @Tags teams
// @Produce json
// @Param churchID path string true "Church ID"
// @Param teamID path string true "Team ID"
// @Success 200 {object} dto.Envelope{data=dto.TeamResponse}
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /churches/{churchID}/teams/{teamID} [get]
func (h *teamHandler) getTeam(c *gin.Context) {
	team, err := h.teamSvc.GetTeamByID(c.Request.Context(), c.Param("churchID"), c.Param("teamID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToTeamResponse(team)))
}

// updateTeam godoc
// @Summary Update a volunteer team
// @Description Requires church STAFF.
// @Tags teams
// @Accept json
// @Produce json
// @Param churchID path string true "Church ID"
// @Param teamID path string true "Team ID"
// @Param team body dto.UpdateTeamRequest true "Fields to update"
// @Success 200 {object} dto.Envelope{data=dto.TeamResponse}
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /churches/{churchID}/teams/{teamID} [patch]
func (h *teamHandler) updateTeam(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req dto.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	team, err := h.teamSvc.UpdateTeam(c.Request.Context(), c.Param("churchID"), c.Param("teamID"), accountID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToTeamResponse(team)))
}

// deleteTeam godoc
// @Summary Deactivate a volunteer team
// @Description Requires church ADMIN. The roster is kept for history.
// @Tags teams
// @Produce json
// @Param churchID path string true "Church ID"
// @Param teamID path string true "Team ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /churches/{churchID}/teams/{teamID} [delete]
func (h *teamHandler) deleteTeam(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	if err := h.teamSvc.DeleteTeam(c.Request.Context(), c.Param("churchID"), c.Param("teamID"), accountID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// addTeamMember godoc
// @Summary Add a church member to the team roster
// @Description Requires church STAFF. The member must belong to this church.
// @Tags teams
// @Accept json
// @Produce json
// @Param churchID path string true "Church ID"
// @Param teamID path string true "Team ID"
// @Param member body dto.AddTeamMemberRequest true "Member ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.Envelope "Team or member not found"
// @Failure 409 {object} dto.Envelope "Member already on the roster"
// @Security BearerAuth
// @Router /churches/{churchID}/teams/{teamID}/members [post]
func (h *teamHandler) addTeamMember(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req dto.AddTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	if err := h.teamSvc.AddTeamMember(c.Request.Context(), c.Param("churchID"), c.Param("teamID"), accountID, req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// listTeamMembers godoc
// @Summary List the team's roster
// @Tags teams
// @Produce json
// @Param churchID path string true "Church ID"
// @Param teamID path string true "Team ID"
// @Success 200 {object} dto.Envelope{data=[]dto.TeamMemberResponse}
// @Security BearerAuth
// @Router /churches/{churchID}/teams/{teamID}/members [get]
func (h *teamHandler) listTeamMembers(c *gin.Context) {
	members, err := h.teamSvc.ListTeamMembers(c.Request.Context(), c.Param("churchID"), c.Param("teamID"))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.TeamMemberResponse, len(members))
	for i, m := range members {
		resp[i] = dto.TeamMemberResponse{
			TeamID:      m.TeamID,
			MemberID:    m.MemberID,
			MemberName:  m.MemberName,
			ServedSince: m.ServedSince,
		}
	}
	c.JSON(http.StatusOK, dto.OK(resp))
}

// removeTeamMember godoc
// @Summary Remove a member from the team roster
// @Description Requires church STAFF.
// @Tags teams
// @Produce json
// @Param churchID path string true "Church ID"
// @Param teamID path string true "Team ID"
// @Param memberID path string true "Member ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /churches/{churchID}/teams/{teamID}/members/{memberID} [delete]
func (h *teamHandler) removeTeamMember(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	if err := h.teamSvc.RemoveTeamMember(c.Request.Context(), c.Param("churchID"), c.Param("teamID"), c.Param("memberID"), accountID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
