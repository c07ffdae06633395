package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/shepherdsuite/church_mgmt_app/internal/apperrors"
	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
)

// stubChurchAuthorizer answers ResolveAccess from fixed values.
type stubChurchAuthorizer struct {
	role domain.ChurchRole
	err  error
}

func (s stubChurchAuthorizer) ResolveAccess(ctx context.Context, accountID, churchID string) (domain.ChurchRole, error) {
	return s.role, s.err
}

func (s stubChurchAuthorizer) AuthorizeAction(ctx context.Context, accountID, churchID string, requiredRole domain.ChurchRole) error {
	return nil
}

// withTestAccount injects an authenticated account ID the way Authentication
// does, so ChurchAccess can be exercised on its own.
func withTestAccount(accountID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.WithValue(c.Request.Context(), accountIDKey, accountID)
		c.Request = c.Request.WithContext(ctx)
	}
}

func TestChurchAccess(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		authorizer   stubChurchAuthorizer
		requiredRole domain.ChurchRole
		wantStatus   int
	}{
		{
			name:         "member passes the member gate",
			authorizer:   stubChurchAuthorizer{role: domain.ChurchRoleMember},
			requiredRole: domain.ChurchRoleMember,
			wantStatus:   http.StatusOK,
		},
		{
			name:         "non member is forbidden",
			authorizer:   stubChurchAuthorizer{err: apperrors.NewForbiddenError("no access to this church")},
			requiredRole: domain.ChurchRoleMember,
			wantStatus:   http.StatusForbidden,
		},
		{
			name:         "unknown church is not found",
			authorizer:   stubChurchAuthorizer{err: apperrors.ErrNotFound},
			requiredRole: domain.ChurchRoleMember,
			wantStatus:   http.StatusNotFound,
		},
		{
			name:         "member does not pass the staff gate",
			authorizer:   stubChurchAuthorizer{role: domain.ChurchRoleMember},
			requiredRole: domain.ChurchRoleStaff,
			wantStatus:   http.StatusForbidden,
		},
		{
			name:         "lookup failure is a server error",
			authorizer:   stubChurchAuthorizer{err: assert.AnError},
			requiredRole: domain.ChurchRoleMember,
			wantStatus:   http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/churches/:churchID/resource",
				withTestAccount("acct-1"),
				ChurchAccess(tt.authorizer, tt.requiredRole),
				func(c *gin.Context) { c.Status(http.StatusOK) },
			)

			req, _ := http.NewRequest(http.MethodGet, "/churches/church-1/resource", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestChurchAccess_NoAccountUnauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/churches/:churchID/resource",
		ChurchAccess(stubChurchAuthorizer{role: domain.ChurchRoleMember}, domain.ChurchRoleMember),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	req, _ := http.NewRequest(http.MethodGet, "/churches/church-1/resource", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
