package services_test

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	portsrepo "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/repositories"
)

// Shared mocks for repositories and platform dependencies used across the
// service test suites.

// MockChurchRepository is a mock type for the ChurchRepository interface
type MockChurchRepository struct {
	mock.Mock
}

func (m *MockChurchRepository) SaveChurch(ctx context.Context, church domain.Church) error {
	args := m.Called(ctx, church)
	return args.Error(0)
}

func (m *MockChurchRepository) FindChurchByID(ctx context.Context, churchID string) (*domain.Church, error) {
	args := m.Called(ctx, churchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Church), args.Error(1)
}

func (m *MockChurchRepository) ListChurchesByAccountID(ctx context.Context, accountID string) ([]domain.Church, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Church), args.Error(1)
}

func (m *MockChurchRepository) UpdateChurch(ctx context.Context, church domain.Church) error {
	args := m.Called(ctx, church)
	return args.Error(0)
}

func (m *MockChurchRepository) UpdateChurchLogo(ctx context.Context, churchID, logoURL, updatedBy string) error {
	args := m.Called(ctx, churchID, logoURL, updatedBy)
	return args.Error(0)
}

func (m *MockChurchRepository) AddMembership(ctx context.Context, membership domain.ChurchMembership) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockChurchRepository) FindMembership(ctx context.Context, accountID, churchID string) (*domain.ChurchMembership, error) {
	args := m.Called(ctx, accountID, churchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChurchMembership), args.Error(1)
}

func (m *MockChurchRepository) ListMemberships(ctx context.Context, churchID string) ([]domain.ChurchMembership, error) {
	args := m.Called(ctx, churchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChurchMembership), args.Error(1)
}

func (m *MockChurchRepository) UpdateMembershipRole(ctx context.Context, accountID, churchID string, role domain.ChurchRole) error {
	args := m.Called(ctx, accountID, churchID, role)
	return args.Error(0)
}

func (m *MockChurchRepository) SaveDonationCategory(ctx context.Context, category domain.DonationCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockChurchRepository) ListDonationCategories(ctx context.Context, churchID string) ([]domain.DonationCategory, error) {
	args := m.Called(ctx, churchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DonationCategory), args.Error(1)
}

func (m *MockChurchRepository) SaveChurchService(ctx context.Context, service domain.ChurchService) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockChurchRepository) ListChurchServices(ctx context.Context, churchID string) ([]domain.ChurchService, error) {
	args := m.Called(ctx, churchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChurchService), args.Error(1)
}

// MockChurchAuthorizer is a mock type for the ChurchAuthorizerSvc interface
type MockChurchAuthorizer struct {
	mock.Mock
}

func (m *MockChurchAuthorizer) ResolveAccess(ctx context.Context, accountID, churchID string) (domain.ChurchRole, error) {
	args := m.Called(ctx, accountID, churchID)
	return args.Get(0).(domain.ChurchRole), args.Error(1)
}

func (m *MockChurchAuthorizer) AuthorizeAction(ctx context.Context, accountID, churchID string, requiredRole domain.ChurchRole) error {
	args := m.Called(ctx, accountID, churchID, requiredRole)
	return args.Error(0)
}

// MockFileStore is a mock type for the storage.FileStore interface
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Upload(ctx context.Context, file multipart.File, folder string) (string, error) {
	args := m.Called(ctx, file, folder)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) Delete(ctx context.Context, publicID string) error {
	args := m.Called(ctx, publicID)
	return args.Error(0)
}

// MockMailer is a mock type for the notify.Mailer interface
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	args := m.Called(ctx, to, subject, htmlBody)
	return args.Error(0)
}

// MockExpenseRepository is a mock type for the ExpenseRepository interface
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, churchID, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, churchID, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context, churchID string, status *domain.ExpenseStatus, limit, offset int) ([]domain.Expense, error) {
	args := m.Called(ctx, churchID, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) UpdateExpenseStatus(ctx context.Context, churchID, expenseID string, status domain.ExpenseStatus, updatedBy string) error {
	args := m.Called(ctx, churchID, expenseID, status, updatedBy)
	return args.Error(0)
}

func (m *MockExpenseRepository) AddStatusChange(ctx context.Context, change domain.ExpenseStatusChange) error {
	args := m.Called(ctx, change)
	return args.Error(0)
}

func (m *MockExpenseRepository) ListStatusHistory(ctx context.Context, churchID, expenseID string) ([]domain.ExpenseStatusChange, error) {
	args := m.Called(ctx, churchID, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseStatusChange), args.Error(1)
}

func (m *MockExpenseRepository) AddAttachment(ctx context.Context, churchID string, attachment domain.ExpenseAttachment) error {
	args := m.Called(ctx, churchID, attachment)
	return args.Error(0)
}

func (m *MockExpenseRepository) ListAttachments(ctx context.Context, churchID, expenseID string) ([]domain.ExpenseAttachment, error) {
	args := m.Called(ctx, churchID, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseAttachment), args.Error(1)
}

func (m *MockExpenseRepository) DeleteAttachment(ctx context.Context, churchID, expenseID, attachmentID string) error {
	args := m.Called(ctx, churchID, expenseID, attachmentID)
	return args.Error(0)
}

// MockCampaignRepository is a mock type for the CampaignRepository interface
type MockCampaignRepository struct {
	mock.Mock
}

func (m *MockCampaignRepository) SaveCampaign(ctx context.Context, campaign domain.DonationCampaign) error {
	args := m.Called(ctx, campaign)
	return args.Error(0)
}

func (m *MockCampaignRepository) FindCampaignByID(ctx context.Context, churchID, campaignID string) (*domain.DonationCampaign, error) {
	args := m.Called(ctx, churchID, campaignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DonationCampaign), args.Error(1)
}

func (m *MockCampaignRepository) ListCampaigns(ctx context.Context, churchID string, limit, offset int) ([]domain.DonationCampaign, error) {
	args := m.Called(ctx, churchID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DonationCampaign), args.Error(1)
}

func (m *MockCampaignRepository) UpdateCampaign(ctx context.Context, campaign domain.DonationCampaign) error {
	args := m.Called(ctx, campaign)
	return args.Error(0)
}

func (m *MockCampaignRepository) UpdateCampaignStatus(ctx context.Context, churchID, campaignID string, status domain.CampaignStatus, updatedBy string) error {
	args := m.Called(ctx, churchID, campaignID, status, updatedBy)
	return args.Error(0)
}

func (m *MockCampaignRepository) AddStatusChange(ctx context.Context, change domain.CampaignStatusChange) error {
	args := m.Called(ctx, change)
	return args.Error(0)
}

func (m *MockCampaignRepository) ListStatusHistory(ctx context.Context, churchID, campaignID string) ([]domain.CampaignStatusChange, error) {
	args := m.Called(ctx, churchID, campaignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CampaignStatusChange), args.Error(1)
}

func (m *MockCampaignRepository) AddToRaisedAmount(ctx context.Context, churchID, campaignID string, amount decimal.Decimal) error {
	args := m.Called(ctx, churchID, campaignID, amount)
	return args.Error(0)
}

// MockDonationRepository is a mock type for the DonationRepository interface
type MockDonationRepository struct {
	mock.Mock
}

func (m *MockDonationRepository) SaveDonation(ctx context.Context, donation domain.Donation) error {
	args := m.Called(ctx, donation)
	return args.Error(0)
}

func (m *MockDonationRepository) FindDonationByID(ctx context.Context, churchID, donationID string) (*domain.Donation, error) {
	args := m.Called(ctx, churchID, donationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donation), args.Error(1)
}

func (m *MockDonationRepository) ListDonations(ctx context.Context, churchID string, filter portsrepo.DonationFilter, limit, offset int) ([]domain.Donation, error) {
	args := m.Called(ctx, churchID, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Donation), args.Error(1)
}

func (m *MockDonationRepository) UpdateDonation(ctx context.Context, donation domain.Donation) error {
	args := m.Called(ctx, donation)
	return args.Error(0)
}

func (m *MockDonationRepository) DeleteDonation(ctx context.Context, churchID, donationID string) error {
	args := m.Called(ctx, churchID, donationID)
	return args.Error(0)
}

// MockFinanceRepository is a mock type for the FinanceRepository interface
type MockFinanceRepository struct {
	mock.Mock
}

func (m *MockFinanceRepository) SaveManualRecord(ctx context.Context, record domain.ManualFinancialRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockFinanceRepository) FindManualRecordByID(ctx context.Context, churchID, recordID string) (*domain.ManualFinancialRecord, error) {
	args := m.Called(ctx, churchID, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ManualFinancialRecord), args.Error(1)
}

func (m *MockFinanceRepository) ListManualRecords(ctx context.Context, churchID string, limit, offset int) ([]domain.ManualFinancialRecord, error) {
	args := m.Called(ctx, churchID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ManualFinancialRecord), args.Error(1)
}

func (m *MockFinanceRepository) UpdateManualRecord(ctx context.Context, record domain.ManualFinancialRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockFinanceRepository) DeleteManualRecord(ctx context.Context, churchID, recordID string) error {
	args := m.Called(ctx, churchID, recordID)
	return args.Error(0)
}

func (m *MockFinanceRepository) SumDonations(ctx context.Context, churchID string, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, churchID, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockFinanceRepository) SumDonationsByCategory(ctx context.Context, churchID string, from, to time.Time) ([]domain.CategoryTotal, error) {
	args := m.Called(ctx, churchID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryTotal), args.Error(1)
}

func (m *MockFinanceRepository) SumPaidExpenses(ctx context.Context, churchID string, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, churchID, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockFinanceRepository) SumManualRecords(ctx context.Context, churchID string, kind domain.FinancialRecordKind, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, churchID, kind, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockNotificationRepository is a mock type for the NotificationRepository interface
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) SaveNotifications(ctx context.Context, notifications []domain.Notification) error {
	args := m.Called(ctx, notifications)
	return args.Error(0)
}

func (m *MockNotificationRepository) FindNotificationByID(ctx context.Context, churchID, accountID, notificationID string) (*domain.Notification, error) {
	args := m.Called(ctx, churchID, accountID, notificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) ListNotificationsByAccount(ctx context.Context, churchID, accountID string, unreadOnly bool, limit, offset int) ([]domain.Notification, error) {
	args := m.Called(ctx, churchID, accountID, unreadOnly, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkNotificationRead(ctx context.Context, churchID, accountID, notificationID string, readAt time.Time) error {
	args := m.Called(ctx, churchID, accountID, notificationID, readAt)
	return args.Error(0)
}

// MockMemberRepository is a mock type for the MemberRepository interface
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) FindMemberByID(ctx context.Context, churchID, memberID string) (*domain.Member, error) {
	args := m.Called(ctx, churchID, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) ListMembers(ctx context.Context, churchID string, status *domain.MemberStatus, limit, offset int) ([]domain.Member, error) {
	args := m.Called(ctx, churchID, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

func (m *MockMemberRepository) UpdateMember(ctx context.Context, member domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) DeleteMember(ctx context.Context, churchID, memberID string) error {
	args := m.Called(ctx, churchID, memberID)
	return args.Error(0)
}

func (m *MockMemberRepository) AddNote(ctx context.Context, note domain.MemberNote) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockMemberRepository) ListNotes(ctx context.Context, churchID, memberID string) ([]domain.MemberNote, error) {
	args := m.Called(ctx, churchID, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MemberNote), args.Error(1)
}

func (m *MockMemberRepository) FindNoteByID(ctx context.Context, churchID, memberID, noteID string) (*domain.MemberNote, error) {
	args := m.Called(ctx, churchID, memberID, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MemberNote), args.Error(1)
}

func (m *MockMemberRepository) UpdateNote(ctx context.Context, note domain.MemberNote) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockMemberRepository) DeleteNote(ctx context.Context, churchID, memberID, noteID string) error {
	args := m.Called(ctx, churchID, memberID, noteID)
	return args.Error(0)
}

// MockTeamRepository is a mock type for the TeamRepository interface
type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) SaveTeam(ctx context.Context, team domain.VolunteerTeam) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) FindTeamByID(ctx context.Context, churchID, teamID string) (*domain.VolunteerTeam, error) {
	args := m.Called(ctx, churchID, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VolunteerTeam), args.Error(1)
}

func (m *MockTeamRepository) ListTeams(ctx context.Context, churchID string, limit, offset int) ([]domain.VolunteerTeam, error) {
	args := m.Called(ctx, churchID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VolunteerTeam), args.Error(1)
}

func (m *MockTeamRepository) UpdateTeam(ctx context.Context, team domain.VolunteerTeam) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) DeleteTeam(ctx context.Context, churchID, teamID, requestingAccountID string) error {
	args := m.Called(ctx, churchID, teamID, requestingAccountID)
	return args.Error(0)
}

func (m *MockTeamRepository) AddTeamMember(ctx context.Context, churchID string, tm domain.TeamMember) error {
	args := m.Called(ctx, churchID, tm)
	return args.Error(0)
}

func (m *MockTeamRepository) RemoveTeamMember(ctx context.Context, churchID, teamID, memberID string) error {
	args := m.Called(ctx, churchID, teamID, memberID)
	return args.Error(0)
}

func (m *MockTeamRepository) ListTeamMembers(ctx context.Context, churchID, teamID string) ([]domain.TeamMember, error) {
	args := m.Called(ctx, churchID, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TeamMember), args.Error(1)
}

// MockEntitlementSvc is a mock type for the EntitlementSvc interface
type MockEntitlementSvc struct {
	mock.Mock
}

func (m *MockEntitlementSvc) CurrentPlan(ctx context.Context, accountID string) (domain.Plan, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(domain.Plan), args.Error(1)
}

func (m *MockEntitlementSvc) Evaluate(ctx context.Context, accountID string, action domain.EntitlementAction) (domain.EntitlementDecision, error) {
	args := m.Called(ctx, accountID, action)
	return args.Get(0).(domain.EntitlementDecision), args.Error(1)
}

func (m *MockEntitlementSvc) RequireEntitlement(ctx context.Context, accountID string, action domain.EntitlementAction) error {
	args := m.Called(ctx, accountID, action)
	return args.Error(0)
}

func (m *MockEntitlementSvc) RequireMinimumPlan(ctx context.Context, accountID string, required domain.Plan) error {
	args := m.Called(ctx, accountID, required)
	return args.Error(0)
}

func (m *MockEntitlementSvc) RequireActiveSubscription(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// MockAccountRepository is a mock type for the AccountRepository interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByProviderDetails(ctx context.Context, authProvider, providerUserID string) (*domain.Account, error) {
	args := m.Called(ctx, authProvider, providerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) SetAccountActive(ctx context.Context, accountID string, isActive bool, updatedBy string) error {
	args := m.Called(ctx, accountID, isActive, updatedBy)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateRefreshToken(ctx context.Context, accountID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, accountID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockAccountRepository) ClearRefreshToken(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockAccountRepository) MarkAccountDeleted(ctx context.Context, accountID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, accountID, deletedAt, deletedBy)
	return args.Error(0)
}
