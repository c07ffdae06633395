package services

import (
	portsrepo "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/services"
	"github.com/shepherdsuite/church_mgmt_app/internal/platform/config"
	"github.com/shepherdsuite/church_mgmt_app/internal/platform/notify"
	"github.com/shepherdsuite/church_mgmt_app/internal/platform/storage"
)

// NewServiceContainer wires the full service graph from repositories and
// platform adapters. The church service doubles as the church-scoped
// authorizer for every other service.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider, fileStore storage.FileStore, mailer notify.Mailer) *portssvc.ServiceContainer {
	googleAuthSvc := NewGoogleAuthService(cfg)
	accountSvc := NewAccountService(repos.AccountRepo, googleAuthSvc)
	tokenSvc := NewTokenService(cfg, accountSvc)

	subscriptionSvc := NewSubscriptionService(repos.SubscriptionRepo, repos.UsageRepo)
	churchSvc := NewChurchService(repos.ChurchRepo, repos.AccountRepo, subscriptionSvc, fileStore)

	memberSvc := NewMemberService(repos.MemberRepo, churchSvc)
	teamSvc := NewTeamService(repos.TeamRepo, repos.ChurchRepo, subscriptionSvc, churchSvc)
	donationSvc := NewDonationService(repos.DonationRepo, repos.CampaignRepo, repos.ChurchRepo, churchSvc)
	expenseSvc := NewExpenseService(repos.ExpenseRepo, repos.ChurchRepo, fileStore, churchSvc)
	campaignSvc := NewCampaignService(repos.CampaignRepo, repos.ChurchRepo, subscriptionSvc, churchSvc)
	financeSvc := NewFinanceService(repos.FinanceRepo, repos.ChurchRepo, churchSvc)
	notificationSvc := NewNotificationService(repos.NotificationRepo, repos.ChurchRepo, repos.AccountRepo, mailer, churchSvc)

	return &portssvc.ServiceContainer{
		Account:      accountSvc,
		Token:        tokenSvc,
		GoogleAuth:   googleAuthSvc,
		Church:       churchSvc,
		Subscription: subscriptionSvc,
		Member:       memberSvc,
		Team:         teamSvc,
		Donation:     donationSvc,
		Expense:      expenseSvc,
		Campaign:     campaignSvc,
		Finance:      financeSvc,
		Notification: notificationSvc,
	}
}
