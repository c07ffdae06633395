package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	churchRepo := newPgxChurchRepository(dbPool)
	subscriptionRepo := newPgxSubscriptionRepository(dbPool)
	usageRepo := newPgxUsageRepository(dbPool)
	memberRepo := newPgxMemberRepository(dbPool)
	teamRepo := newPgxTeamRepository(dbPool)
	donationRepo := newPgxDonationRepository(dbPool)
	expenseRepo := newPgxExpenseRepository(dbPool)
	campaignRepo := newPgxCampaignRepository(dbPool)
	financeRepo := newPgxFinanceRepository(dbPool)
	notificationRepo := newPgxNotificationRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:      accountRepo,
		ChurchRepo:       churchRepo,
		SubscriptionRepo: subscriptionRepo,
		UsageRepo:        usageRepo,
		MemberRepo:       memberRepo,
		TeamRepo:         teamRepo,
		DonationRepo:     donationRepo,
		ExpenseRepo:      expenseRepo,
		CampaignRepo:     campaignRepo,
		FinanceRepo:      financeRepo,
		NotificationRepo: notificationRepo,
	}
}
