package repositories

// RepositoryProvider bundles all repository implementations for injection
// into the service container.
type RepositoryProvider struct {
	AccountRepo      AccountRepository
	ChurchRepo       ChurchRepository
	SubscriptionRepo SubscriptionRepository
	UsageRepo        UsageCounters
	MemberRepo       MemberRepository
	TeamRepo         TeamRepository
	DonationRepo     DonationRepository
	ExpenseRepo      ExpenseRepository
	CampaignRepo     CampaignRepository
	FinanceRepo      FinanceRepository
	NotificationRepo NotificationRepository
}
