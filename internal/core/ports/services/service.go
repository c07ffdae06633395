package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Account      AccountSvcFacade
	Token        TokenSvcFacade
	GoogleAuth   GoogleAuthSvcFacade
	Church       ChurchSvcFacade
	Subscription SubscriptionSvcFacade
	Member       MemberSvcFacade
	Team         TeamSvcFacade
	Donation     DonationSvcFacade
	Expense      ExpenseSvcFacade
	Campaign     CampaignSvcFacade
	Finance      FinanceSvcFacade
	Notification NotificationSvcFacade
}
