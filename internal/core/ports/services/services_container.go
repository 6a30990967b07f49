package services

// ServiceContainer bundles the service interfaces handed to the HTTP
// layer.
type ServiceContainer struct {
	Account   AccountService
	Entry     EntryService
	Reporting ReportingService
	Dashboard DashboardService
	User      UserService
}
