package services

import (
	portsrepo "github.com/openbooks/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/openbooks/bookkeeping_app/internal/core/ports/services"
)

// NewServiceContainer wires every service over the given repository set.
// cashAccountCode selects the dashboard's cash account; empty picks the
// conventional default.
func NewServiceContainer(repos portsrepo.RepositoryProvider, cashAccountCode string) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:   NewAccountService(repos.AccountRepo, repos.EntryRepo),
		Entry:     NewEntryService(repos.EntryRepo, repos.AccountRepo),
		Reporting: NewReportingService(repos.AccountRepo, repos.EntryRepo),
		Dashboard: NewDashboardService(repos.AccountRepo, repos.EntryRepo, cashAccountCode),
		User:      NewUserService(repos.UserRepo),
	}
}
