package repositories

// RepositoryProvider bundles the repository implementations handed to
// the service layer, regardless of the backing store.
type RepositoryProvider struct {
	AccountRepo AccountRepository
	EntryRepo   EntryRepository
	UserRepo    UserRepository
}
