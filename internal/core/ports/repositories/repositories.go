package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// Remote is nil when no backend is configured.
type RepositoryProvider struct {
	Remote   RemoteStore
	UserRepo UserRepositoryFacade
}
