package character

// LibraryBuilderOption is a functional option for configuring a Library.
// Use the With* functions to create options.
type LibraryBuilderOption func(*libraryImpl)

// WithLoadWorkers sets the number of parallel workers used when loading
// character files. Values < 1 are treated as 1.
//
// Parameters:
//   - workers: worker count for parallel file parsing
//
// Returns:
//   - LibraryBuilderOption: option function to apply
func WithLoadWorkers(workers int) LibraryBuilderOption {
	return func(l *libraryImpl) {
		l.loadWorkers = workers
	}
}
