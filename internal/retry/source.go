//go:generate mockgen -source=source.go -destination=./source_mocks_test.go -package=retry_test

package retry

// PolicySource supplies the retry policy at the start of each call.
type PolicySource interface {
	RetryPolicy() (Policy, error)
}

// PolicySourceFunc adapts a function to PolicySource.
type PolicySourceFunc func() (Policy, error)

func (f PolicySourceFunc) RetryPolicy() (Policy, error) {
	return f()
}
