// Package options implements the generic functional-option machinery used by
// logpack's configurable types.
//
// Public packages expose typed With* constructors built on Option[T], so a
// configuration step can both mutate the target and reject invalid values:
//
//	func WithBufferSize(size int) Option {
//	    return options.New(func(c *config) error {
//	        if size <= 0 {
//	            return errs.ErrInvalidBufferSize
//	        }
//	        c.bufferSize = size
//	        return nil
//	    })
//	}
package options

// Option represents a functional option for configuring any type T.
type Option[T any] interface {
	apply(T) error
}

// Func is a generic functional option that wraps a function.
// It implements the Option interface for any type T.
type Func[T any] struct {
	applyFunc func(T) error
}

// apply implements the Option interface.
func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New creates a new functional option from a function that may fail.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// NoError creates a functional option from a function that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies options to a target in order, stopping at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
