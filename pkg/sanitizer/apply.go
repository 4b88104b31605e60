package sanitizer

// Apply runs a value through a chain of transformations in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value

	for _, transform := range transforms {
		result = transform(result)
	}

	return result
}

// Compose creates a reusable sanitization pipeline from a transformation
// chain. Preferred over repeated Apply calls when the same chain is used in
// multiple places.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
