package util

// ErrWrap discards an error in favour of a fallback value. It makes call
// sites like flag lookups read as plain assignments.
func ErrWrap[T any](fallback T) func(T, error) T {
	return func(value T, err error) T {
		if err != nil {
			return fallback
		}
		return value
	}
}

// ErrOnly drops the value of a two-return call, keeping the error.
func ErrOnly[T any](_ T, err error) error {
	return err
}

// ErrSuppress swallows an error on purpose.
func ErrSuppress(_ error) {}

// Chunk splits data into runs of at most size elements.
func Chunk[T any](data []T, size int) [][]T {
	if size < 1 {
		return [][]T{data}
	}

	var chunks [][]T
	for size < len(data) {
		chunks = append(chunks, data[:size])
		data = data[size:]
	}
	return append(chunks, data)
}

// First returns the first non-empty string.
func First(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

// Excerpt shortens a string for log output.
func Excerpt(value string, length ...int) string {
	limit := 80
	if len(length) > 0 {
		limit = length[0]
	}
	if len(value) <= limit {
		return value
	}
	return value[:limit] + "..."
}
