package record

// TestResult is a terminal success/failure record with a message and an
// open detail map. It is not chained further.
type TestResult[T any] struct {
	ok      bool
	value   T
	message string
	details map[string]string
}

func Pass[T any](value T, message string) TestResult[T] {
	return TestResult[T]{ok: true, value: value, message: message}
}

func Fail[T any](message string) TestResult[T] {
	return TestResult[T]{ok: false, message: message}
}

// WithDetail returns a copy of the record with the detail added. The
// receiver is not mutated.
func (t TestResult[T]) WithDetail(key, value string) TestResult[T] {
	details := make(map[string]string, len(t.details)+1)
	for k, v := range t.details {
		details[k] = v
	}
	details[key] = value

	return TestResult[T]{ok: t.ok, value: t.value, message: t.message, details: details}
}

func (t TestResult[T]) OK() bool {
	return t.ok
}

func (t TestResult[T]) Value() T {
	return t.value
}

func (t TestResult[T]) Message() string {
	return t.message
}

// Details returns a copy of the detail map; mutating it does not affect the
// record.
func (t TestResult[T]) Details() map[string]string {
	details := make(map[string]string, len(t.details))
	for k, v := range t.details {
		details[k] = v
	}
	return details
}

// Unit is the payload type for operations that produce no value.
type Unit struct{}

// Success builds a passing void result.
func Success(message string) TestResult[Unit] {
	return Pass(Unit{}, message)
}

// Failure builds a failing void result.
func Failure(message string) TestResult[Unit] {
	return Fail[Unit](message)
}
