package api

import "fmt"

// FetchError is any non-2xx response. It is terminal for the request;
// nothing in this client retries.
type FetchError struct {
	Method string
	Path   string
	Status int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.Status)
}

// ShapeError is a 2xx response whose body does not match the declared
// shape of the endpoint. A 2xx body is never trusted without passing
// shape validation.
type ShapeError struct {
	Path string
	Err  error
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: response shape mismatch: %v", e.Path, e.Err)
}

func (e *ShapeError) Unwrap() error {
	return e.Err
}
