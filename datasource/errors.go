package datasource

import "fmt"

// UpstreamError indicates a non-200 HTTP status from an upstream API.
type UpstreamError struct {
	API    string
	Status int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.API, e.Status)
}

// DataError indicates a 200 response whose body is missing the fields the
// caller needs (no loc string, no address object, empty results and so on).
type DataError struct {
	API    string
	Reason string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("%s returned unusable data: %s", e.API, e.Reason)
}
