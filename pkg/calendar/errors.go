package calendar

import "fmt"

// ErrUnauthenticated signals that the data source has no valid credentials.
// Presentation layers translate it into a login prompt; it is never retried
// here.
var ErrUnauthenticated = fmt.Errorf("user is unauthenticated, authentication is required")
