package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string. Used for request ids and run ids.
var NewULID = func() string {
	return ulid.Make().String()
}
