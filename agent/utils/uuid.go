package utils

import (
	"github.com/google/uuid"
)

// Version is the current version of the agent binary.
var Version = "0.9.0"

// UUID generates a new unique id with Go's crypto package, and returns
// the value as a string. These are used as message ids and thread ids.
func UUID() string {
	return uuid.New().String()
}
