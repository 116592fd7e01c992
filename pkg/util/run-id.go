package util

import "github.com/google/uuid"

// generate returns a uuid-v4 string to use as run id
func generate() string {
	return uuid.NewString()
}
