package utils

import "github.com/google/uuid"

// UUIDService hands out identifiers used to tag the log lines of one run.
type UUIDService struct{}

func (UUIDService) New() string {
	return uuid.NewString()
}
