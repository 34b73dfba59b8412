package database

import (
	"github.com/rs/zerolog/log"
)

// readOrDefault runs read and, when it fails, returns fallback() together
// with the read error. Callers decide whether the error reaches the client;
// public reads usually drop it and serve the fallback.
func readOrDefault[T any](what string, read func() (T, error), fallback func() T) (T, error) {
	v, err := read()
	if err == nil {
		return v, nil
	}
	log.Warn().Err(err).Str("collection", what).Msg("store read failed, serving defaults")
	return fallback(), err
}

func emptySlice[T any]() []T {
	return []T{}
}
