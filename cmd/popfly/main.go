package main

import (
	"errors"
	"os"

	"popfly/cmd/popfly/commands"
	"popfly/internal/domain"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps input and engine errors to 2 so scripts can tell a bad
// coordinate from an operational failure.
func exitCode(err error) int {
	var (
		tokenErr  *domain.InvalidTokenError
		finiteErr *domain.NonFiniteValueError
		shapeErr  *domain.ShapeError
	)
	if errors.As(err, &tokenErr) || errors.As(err, &finiteErr) || errors.As(err, &shapeErr) {
		return 2
	}
	return 1
}
