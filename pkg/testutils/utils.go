package testutils

import (
	"fmt"

	"github.com/google/uuid"
)

// RandomUserID returns a unique user id for test isolation.
func RandomUserID() string {
	return fmt.Sprintf("test-user-%s", uuid.NewString())
}
