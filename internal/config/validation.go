package config

import (
	"fmt"
	"strconv"
	"time"
)

// ValidateTimeout validates timeout duration
func ValidateTimeout(timeout time.Duration, name string) error {
	if timeout <= 0 {
		return fmt.Errorf("%s timeout must be positive", name)
	}
	if timeout > 30*time.Minute {
		return fmt.Errorf("%s timeout too large (max 30 minutes)", name)
	}
	return nil
}

// ValidatePort validates a TCP port given as a string
func ValidatePort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("port %q is not a number", port)
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("port %d out of range (1-65535)", n)
	}
	return nil
}
