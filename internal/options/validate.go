// Package options provides shared utilities for option validation across packages.
package options

import "github.com/erraggy/oasmerge/oaserrors"

// ValidateSingleInputSource ensures exactly one input source is specified.
// sources reports, per candidate source, whether it was set. The returned
// error is a *oaserrors.ConfigError for option carrying noSourceMsg or
// multiSourceMsg.
func ValidateSingleInputSource(option, noSourceMsg, multiSourceMsg string, sources ...bool) error {
	sourceCount := 0
	for _, hasSource := range sources {
		if hasSource {
			sourceCount++
		}
	}

	switch {
	case sourceCount == 0:
		return &oaserrors.ConfigError{Option: option, Message: noSourceMsg}
	case sourceCount > 1:
		return &oaserrors.ConfigError{Option: option, Value: sourceCount, Message: multiSourceMsg}
	}
	return nil
}
