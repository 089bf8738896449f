package logging

import "errors"

// Single sink failures pass through unwrapped
func joinErrors(errs ...error) (err error) {
	var failed []error
	for _, sinkErr := range errs {
		if sinkErr != nil {
			failed = append(failed, sinkErr)
		}
	}

	switch len(failed) {
	case 0:
	case 1:
		err = failed[0]
	default:
		err = errors.Join(failed...)
	}
	return
}
