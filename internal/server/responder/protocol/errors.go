package protocol

import (
	"errors"
	"fmt"
)

// ErrUnsupportedProtocol is matched by every UnsupportedProtocolError.
var ErrUnsupportedProtocol = errors.New("unsupported protocol")

// UnsupportedProtocolError is returned when an app is offered a scope kind it does not serve.
type UnsupportedProtocolError struct {
	Kind Kind
}

func (e *UnsupportedProtocolError) Error() string {
	return fmt.Sprintf("unsupported protocol %q", string(e.Kind))
}

func (e *UnsupportedProtocolError) Is(target error) bool {
	return target == ErrUnsupportedProtocol
}
