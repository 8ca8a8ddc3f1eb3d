//go:build !linux

package session

import "context"

// watchSleep is only wired to logind on Linux. Other platforms rely on the
// control-port retry policy to recover after wake.
func (s *Session) watchSleep(ctx context.Context) {}
