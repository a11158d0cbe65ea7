package middleware

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/deemkeen/keytan/util"
)

// SessionLogger records who connected with which key and for how long.
func SessionLogger() wish.Middleware {
	return func(h ssh.Handler) ssh.Handler {
		return func(s ssh.Session) {
			start := time.Now()
			_, _, hasPty := s.Pty()
			logger := log.With(
				"user", s.User(),
				"remote", s.RemoteAddr().String(),
				"key", util.PublicKeyFingerprint(s.PublicKey()),
			)
			logger.Info("Session started", "pty", hasPty)
			h(s)
			logger.Info("Session ended", "duration", time.Since(start).Round(time.Millisecond))
		}
	}
}
