package logger

import "github.com/sirupsen/logrus"

// New returns an entry on the process-wide logrus logger tagged with component,
// so lines land in whatever sink and level the host has configured.
func New(component string) *logrus.Entry {
	return logrus.StandardLogger().WithField("component", component)
}
