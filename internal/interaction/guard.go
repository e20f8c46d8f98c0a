package interaction

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// guard runs one target callback and swallows a panic so a broken target
// cannot stop the tick. It reports whether fn returned normally.
func guard(log logrus.FieldLogger, name, hook string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(logrus.Fields{
				"target": name,
				"hook":   hook,
				"panic":  fmt.Sprint(r),
			}).Error("Target callback panicked")
			ok = false
		}
	}()
	fn()
	return true
}
