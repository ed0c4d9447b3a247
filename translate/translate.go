// Package translate formats user facing messages for the user's locale.
package translate

import (
	"github.com/jeandeaual/go-locale"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/message"
)

// fallback is used when the system reports no usable locale.
const fallback = "en-US"

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Warnf("translate: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{fallback}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
