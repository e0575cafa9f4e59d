// Package translate renders user facing messages in the language of the
// host locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("quadstack: locale: %v", err)
	}

	SetLanguage(locales...)
}

// SetLanguage selects the best match of the given BCP 47 language tags.
// With no tags, messages are rendered in en-US.
func SetLanguage(tags ...string) {
	if len(tags) == 0 {
		tags = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(tags...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
