// Package translate renders diagnostic text in the user's locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer = newPrinter()

func newPrinter() *message.Printer {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("asm92: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	return message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
