package dogs

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLocale es el locale de collation para ListAll si no se configura otro.
const DefaultLocale = "en"

// ParseLocale valida un tag BCP 47 ("en", "es-AR", ...). Vacío => DefaultLocale.
func ParseLocale(s string) (language.Tag, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		s = DefaultLocale
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", s, err)
	}
	return tag, nil
}

// sortByName ordena por nombre con collation del locale, no por bytes.
// collate.Collator no es seguro para uso concurrente: se crea uno por llamada.
func sortByName(tag language.Tag, items []Dog) {
	c := collate.New(tag)
	sort.SliceStable(items, func(i, j int) bool {
		return c.CompareString(items[i].Name, items[j].Name) < 0
	})
}
