// Package icons maps currency symbols to the keys used by the token icon catalogue.
package icons

// DefaultExceptions lists feed symbols whose icon file uses a different casing.
var DefaultExceptions = map[string]string{
	"STATOM":  "stATOM",
	"STEVMOS": "stEVMOS",
	"RATOM":   "rATOM",
	"STOSMO":  "stOSMO",
	"STLUNA":  "stLUNA",
}

// Resolver resolves icon keys and URLs. Safe for concurrent use.
type Resolver struct {
	baseURL    string
	exceptions map[string]string
}

// NewResolver creates a resolver. A nil exceptions table uses DefaultExceptions.
// The table is copied.
func NewResolver(baseURL string, exceptions map[string]string) *Resolver {
	if exceptions == nil {
		exceptions = DefaultExceptions
	}
	table := make(map[string]string, len(exceptions))
	for symbol, key := range exceptions {
		table[symbol] = key
	}
	return &Resolver{baseURL: baseURL, exceptions: table}
}

// IconKey returns the icon key for the currency. Unknown symbols map to themselves.
func (r *Resolver) IconKey(currency string) string {
	if key, ok := r.exceptions[currency]; ok {
		return key
	}
	return currency
}

// IconURL returns the svg location of the currency icon, or "" when no base URL is configured.
func (r *Resolver) IconURL(currency string) string {
	if r.baseURL == "" {
		return ""
	}
	return r.baseURL + r.IconKey(currency) + ".svg"
}
