package webhook

import (
	"regexp"
	"strings"
)

// serviceEntry maps a form-builder checkbox identifier to the display
// name stored on bookings. Order matters: matched services are emitted
// in catalog order.
type serviceEntry struct {
	Key     string
	Display string
}

var serviceCatalog = []serviceEntry{
	{"complete-exterior-package", "Complete Exterior Package"},
	{"premium-interior-package", "Premium Interior Package"},
	{"complete-interior-package", "Complete Interior Package"},
	{"premium-wash-package", "Premium Wash Package"},
	{"1-step-paint-correction", "1 Step Paint Correction"},
	{"aov-optimization", "AOV Optimization"},
	{"graphene-ceramic-coating", "Graphene Ceramic Coating"},
	{"mini-detail", "Mini Detail"},
	{"maintenance-wash-wipe-package", "Maintenance Wash & Wipe Package"},
	{"extra-add-on-services", "Extra Add-On Services"},
	{"2-step-paint-correction", "2 Step Paint Correction"},
	{"adams-graphene-ceramic-coating", "Adams Graphene Ceramic Coating"},
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// fieldVariants returns every spelling the form builder may use for a
// checkbox field, depending on its version: the identifier itself, its
// underscore and space forms, and two slugs derived from the display
// name.
func fieldVariants(e serviceEntry) []string {
	return []string{
		e.Key,
		strings.ReplaceAll(e.Key, "-", "_"),
		strings.ReplaceAll(e.Key, "-", " "),
		whitespaceRe.ReplaceAllString(strings.ToLower(e.Display), "-"),
		whitespaceRe.ReplaceAllString(strings.ToLower(e.Display), "_"),
	}
}
