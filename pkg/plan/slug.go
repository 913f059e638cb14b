package plan

import "strings"

// Slug derives the object-key-safe identifier used in artifact paths
// (raw/<slug>.zip, models/<slug>_model.pth, bundles/<slug>.zip).
func Slug(name string) string {
	var b strings.Builder
	lastUnderscore := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}

	slug := strings.Trim(b.String(), "_")
	if len(slug) > 40 {
		slug = strings.Trim(slug[:40], "_")
	}
	if slug == "" {
		return "project"
	}
	return slug
}
