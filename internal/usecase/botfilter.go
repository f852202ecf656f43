// Package usecase contains the business logic of the application:
// the metric collectors, the attribution tracker they credit, and the
// per-repository run orchestration.
package usecase

import "strings"

// knownAutomation lists automation accounts that do not match the
// substring checks below.
var knownAutomation = map[string]struct{}{
	"renovate":    {},
	"greenkeeper": {},
	"mergify":     {},
	"codecov":     {},
	"snyk":        {},
	"netlify":     {},
	"vercel":      {},
	"web-flow":    {},
}

// IsExcluded reports whether a login must never be credited. Excluded
// logins are empty ones, the "[bot]" suffix GitHub gives app accounts,
// anything containing the substring "bot" (case-sensitive, no word
// boundary, so humans with "bot" in their name are false positives),
// and an explicit deny-list of automation accounts.
func IsExcluded(login string) bool {
	if login == "" {
		return true
	}
	if strings.HasSuffix(login, "[bot]") {
		return true
	}
	if strings.Contains(login, "bot") {
		return true
	}
	_, denied := knownAutomation[login]
	return denied
}
