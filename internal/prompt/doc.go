// Package prompt asks the user for missing scaffold arguments. A Driver is
// either survey-backed (for terminals) or a plain numbered-menu reader for
// pipes and tests.
package prompt
