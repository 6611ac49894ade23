package util

import (
	"regexp"
	"strings"
)

const MaxSearchLength = 100

var (
	searchStripper = strings.NewReplacer("<", "", ">", "", `"`, "", "'", "", ";", "", `\`, "")
	likeEscaper    = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)
	emailPattern   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// SanitizeSearchTerm trims the term, drops markup and quoting characters and keeps at most
// MaxSearchLength runes.
func SanitizeSearchTerm(term string) string {
	cleaned := searchStripper.Replace(strings.TrimSpace(term))
	if runes := []rune(cleaned); len(runes) > MaxSearchLength {
		cleaned = string(runes[:MaxSearchLength])
	}
	return strings.TrimSpace(cleaned)
}

// LikeContains builds a LIKE pattern matching the literal term anywhere, escaping wildcards
// with a backslash.
func LikeContains(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func ValidRating(r float64) bool {
	return r >= 0 && r <= 5
}

func ValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

func ValidDuration(days int) bool {
	return days >= 1 && days <= 365
}

func ValidPrice(price float64) bool {
	return price > 0 && price <= 50000
}
