package services

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"redbus-scraper/models"
)

var (
	// ratingRegexp captures the first integer or decimal number
	ratingRegexp = regexp.MustCompile(`\d+(?:\.\d+)?`)
	// seatsRegexp captures the first integer
	seatsRegexp = regexp.MustCompile(`\d+`)

	sleeperRegexp = regexp.MustCompile(`(?i)\b(?:sleeper|sleeping)\b`)
	seaterRegexp  = regexp.MustCompile(`(?i)\b(?:seater|sitting)\b`)
	nonACRegexp   = regexp.MustCompile(`(?i)\bnon[\s-]?a/?c\b`)
	acRegexp      = regexp.MustCompile(`(?i)\ba/?c\b`)

	// pricePrefixes are textual currency markers stripped ahead of the amount
	pricePrefixes = []string{"INR", "Rs.", "Rs"}
)

// ClassifyBusType turns free bus-type text into a "Sleeper + AC" style tag list.
// Tags are emitted in the order Sleeper, Seater, AC, Non-AC. Text without any
// known keyword is returned unchanged.
//
//	"AC Sleeper (2+1)"  → "Sleeper + AC"
//	"NON A/C Seater"    → "Seater + Non-AC"
//	"Luxury Coach"      → "Luxury Coach"
func ClassifyBusType(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return models.NotSpecified
	}

	var tags []string
	if sleeperRegexp.MatchString(raw) {
		tags = append(tags, "Sleeper")
	}
	if seaterRegexp.MatchString(raw) {
		tags = append(tags, "Seater")
	}
	// "Non-AC" contains "AC"; only count AC tokens left after removing non-AC ones
	if acRegexp.MatchString(nonACRegexp.ReplaceAllString(raw, " ")) {
		tags = append(tags, "AC")
	}
	if nonACRegexp.MatchString(raw) {
		tags = append(tags, "Non-AC")
	}

	if len(tags) == 0 {
		return raw
	}
	return strings.Join(tags, " + ")
}

// ParseRating extracts the first number of raw as a star rating.
func ParseRating(raw string) models.Rating {
	match := ratingRegexp.FindString(raw)
	if match == "" {
		return models.Rating{}
	}
	val, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return models.Rating{}
	}
	return models.Rating{Value: val, Valid: true}
}

// ParseSeats extracts the first integer of raw as a seat count.
func ParseSeats(raw string) models.Seats {
	match := seatsRegexp.FindString(raw)
	if match == "" {
		return models.Seats{}
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return models.Seats{}
	}
	return models.Seats{Value: n, Valid: true}
}

// CleanPrice strips a leading currency marker and surrounding whitespace.
// The amount itself is not validated.
func CleanPrice(raw string) string {
	s := strings.TrimSpace(raw)
	for {
		trimmed := strings.TrimLeftFunc(s, func(r rune) bool {
			return unicode.Is(unicode.Sc, r) || unicode.IsSpace(r)
		})
		for _, p := range pricePrefixes {
			if len(trimmed) > len(p) && strings.EqualFold(trimmed[:len(p)], p) && !isLetter(trimmed[len(p)]) {
				trimmed = trimmed[len(p):]
				break
			}
		}
		if trimmed == s {
			break
		}
		s = trimmed
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return models.NotSpecified
	}
	return s
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

