// Package idnumber parses PRC resident identity numbers (GB 11643-1999).
//
// Second-generation numbers have 18 characters ending in a MOD 11-2 check
// character; first-generation numbers have 15 digits and a two-digit birth
// year in the 1900s. The leading six digits are the division code in force
// when the number was issued, resolved here against the birth year's table.
package idnumber

import (
	"errors"
	"time"

	"xzqh/internal/region"
)

var (
	ErrInvalidLength    = errors.New("invalid length")
	ErrInvalidCharacter = errors.New("invalid character")
	ErrWrongCheckNumber = errors.New("wrong check number")
	ErrInvalidBirthday  = errors.New("invalid birthday")
)

// Sex encoded by the sequence digit.
type Sex int

const (
	Female Sex = iota
	Male
)

func (s Sex) String() string {
	if s == Male {
		return "male"
	}
	return "female"
}

// Resolver maps a division code to names for a given year.
type Resolver interface {
	Lookup(year int, code string) region.Region
}

// Parsed is the information carried by a valid number.
type Parsed struct {
	Sex      Sex
	Birthday time.Time
	Code     string
	Region   region.Region
}

var checkWeights = [17]int{7, 9, 10, 5, 8, 4, 2, 1, 6, 3, 7, 9, 10, 5, 8, 4, 2}

// ParseV2 parses an 18-character second-generation number. A nil resolver
// leaves Region empty.
func ParseV2(id string, r Resolver) (Parsed, error) {
	if len(id) != 18 {
		return Parsed{}, ErrInvalidLength
	}
	for i := 0; i < 17; i++ {
		if !isDigit(id[i]) {
			return Parsed{}, ErrInvalidCharacter
		}
	}
	if !isDigit(id[17]) && id[17] != 'X' {
		return Parsed{}, ErrInvalidCharacter
	}

	sum := 10
	if id[17] != 'X' {
		sum = int(id[17] - '0')
	}
	for i, w := range checkWeights {
		sum = (sum + int(id[i]-'0')*w) % 11
	}
	if sum != 1 {
		return Parsed{}, ErrWrongCheckNumber
	}

	year := atoi(id[6:10])
	if year <= 1800 || year >= 2200 {
		return Parsed{}, ErrInvalidBirthday
	}
	birthday, ok := date(year, atoi(id[10:12]), atoi(id[12:14]))
	if !ok {
		return Parsed{}, ErrInvalidBirthday
	}
	return build(id[:6], birthday, id[16], r), nil
}

// ParseV1 parses a 15-digit first-generation number.
func ParseV1(id string, r Resolver) (Parsed, error) {
	if len(id) != 15 {
		return Parsed{}, ErrInvalidLength
	}
	for i := 0; i < 15; i++ {
		if !isDigit(id[i]) {
			return Parsed{}, ErrInvalidCharacter
		}
	}

	birthday, ok := date(1900+atoi(id[6:8]), atoi(id[8:10]), atoi(id[10:12]))
	if !ok {
		return Parsed{}, ErrInvalidBirthday
	}
	return build(id[:6], birthday, id[14], r), nil
}

// Parse dispatches on length.
func Parse(id string, r Resolver) (Parsed, error) {
	if len(id) == 15 {
		return ParseV1(id, r)
	}
	return ParseV2(id, r)
}

func build(code string, birthday time.Time, seq byte, r Resolver) Parsed {
	p := Parsed{Sex: Female, Birthday: birthday, Code: code}
	if (seq-'0')&1 == 1 {
		p.Sex = Male
	}
	if r != nil {
		p.Region = r.Lookup(birthday.Year(), code)
	}
	return p
}

// date rejects values time.Date would silently normalise, such as 02-30.
func date(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// atoi converts an all-digit string; callers validate the digits first.
func atoi(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}
