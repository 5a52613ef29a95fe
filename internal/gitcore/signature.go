package gitcore

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var signatureRe = regexp.MustCompile("[<>]")

// Signature is the author/committer/tagger line of a commit or tag:
// "Name <email> unix-timestamp timezone".
type Signature struct {
	Name  string
	Email string
	When  time.Time
}

// NewSignature parses a single signature line.
func NewSignature(line string) (Signature, error) {
	parts := signatureRe.Split(line, -1)
	if len(parts) != 3 {
		return Signature{}, fmt.Errorf("invalid signature line: %q", line)
	}

	name := strings.TrimSpace(parts[0])
	email := strings.TrimSpace(parts[1])

	timePart := strings.TrimSpace(parts[2])
	fields := strings.Fields(timePart)
	if len(fields) == 0 {
		return Signature{}, fmt.Errorf("invalid signature line: missing timestamp: %q", line)
	}

	unixTime, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return Signature{}, fmt.Errorf("invalid signature line: invalid timestamp: %q", line)
	}

	loc := time.UTC
	if len(fields) >= 2 {
		if parsed := parseTimezone(fields[1]); parsed != nil {
			loc = parsed
		}
	}

	return Signature{
		Name:  name,
		Email: email,
		When:  time.Unix(unixTime, 0).In(loc),
	}, nil
}

// String renders the signature back into "Name <email> unix-ts +zzzz" form.
func (s Signature) String() string {
	return fmt.Sprintf("%s <%s> %d %s", s.Name, s.Email, s.When.Unix(), s.When.Format("-0700"))
}

// parseTimezone parses a Git timezone offset ("+0530", "-0800") into a
// *time.Location, or nil if the string is not a valid offset.
func parseTimezone(tz string) *time.Location {
	if len(tz) != 5 {
		return nil
	}
	sign := 1
	switch tz[0] {
	case '-':
		sign = -1
	case '+':
	default:
		return nil
	}
	hours, err := strconv.Atoi(tz[1:3])
	if err != nil {
		return nil
	}
	mins, err := strconv.Atoi(tz[3:5])
	if err != nil {
		return nil
	}
	offset := sign * (hours*3600 + mins*60)
	return time.FixedZone(tz, offset)
}
