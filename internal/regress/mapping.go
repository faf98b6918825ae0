package regress

import (
	"errors"
	"strings"

	"vregress/internal/domain"
)

// ErrMalformedMapping is returned for mapping lines with no tokens.
var ErrMalformedMapping = errors.New("malformed mapping line")

// ParseMappingLine parses one line of a name-mapping file. The first
// whitespace-separated token is the generated sub-test directory name;
// the remaining tokens form the original human-readable label.
func ParseMappingLine(line string) (domain.MappingRecord, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return domain.MappingRecord{}, ErrMalformedMapping
	}
	return domain.MappingRecord{
		GeneratedName: fields[0],
		OriginalLabel: strings.Join(fields[1:], " "),
		Raw:           line,
	}, nil
}
