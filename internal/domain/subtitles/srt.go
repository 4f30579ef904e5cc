package subtitles

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/forPelevin/chapsub/internal/types"
)

var (
	errMissingIndex  = errors.New("missing cue index")
	errMissingTiming = errors.New("missing timing line")
	errBadTimestamp  = errors.New("malformed timestamp")
)

// ParseError reports a SubRip block that could not be parsed.
type ParseError struct {
	Block int // 1-based
	Line  string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("srt block %d: %v (line %q)", e.Block, e.Err, e.Line)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseSRT parses SubRip text into cues in file order. Cue text keeps its
// line breaks. Empty input yields no cues and no error.
func ParseSRT(data []byte) ([]types.Cue, error) {
	blocks := splitBlocks(data)
	cues := make([]types.Cue, 0, len(blocks))
	for i, blk := range blocks {
		cue, err := parseBlock(blk)
		if err != nil {
			err.Block = i + 1
			return nil, err
		}
		cues = append(cues, cue)
	}
	return cues, nil
}

func splitBlocks(data []byte) [][]string {
	s := strings.ToValidUTF8(string(data), "")
	s = strings.TrimPrefix(s, "\ufeff")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	var out [][]string
	var cur []string
	for _, l := range strings.Split(s, "\n") {
		if strings.TrimSpace(l) == "" {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, strings.TrimRight(l, " \t"))
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

func parseBlock(lines []string) (types.Cue, *ParseError) {
	head := strings.TrimSpace(lines[0])
	idx, err := strconv.Atoi(head)
	if err != nil {
		return types.Cue{}, &ParseError{Line: lines[0], Err: errMissingIndex}
	}
	if len(lines) < 2 {
		return types.Cue{}, &ParseError{Line: lines[0], Err: errMissingTiming}
	}
	start, end, err := parseTimingLine(lines[1])
	if err != nil {
		return types.Cue{}, &ParseError{Line: lines[1], Err: err}
	}
	return types.Cue{
		Index: idx,
		Start: start,
		End:   end,
		Text:  strings.Join(lines[2:], "\n"),
	}, nil
}

// parseTimingLine reads "00:00:01,234 --> 00:00:04,567". Position settings
// after the end timestamp are ignored.
func parseTimingLine(line string) (time.Duration, time.Duration, error) {
	parts := strings.Split(line, "-->")
	if len(parts) != 2 {
		return 0, 0, errMissingTiming
	}
	endFields := strings.Fields(parts[1])
	if len(endFields) == 0 {
		return 0, 0, fmt.Errorf("end time: %w", errBadTimestamp)
	}
	start, err := parseTimestamp(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("start time: %w", err)
	}
	end, err := parseTimestamp(endFields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("end time: %w", err)
	}
	return start, end, nil
}

// parseTimestamp reads HH:MM:SS,mmm. A '.' separator is accepted and a short
// fraction is read as a decimal fraction (",5" is 500ms).
func parseTimestamp(s string) (time.Duration, error) {
	sep := strings.IndexAny(s, ",.")
	if sep < 0 {
		return 0, errBadTimestamp
	}
	hms := strings.Split(s[:sep], ":")
	frac := s[sep+1:]
	if len(hms) != 3 || len(frac) == 0 || len(frac) > 3 {
		return 0, errBadTimestamp
	}
	var vals [3]int
	for i, p := range hms {
		n, ok := atoiDigits(p)
		if !ok {
			return 0, errBadTimestamp
		}
		vals[i] = n
	}
	if vals[1] > 59 || vals[2] > 59 {
		return 0, errBadTimestamp
	}
	ms, ok := atoiDigits(frac + strings.Repeat("0", 3-len(frac)))
	if !ok {
		return 0, errBadTimestamp
	}
	return time.Duration(vals[0])*time.Hour +
		time.Duration(vals[1])*time.Minute +
		time.Duration(vals[2])*time.Second +
		time.Duration(ms)*time.Millisecond, nil
}

func atoiDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
