package optarg

import (
	"fmt"
	"strconv"
	"time"

	orderedmap "github.com/wk8/go-ordered-map"

	"github.com/arglab/optarg/convert"
)

// ParsedOption records every occurrence of one option under its
// canonical long name. Count includes bare occurrences; Arguments holds
// only captured values, in occurrence order.
type ParsedOption struct {
	Name      string
	Count     int
	Arguments []string
}

// ParseResult accumulates what a successful parse produced. Lookups on
// names that never occurred behave as "never seen" rather than failing.
type ParseResult struct {
	options    *orderedmap.OrderedMap
	positional []string
}

func newParseResult() *ParseResult {
	return &ParseResult{
		options: orderedmap.New(),
	}
}

func (r *ParseResult) record(name string) *ParsedOption {
	if value, found := r.options.Get(name); found {
		parsed := value.(*ParsedOption)
		parsed.Count++
		return parsed
	}

	parsed := &ParsedOption{Name: name, Count: 1}
	r.options.Set(name, parsed)

	return parsed
}

func (r *ParseResult) addOption(name string) {
	r.record(name)
}

func (r *ParseResult) addOptionArgument(name, argument string) {
	parsed := r.record(name)
	parsed.Arguments = append(parsed.Arguments, argument)
}

func (r *ParseResult) addPositional(argument string) {
	r.positional = append(r.positional, argument)
}

// Count returns how often name occurred, 0 when it never did.
func (r *ParseResult) Count(name string) int {
	if value, found := r.options.Get(name); found {
		return value.(*ParsedOption).Count
	}

	return 0
}

// Contains reports whether name occurred at least once.
func (r *ParseResult) Contains(name string) bool {
	_, found := r.options.Get(name)

	return found
}

// Get returns the most recently captured argument of name. The second
// return value is false when name never captured one, which includes
// options seen only bare.
func (r *ParseResult) Get(name string) (string, bool) {
	if value, found := r.options.Get(name); found {
		if args := value.(*ParsedOption).Arguments; len(args) > 0 {
			return args[len(args)-1], true
		}
	}

	return "", false
}

// Arguments returns every argument captured for name in occurrence
// order, nil when there are none.
func (r *ParseResult) Arguments(name string) []string {
	if value, found := r.options.Get(name); found {
		return value.(*ParsedOption).Arguments
	}

	return nil
}

// ParsedOptions returns the seen options in first-occurrence order.
func (r *ParseResult) ParsedOptions() []*ParsedOption {
	parsed := make([]*ParsedOption, 0, r.options.Len())
	for pair := r.options.Oldest(); pair != nil; pair = pair.Next() {
		parsed = append(parsed, pair.Value.(*ParsedOption))
	}

	return parsed
}

// PositionalArgs returns the positional arguments in argv order.
func (r *ParseResult) PositionalArgs() []string {
	return r.positional
}

func (r *ParseResult) lastArgument(name string) (string, error) {
	value, found := r.options.Get(name)
	if !found {
		return "", fmt.Errorf(FmtErrorWithString, ErrOptionNotSet, name)
	}
	args := value.(*ParsedOption).Arguments
	if len(args) == 0 {
		return "", fmt.Errorf(FmtErrorWithString, ErrNoArgument, name)
	}

	return args[len(args)-1], nil
}

// GetInt converts the most recent argument of name as a signed integer
// in the given base (0 auto-detects).
func (r *ParseResult) GetInt(name string, base int) (int64, error) {
	arg, err := r.lastArgument(name)
	if err != nil {
		return 0, err
	}

	return convert.ToInteger[int64](arg, base)
}

// GetUint converts the most recent argument of name as an unsigned
// integer in the given base; a leading '-' wraps at 64 bits.
func (r *ParseResult) GetUint(name string, base int) (uint64, error) {
	arg, err := r.lastArgument(name)
	if err != nil {
		return 0, err
	}

	return convert.ToInteger[uint64](arg, base)
}

// GetBool converts the most recent argument of name as a boolean word.
func (r *ParseResult) GetBool(name string) (bool, error) {
	arg, err := r.lastArgument(name)
	if err != nil {
		return false, err
	}

	return convert.ToBool(arg)
}

// GetFloat converts the most recent argument of name with the given bit
// size (32 or 64).
func (r *ParseResult) GetFloat(name string, bitSize int) (float64, error) {
	arg, err := r.lastArgument(name)
	if err != nil {
		return 0, err
	}

	return strconv.ParseFloat(arg, bitSize)
}

// GetTime converts the most recent argument of name as a date/time in
// any common layout.
func (r *ParseResult) GetTime(name string) (time.Time, error) {
	arg, err := r.lastArgument(name)
	if err != nil {
		return time.Time{}, err
	}

	return convert.ToTime(arg)
}
