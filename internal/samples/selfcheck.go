package samples

import (
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/funvibe/sumtype/pkg/enum"
	"github.com/funvibe/sumtype/pkg/option"
)

// argsMatcher recovers the constructor arguments of an IpAddress value.
var argsMatcher = enum.MustCompile(IpAddress,
	enum.On(enum.Case("V4", enum.Bind("addr")), func(b enum.Bindings) []interface{} {
		return []interface{}{b["addr"]}
	}),
	enum.On(enum.Case("V6", enum.Bind("addr")), func(b enum.Bindings) []interface{} {
		return []interface{}{b["addr"]}
	}),
)

var args2Matcher = enum.MustCompile(IpAddress2,
	enum.On(enum.Case("V4", enum.Bind("a"), enum.Bind("b"), enum.Bind("c"), enum.Bind("d")), func(b enum.Bindings) []interface{} {
		return []interface{}{b["a"], b["b"], b["c"], b["d"]}
	}),
	enum.On(enum.Case("V6", enum.Bind("addr")), func(b enum.Bindings) []interface{} {
		return []interface{}{b["addr"]}
	}),
)

// MaybeIpAddress2 is Option<IpAddress2>.
var MaybeIpAddress2 = enum.OptionOf(enum.Named("IpAddress2"))

type roundTrip struct {
	name    string
	value   enum.Value
	matcher *enum.Matcher[[]interface{}]
	args    []interface{}
}

// SelfCheck builds the sample values, dispatches each through its
// exhaustive matcher and compares the results with what was put in. It
// returns the first divergence. Progress is written to logger when it is
// not nil.
func SelfCheck(logger *log.Logger) error {
	logf := func(format string, args ...interface{}) {
		if logger != nil {
			logger.Printf(format, args...)
		}
	}

	checks := []roundTrip{
		{"V4", IpAddress.MustNew("V4", "127.0.0.1"), argsMatcher, []interface{}{"127.0.0.1"}},
		{"V6", IpAddress.MustNew("V6", "::1"), argsMatcher, []interface{}{"::1"}},
		{"V4Tuple", IpAddress2.MustNew("V4", uint8(127), uint8(0), uint8(0), uint8(1)), args2Matcher,
			[]interface{}{uint8(127), uint8(0), uint8(0), uint8(1)}},
	}
	for _, c := range checks {
		got, err := c.matcher.Dispatch(c.value)
		if err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}
		if !slices.Equal(got, c.args) {
			return fmt.Errorf("%s: dispatch returned %v, want %v", c.name, got, c.args)
		}
		logf("ok %s round-trips as %s", c.name, c.value)
	}

	absent := MaybeIpAddress2.MustNew("None")
	if _, err := enum.UnwrapOrFail(absent, nil); !errors.Is(err, enum.ErrUnwrapFailure) {
		return fmt.Errorf("Absent: unwrap returned %v, want an unwrap failure", err)
	}
	typed, err := option.FromValue[enum.Value](absent)
	if err != nil {
		return fmt.Errorf("Absent: %w", err)
	}
	if _, err := typed.UnwrapOrFail(nil); !errors.Is(err, option.ErrUnwrapFailure) {
		return fmt.Errorf("Absent: typed unwrap returned %v, want an unwrap failure", err)
	}
	logf("ok Absent fails to unwrap")

	return checkExamples(logf)
}

func checkExamples(logf func(string, ...interface{})) error {
	for _, r := range []IPAddrRecord{Home(), Loopback()} {
		table, err := Route(r.Kind)
		if err != nil {
			return fmt.Errorf("route %s: %w", r.Address, err)
		}
		logf("ok route %s via %s", r.Address, table)
	}

	write, err := NewMessage("Write", "hello")
	if err != nil {
		return fmt.Errorf("call: %w", err)
	}
	msg, err := write.Call()
	if err != nil {
		return fmt.Errorf("call: %w", err)
	}
	if msg != "write hello" {
		return fmt.Errorf("call: got %q", msg)
	}
	logf("ok Message.Call: %s", msg)

	coins := []enum.Value{
		Coin.MustNew("Penny"),
		Coin.MustNew("Quarter", UsState.MustNew("Alaska")),
		Coin.MustNew("Dime"),
	}
	viaIfLet, _, err := CountNonQuarters(coins)
	if err != nil {
		return fmt.Errorf("count coins: %w", err)
	}
	viaMatch, err := CountNonQuartersMatch(coins)
	if err != nil {
		return fmt.Errorf("count coins: %w", err)
	}
	if viaIfLet != viaMatch {
		return fmt.Errorf("count coins: if-let counted %d, match counted %d", viaIfLet, viaMatch)
	}
	logf("ok %d non-quarter coins", viaIfLet)

	three, err := DescribeU8(enum.OptionOf(enum.U8).MustNew("Some", uint8(3)))
	if err != nil {
		return fmt.Errorf("describe u8: %w", err)
	}
	zero, err := DescribeU8(enum.OptionOf(enum.U8).MustNew("Some", uint8(0)))
	if err != nil {
		return fmt.Errorf("describe u8: %w", err)
	}
	if three != "three" || zero != "" {
		return fmt.Errorf("describe u8: got %q and %q", three, zero)
	}

	for _, a := range []IPAddr{V4{"127.0.0.1"}, V6{"::1"}, V4Octets{127, 0, 0, 1}} {
		v := ToValue(a)
		if v.Tag() != tagOf(a) {
			return fmt.Errorf("typed %s converted to %s", a, v)
		}
		logf("ok typed %s (%s) is %s", a, Family(a), v)
	}
	return nil
}

func tagOf(a IPAddr) string {
	switch a.(type) {
	case V4, V4Octets:
		return "V4"
	case V6:
		return "V6"
	}
	return ""
}
