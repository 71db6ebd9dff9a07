// Package samples holds the enumerations used throughout the documentation
// and the CLI self-check: IP addresses, messages, coins and optional bytes.
//
// Every matcher here is built with enum.MustCompile at package init, so a
// variant added to a definition without a matching arm stops the program
// before main runs.
package samples

import (
	"fmt"

	"github.com/funvibe/sumtype/pkg/enum"
)

// IpAddrKind only says which standard an address follows.
var IpAddrKind = enum.MustRegister(enum.MustDefine("IpAddrKind",
	enum.Unit("V4"),
	enum.Unit("V6"),
))

// IPAddrRecord pairs a kind with its textual address in a plain struct.
type IPAddrRecord struct {
	Kind    enum.Value
	Address string
}

// IpAddress carries the address text inside each variant.
var IpAddress = enum.MustRegister(enum.MustDefine("IpAddress",
	enum.Single("V4", enum.String),
	enum.Single("V6", enum.String),
))

// IpAddress2 stores V4 as four octets and V6 as text.
var IpAddress2 = enum.MustRegister(enum.MustDefine("IpAddress2",
	enum.Tuple("V4", enum.U8, enum.U8, enum.U8, enum.U8),
	enum.Single("V6", enum.String),
))

var Message = enum.MustRegister(enum.MustDefine("Message",
	enum.Unit("Quit"),
	enum.Record("Move", enum.FieldOf("x", enum.I32), enum.FieldOf("y", enum.I32)),
	enum.Single("Write", enum.String),
	enum.Tuple("ChangeColor", enum.I32, enum.I32, enum.I32),
))

var UsState = enum.MustRegister(enum.MustDefine("UsState",
	enum.Unit("Alabama"),
	enum.Unit("Alaska"),
	enum.Unit("Arizona"),
	enum.Unit("Arkansas"),
))

var Coin = enum.MustRegister(enum.MustDefine("Coin",
	enum.Unit("Penny"),
	enum.Unit("Nickel"),
	enum.Unit("Dime"),
	enum.Single("Quarter", enum.Named("UsState")),
))

var routeMatcher = enum.MustCompile(IpAddrKind,
	enum.On(enum.Case("V4"), func(enum.Bindings) string { return "ipv4" }),
	enum.On(enum.Case("V6"), func(enum.Bindings) string { return "ipv6" }),
)

// Route accepts either kind of address and names the routing table it uses.
func Route(kind enum.Value) (string, error) {
	return routeMatcher.Dispatch(kind)
}

// Home and Loopback are the struct form of the two sample addresses.
func Home() IPAddrRecord {
	return IPAddrRecord{Kind: IpAddrKind.MustNew("V4"), Address: "127.0.0.1"}
}

func Loopback() IPAddrRecord {
	return IPAddrRecord{Kind: IpAddrKind.MustNew("V6"), Address: "::1"}
}

var callMatcher = enum.MustCompile(Message,
	enum.On(enum.Case("Quit"), func(enum.Bindings) string {
		return "quit"
	}),
	enum.On(enum.CaseFields("Move", enum.F("x", enum.Bind("x")), enum.F("y", enum.Bind("y"))), func(b enum.Bindings) string {
		return fmt.Sprintf("move to (%d, %d)", enum.MustGet[int32](b, "x"), enum.MustGet[int32](b, "y"))
	}),
	enum.On(enum.Case("Write", enum.Bind("text")), func(b enum.Bindings) string {
		return "write " + enum.MustGet[string](b, "text")
	}),
	enum.On(enum.Case("ChangeColor", enum.Bind("r"), enum.Bind("g"), enum.Bind("b")), func(b enum.Bindings) string {
		return fmt.Sprintf("change color to #%02x%02x%02x",
			enum.MustGet[int32](b, "r")&0xff, enum.MustGet[int32](b, "g")&0xff, enum.MustGet[int32](b, "b")&0xff)
	}),
)

// MessageValue is a Message value with methods that dispatch on its own tag.
type MessageValue struct {
	enum.Value
}

// NewMessage builds a Message variant from positional payload values.
func NewMessage(variant string, args ...interface{}) (MessageValue, error) {
	v, err := Message.New(variant, args...)
	if err != nil {
		return MessageValue{}, err
	}
	return MessageValue{v}, nil
}

// Call describes what the message asks for.
func (m MessageValue) Call() (string, error) {
	return callMatcher.Dispatch(m.Value)
}

var nonQuarterMatcher = enum.MustCompile(Coin,
	enum.On(enum.Case("Quarter", enum.Ignore()), func(enum.Bindings) int { return 0 }),
	enum.On(enum.Wild(), func(enum.Bindings) int { return 1 }),
)

// CountNonQuarters counts coins that are not quarters with IfLetElse and
// returns the states of the quarters it saw.
func CountNonQuarters(coins []enum.Value) (int, []string, error) {
	count := 0
	var states []string
	for _, c := range coins {
		err := enum.IfLetElse(c, enum.Case("Quarter", enum.Bind("state")),
			func(b enum.Bindings) { states = append(states, enum.MustGet[enum.Value](b, "state").Tag()) },
			func() { count++ },
		)
		if err != nil {
			return 0, nil, err
		}
	}
	return count, states, nil
}

// CountNonQuartersMatch is CountNonQuarters written as a match with a
// wildcard arm.
func CountNonQuartersMatch(coins []enum.Value) (int, error) {
	count := 0
	for _, c := range coins {
		n, err := nonQuarterMatcher.Dispatch(c)
		if err != nil {
			return 0, err
		}
		count += n
	}
	return count, nil
}

// DescribeU8 returns "three" for Some(3) of Option<U8> and "" for anything
// else, including None.
func DescribeU8(v enum.Value) (string, error) {
	out := ""
	_, err := enum.IfLet(v, enum.Case("Some", enum.Lit(uint8(3))), func(enum.Bindings) { out = "three" })
	return out, err
}
