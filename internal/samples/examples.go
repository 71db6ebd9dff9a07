package samples

import "github.com/funvibe/sumtype/pkg/enum"

// Examples returns one value of every variant of the named sample
// enumeration, in declaration order. It returns nil for other names.
func Examples(name string) []enum.Value {
	switch name {
	case "IpAddrKind":
		return []enum.Value{IpAddrKind.MustNew("V4"), IpAddrKind.MustNew("V6")}
	case "IpAddress":
		return []enum.Value{IpAddress.MustNew("V4", "127.0.0.1"), IpAddress.MustNew("V6", "::1")}
	case "IpAddress2":
		return []enum.Value{
			IpAddress2.MustNew("V4", uint8(127), uint8(0), uint8(0), uint8(1)),
			IpAddress2.MustNew("V6", "::1"),
		}
	case "Message":
		return []enum.Value{
			Message.MustNew("Quit"),
			Message.MustNew("Move", int32(1), int32(2)),
			Message.MustNew("Write", "hello"),
			Message.MustNew("ChangeColor", int32(255), int32(128), int32(0)),
		}
	case "UsState":
		return []enum.Value{
			UsState.MustNew("Alabama"),
			UsState.MustNew("Alaska"),
			UsState.MustNew("Arizona"),
			UsState.MustNew("Arkansas"),
		}
	case "Coin":
		return []enum.Value{
			Coin.MustNew("Penny"),
			Coin.MustNew("Nickel"),
			Coin.MustNew("Dime"),
			Coin.MustNew("Quarter", UsState.MustNew("Alaska")),
		}
	}
	return nil
}
