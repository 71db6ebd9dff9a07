package samples

import (
	"fmt"

	"github.com/funvibe/sumtype/pkg/enum"
)

// IPAddr is a sum type written with Go types: one struct per variant behind
// a sealed interface. The lint pass checks type switches over it, and
// IPAddrVisitor makes a missing variant a compile error.
type IPAddr interface {
	isIPAddr()
	String() string
}

type V4 struct{ Addr string }

type V6 struct{ Addr string }

type V4Octets struct{ A, B, C, D uint8 }

func (V4) isIPAddr()       {}
func (V6) isIPAddr()       {}
func (V4Octets) isIPAddr() {}

func (a V4) String() string { return a.Addr }
func (a V6) String() string { return a.Addr }

func (a V4Octets) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", a.A, a.B, a.C, a.D)
}

// IPAddrVisitor has one method per IPAddr variant.
type IPAddrVisitor[R any] interface {
	VisitV4(V4) R
	VisitV6(V6) R
	VisitV4Octets(V4Octets) R
}

// VisitIPAddr calls the visitor method for a's variant.
func VisitIPAddr[R any](a IPAddr, v IPAddrVisitor[R]) R {
	switch a := a.(type) {
	case V4:
		return v.VisitV4(a)
	case V6:
		return v.VisitV6(a)
	case V4Octets:
		return v.VisitV4Octets(a)
	}
	panic(fmt.Sprintf("samples: unknown IPAddr %T", a))
}

// toValue converts a typed address into its dynamic enumeration value.
type toValue struct{}

func (toValue) VisitV4(a V4) enum.Value { return IpAddress.MustNew("V4", a.Addr) }
func (toValue) VisitV6(a V6) enum.Value { return IpAddress.MustNew("V6", a.Addr) }

func (toValue) VisitV4Octets(a V4Octets) enum.Value {
	return IpAddress2.MustNew("V4", a.A, a.B, a.C, a.D)
}

// ToValue returns a as a value of IpAddress, or of IpAddress2 for octets.
func ToValue(a IPAddr) enum.Value {
	return VisitIPAddr[enum.Value](a, toValue{})
}

// Family names the address family of a.
func Family(a IPAddr) string {
	switch a.(type) {
	case V4, V4Octets:
		return "inet"
	case V6:
		return "inet6"
	}
	return ""
}
