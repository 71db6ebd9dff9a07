package bad

type Event interface{ event() }

type Opened struct{}
type Closed struct{}

func (Opened) event() {}
func (Closed) event() {}

func Name(e Event) string {
	switch e.(type) {
	case Opened:
		return "opened"
	}
	return ""
}
