// Package discount notifies registered observers when a discount changes.
package discount

import (
	"fmt"
	"io"
	"reflect"

	"patterns/internal/log"
)

// Observer is told about every new discount value.
type Observer interface {
	Update(discount int)
}

// ObserverFunc adapts a plain function to Observer. Function values are not
// comparable, so an ObserverFunc registered directly cannot be removed; wrap
// it in a pointer type if removal is needed.
type ObserverFunc func(discount int)

func (f ObserverFunc) Update(discount int) { f(discount) }

// Notifier holds the current discount and its observers.
type Notifier struct {
	observers []Observer
	discount  int
}

// NewNotifier returns a notifier with no observers and a zero discount.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Add registers o. Registering the same observer twice notifies it twice.
func (n *Notifier) Add(o Observer) {
	if o == nil {
		return
	}
	n.observers = append(n.observers, o)
	log.Debug(log.CatDiscount, "observer added", "count", len(n.observers))
}

// Remove unregisters the first registration of o. Removing an observer that
// was never added does nothing.
func (n *Notifier) Remove(o Observer) {
	for i, existing := range n.observers {
		if sameObserver(existing, o) {
			n.observers = append(n.observers[:i:i], n.observers[i+1:]...)
			log.Debug(log.CatDiscount, "observer removed", "count", len(n.observers))
			return
		}
	}
}

// SetDiscount stores d and then calls every observer once with it, in
// registration order.
func (n *Notifier) SetDiscount(d int) {
	n.discount = d
	log.Info(log.CatDiscount, "discount changed", "discount", d, "observers", len(n.observers))
	for _, o := range n.observers {
		o.Update(d)
	}
}

// Discount returns the last value passed to SetDiscount.
func (n *Notifier) Discount() int { return n.discount }

// Len returns the number of registrations.
func (n *Notifier) Len() int { return len(n.observers) }

// sameObserver reports whether a and b are the same registration. Values of
// uncomparable types such as ObserverFunc never match.
func sameObserver(a, b Observer) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || ta == nil || !ta.Comparable() {
		return false
	}
	return a == b
}

// Subscriber prints a line to Out for each discount it receives.
type Subscriber struct {
	Name string
	Out  io.Writer
}

// NewSubscriber returns a subscriber named name writing to out.
func NewSubscriber(name string, out io.Writer) *Subscriber {
	return &Subscriber{Name: name, Out: out}
}

func (s *Subscriber) Update(discount int) {
	fmt.Fprintf(s.Out, "%s notified of discount: %d%%\n", s.Name, discount)
}
