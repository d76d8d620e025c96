package notifier

import (
	"log"

	"github.com/vila-verde/booking-api/internal/models"
)

type Notifier interface {
	NotifyBooking(booking models.Booking) error
}

// Dispatcher fans a booking snapshot out to every configured chat
// destination. Sends are fire-and-forget: each one runs in its own goroutine
// and failures are logged, never returned to the caller.
type Dispatcher struct {
	targets []Notifier
}

func NewDispatcher(targets ...Notifier) *Dispatcher {
	return &Dispatcher{targets: targets}
}

func (d *Dispatcher) Dispatch(booking models.Booking) {
	for _, target := range d.targets {
		go func(n Notifier) {
			if err := n.NotifyBooking(booking); err != nil {
				log.Printf("Booking notification failed: %v", err)
			}
		}(target)
	}
}
