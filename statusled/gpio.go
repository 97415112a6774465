package statusled

import (
	"sync"
	"time"

	"github.com/go-errors/errors"
	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/gpio/gpioreg"
	"periph.io/x/periph/host"
)

const (
	searchingInterval = 250 * time.Millisecond
	apOnlyInterval    = 1 * time.Second
)

// check GpioLed compliance to its interface during compile time
var _ Led = (*GpioLed)(nil)

type GpioLedConfig struct {
	// Pin is the gpio pin name, for example GPIO17.
	Pin string
}

// GpioLed blinks a single LED wired to a gpio pin according to the current
// state.
type GpioLed struct {
	pin  string
	out  gpio.PinIO
	done chan struct{}

	mtx    sync.Mutex
	state  State
	notify chan struct{}
}

func NewGpioLed(config *GpioLedConfig) *GpioLed {
	return &GpioLed{
		pin:    config.Pin,
		notify: make(chan struct{}, 1),
	}
}

func (l *GpioLed) Start() error {
	_, err := host.Init()
	if err != nil {
		return errors.Errorf("could not initialize gpio host: %v", err)
	}

	l.out = gpioreg.ByName(l.pin)
	if l.out == nil {
		return errors.Errorf("could not find gpio pin %v", l.pin)
	}

	l.done = make(chan struct{})

	go l.run()

	return nil
}

func (l *GpioLed) Stop() error {
	close(l.done)

	return l.out.Out(gpio.Low)
}

func (l *GpioLed) SetState(state State) {
	l.mtx.Lock()
	l.state = state
	l.mtx.Unlock()

	select {
	case l.notify <- struct{}{}:
	default:
	}
}

func (l *GpioLed) run() {
	level := gpio.Low

	for {
		l.mtx.Lock()
		state := l.state
		l.mtx.Unlock()

		var interval time.Duration

		switch state {
		case Searching:
			interval = searchingInterval
			level = !level
		case ApOnly:
			interval = apOnlyInterval
			level = !level
		case Connected:
			level = gpio.High
		default:
			level = gpio.Low
		}

		_ = l.out.Out(level)

		if interval == 0 {
			// steady state, wait for the next state change
			select {
			case <-l.notify:
			case <-l.done:
				return
			}

			continue
		}

		select {
		case <-l.notify:
		case <-time.After(interval):
		case <-l.done:
			return
		}
	}
}
