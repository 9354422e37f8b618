//go:build tinygo && rp2040

package main

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/ws2812"

	"neobadge"
	"neobadge/internal/matrix"
	"neobadge/internal/sleep"
	"neobadge/internal/store"
)

const (
	pinData   = machine.GPIO2
	pinPower  = machine.GPIO3
	pinLeft   = machine.GPIO14
	pinRight  = machine.GPIO15
	pinBatt   = machine.ADC0
	pinPot    = machine.ADC1
	pinNoise  = machine.ADC2
	refMV     = 3300
	battRatio = 2 // battery divider
)

type driver struct {
	*sleep.EdgeSleeper

	neo     ws2812.Device
	buttons [2]machine.Pin
	batt    machine.ADC
	pot     machine.ADC
	noise   machine.ADC
	start   time.Time
}

func (d *driver) EarlyInit() (matrix.Strip, error) {
	pinPower.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pinPower.High()
	pinData.Configure(machine.PinConfig{Mode: machine.PinOutput})
	d.neo = ws2812.New(pinData)

	d.buttons = [2]machine.Pin{pinLeft, pinRight}
	for _, p := range d.buttons {
		p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
		err := p.SetInterrupt(machine.PinFalling|machine.PinRising, func(machine.Pin) { d.Notify() })
		if err != nil {
			return nil, err
		}
	}

	machine.InitADC()
	d.batt = machine.ADC{Pin: pinBatt}
	d.pot = machine.ADC{Pin: pinPot}
	d.noise = machine.ADC{Pin: pinNoise}
	for _, a := range []machine.ADC{d.batt, d.pot, d.noise} {
		a.Configure(machine.ADCConfig{})
	}
	return &d.neo, nil
}

func (d *driver) Button(b neobadge.Button) bool {
	// active low
	return !d.buttons[b].Get()
}

func (d *driver) Battery() (uint16, neobadge.SensorStatus) {
	mv := uint32(d.batt.Get()) * refMV * battRatio >> 16
	return uint16(mv), neobadge.SensorStatusAvailable
}

func (d *driver) Brightness() (uint16, neobadge.SensorStatus) {
	return d.pot.Get(), neobadge.SensorStatusAvailable
}

func (d *driver) Noise() uint16 {
	return d.noise.Get()
}

func (d *driver) Millis() uint32 {
	return uint32(time.Since(d.start) / time.Millisecond)
}

func (d *driver) Delay(t time.Duration) {
	time.Sleep(t)
}

func (d *driver) SleepUntilInput() {
	d.WaitEdge()
}

func (d *driver) PowerDown() {
	pinData.Low()
	pinPower.Low()
}

func (d *driver) PowerUp() {
	pinPower.High()
	// let the LED supply settle before the first frame
	time.Sleep(time.Millisecond)
}

func main() {
	d := &driver{
		EdgeSleeper: sleep.NewEdgeSleeper(),
		start:       time.Now(),
	}

	st, err := store.NewFlash(machine.Flash, neobadge.SettingsSize)
	if err != nil {
		earlyPanic(err)
	}

	b, err := neobadge.New(neobadge.DefaultConfig(), d, st)
	if err != nil {
		earlyPanic(err)
	}
	if err := b.Init(); err != nil {
		earlyPanic(err)
	}
	b.Run()
}

func blink() {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	led.High()
	time.Sleep(100 * time.Millisecond)
	led.Low()
	time.Sleep(100 * time.Millisecond)
}

// unfortunately you can't recover runtime panics in tinygo, so this is just going to be used for things we detect
// that are fatal before the matrix is usable
func earlyPanic(err error) {
	for {
		println(err.Error())
		blink()
	}
}
