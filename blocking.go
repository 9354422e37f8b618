package neobadge

import (
	"image/color"
	"strconv"
	"time"

	"neobadge/internal/animation/battlevel"
	"neobadge/internal/font"
	"neobadge/internal/matrix"
)

// The indications below block the main loop; nothing else runs while they play.

const (
	lowBatteryFlashes = 4
	lowBatteryStep    = 200 * time.Millisecond
	diagnosticsStep   = 300 * time.Millisecond
)

// lowBattery flashes the dead battery icon.
func (b *Badge) lowBattery() {
	ch, col := battlevel.Icon(0)
	for i := 0; i < lowBatteryFlashes; i++ {
		b.flash(ch, col, lowBatteryStep)
	}
}

// showDiagnostics spells out the usage counters, each as a label glyph followed by its decimal digits.
func (b *Badge) showDiagnostics() {
	s := b.settings
	b.log.Infof("power-ons %d, cycles %d, runtime %dmin, edges dropped %d",
		s.PowerOns(), s.Cycles(), s.RuntimeMinutes(), b.droppedEdges())
	b.printValue('P', uint64(s.PowerOns()))
	b.printValue('C', uint64(s.Cycles()))
	b.printValue('R', uint64(s.RuntimeMinutes()))
}

func (b *Badge) printValue(label byte, v uint64) {
	b.flash(label, matrix.Blue, diagnosticsStep)
	for _, d := range strconv.AppendUint(nil, v, 10) {
		b.flash(d, matrix.Blue, diagnosticsStep)
	}
}

// flash shows one glyph for d, then a blank matrix for d.
func (b *Badge) flash(ch byte, c color.RGBA, d time.Duration) {
	b.mat.Clear()
	font.Draw(b.mat, b.font, ch, c, 0, 0)
	if err := b.mat.Display(); err != nil {
		b.log.Debug("display: " + err.Error())
	}
	b.driver.Delay(d)

	if err := b.blank(); err != nil {
		b.log.Debug(err.Error())
	}
	b.driver.Delay(d)
}

// edgeCounter is implemented by drivers that can lose button edges while the main loop is busy.
type edgeCounter interface {
	Dropped() uint32
}

func (b *Badge) droppedEdges() uint32 {
	if ec, ok := b.driver.(edgeCounter); ok {
		return ec.Dropped()
	}
	return 0
}
