package store

import (
	"errors"
	"strconv"
)

// BlockDevice is erasable flash, such as machine.Flash on TinyGo targets.
type BlockDevice interface {
	ReadAt(p []byte, off int64) (int, error)
	WriteAt(p []byte, off int64) (int, error)
	EraseBlockSize() int64
	EraseBlocks(start, length int64) error
}

// Flash keeps the record in the first erase block of a BlockDevice. Writes go to a RAM shadow and are committed by
// Sync, which erases and rewrites the block only if something changed.
type Flash struct {
	dev    BlockDevice
	shadow []byte
	dirty  bool
}

func NewFlash(dev BlockDevice, size uint16) (*Flash, error) {
	bs := dev.EraseBlockSize()
	if bs <= 0 {
		return nil, errors.New("flash: no erase block size")
	}
	if int64(size) > bs {
		return nil, errors.New("flash: record of " + strconv.Itoa(int(size)) + " bytes does not fit one erase block")
	}
	f := &Flash{
		dev:    dev,
		shadow: make([]byte, size),
	}
	if _, err := dev.ReadAt(f.shadow, 0); err != nil {
		return nil, errors.New("flash: read: " + err.Error())
	}
	return f, nil
}

func (f *Flash) Size() uint16 {
	return uint16(len(f.shadow))
}

func (f *Flash) Read(addr uint16) byte {
	if int(addr) >= len(f.shadow) {
		return 0xFF
	}
	return f.shadow[addr]
}

func (f *Flash) WriteIfChanged(addr uint16, b byte) {
	if int(addr) >= len(f.shadow) || f.shadow[addr] == b {
		return
	}
	f.shadow[addr] = b
	f.dirty = true
}

// Sync commits pending writes.
func (f *Flash) Sync() error {
	if !f.dirty {
		return nil
	}
	if err := f.dev.EraseBlocks(0, 1); err != nil {
		return errors.New("flash: erase: " + err.Error())
	}
	if _, err := f.dev.WriteAt(f.shadow, 0); err != nil {
		return errors.New("flash: write: " + err.Error())
	}
	f.dirty = false
	return nil
}

// Sync commits s if it buffers writes.
func Sync(s Store) error {
	if sy, ok := s.(interface{ Sync() error }); ok {
		return sy.Sync()
	}
	return nil
}
