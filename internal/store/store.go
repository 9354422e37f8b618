// Package store is byte-addressable non-volatile storage.
package store

import (
	"encoding/binary"
	"errors"
)

// Store is a small byte-addressable persistent record.
type Store interface {
	// Size is the number of addressable bytes.
	Size() uint16
	Read(addr uint16) byte
	// WriteIfChanged stores b at addr only if it differs from the current value, so repeating a write causes no
	// extra wear.
	WriteIfChanged(addr uint16, b byte)
}

var ErrTooSmall = errors.New("store too small")

func ReadUint16(s Store, addr uint16) uint16 {
	return binary.LittleEndian.Uint16([]byte{s.Read(addr), s.Read(addr + 1)})
}

func ReadUint32(s Store, addr uint16) uint32 {
	return binary.LittleEndian.Uint32([]byte{s.Read(addr), s.Read(addr + 1), s.Read(addr + 2), s.Read(addr + 3)})
}

func WriteUint16(s Store, addr uint16, v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	for i, c := range b {
		s.WriteIfChanged(addr+uint16(i), c)
	}
}

func WriteUint32(s Store, addr uint16, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	for i, c := range b {
		s.WriteIfChanged(addr+uint16(i), c)
	}
}

// Mem is a RAM-backed Store. A fresh Mem reads as erased memory (0xFF).
type Mem struct {
	data   []byte
	writes int
}

func NewMem(size uint16) *Mem {
	m := &Mem{data: make([]byte, size)}
	for i := range m.data {
		m.data[i] = 0xFF
	}
	return m
}

func (m *Mem) Size() uint16 {
	return uint16(len(m.data))
}

func (m *Mem) Read(addr uint16) byte {
	if int(addr) >= len(m.data) {
		return 0xFF
	}
	return m.data[addr]
}

func (m *Mem) WriteIfChanged(addr uint16, b byte) {
	if int(addr) >= len(m.data) || m.data[addr] == b {
		return
	}
	m.data[addr] = b
	m.writes++
}

// Writes returns the number of bytes actually changed so far.
func (m *Mem) Writes() int {
	return m.writes
}
