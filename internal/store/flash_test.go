package store

import (
	"errors"
	"testing"
)

type fakeFlash struct {
	data    []byte
	block   int64
	erases  int
	writes  int
	failErs bool
}

func newFakeFlash() *fakeFlash {
	f := &fakeFlash{data: make([]byte, 1024), block: 256}
	for i := range f.data {
		f.data[i] = 0xFF
	}
	return f
}

func (f *fakeFlash) ReadAt(p []byte, off int64) (int, error) {
	return copy(p, f.data[off:]), nil
}

func (f *fakeFlash) WriteAt(p []byte, off int64) (int, error) {
	f.writes++
	return copy(f.data[off:], p), nil
}

func (f *fakeFlash) EraseBlockSize() int64 { return f.block }

func (f *fakeFlash) EraseBlocks(start, length int64) error {
	if f.failErs {
		return errors.New("boom")
	}
	f.erases++
	for i := start * f.block; i < (start+length)*f.block; i++ {
		f.data[i] = 0xFF
	}
	return nil
}

func TestFlashCommitsOnSync(t *testing.T) {
	dev := newFakeFlash()
	f, err := NewFlash(dev, 16)
	if err != nil {
		t.Fatal(err)
	}
	WriteUint32(f, 2, 0x01020304)
	if dev.writes != 0 {
		t.Fatal("wrote before Sync")
	}
	if err := Sync(f); err != nil {
		t.Fatal(err)
	}
	if dev.erases != 1 || dev.writes != 1 {
		t.Errorf("erases=%d writes=%d, want 1 and 1", dev.erases, dev.writes)
	}

	// nothing changed: no wear
	WriteUint32(f, 2, 0x01020304)
	if err := f.Sync(); err != nil {
		t.Fatal(err)
	}
	if dev.erases != 1 {
		t.Errorf("idempotent write erased again")
	}

	reopened, err := NewFlash(dev, 16)
	if err != nil {
		t.Fatal(err)
	}
	if got := ReadUint32(reopened, 2); got != 0x01020304 {
		t.Errorf("after reopen: %#x", got)
	}
}

func TestFlashRejectsOversizedRecord(t *testing.T) {
	if _, err := NewFlash(newFakeFlash(), 300); err == nil {
		t.Error("expected error")
	}
}

func TestFlashEraseError(t *testing.T) {
	dev := newFakeFlash()
	f, _ := NewFlash(dev, 16)
	f.WriteIfChanged(0, 1)
	dev.failErs = true
	if err := f.Sync(); err == nil {
		t.Error("expected erase error")
	}
	dev.failErs = false
	if err := f.Sync(); err != nil {
		t.Errorf("retry: %v", err)
	}
	if dev.data[0] != 1 {
		t.Error("retry did not commit")
	}
}

func TestSyncOnMemIsNoop(t *testing.T) {
	if err := Sync(NewMem(4)); err != nil {
		t.Error(err)
	}
}
