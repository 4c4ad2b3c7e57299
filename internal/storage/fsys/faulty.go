package fsys

import (
	"errors"
	"os"
	"sync"
)

// ErrInjected is the error returned by Faulty when a rule has no explicit error.
var ErrInjected = errors.New("fsys: injected fault")

// Op names one file system operation.
type Op string

const (
	OpMkdir  Op = "mkdir"
	OpRead   Op = "read"
	OpOpen   Op = "open"
	OpWrite  Op = "write"
	OpSync   Op = "sync"
	OpClose  Op = "close"
	OpRename Op = "rename"
	OpRemove Op = "remove"
	OpStat   Op = "stat"
)

// Faulty wraps an FS, counting every operation and failing the ones
// that have a fault registered.
type Faulty struct {
	FS FS

	mu     sync.Mutex
	faults map[Op]error
	counts map[Op]int
}

// NewFaulty wraps fs (or Default if nil).
func NewFaulty(fs FS) *Faulty {
	if fs == nil {
		fs = Default
	}
	return &Faulty{
		FS:     fs,
		faults: make(map[Op]error),
		counts: make(map[Op]int),
	}
}

// Fail makes every subsequent op return err (ErrInjected if nil).
func (f *Faulty) Fail(op Op, err error) {
	if err == nil {
		err = ErrInjected
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.faults[op] = err
}

// Heal removes the fault registered for op.
func (f *Faulty) Heal(op Op) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.faults, op)
}

// Count returns how many times op was attempted.
func (f *Faulty) Count(op Op) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counts[op]
}

// Total returns the number of operations attempted, of any kind.
func (f *Faulty) Total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.counts {
		n += c
	}
	return n
}

// hit records op and returns its registered fault, if any.
func (f *Faulty) hit(op Op) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts[op]++
	return f.faults[op]
}

func (f *Faulty) MkdirAll(path string, perm os.FileMode) error {
	if err := f.hit(OpMkdir); err != nil {
		return err
	}
	return f.FS.MkdirAll(path, perm)
}

func (f *Faulty) ReadFile(name string) ([]byte, error) {
	if err := f.hit(OpRead); err != nil {
		return nil, err
	}
	return f.FS.ReadFile(name)
}

func (f *Faulty) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	if err := f.hit(OpOpen); err != nil {
		return nil, err
	}
	file, err := f.FS.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return &faultyFile{File: file, fs: f}, nil
}

func (f *Faulty) Rename(oldpath, newpath string) error {
	if err := f.hit(OpRename); err != nil {
		return err
	}
	return f.FS.Rename(oldpath, newpath)
}

func (f *Faulty) Remove(name string) error {
	if err := f.hit(OpRemove); err != nil {
		return err
	}
	return f.FS.Remove(name)
}

func (f *Faulty) Stat(name string) (os.FileInfo, error) {
	if err := f.hit(OpStat); err != nil {
		return nil, err
	}
	return f.FS.Stat(name)
}

type faultyFile struct {
	File
	fs *Faulty
}

func (ff *faultyFile) Write(p []byte) (int, error) {
	if err := ff.fs.hit(OpWrite); err != nil {
		return 0, err
	}
	return ff.File.Write(p)
}

func (ff *faultyFile) Sync() error {
	if err := ff.fs.hit(OpSync); err != nil {
		return err
	}
	return ff.File.Sync()
}

func (ff *faultyFile) Close() error {
	if err := ff.fs.hit(OpClose); err != nil {
		// Release the descriptor anyway; only the caller sees the failure.
		_ = ff.File.Close()
		return err
	}
	return ff.File.Close()
}
