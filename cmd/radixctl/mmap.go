package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// mappedFile is a file-backed buffer for the core radix.Arena to
// bump-allocate into. Grounded on the teacher's mMap/munmap/
// resizeMmap convention (IOUtils.go), adapted from "memory-map a HAMT
// file" to "memory-map a flat radix arena buffer".
type mappedFile struct {
	file *os.File
	data []byte
}

// openMappedFile opens (creating if necessary) path, truncates it to
// size bytes if it is smaller, and maps it read-write.
func openMappedFile(path string, size int64) (*mappedFile, error) {
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		return nil, err
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}

	if stat.Size() < size {
		if err := file.Truncate(size); err != nil {
			file.Close()
			return nil, err
		}
	}

	data, err := unix.Mmap(int(file.Fd()), 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		file.Close()
		return nil, err
	}

	return &mappedFile{file: file, data: data}, nil
}

// sync flushes dirty pages back to the underlying file.
func (m *mappedFile) sync() error {
	return unix.Msync(m.data, unix.MS_SYNC)
}

// close unmaps the buffer and closes the file. The buffer must not be
// used by any Arena afterward.
func (m *mappedFile) close() error {
	if err := m.sync(); err != nil {
		return err
	}

	if err := unix.Munmap(m.data); err != nil {
		return err
	}

	return m.file.Close()
}
