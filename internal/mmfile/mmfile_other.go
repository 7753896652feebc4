//go:build !unix

package mmfile

import "os"

// Open reads the whole file; mapping is only used on unix.
func Open(path string) (*Region, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Region{data: data}, nil
}

func unmap([]byte) error { return nil }
