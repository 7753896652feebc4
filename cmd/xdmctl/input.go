package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joshuapare/xdmkit/internal/fixture"
	"github.com/joshuapare/xdmkit/internal/mmfile"
	"github.com/joshuapare/xdmkit/xdm"
)

// input is one loaded value and where it came from.
type input struct {
	path   string
	data   []byte
	mapped bool
	region *mmfile.Region
}

func (in *input) Close() error {
	if in.region == nil {
		return nil
	}
	return in.region.Close()
}

func isFixture(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// loadInput reads a YAML fixture (first document) or maps an encoded file,
// then validates it.
func loadInput(path string) (*input, error) {
	in := &input{path: path}
	if isFixture(path) {
		values, err := fixture.LoadFile(path, fixture.Options{Charset: charset})
		if err != nil {
			return nil, err
		}
		if len(values) == 0 {
			return nil, fmt.Errorf("%s: no documents", path)
		}
		in.data = values[0]
	} else {
		r, err := mmfile.Open(path)
		if err != nil {
			return nil, err
		}
		in.region = r
		in.data = r.Bytes()
		in.mapped = r.Mapped()
	}
	logger.Debug("loaded input", "path", path, "bytes", len(in.data), "mapped", in.mapped)

	if err := xdm.Validate(in.data); err != nil {
		in.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return in, nil
}
