package printer

import (
	"encoding/json"
	"fmt"
)

// printJSON prints an item as one JSON document.
func (p *Printer) printJSON(it item) error {
	data, err := json.Marshal(it)
	if err != nil {
		return fmt.Errorf("printer: marshal %s: %w", it.Tag, err)
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}
