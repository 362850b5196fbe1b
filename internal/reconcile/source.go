package reconcile

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/apx-soporte/warranty-tracker/internal/sheet"
)

// Source is where a sync reads its workbook from: a filesystem path (the
// configured network share, usually) or bytes uploaded through the API.
type Source struct {
	Path string
	Data []byte
}

func (s Source) Valid() bool {
	return len(s.Data) > 0 || strings.TrimSpace(s.Path) != ""
}

// Open reads the workbook's first sheet. Open failures come back with the
// human-readable text that ends up both in the job record and in the
// durable last-sync setting.
func (s Source) Open() (*sheet.Table, error) {
	if len(s.Data) > 0 {
		t, err := sheet.ReadWorkbookBytes(s.Data)
		if err != nil {
			return nil, fmt.Errorf("could not read uploaded workbook: %v", err)
		}
		return t, nil
	}

	path := strings.TrimSpace(s.Path)
	if path == "" {
		return nil, errors.New("no workbook source configured")
	}
	t, err := sheet.ReadWorkbook(path)
	if err != nil {
		return nil, describeOpenError(path, err)
	}
	return t, nil
}

func describeOpenError(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("workbook not found at %s", path)
	case errors.Is(err, fs.ErrPermission):
		// Network shares report this while the file is held open elsewhere.
		return fmt.Errorf("permission denied reading %s (file may be open in another program)", path)
	default:
		return fmt.Errorf("could not read workbook %s: %v", path, err)
	}
}
