package filelog

import (
	"encoding/json"
	"fmt"
	"loglib/internal/global"
	"loglib/pkg/event"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Writes the exception chain as indented JSON under <dir>/exceptions
func (sink *Sink) dumpException(app global.Application, record *event.ExceptionRecord, now time.Time) (path string, err error) {
	dumpDir := filepath.Join(app.FileDirectory, global.ExceptionDumpDir)
	err = os.MkdirAll(dumpDir, global.LogDirPerm)
	if err != nil {
		err = fmt.Errorf("%w: failed to create exception dump directory %q: %w", global.ErrLogging, dumpDir, err)
		return
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		err = fmt.Errorf("%w: failed to encode exception: %w", global.ErrLogging, err)
		return
	}

	fileName := SanitizeName(app.Name) + "-" + now.Format(dateLayout) + "-" + uuid.NewString() + ".json"
	path = filepath.Join(dumpDir, fileName)

	err = os.WriteFile(path, append(data, '\n'), global.LogFilePerm)
	if err != nil {
		err = fmt.Errorf("%w: failed to write exception dump %q: %w", global.ErrLogging, path, err)
		return
	}
	sink.metrics.Dumps.Add(1)
	return
}
