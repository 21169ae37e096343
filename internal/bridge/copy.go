package bridge

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// copyLines reads r line by line and hands each line, trailing newline
// included, to emit. A final line without a newline is still delivered.
func copyLines(r io.Reader, emit func(line string) error) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			if emitErr := emit(line); emitErr != nil {
				return emitErr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}
}

// copyToWriter echoes every input line to w until EOF.
func copyToWriter(r io.Reader, w io.Writer) error {
	return copyLines(r, func(line string) error {
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	})
}

// copyToFile appends every input line to the file at path, reopening it per
// line so previously written content is never truncated.
func copyToFile(r io.Reader, path string) error {
	return copyLines(r, func(line string) error {
		return appendLine(path, line)
	})
}

func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening sidecar file %s: %w", path, err)
	}
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return fmt.Errorf("appending to sidecar file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing sidecar file %s: %w", path, err)
	}
	return nil
}
