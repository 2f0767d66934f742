package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/idilsaglam/meetfocus/internal/model"
)

// JSON snapshot of a meeting list. Single file, human-readable, portable.
// It is read to seed a session and written to stdout by `ls --json`;
// sessions never save back to it.

// Load reads a snapshot. A missing file is an empty list.
func Load(path string) ([]model.Meeting, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Meeting{}, nil
		}
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

func Decode(r io.Reader) ([]model.Meeting, error) {
	var meetings []model.Meeting
	if err := json.NewDecoder(r).Decode(&meetings); err != nil {
		if errors.Is(err, io.EOF) {
			return []model.Meeting{}, nil
		}
		return nil, fmt.Errorf("json decode: %w", err)
	}
	if meetings == nil {
		meetings = []model.Meeting{}
	}
	return meetings, nil
}

func Encode(w io.Writer, meetings []model.Meeting) error {
	if meetings == nil {
		meetings = []model.Meeting{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meetings); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}
