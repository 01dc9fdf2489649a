package persistence

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ChanHengLucas/PotentialPokemonBattleAI/internal/engine"
)

// Store handles append-only storage of battle log entries as JSONL.
type Store struct {
	file *os.File
}

// NewStore opens or creates the file at path for appending lines.
func NewStore(path string) (*Store, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open store file: %w", err)
	}
	return &Store{file: file}, nil
}

// Append writes one entry as a JSON line.
func (s *Store) Append(e engine.Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	if _, err := s.file.Write(append(data, '\n')); err != nil {
		return err
	}
	return nil
}

// AppendAll writes a full log and flushes it to disk.
func (s *Store) AppendAll(entries []engine.Entry) error {
	for _, e := range entries {
		if err := s.Append(e); err != nil {
			return err
		}
	}
	return s.file.Sync()
}

// Load replays every JSON line back into entries.
func (s *Store) Load() ([]engine.Entry, error) {
	if _, err := s.file.Seek(0, 0); err != nil {
		return nil, err
	}
	var entries []engine.Entry
	scanner := bufio.NewScanner(s.file)
	for scanner.Scan() {
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var e engine.Entry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			return nil, fmt.Errorf("failed to decode log line: %w", err)
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Close releases the underlying file.
func (s *Store) Close() error {
	return s.file.Close()
}
