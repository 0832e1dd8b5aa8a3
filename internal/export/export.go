// Package export reads corpus exports: the JSON account dumps produced by
// the upstream document store.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/proplens/themescope/pkg/themescope/corpus"
	"github.com/proplens/themescope/pkg/themescope/internalerr"
)

// LoadFile reads a corpus from a JSON file. The file may contain either a
// single JSON array of accounts or JSONL with one account per line.
func LoadFile(path string) (corpus.Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var accounts corpus.Corpus
		if err := json.Unmarshal([]byte(trimmed), &accounts); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return accounts, nil
	}

	var accounts corpus.Corpus
	for i, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var acct corpus.Account
		if err := json.Unmarshal([]byte(line), &acct); err != nil {
			log.Printf("Warning: skipping malformed JSON at line %d in %s: %v", i+1, path, err)
			continue
		}
		accounts = append(accounts, acct)
	}
	if len(accounts) == 0 {
		return nil, fmt.Errorf("%w: no valid accounts found in %s", internalerr.ErrInvalidInput, path)
	}
	return accounts, nil
}

// Read decodes a JSON array of accounts from r.
func Read(r io.Reader) (corpus.Corpus, error) {
	var accounts corpus.Corpus
	if err := json.NewDecoder(r).Decode(&accounts); err != nil {
		return nil, fmt.Errorf("decode corpus: %w", err)
	}
	return accounts, nil
}

// FileSource is a corpus.Source reading an export file on every fetch.
type FileSource struct {
	Path string
}

// Fetch implements corpus.Source.
func (s FileSource) Fetch(ctx context.Context) (corpus.Corpus, error) {
	return LoadFile(s.Path)
}
