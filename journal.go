package aoc

import (
	"cmp"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

// JournalEntry is one recorded answer.
type JournalEntry struct {
	Day        int       `yaml:"day"`
	Part       string    `yaml:"part"`
	InputHash  string    `yaml:"input_hash"`
	Answer     string    `yaml:"answer"`
	Took       string    `yaml:"took"`
	RecordedAt time.Time `yaml:"recorded_at"`
}

type journalFile struct {
	Year    int            `yaml:"year"`
	Entries []JournalEntry `yaml:"entries"`
}

// Journal is an on-disk record of answers, keyed by day, part and a hash of
// the input they were computed from.
type Journal struct {
	path string
	year int
	now  func() time.Time
}

func NewJournal(path string, year int) *Journal {
	return &Journal{path: path, year: year, now: time.Now}
}

// InputHash returns the content hash recorded for an input. It must stay
// stable across processes since it is stored in the journal.
func InputHash(input []byte) string {
	sum := sha256.Sum256(input)
	return hex.EncodeToString(sum[:])
}

// Record stores the answer for day/part computed from input. If an earlier
// entry for the same input holds a different answer, that entry is returned.
func (j *Journal) Record(day int, part string, input []byte, answer string, took time.Duration) (changed *JournalEntry, err error) {
	e := JournalEntry{
		Day:        day,
		Part:       part,
		InputHash:  InputHash(input),
		Answer:     answer,
		Took:       took.String(),
		RecordedAt: j.now().UTC(),
	}
	err = j.update(func(jf *journalFile) {
		i := slices.IndexFunc(jf.Entries, func(o JournalEntry) bool {
			return o.Day == e.Day && o.Part == e.Part && o.InputHash == e.InputHash
		})
		if i < 0 {
			jf.Entries = append(jf.Entries, e)
			return
		}
		if old := jf.Entries[i]; old.Answer != e.Answer {
			changed = &old
		}
		jf.Entries[i] = e
	})
	return changed, err
}

// Entries returns all entries sorted by day and part.
func (j *Journal) Entries() ([]JournalEntry, error) {
	jf, err := j.load()
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(jf.Entries, func(a, b JournalEntry) int {
		if c := cmp.Compare(a.Day, b.Day); c != 0 {
			return c
		}
		return cmp.Compare(a.Part, b.Part)
	})
	return jf.Entries, nil
}

func (j *Journal) load() (*journalFile, error) {
	jf := &journalFile{Year: j.year}
	data, err := os.ReadFile(j.path)
	if errors.Is(err, fs.ErrNotExist) {
		return jf, nil
	} else if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, jf); err != nil {
		return nil, fmt.Errorf("parsing journal %s: %w", j.path, err)
	}
	if jf.Year != j.year {
		return nil, fmt.Errorf("journal %s is for %d, not %d", j.path, jf.Year, j.year)
	}
	return jf, nil
}

func (j *Journal) update(f func(*journalFile)) error {
	if err := os.MkdirAll(filepath.Dir(j.path), 0700); err != nil {
		return err
	}
	lock := flock.New(j.path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("locking journal: %w", err)
	}
	defer lock.Unlock()

	jf, err := j.load()
	if err != nil {
		return err
	}
	f(jf)
	data, err := yaml.Marshal(jf)
	if err != nil {
		return err
	}
	tmp := j.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, j.path)
}
