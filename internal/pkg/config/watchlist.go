package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// WatchTarget describes one court the watcher polls for newly freed slots.
type WatchTarget struct {
	// ID is an internal identifier used for snapshot keys and logging.
	ID string `yaml:"id" json:"id"`
	// CourtID is the backend court identifier.
	CourtID int64 `yaml:"court_id" json:"court_id"`
	// Days restricts polling to these weekdays ("Mon".."Sun"). Empty means all.
	Days []string `yaml:"days" json:"days"`
	// TimeFrom/TimeTo bound the interesting window, "HH:MM" local time.
	TimeFrom string `yaml:"time_from" json:"time_from"`
	TimeTo   string `yaml:"time_to" json:"time_to"`
	// DaysAhead is how many calendar days forward to scan.
	DaysAhead int `yaml:"days_ahead" json:"days_ahead"`
	// ChatID is the Telegram chat notified about new slots. Zero disables
	// notification for this target (changes are still logged).
	ChatID int64 `yaml:"chat_id" json:"chat_id"`
}

// WatchList is the on-disk watch configuration.
type WatchList struct {
	Targets []WatchTarget `yaml:"targets" json:"targets"`
}

func DefaultWatchList() *WatchList {
	return &WatchList{Targets: []WatchTarget{}}
}

// Normalize fills in missing/zero values so partially-filled files still
// behave correctly.
func (w *WatchList) Normalize() {
	if w.Targets == nil {
		w.Targets = []WatchTarget{}
	}
	for i := range w.Targets {
		t := &w.Targets[i]
		if t.DaysAhead <= 0 {
			t.DaysAhead = 7
		}
		if t.TimeFrom == "" {
			t.TimeFrom = "08:00"
		}
		if t.TimeTo == "" {
			t.TimeTo = "23:00"
		}
	}
}

// LoadWatchList loads the watch list from the given YAML path. A missing
// file is a first run: a default (empty) list is written and returned.
func LoadWatchList(path string) (*WatchList, error) {
	if path == "" {
		return nil, errors.New("watch list path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			wl := DefaultWatchList()
			if err := SaveWatchList(path, wl); err != nil {
				return wl, err
			}
			return wl, nil
		}
		return nil, err
	}

	var wl WatchList
	if err := yaml.Unmarshal(data, &wl); err != nil {
		return nil, err
	}
	wl.Normalize()

	return &wl, nil
}

// SaveWatchList writes the list atomically (temp file + rename) with 0600
// permissions.
func SaveWatchList(path string, wl *WatchList) error {
	if path == "" {
		return errors.New("watch list path is empty")
	}
	if wl == nil {
		return errors.New("watch list is nil")
	}

	wl.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(wl)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".watchlist-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
