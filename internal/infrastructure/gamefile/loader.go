package gamefile

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/courtline/milestones/internal/domain/boxscore"
)

// Loader reads scraped box score JSON files from disk. A file holds either a
// top-level array of games or an object with a "games" array.
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

type gameDocument struct {
	Games []boxscore.Game `json:"games"`
}

func (l *Loader) LoadGames(ctx context.Context, path string) ([]boxscore.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, crerr.Wrapf(err, "read game file %q", path)
	}

	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return nil, crerr.Newf("game file %q is empty", path)
	}

	if strings.HasPrefix(trimmed, "[") {
		var games []boxscore.Game
		if err := sonic.Unmarshal(raw, &games); err != nil {
			return nil, crerr.Wrapf(err, "decode game array %q", path)
		}
		return games, nil
	}

	var doc gameDocument
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		return nil, crerr.Wrapf(err, "decode game document %q", path)
	}
	return doc.Games, nil
}

// Discover expands the given paths into a sorted, de-duplicated list of JSON
// files. Directories are walked recursively; plain files pass through as-is.
func Discover(paths []string) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		out = append(out, path)
	}

	for _, path := range paths {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, crerr.Wrapf(err, "stat input %q", path)
		}
		if !info.IsDir() {
			add(path)
			continue
		}

		err = filepath.WalkDir(path, func(entry string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if d.IsDir() {
				return nil
			}
			if strings.EqualFold(filepath.Ext(entry), ".json") {
				add(entry)
			}
			return nil
		})
		if err != nil {
			return nil, crerr.Wrapf(err, "walk input dir %q", path)
		}
	}

	sort.Strings(out)
	return out, nil
}
