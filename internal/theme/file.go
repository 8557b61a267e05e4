package theme

import (
	"context"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ConfigFile follows the "theme" key of a YAML file, re-reading the file
// whenever it changes on disk. A value other than light or dark, including
// "system", reads as NoPreference and so as light mode; the desktop setting
// is only consulted when the process starts with theme: system.
type ConfigFile struct {
	path string
	key  string
}

// NewConfigFile returns a source reading the "theme" key of path.
func NewConfigFile(path string) *ConfigFile {
	return &ConfigFile{path: path, key: "theme"}
}

func (c *ConfigFile) Current(context.Context) (Scheme, error) {
	return c.read(file.Provider(c.path))
}

func (c *ConfigFile) read(fp *file.File) (Scheme, error) {
	k := koanf.New(".")
	if err := k.Load(fp, yaml.Parser()); err != nil {
		return NoPreference, fmt.Errorf("reading %s: %w", c.path, err)
	}
	return ParseScheme(k.String(c.key)), nil
}

func (c *ConfigFile) Watch(ctx context.Context, fn func(Scheme)) error {
	fp := file.Provider(c.path)

	errs := make(chan error, 1)
	err := fp.Watch(func(_ interface{}, err error) {
		if err != nil {
			select {
			case errs <- err:
			default:
			}
			return
		}
		s, err := c.read(fp)
		if err != nil {
			// Editors often write in several steps; the next event catches up.
			return
		}
		fn(s)
	})
	if err != nil {
		return fmt.Errorf("watching %s: %w", c.path, err)
	}
	defer fp.Unwatch()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errs:
		return fmt.Errorf("watching %s: %w", c.path, err)
	}
}
