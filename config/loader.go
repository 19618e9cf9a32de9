package config

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// configFile is one compiled configuration file.
type configFile struct {
	path  string
	value cue.Value
}

// compileFiles compiles every file in one context and checks it against
// Schema.
func compileFiles(paths []string) ([]configFile, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString("close({" + Schema + "})")
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	files := make([]configFile, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		value := ctx.CompileBytes(content, cue.Filename(path))
		if err := value.Err(); err != nil {
			return nil, err
		}

		if err := schema.Unify(value).Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		files = append(files, configFile{path: path, value: value})
	}

	return files, nil
}

// Load reads configuration files over the defaults. A setting is taken
// from the first file that defines it.
func Load(paths ...string) (Config, error) {
	files, err := compileFiles(paths)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	settings := []struct {
		name   string
		target any
	}{
		{"stack_size", &cfg.StackSize},
		{"max_steps", &cfg.MaxSteps},
		{"freq_mhz", &cfg.FreqMHz},
		{"trace_file", &cfg.TraceFile},
	}

	for _, s := range settings {
		for _, f := range files {
			v := f.value.LookupPath(cue.ParsePath(s.name))
			if !v.Exists() {
				continue
			}

			if err := v.Decode(s.target); err != nil {
				return Config{}, fmt.Errorf("%s: %s: %w", f.path, s.name, err)
			}

			break
		}
	}

	return cfg, nil
}
