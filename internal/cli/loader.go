package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"

	"github.com/rgrange/sift/internal/schema"
)

// SchemaFile is the decoded content of a CUE schema file:
//
//	models: [{name: "Post", fields: [...]}, ...]
//	root:    "Post"
//	include: ["title", "author__name"]   // optional, omit for all fields
//	exclude: ["secret"]                  // optional
type SchemaFile struct {
	Models  []schema.ModelSpec `json:"models"`
	Root    string             `json:"root"`
	Include []string           `json:"include,omitempty"`
	Exclude []string           `json:"exclude,omitempty"`
}

// LoadedSchema is a schema file resolved into linked models.
type LoadedSchema struct {
	Models  map[string]*schema.Model
	Root    *schema.Model
	Include []string // nil when the file omitted include
	Exclude []string
}

// LoadSchema loads and resolves a CUE schema file or directory.
func LoadSchema(path string) (*LoadedSchema, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("schema path: %w", err)
	}

	// load.Instances wants a directory plus file arguments.
	dir := path
	args := []string{"."}
	if !info.IsDir() {
		dir = filepath.Dir(path)
		args = []string{filepath.Base(path)}
	}

	ctx := cuecontext.New()
	instances := load.Instances(args, &load.Config{Dir: dir})
	if len(instances) == 0 {
		return nil, fmt.Errorf("no CUE instances loaded from %s", path)
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, fmt.Errorf("loading CUE files: %w", inst.Err)
	}

	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("building CUE value: %w", err)
	}

	var file SchemaFile
	if err := value.Decode(&file); err != nil {
		return nil, fmt.Errorf("decoding schema: %w", err)
	}
	if len(file.Models) == 0 {
		return nil, fmt.Errorf("schema defines no models")
	}
	if file.Root == "" {
		return nil, fmt.Errorf("schema defines no root model")
	}

	models, err := schema.Resolve(file.Models)
	if err != nil {
		return nil, err
	}
	root, ok := models[file.Root]
	if !ok {
		return nil, fmt.Errorf("root model %q is not defined", file.Root)
	}

	// An absent include list decodes as nil, which is exactly the
	// engine's "all fields" convention.
	return &LoadedSchema{
		Models:  models,
		Root:    root,
		Include: file.Include,
		Exclude: file.Exclude,
	}, nil
}
