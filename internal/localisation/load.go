package localisation

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/focusgridgo/internal/ctxlog"
	"github.com/specialistvlad/focusgridgo/internal/fsutil"
)

type fileRoot struct {
	Languages []*languageBlock `hcl:"language,block"`
	Remain    hcl.Body         `hcl:",remain"`
}

type languageBlock struct {
	Name    string            `hcl:"name,label"`
	Entries map[string]string `hcl:"entries,optional"`
}

// Load reads every .hcl file under paths into the store. Files look like:
//
//	language "english" {
//	  entries = {
//	    WarPlan      = "War Plan: $TARGET"
//	    WarPlan_desc = "Draft plans for a war against $TARGET."
//	  }
//	}
func (s *Store) Load(ctx context.Context, paths ...string) error {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindAll(paths, ".hcl")
	if err != nil {
		return fmt.Errorf("failed to discover localisation files: %w", err)
	}

	parser := hclparse.NewParser()
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read localisation file %s: %w", file, err)
		}
		hclFile, diags := parser.ParseHCL(data, file)
		if diags.HasErrors() {
			return fmt.Errorf("failed to parse localisation file %s: %w", file, diags)
		}
		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return fmt.Errorf("failed to decode localisation file %s: %w", file, diags)
		}
		for _, l := range root.Languages {
			for key, text := range l.Entries {
				s.setLocked(l.Name, key, text)
				count++
			}
		}
	}

	logger.Debug("Localisation loaded.", "files", len(files), "entries", count)
	return nil
}
