package app

import (
	"context"
	"io"
	"path"

	"github.com/specialistvlad/focusgridgo/internal/executor"
	"github.com/specialistvlad/focusgridgo/internal/focus"
	"github.com/specialistvlad/focusgridgo/internal/output"
	"github.com/specialistvlad/focusgridgo/internal/publish"
)

// Output locations below the output directory.
const (
	focusDir        = "common/national_focus"
	sharedFocusFile = "shared_focuses"
	eventsFile      = "events/focus_events.txt"
	localisationDir = "localisation"
)

// outputFiles lists every file a run writes.
func (a *App) outputFiles(res *result) []output.File {
	var files []output.File

	shared := res.generic.SharedFocuses()
	var sharedRoots []string
	for _, f := range shared {
		if len(f.Prerequisites) == 0 {
			sharedRoots = append(sharedRoots, f.ID)
		}
	}

	if a.config.OutputFormat == FormatHCL {
		files = append(files, output.File{
			Path:  path.Join(focusDir, sharedFocusFile+".hcl"),
			Write: func(w io.Writer) error { return output.WriteHCL(w, shared) },
		})
	} else {
		files = append(files, output.File{
			Path:  path.Join(focusDir, sharedFocusFile+".txt"),
			Write: func(w io.Writer) error { return output.WriteSharedFocuses(w, shared) },
		})
	}

	for _, t := range res.trees {
		tag, focuses := t.Tag, t.Focuses()
		if a.config.OutputFormat == FormatHCL {
			files = append(files, output.File{
				Path:  path.Join(focusDir, tag+"_NF.hcl"),
				Write: func(w io.Writer) error { return output.WriteHCL(w, focuses) },
			})
			continue
		}
		files = append(files, output.File{
			Path:  path.Join(focusDir, tag+"_NF.txt"),
			Write: func(w io.Writer) error { return output.WriteFocusTree(w, tag, focuses, sharedRoots) },
		})
	}

	evs, hooks := res.recorder.Events(), res.recorder.FocusHooks()
	if len(evs) > 0 || len(hooks) > 0 {
		files = append(files, output.File{
			Path:  eventsFile,
			Write: func(w io.Writer) error { return output.WriteEvents(w, evs, hooks) },
		})
	}

	for _, lang := range res.loc.Languages() {
		files = append(files, output.File{
			Path:  path.Join(localisationDir, "focus_mod_l_"+lang+".yml"),
			Write: func(w io.Writer) error { return res.loc.WriteYAML(w, lang) },
		})
	}
	return files
}

// outputJobs turns the output files into executor jobs.
func (a *App) outputJobs(res *result) []executor.Job {
	files := a.outputFiles(res)
	jobs := make([]executor.Job, 0, len(files))
	for _, f := range files {
		jobs = append(jobs, executor.Job{
			ID:  f.Path,
			Run: func(ctx context.Context) error { return f.Save(ctx, a.config.OutputDir) },
		})
	}
	return jobs
}

// payloads builds one publish payload per country: its shared focuses
// followed by its own.
func (a *App) payloads(res *result) []publish.Payload {
	shared := res.generic.SharedFocuses()
	out := make([]publish.Payload, 0, len(res.trees))
	for _, t := range res.trees {
		focuses := make([]*focus.Focus, 0, len(shared)+len(t.Focuses()))
		focuses = append(focuses, shared...)
		focuses = append(focuses, t.Focuses()...)
		out = append(out, publish.NewPayload(a.session, t.Tag, focuses))
	}
	return out
}
