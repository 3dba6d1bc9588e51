package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/focusgridgo/internal/branch"
	"github.com/specialistvlad/focusgridgo/internal/ctxlog"
	"github.com/specialistvlad/focusgridgo/internal/events"
	"github.com/specialistvlad/focusgridgo/internal/executor"
	"github.com/specialistvlad/focusgridgo/internal/feature"
	"github.com/specialistvlad/focusgridgo/internal/localisation"
	"github.com/specialistvlad/focusgridgo/internal/publish"
	"github.com/specialistvlad/focusgridgo/internal/selection"
	"github.com/specialistvlad/focusgridgo/internal/templatestore"
	"github.com/specialistvlad/focusgridgo/internal/tree"
	"github.com/specialistvlad/focusgridgo/internal/world"
)

// inputs is everything a run composes against.
type inputs struct {
	pool     *templatestore.Pool
	world    *world.World
	rules    *selection.Rules
	loc      *localisation.Store
	branches branch.Set
}

// result is the outcome of composition, ready to be written out.
type result struct {
	generic  *tree.Tree
	trees    []*tree.Tree
	recorder *events.Recorder
	loc      *localisation.Store
}

// Run executes one conversion: load the inputs, compose a focus tree per
// country and write every output file.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.HealthcheckPort > 0 {
		stop := a.startHealthcheckServer(ctx, a.config.HealthcheckPort)
		defer stop()
	}

	in, err := a.load(ctx)
	if err != nil {
		return err
	}

	res, err := a.compose(ctx, in)
	if err != nil {
		return err
	}

	jobs := a.outputJobs(res)
	a.logger.Info("🚀 Writing output files...", "files", len(jobs), "dir", a.config.OutputDir)
	if err := executor.New(a.config.WorkerCount).Run(ctx, jobs); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	a.logger.Info("🏁 Output written.")

	if a.config.PublishURL != "" {
		p := publish.New(publish.Options{URL: a.config.PublishURL})
		if err := p.Publish(ctx, a.payloads(res)); err != nil {
			return fmt.Errorf("failed to publish focus trees: %w", err)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) load(ctx context.Context) (*inputs, error) {
	pool := templatestore.New()
	if err := pool.EnsureLoaded(ctx, a.config.CorpusPaths...); err != nil {
		return nil, fmt.Errorf("failed to load focus templates: %w", err)
	}

	w, err := world.LoadFile(ctx, a.config.WorldPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load world: %w", err)
	}

	var rules *selection.Rules
	if a.config.RulesPath == "" {
		rules, err = selection.Default(ctx)
	} else {
		rules, err = selection.LoadFile(ctx, a.config.RulesPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load selection rules: %w", err)
	}
	if err := a.features.Validate(rules.Names(selection.KindFeature)); err != nil {
		return nil, fmt.Errorf("invalid selection rules: %w", err)
	}

	loc := localisation.NewStore()
	if len(a.config.LocalisationPaths) > 0 {
		if err := loc.Load(ctx, a.config.LocalisationPaths...); err != nil {
			return nil, fmt.Errorf("failed to load localisation: %w", err)
		}
	}

	branches, err := branch.Compute(ctx, pool)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve branches: %w", err)
	}
	for _, name := range rules.Names(selection.KindBranch) {
		if _, ok := branches[name]; !ok {
			a.logger.Warn("Selection rule names a branch that is not in the corpus.", "branch", name)
		}
	}

	return &inputs{pool: pool, world: w, rules: rules, loc: loc, branches: branches}, nil
}

func (a *App) compose(ctx context.Context, in *inputs) (*result, error) {
	rec := events.NewRecorder()
	deps := tree.Deps{
		Store:     in.pool,
		Localiser: in.loc,
		Events:    rec,
		OnActions: rec,
		Branches:  in.branches,
	}

	generic := tree.New("", deps)
	if err := generic.AddGenericFocusTree(ctx, in.world.MajorIdeologies); err != nil {
		return nil, fmt.Errorf("failed to build generic focus tree: %w", err)
	}

	tags := a.config.Countries
	if len(tags) == 0 {
		tags = in.world.CountryTags()
	}

	res := &result{generic: generic, recorder: rec, loc: in.loc}
	for _, tag := range tags {
		c, err := in.world.Country(tag)
		if err != nil {
			return nil, err
		}

		t := generic.CustomizedCopy(tag)
		sel := in.rules.Select(ctx, selection.NewEnv(c, in.world))
		if err := a.features.Apply(ctx, feature.NewBuild(t, c, in.world), sel.Features); err != nil {
			return nil, err
		}
		for _, root := range sel.Branches {
			if err := t.AddBranch(ctx, root); err != nil {
				return nil, fmt.Errorf("branch %s for %s: %w", root, tag, err)
			}
		}

		a.logger.Info("Focus tree composed.", "tag", tag, "focuses", len(t.Focuses()), "features", sel.Features, "branches", sel.Branches)
		res.trees = append(res.trees, t)
	}
	return res, nil
}
