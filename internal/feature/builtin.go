package feature

import (
	"context"

	"github.com/specialistvlad/focusgridgo/internal/focusid"
)

// Names of the built-in features.
const (
	Democracy         = "democracy"
	AbsolutistEmpire  = "absolutist_empire"
	CommunistCoup     = "communist_coup"
	CommunistWar      = "communist_war"
	FascistAnnexation = "fascist_annexation"
	FascistSudeten    = "fascist_sudeten"
	GreatPowerWar     = "great_power_war"
	Reconquest        = "reconquest"
	Conquer           = "conquer"
	IntegratePuppets  = "integrate_puppets"
)

// Builtin is the Module registering every built-in feature.
type Builtin struct{}

// Register implements Module.
func (Builtin) Register(r *Registry) {
	r.Register(Democracy, democracy)
	r.Register(AbsolutistEmpire, absolutistEmpire)
	r.Register(CommunistCoup, communistCoup)
	r.Register(CommunistWar, communistWar)
	r.Register(FascistAnnexation, fascistAnnexation)
	r.Register(FascistSudeten, fascistSudeten)
	r.Register(GreatPowerWar, greatPowerWar)
	r.Register(Reconquest, reconquest)
	r.Register(Conquer, conquer)
	r.Register(IntegratePuppets, integratePuppets)
}

func democracy(ctx context.Context, b *Build) error {
	contain := b.countries(ctx, "contain", b.Country.Targets.Contain)
	return b.Tree.AddDemocracyNationalFocuses(ctx, b.Country, contain)
}

func absolutistEmpire(ctx context.Context, b *Build) error {
	colonies := b.countries(ctx, "colonies", b.Country.Targets.Colonies)
	annex := b.countries(ctx, "annexation", b.Country.Targets.Annexation)
	return b.Tree.AddAbsolutistEmpireNationalFocuses(ctx, b.Country, colonies, annex)
}

func communistCoup(ctx context.Context, b *Build) error {
	targets := b.countries(ctx, "coup", b.Country.Targets.Coup)
	return b.Tree.AddCommunistCoupBranch(ctx, b.Country, targets, b.World.MajorIdeologies)
}

func communistWar(ctx context.Context, b *Build) error {
	targets := b.countries(ctx, "war", b.Country.Targets.War)
	return b.Tree.AddCommunistWarBranch(ctx, b.Country, targets)
}

// fascistAnnexation adds the annexation trunk. Without anschluss targets the
// trunk is taken out again; the columns it reserved stay reserved.
func fascistAnnexation(ctx context.Context, b *Build) error {
	targets := b.countries(ctx, "annexation", b.Country.Targets.Annexation)
	sudeten := b.countries(ctx, "sudeten", b.Country.Targets.Sudeten)
	if err := b.Tree.AddFascistAnnexationBranch(ctx, b.Country, targets, len(sudeten)); err != nil {
		return err
	}
	if len(targets) == 0 {
		b.Tree.RemoveFocus(focusid.Customized("The_third_way", b.Country.Tag))
		b.Tree.RemoveFocus(focusid.Customized("mil_march", b.Country.Tag))
	}
	return nil
}

func fascistSudeten(ctx context.Context, b *Build) error {
	anschluss := b.countries(ctx, "annexation", b.Country.Targets.Annexation)
	sudeten := b.countries(ctx, "sudeten", b.Country.Targets.Sudeten)
	return b.Tree.AddFascistSudetenBranch(ctx, b.Country, anschluss, sudeten)
}

func greatPowerWar(ctx context.Context, b *Build) error {
	allies := b.countries(ctx, "allies", b.Country.Targets.Allies)
	greatPowers := b.countries(ctx, "great_powers", b.Country.Targets.GreatPowers)
	return b.Tree.AddGPWarBranch(ctx, b.Country, allies, greatPowers, b.Country.Government)
}

func reconquest(ctx context.Context, b *Build) error {
	holders, err := b.Tree.AddReconquestBranch(ctx, b.Country, &b.NumWarsWithNeighbors, b.World.MajorIdeologies, b.World.States)
	if err != nil {
		return err
	}
	b.CoreHolders = holders
	return nil
}

func conquer(ctx context.Context, b *Build) error {
	conquered, err := b.Tree.AddConquerBranch(ctx, b.Country, &b.NumWarsWithNeighbors, b.CoreHolders, b.World.States)
	if err != nil {
		return err
	}
	b.Conquered = conquered
	return nil
}

func integratePuppets(ctx context.Context, b *Build) error {
	return b.Tree.AddIntegratePuppetsBranch(ctx, b.Country)
}
