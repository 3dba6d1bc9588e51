package app

import "github.com/specialistvlad/focusgridgo/internal/feature"

// coreModules is the definitive list of all feature modules that are
// compiled into the focusgridgo binary.
var coreModules = []feature.Module{
	feature.Builtin{},
}
