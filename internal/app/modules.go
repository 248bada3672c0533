package app

import (
	"github.com/specialistvlad/orchestraigo/internal/registry"
	"github.com/specialistvlad/orchestraigo/modules/bass"
	"github.com/specialistvlad/orchestraigo/modules/brass"
	"github.com/specialistvlad/orchestraigo/modules/choir"
	"github.com/specialistvlad/orchestraigo/modules/harp"
	"github.com/specialistvlad/orchestraigo/modules/keyboards"
	"github.com/specialistvlad/orchestraigo/modules/percussion"
	"github.com/specialistvlad/orchestraigo/modules/strings"
	"github.com/specialistvlad/orchestraigo/modules/woodwinds"
)

// coreModules is the definitive list of all section modules that are
// compiled into the orchestraigo binary. sink may be nil.
func coreModules(sink choir.MetricSink) []registry.Module {
	return []registry.Module{
		&bass.Module{},
		&brass.Module{},
		&choir.Module{Sink: sink},
		&harp.Module{},
		&keyboards.Module{},
		&percussion.Module{},
		&strings.Module{},
		&woodwinds.Module{},
	}
}

// Catalog returns a registry holding the given modules, or every core module
// when none are given.
func Catalog(modules ...registry.Module) *registry.Registry {
	if len(modules) == 0 {
		modules = coreModules(nil)
	}
	reg := registry.New()
	for _, mod := range modules {
		mod.Register(reg)
	}
	return reg
}
