package generator

import (
	"fmt"
	"sort"
	"strconv"
)

const (
	optPath    = "github.com/calumari/paramkit/opt"
	paramsPath = "github.com/calumari/paramkit/params"
)

// importSet resolves the local names of packages the generated file refers
// to. The runtime packages are always present.
type importSet struct {
	byPath   map[string]string // path -> local name
	byName   map[string]string // local name -> path
	defaults map[string]string // path -> package name
}

func newImportSet() *importSet {
	s := &importSet{
		byPath:   make(map[string]string),
		byName:   make(map[string]string),
		defaults: make(map[string]string),
	}
	s.register(optPath, "opt", "opt")
	s.register(paramsPath, "params", "params")
	return s
}

func (s *importSet) register(p, pkgName, local string) {
	s.byPath[p] = local
	s.byName[local] = p
	s.defaults[p] = pkgName
}

// auto returns the local name for a type-checked package, aliasing it when
// its name is already taken by another path.
func (s *importSet) auto(p, pkgName string) string {
	if local, ok := s.byPath[p]; ok {
		return local
	}
	local := pkgName
	for i := 2; s.byName[local] != ""; i++ {
		local = pkgName + strconv.Itoa(i)
	}
	s.register(p, pkgName, local)
	return local
}

// declare registers p under a local name chosen by the schema author.
func (s *importSet) declare(p, local string) error {
	if other, ok := s.byName[local]; ok && other != p {
		return fmt.Errorf("import name %q used for both %s and %s", local, other, p)
	}
	if prev, ok := s.byPath[p]; ok && prev != local {
		return fmt.Errorf("package %s imported as both %q and %q", p, prev, local)
	}
	s.register(p, importBase(p), local)
	return nil
}

func (s *importSet) specs() []importModel {
	out := make([]importModel, 0, len(s.byPath))
	for p, local := range s.byPath {
		out = append(out, importModel{Name: local, Path: p, Alias: local != s.defaults[p]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}
