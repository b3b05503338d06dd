package params_test

import "github.com/calumari/paramkit/params"

// Fixture schemas, generated the same way user packages generate theirs.

//go:generate go run ../cmd/paramgen generate --name=point --fields=int,x,float64,y --package=params_test --output=point_gen_test.go
//go:generate go run ../cmd/paramgen generate --name=label --fields=*string,text --package=params_test --output=label_gen_test.go
//go:generate go run ../cmd/paramgen generate --name=box --fields=any,v --package=params_test --output=box_gen_test.go

// loose carries values whose dynamic types are decided at run time.
type loose []any

func (loose) Schema() *params.Schema { return nil }

func (l loose) Args() []any { return l }
