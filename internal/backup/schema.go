package backup

import (
	_ "embed"
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cuejson "cuelang.org/go/encoding/json"

	"bluewave/internal/domain"
)

//go:embed schema.cue
var schemaCUE string

var (
	schemaOnce sync.Once
	schemaVal  cue.Value
)

// schema compiles the embedded document schema once.
func schema() cue.Value {
	schemaOnce.Do(func() {
		ctx := cuecontext.New()
		schemaVal = ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	})
	return schemaVal
}

// ValidateDocument checks a candidate import document against the
// backup schema. The three collections must be present and every
// record must carry well-typed required fields; extra fields are
// tolerated.
func ValidateDocument(raw []byte) error {
	sch := schema()
	if err := sch.Err(); err != nil {
		return domain.NewPersistenceError("compile backup schema", err)
	}

	expr, err := cuejson.Extract("import.json", raw)
	if err != nil {
		return domain.NewPersistenceError("parse import document", err)
	}

	val := sch.Context().BuildExpr(expr)
	if err := val.Err(); err != nil {
		return domain.NewPersistenceError("parse import document", err)
	}

	unified := sch.Unify(val)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return domain.NewPersistenceError(fmt.Sprintf("import document rejected: %v", err), err)
	}
	return nil
}
