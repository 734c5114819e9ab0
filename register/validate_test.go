package register

import (
	"testing"

	"github.com/hexwire/regkit/errors"
)

func countKind(issues []*errors.Error, kind errors.Kind) int {
	n := 0
	for _, e := range issues {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestValidateCleanRegister(t *testing.T) {
	def := RegisterDef{
		Name:  "CTRL",
		Width: 32,
		Fields: []FieldDef{
			{Name: "EN", MSB: 0, LSB: 0, Kind: KindFlag},
			{Name: "MODE", MSB: 3, LSB: 1, Kind: KindEnum},
			{Name: "GAIN", MSB: 11, LSB: 4, Kind: KindFixed, IntBits: 4, FracBits: 4},
			{Name: "TEMP", MSB: 27, LSB: 12, Kind: KindFloat, Prec: Half},
			{Name: "LEVEL", MSB: 31, LSB: 28, Kind: KindInt, Sign: TwosComplement},
		},
	}

	rep := Validate(def)
	if !rep.Valid() {
		t.Fatalf("clean register reported errors: %v", rep.Errors)
	}
	if len(rep.Warnings) != 0 {
		t.Errorf("clean register reported warnings: %v", rep.Warnings)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		def  RegisterDef
		kind errors.Kind
	}{
		{
			name: "zero width",
			def:  RegisterDef{Name: "R", Width: 0},
			kind: errors.KindWidthRange,
		},
		{
			name: "width above max",
			def:  RegisterDef{Name: "R", Width: MaxWidth + 1},
			kind: errors.KindWidthRange,
		},
		{
			name: "blank register name",
			def:  RegisterDef{Name: "   ", Width: 8},
			kind: errors.KindBlankName,
		},
		{
			name: "blank field name",
			def: RegisterDef{Name: "R", Width: 8, Fields: []FieldDef{
				{Name: "", MSB: 0, LSB: 0, Kind: KindFlag},
			}},
			kind: errors.KindBlankName,
		},
		{
			name: "inverted window",
			def: RegisterDef{Name: "R", Width: 8, Fields: []FieldDef{
				{Name: "F", MSB: 2, LSB: 5, Kind: KindInt},
			}},
			kind: errors.KindBitOrder,
		},
		{
			name: "negative lsb",
			def: RegisterDef{Name: "R", Width: 8, Fields: []FieldDef{
				{Name: "F", MSB: 3, LSB: -1, Kind: KindInt},
			}},
			kind: errors.KindBitOrder,
		},
		{
			name: "wide flag",
			def: RegisterDef{Name: "R", Width: 8, Fields: []FieldDef{
				{Name: "F", MSB: 2, LSB: 0, Kind: KindFlag},
			}},
			kind: errors.KindWidthMismatch,
		},
		{
			name: "half float in 12 bits",
			def: RegisterDef{Name: "R", Width: 16, Fields: []FieldDef{
				{Name: "F", MSB: 11, LSB: 0, Kind: KindFloat, Prec: Half},
			}},
			kind: errors.KindWidthMismatch,
		},
		{
			name: "fixed width off by one",
			def: RegisterDef{Name: "R", Width: 16, Fields: []FieldDef{
				{Name: "F", MSB: 8, LSB: 0, Kind: KindFixed, IntBits: 4, FracBits: 4},
			}},
			kind: errors.KindWidthMismatch,
		},
		{
			name: "negative frac bits",
			def: RegisterDef{Name: "R", Width: 16, Fields: []FieldDef{
				{Name: "F", MSB: 3, LSB: 0, Kind: KindFixed, IntBits: 8, FracBits: -4},
			}},
			kind: errors.KindWidthMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := Validate(tt.def)
			if rep.Valid() {
				t.Fatal("expected errors, got none")
			}
			if countKind(rep.Errors, tt.kind) == 0 {
				t.Errorf("no %s error in %v", tt.kind, rep.Errors)
			}
		})
	}
}

// A field reaching past the register MSB is tolerated: decode and layout
// stay defined, so it only warns.
func TestValidateExceedsWidthWarns(t *testing.T) {
	def := RegisterDef{Name: "R", Width: 8, Fields: []FieldDef{
		{Name: "HI", MSB: 11, LSB: 6, Kind: KindInt},
	}}

	rep := Validate(def)
	if !rep.Valid() {
		t.Fatalf("exceeds-width should not be a hard error: %v", rep.Errors)
	}
	if countKind(rep.Warnings, errors.KindExceedsWidth) != 1 {
		t.Errorf("warnings = %v, want one exceeds_width", rep.Warnings)
	}
}

// Overlap warnings come once per unordered pair: A overlaps B and B
// overlaps C, but A and C are disjoint, so exactly two warnings.
func TestValidateOverlapChain(t *testing.T) {
	def := RegisterDef{Name: "R", Width: 16, Fields: []FieldDef{
		{Name: "A", MSB: 7, LSB: 0, Kind: KindInt},
		{Name: "B", MSB: 11, LSB: 6, Kind: KindInt},
		{Name: "C", MSB: 15, LSB: 10, Kind: KindInt},
	}}

	rep := Validate(def)
	if !rep.Valid() {
		t.Fatalf("overlaps should not be hard errors: %v", rep.Errors)
	}
	if got := countKind(rep.Warnings, errors.KindFieldOverlap); got != 2 {
		t.Errorf("overlap warnings = %d, want 2 (%v)", got, rep.Warnings)
	}
}

func TestValidateInvertedWindowSkipsDependentChecks(t *testing.T) {
	def := RegisterDef{Name: "R", Width: 8, Fields: []FieldDef{
		{Name: "F", MSB: 0, LSB: 5, Kind: KindFlag},
	}}

	rep := Validate(def)
	if countKind(rep.Errors, errors.KindBitOrder) != 1 {
		t.Fatalf("errors = %v, want a bit_order error", rep.Errors)
	}
	if countKind(rep.Errors, errors.KindWidthMismatch) != 0 {
		t.Errorf("width checks should not fire on a malformed window: %v", rep.Errors)
	}
}

func TestReportIssues(t *testing.T) {
	def := RegisterDef{Name: "", Width: 8, Fields: []FieldDef{
		{Name: "HI", MSB: 9, LSB: 6, Kind: KindInt},
	}}

	rep := Validate(def)
	issues := rep.Issues()
	if len(issues) != len(rep.Errors)+len(rep.Warnings) {
		t.Fatalf("Issues() length = %d, want %d", len(issues), len(rep.Errors)+len(rep.Warnings))
	}
	if len(rep.Errors) == 0 || issues[0].Kind != rep.Errors[0].Kind {
		t.Error("Issues() should lead with errors")
	}
}
