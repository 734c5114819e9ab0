package regset

import (
	stderrors "errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/hexwire/regkit/bitfield"
	"github.com/hexwire/regkit/codec"
	"github.com/hexwire/regkit/errors"
	"github.com/hexwire/regkit/register"
	"go.uber.org/zap"
)

// Options configures set behavior.
type Options struct {
	// UnitBits is the address unit size used for cross-register overlap
	// detection.
	UnitBits int

	// UnitsPerBand is the preferred address-map band width, carried for
	// front-ends building maps from this set.
	UnitsPerBand int
}

// DefaultOptions returns the default set configuration: 8-bit address
// units, four units per band.
func DefaultOptions() Options {
	return Options{
		UnitBits:     8,
		UnitsPerBand: 4,
	}
}

func (o Options) normalized() Options {
	if o.UnitBits <= 0 {
		o.UnitBits = 8
	}
	if o.UnitsPerBand <= 0 {
		o.UnitsPerBand = 4
	}
	return o
}

// Set is an ordered collection of validated register definitions with a
// current raw value per register. Thread-safe.
type Set struct {
	defs    []register.RegisterDef
	values  map[string]*big.Int
	reports map[string]register.Report
	options Options
	mu      sync.RWMutex
}

// New creates a Set from the given definitions. Every definition is
// validated: a hard error anywhere rejects the whole batch, with the load
// and validation errors joined into the returned error. Warnings are
// tolerated, logged through the package logger, and retained per register.
//
// Definitions are copied in. Registers and fields without an ID get a
// minted sequential one (r0, r1, ... and f0, f1, ... per register);
// explicit IDs are kept and must be unique.
func New(defs []register.RegisterDef, opts Options) (*Set, error) {
	s := &Set{
		values:  make(map[string]*big.Int),
		reports: make(map[string]register.Report),
		options: opts.normalized(),
	}

	var failed []error
	usedReg := make(map[string]bool)
	regSeq := 0

	for _, def := range defs {
		def.Fields = append([]register.FieldDef(nil), def.Fields...)

		if def.ID == "" {
			def.ID, regSeq = mint("r", regSeq, usedReg)
		} else if usedReg[def.ID] {
			failed = append(failed, errors.DuplicateID([]string{displayName(&def)}, def.ID))
			continue
		}
		usedReg[def.ID] = true

		if errs := mintFieldIDs(&def); len(errs) > 0 {
			failed = append(failed, errs...)
			continue
		}

		rep := register.Validate(def)
		s.reports[def.ID] = rep
		if !rep.Valid() {
			for _, e := range rep.Errors {
				failed = append(failed, e)
			}
			continue
		}
		for _, w := range rep.Warnings {
			Logger().Warn("definition warning",
				zap.String("register", def.ID),
				zap.Error(w))
		}

		s.defs = append(s.defs, def)
		s.values[def.ID] = new(big.Int)
		Logger().Debug("register accepted",
			zap.String("id", def.ID),
			zap.String("name", def.Name),
			zap.Int("width", def.Width))
	}

	if len(failed) > 0 {
		return nil, stderrors.Join(failed...)
	}
	for _, ov := range register.RegisterOverlaps(s.defs, s.options.UnitBits) {
		Logger().Warn("definition warning",
			zap.Error(errors.RegisterOverlap(ov.A.Name, ov.B.Name, ov.FirstUnit, ov.LastUnit)))
	}
	return s, nil
}

// NewWithDefaults creates a Set with default options.
func NewWithDefaults(defs []register.RegisterDef) (*Set, error) {
	return New(defs, DefaultOptions())
}

// mint returns the first free sequential ID with the given prefix and the
// advanced sequence counter.
func mint(prefix string, seq int, used map[string]bool) (string, int) {
	for {
		id := fmt.Sprintf("%s%d", prefix, seq)
		seq++
		if !used[id] {
			return id, seq
		}
	}
}

// mintFieldIDs fills in missing field IDs on def and reports duplicates
// among the explicit ones.
func mintFieldIDs(def *register.RegisterDef) []error {
	var errs []error
	used := make(map[string]bool)
	seq := 0
	for i := range def.Fields {
		f := &def.Fields[i]
		if f.ID == "" {
			f.ID, seq = mint("f", seq, used)
		} else if used[f.ID] {
			errs = append(errs, errors.DuplicateID([]string{displayName(def), f.Name}, f.ID))
			continue
		}
		used[f.ID] = true
	}
	return errs
}

func displayName(r *register.RegisterDef) string {
	if r.Name != "" {
		return r.Name
	}
	if r.ID != "" {
		return r.ID
	}
	return "register"
}

// Options returns the set configuration.
func (s *Set) Options() Options {
	return s.options
}

// Len returns the number of registers in the set.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.defs)
}

// Registers returns the definitions in display order.
func (s *Set) Registers() []register.RegisterDef {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]register.RegisterDef(nil), s.defs...)
}

// ByID returns the definition with the given ID, or nil.
func (s *Set) ByID(id string) *register.RegisterDef {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookup(id)
}

// Find returns the register whose ID or name matches key, trying IDs
// first, or nil.
func (s *Set) Find(key string) *register.RegisterDef {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if r := s.lookup(key); r != nil {
		return r
	}
	for i := range s.defs {
		if s.defs[i].Name == key {
			return &s.defs[i]
		}
	}
	return nil
}

// lookup is called with the lock held.
func (s *Set) lookup(id string) *register.RegisterDef {
	for i := range s.defs {
		if s.defs[i].ID == id {
			return &s.defs[i]
		}
	}
	return nil
}

// Value returns a copy of the register's current raw value, or nil for an
// unknown ID.
func (s *Set) Value(id string) *big.Int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[id]
	if !ok {
		return nil
	}
	return new(big.Int).Set(v)
}

// SetValue replaces the register's current raw value with v masked to the
// register width. Negative values take their two's-complement image.
func (s *Set) SetValue(id string, v *big.Int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.lookup(id)
	if r == nil {
		return errors.NotFound("register", id)
	}
	s.values[id] = bitfield.ToUnsigned(v, r.Width)
	return nil
}

// ToggleBit flips one bit of the register's current value. Bits outside
// the register width mask away, leaving the value unchanged.
func (s *Set) ToggleBit(id string, bit int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.lookup(id)
	if r == nil {
		return errors.NotFound("register", id)
	}
	s.values[id] = bitfield.ToUnsigned(bitfield.Toggle(s.values[id], bit), r.Width)
	return nil
}

// ApplyField encodes input for the named field and merges it into the
// register's current value. Unparsable input zeroes the field, as in the
// codec.
func (s *Set) ApplyField(regID, fieldID string, input any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.lookup(regID)
	if r == nil {
		return errors.NotFound("register", regID)
	}
	f := r.Field(fieldID)
	if f == nil {
		return errors.NotFound("field", fieldID)
	}
	s.values[regID] = bitfield.ToUnsigned(codec.Apply(s.values[regID], *f, input), r.Width)
	return nil
}

// Move shifts the register by delta positions in display order, clamping
// at the ends.
func (s *Set) Move(id string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	from := -1
	for i := range s.defs {
		if s.defs[i].ID == id {
			from = i
			break
		}
	}
	if from < 0 {
		return errors.NotFound("register", id)
	}
	to := min(max(from+delta, 0), len(s.defs)-1)
	if to == from {
		return nil
	}

	def := s.defs[from]
	s.defs = append(s.defs[:from], s.defs[from+1:]...)
	s.defs = append(s.defs, register.RegisterDef{})
	copy(s.defs[to+1:], s.defs[to:])
	s.defs[to] = def
	return nil
}

// Overlaps reports every pair of placed registers whose address unit
// ranges collide under the set's unit size.
func (s *Set) Overlaps() []register.RegisterOverlap {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return register.RegisterOverlaps(s.defs, s.options.UnitBits)
}

// Report returns the retained validation report for the register. Unknown
// IDs return an empty report.
func (s *Set) Report(id string) register.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reports[id]
}
