// Package regset manages an ordered set of validated register definitions
// together with their current raw values.
//
// The set is the strict ingestion boundary: New validates every definition
// and rejects the whole batch when any carries a hard error, while
// tolerated warnings (field overlaps, fields reaching outside the
// register) are logged and retained per register. Inside the set, every
// operation stays total.
//
// Definitions may arrive without IDs; the set mints sequential ones
// (r0, r1, ... for registers, f0, f1, ... for fields within each register)
// so layout output and edits can always be correlated. Explicit IDs are
// kept and must be unique.
//
// # Usage
//
//	set, err := regset.NewWithDefaults(defs)
//	if err != nil {
//	    // one or more definitions failed validation
//	}
//	set.SetValue("r0", big.NewInt(0xF00F))
//	set.ToggleBit("r0", 4)
//	set.ApplyField("r0", "f1", "0x2A")
//	v := set.Value("r0")
//
// Logging defaults to a no-op logger; front-ends inject one with
// SetLogger before loading.
package regset
