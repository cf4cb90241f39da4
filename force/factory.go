package force

import "github.com/cpmech/gosl/chk"

// allocators holds every built-in force's constructor, keyed by its type
// tag. Grounded on ele/factory.go's infofactory/allocators maps.
var allocators = make(map[Type]func() Force)

// registerBuiltin adds a constructor to the built-in factory. Called only
// from package-level init() functions, so a duplicate registration is a
// programming mistake in this package, not a caller precondition failure:
// it panics, mirroring ele/factory.go's SetAllocator.
func registerBuiltin(t Type, ctor func() Force) {
	if _, ok := allocators[t]; ok {
		chk.Panic("force: built-in type %q registered twice", t)
	}
	allocators[t] = ctor
}

// New constructs a fresh Force of the given type from the built-in
// factory. Fails if forceType is not one of the recognised types.
func New(forceType Type) (Force, error) {
	ctor, ok := allocators[forceType]
	if !ok {
		return nil, chk.Err("force.New: unrecognised force_type %q", forceType)
	}
	return ctor(), nil
}
