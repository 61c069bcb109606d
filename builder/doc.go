// Package builder produces deterministic fixture maps for tests, examples and
// benchmarks of the route planner.
//
// Every fixture is a core.Graph whose points lie on a degree lattice and whose
// routes are at least as long as the great-circle distance between their
// endpoints, so geo.Haversine never overestimates and A* results can be
// checked against dijkstra.
//
// Components:
//
//   - BuildGraph(bopts, cons...)  – runs constructors in order on a fresh map.
//   - Constructors:               Line(n), Grid(rows, cols), RandomSparse(n, p).
//   - Point ID schemes (IDFn):    DefaultIDFn "#0", SymbolIDFn "#A", ExcelColumnIDFn "#AA".
//   - Route length (DetourFn):    ExactDetour, ConstantDetour(f), UniformDetour(min, max).
//   - Layout:                     WithSpacing(deg), WithOrigin(lat, lon).
//   - Randomness:                 WithSeed(seed), WithRand(r).
//
// Option constructors panic on meaningless input; constructors return
// sentinel errors (ErrTooFewPoints, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed) wrapped with the constructor name.
package builder
