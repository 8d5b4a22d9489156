/*
Package hes compares two ways of storing and dispatching over a closed set of
heterogeneous record types.

We implement:

1. Record variants A, B and C, each a fixed-shape struct of int64 fields with
a ProductWith method.

2. A Program holding one append-only column per variant.

3. A typed path: Insert, At and Len are generic over the variant, so every
instantiation touches exactly one column without any runtime branching.

4. A type-erased path: AnySyntax and AnyID are closed tagged unions over the
three variants, and Program.InsertAny / Program.AtAny switch on the tag.

5. A deterministic workload (Driver, Workload) and a Suite of benchmark cases
that drive both paths and produce checksums.

# Technical Details

**Columns.**
Each variant selects its own column through an unexported method on the Row
constraint. Identifiers are plain slot indices; nothing is ever removed, so an
identifier stays valid for the lifetime of its Program.

**Arithmetic.**
All record arithmetic is int64 and wraps on overflow. Checksums depend on it.

**Driver.**
The workload seed advances as seed = (seed + 2432) * 39 mod 1000001. The seed
picks the variant (seed mod 3), the field values, the lookup slot
(seed mod number of identifiers) and the ProductWith argument (seed mod 100).

**Failures.**
Handing InsertAny or AtAny a value that carries no known variant panics with
*VariantError before any column is touched. Out-of-range identifiers trip the
runtime bounds check.
*/
package hes
