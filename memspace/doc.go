package memspace

/*
Package memspace provides a simulated flat memory space.

An AddressSpace hands out integer addresses for fixed length byte blocks and
tracks their contents. Callers read, write, copy and fill regions of those
blocks by address, or by a symbolic name bound to an address. Fixed width
scalar and string codecs are layered over the same region primitives. This
gives code that wants manual-memory style semantics (explicit alloc/free,
byte exact views, fixed width encode/decode) a safe, process local substitute
for real memory.

Addresses are opaque integer keys. They are *not* pointers into process
memory, there is no paging, no protection bits and no sharing between
processes. Blocks never grow: resizing is an explicit free followed by a
fresh allocation.

Two result channels are used consistently throughout:

 1. Contract violations (zero or negative sizes, out of range offsets,
    capacity overruns, duplicate variable names) are reported as errors,
    wrapping one of the package sentinel errors.
 2. Lookups of addresses or names that are simply not live are reported
    through the result value (a nil slice, or false), with a nil error.
    Freeing an address twice is a normal outcome, not a failure.

Read is an aliasing operation: the returned slice shares storage with the
block, so mutating it mutates the stored bytes. Callers that need an
independent snapshot must copy explicitly.

An AddressSpace is not safe for concurrent use. Callers that share one
across goroutines are responsible for serialising access.
*/
