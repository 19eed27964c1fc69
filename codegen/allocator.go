// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package codegen

// Allocator hands out binding indices from three independent namespaces.
// Each counter starts at 0 and grows by exactly one per Next call.
//
// Allocator is a value type: copying it snapshots the counters, and two
// generators started from the same copy allocate identical indices for
// identical call sequences.
type Allocator struct {
	sampler uint32
	uniform uint32
	storage uint32
}

// Counters is a read-only view of an Allocator.
type Counters struct {
	Samplers      uint32
	UniformBlocks uint32
	StorageBlocks uint32
}

// NextSampler returns the next sampler binding index.
func (a *Allocator) NextSampler() uint32 {
	n := a.sampler
	a.sampler++
	return n
}

// NextUniformBlock returns the next uniform block binding index.
func (a *Allocator) NextUniformBlock() uint32 {
	n := a.uniform
	a.uniform++
	return n
}

// NextStorageBlock returns the next storage block binding index.
func (a *Allocator) NextStorageBlock() uint32 {
	n := a.storage
	a.storage++
	return n
}

// Counters returns the number of indices allocated in each namespace.
func (a Allocator) Counters() Counters {
	return Counters{Samplers: a.sampler, UniformBlocks: a.uniform, StorageBlocks: a.storage}
}
