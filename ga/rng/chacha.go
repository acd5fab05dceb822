package rng

import (
	"encoding/binary"
	"math/bits"
)

const (
	chachaRounds = 8
	blockWords   = 16
	bufferBlocks = 4
	bufferWords  = blockWords * bufferBlocks
)

// ChaCha8 is a Source backed by the ChaCha stream cipher reduced to 8 rounds.
//
// The 32-byte seed is the cipher key, the stream id is zero and the 64-bit
// block counter starts at zero. Output words are handed out in keystream
// order from a buffer of four blocks, so a given seed always yields the same
// sequence of Uint32 and Uint64 values regardless of how the two calls are
// interleaved.
type ChaCha8 struct {
	key     [8]uint32
	stream  [2]uint32
	counter uint64
	buf     [bufferWords]uint32
	index   int
}

// NewChaCha8 creates a generator keyed with seed.
func NewChaCha8(seed [32]byte) *ChaCha8 {
	c := &ChaCha8{}
	c.Reseed(seed)
	return c
}

// SeedChaCha8 creates a generator from a 64-bit seed, stored little-endian in
// the first eight key bytes. A zero seed is identical to NewChaCha8 with an
// all-zero key.
func SeedChaCha8(seed uint64) *ChaCha8 {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	return NewChaCha8(key)
}

// Reseed restarts the keystream with a new key.
func (c *ChaCha8) Reseed(seed [32]byte) {
	for i := range c.key {
		c.key[i] = binary.LittleEndian.Uint32(seed[i*4:])
	}
	c.counter = 0
	c.index = bufferWords // Force a refill on the next read.
}

// Uint32 returns the next keystream word.
func (c *ChaCha8) Uint32() uint32 {
	if c.index >= bufferWords {
		c.refill()
		c.index = 0
	}
	v := c.buf[c.index]
	c.index++
	return v
}

// Uint64 returns the next two keystream words, low word first.
func (c *ChaCha8) Uint64() uint64 {
	switch {
	case c.index < bufferWords-1:
		lo, hi := c.buf[c.index], c.buf[c.index+1]
		c.index += 2
		return uint64(hi)<<32 | uint64(lo)
	case c.index >= bufferWords:
		c.refill()
		c.index = 2
		return uint64(c.buf[1])<<32 | uint64(c.buf[0])
	default:
		// One word left: it becomes the low half, the fresh buffer supplies the high half.
		lo := c.buf[bufferWords-1]
		c.refill()
		c.index = 1
		return uint64(c.buf[0])<<32 | uint64(lo)
	}
}

func (c *ChaCha8) refill() {
	for b := 0; b < bufferBlocks; b++ {
		c.block(c.counter+uint64(b), c.buf[b*blockWords:(b+1)*blockWords])
	}
	c.counter += bufferBlocks
}

func (c *ChaCha8) block(counter uint64, out []uint32) {
	in := [blockWords]uint32{
		0x61707865, 0x3320646e, 0x79622d32, 0x6b206574, // "expand 32-byte k"
		c.key[0], c.key[1], c.key[2], c.key[3],
		c.key[4], c.key[5], c.key[6], c.key[7],
		uint32(counter), uint32(counter >> 32), c.stream[0], c.stream[1],
	}
	x := in
	for i := 0; i < chachaRounds; i += 2 {
		// Column round.
		quarterRound(&x, 0, 4, 8, 12)
		quarterRound(&x, 1, 5, 9, 13)
		quarterRound(&x, 2, 6, 10, 14)
		quarterRound(&x, 3, 7, 11, 15)
		// Diagonal round.
		quarterRound(&x, 0, 5, 10, 15)
		quarterRound(&x, 1, 6, 11, 12)
		quarterRound(&x, 2, 7, 8, 13)
		quarterRound(&x, 3, 4, 9, 14)
	}
	for i := range out {
		out[i] = x[i] + in[i]
	}
}

func quarterRound(x *[blockWords]uint32, a, b, c, d int) {
	x[a] += x[b]
	x[d] = bits.RotateLeft32(x[d]^x[a], 16)
	x[c] += x[d]
	x[b] = bits.RotateLeft32(x[b]^x[c], 12)
	x[a] += x[b]
	x[d] = bits.RotateLeft32(x[d]^x[a], 8)
	x[c] += x[d]
	x[b] = bits.RotateLeft32(x[b]^x[c], 7)
}
