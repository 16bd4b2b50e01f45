// Package corruption injects synthetic symbol errors into codewords for test
// fixtures and experiments. Randomness comes only from the caller's
// cipher.Stream, so a blake2xb stream with a fixed seed reproduces the exact
// error pattern.
package corruption

import (
	"crypto/cipher"
	"math/big"

	"go.dedis.ch/kyber/v4/util/random"

	"github.com/ThatGuyVanquish/ReedSolomon-Sage/gf"
)

// Corrupt returns a copy of the codeword with count distinct positions
// replaced by a different random symbol, along with the number of positions
// actually altered (count is capped at the codeword length). The input is
// never mutated.
func Corrupt(f gf.Field, codeword []uint64, count int, stream cipher.Stream) ([]uint64, int) {
	out := make([]uint64, len(codeword))
	copy(out, codeword)

	if count > len(out) {
		count = len(out)
	}
	if count <= 0 {
		return out, 0
	}

	n := big.NewInt(int64(len(out)))
	q := new(big.Int).SetUint64(f.Order())

	chosen := make(map[int]struct{}, count)
	for len(chosen) < count {
		idx := int(random.Int(n, stream).Int64())
		if _, done := chosen[idx]; done {
			continue
		}
		chosen[idx] = struct{}{}

		for {
			v := random.Int(q, stream).Uint64()
			if v != out[idx] {
				out[idx] = v
				break
			}
		}
	}
	return out, count
}
