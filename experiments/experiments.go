// Package experiments runs randomized decoding trials: encode a random
// message, corrupt a chosen number of symbols, run both decoders and
// tabulate the outcomes. All randomness is derived from a caller-supplied
// seed, so a sweep is reproducible bit for bit. Nothing here is part of the
// codec contract; the packages under test stay pure.
package experiments

import (
	"crypto/cipher"
	"fmt"
	"math/big"

	"github.com/montanaflynn/stats"
	"go.dedis.ch/kyber/v4/util/random"
	"go.dedis.ch/kyber/v4/xof/blake2xb"
	"golang.org/x/xerrors"

	"github.com/ThatGuyVanquish/ReedSolomon-Sage/corruption"
	"github.com/ThatGuyVanquish/ReedSolomon-Sage/gf"
	"github.com/ThatGuyVanquish/ReedSolomon-Sage/logging"
	"github.com/ThatGuyVanquish/ReedSolomon-Sage/reedsolomon"
)

// Params describes one batch of identical trials.
type Params struct {
	Q      uint64
	K      int
	N      int
	Errors int // symbols corrupted per trial, also the declared bound
	Trials int
	Seed   string
}

func (p Params) label() string {
	return fmt.Sprintf("GF(%d) k=%d n=%d e=%d", p.Q, p.K, p.N, p.Errors)
}

// Result tabulates the outcomes of one batch. Counters always sum to Trials
// per decoder.
type Result struct {
	Params Params

	UniqueSuccesses int // decoded and equal to the original
	UniqueWrong     int // decoded but different (possible beyond the radius)
	UniqueFailures  int // clean decode failure

	ListContains int // original message among the candidates
	ListMisses   int
}

// UniqueRate is the fraction of trials the unique decoder recovered exactly.
func (r Result) UniqueRate() float64 {
	if r.Params.Trials == 0 {
		return 0
	}
	return float64(r.UniqueSuccesses) / float64(r.Params.Trials)
}

// ListRate is the fraction of trials with the original among the candidates.
func (r Result) ListRate() float64 {
	if r.Params.Trials == 0 {
		return 0
	}
	return float64(r.ListContains) / float64(r.Params.Trials)
}

// Run executes one batch of trials.
func Run(p Params) (Result, error) {
	if p.Trials < 1 {
		return Result{}, xerrors.Errorf("trial count %d must be at least 1", p.Trials)
	}
	codec, err := reedsolomon.NewCodec(p.Q, p.K, p.N)
	if err != nil {
		return Result{}, xerrors.Errorf("experiment setup: %w", err)
	}
	f := codec.Field()
	log := logging.GetLogger(p.label())

	res := Result{Params: p}
	for trial := 0; trial < p.Trials; trial++ {
		stream := blake2xb.New([]byte(fmt.Sprintf("%s/%s/%d", p.Seed, p.label(), trial)))

		msg := randomMessage(f, p.K, stream)
		encoded, err := codec.Encode(msg)
		if err != nil {
			return Result{}, xerrors.Errorf("trial %d: %w", trial, err)
		}
		received, _ := corruption.Corrupt(f, encoded, p.Errors, stream)

		decoded, err := codec.DecodeUnique(received, p.Errors)
		switch {
		case err != nil:
			res.UniqueFailures++
		case equal(decoded, msg):
			res.UniqueSuccesses++
		default:
			res.UniqueWrong++
		}

		candidates, _ := codec.DecodeList(received, p.Errors)
		if contains(candidates, msg) {
			res.ListContains++
		} else {
			res.ListMisses++
		}
	}

	log.Info().
		Int("trials", p.Trials).
		Float64("uniqueRate", res.UniqueRate()).
		Float64("listRate", res.ListRate()).
		Int("uniqueWrong", res.UniqueWrong).
		Msg("batch finished")
	return res, nil
}

// SweepPoint is one batch of a sweep over injected error counts.
type SweepPoint struct {
	Errors     int
	UniqueRate float64
	ListRate   float64
}

// Sweep runs batches for every error count 0..maxErrors.
func Sweep(q uint64, k, n, maxErrors, trials int, seed string) ([]SweepPoint, error) {
	points := make([]SweepPoint, 0, maxErrors+1)
	for e := 0; e <= maxErrors; e++ {
		res, err := Run(Params{Q: q, K: k, N: n, Errors: e, Trials: trials, Seed: seed})
		if err != nil {
			return nil, err
		}
		points = append(points, SweepPoint{Errors: e, UniqueRate: res.UniqueRate(), ListRate: res.ListRate()})
	}
	return points, nil
}

// Summary aggregates a sweep's success rates.
type Summary struct {
	MeanUnique   float64
	MeanList     float64
	MedianUnique float64
	MedianList   float64
}

// Summarize reduces sweep points with the usual descriptive statistics.
func Summarize(points []SweepPoint) (Summary, error) {
	if len(points) == 0 {
		return Summary{}, xerrors.New("no sweep points to summarize")
	}
	unique := make([]float64, len(points))
	list := make([]float64, len(points))
	for i, pt := range points {
		unique[i] = pt.UniqueRate
		list[i] = pt.ListRate
	}

	var s Summary
	var err error
	if s.MeanUnique, err = stats.Mean(unique); err != nil {
		return Summary{}, err
	}
	if s.MeanList, err = stats.Mean(list); err != nil {
		return Summary{}, err
	}
	if s.MedianUnique, err = stats.Median(unique); err != nil {
		return Summary{}, err
	}
	if s.MedianList, err = stats.Median(list); err != nil {
		return Summary{}, err
	}
	return s, nil
}

func randomMessage(f gf.Field, k int, stream cipher.Stream) []uint64 {
	q := new(big.Int).SetUint64(f.Order())
	msg := make([]uint64, k)
	for i := range msg {
		msg[i] = random.Int(q, stream).Uint64()
	}
	return msg
}

func equal(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func contains(candidates [][]uint64, msg []uint64) bool {
	for _, c := range candidates {
		if equal(c, msg) {
			return true
		}
	}
	return false
}
