// Package batch scores a YAML file of hands in one run.
package batch

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hashicorp/golang-lru/v2"
	"gopkg.in/yaml.v3"

	"github.com/gondolyr/mahc"
)

// File is the top level of a batch document.
type File struct {
	Hands []Entry `yaml:"hands"`
}

// Entry is one hand to score. When Manual holds a [han, fu] pair the tiles are
// ignored and the pair is priced directly.
type Entry struct {
	Name         string   `yaml:"name"`
	Tiles        []string `yaml:"tiles"`
	Win          string   `yaml:"win"`
	Seat         string   `yaml:"seat"`
	Prev         string   `yaml:"prev"`
	Tsumo        bool     `yaml:"tsumo"`
	Riichi       bool     `yaml:"riichi"`
	DoubleRiichi bool     `yaml:"double_riichi"`
	Ippatsu      bool     `yaml:"ippatsu"`
	Haitei       bool     `yaml:"haitei"`
	Chankan      bool     `yaml:"chankan"`
	Rinshan      bool     `yaml:"rinshan"`
	Dora         int      `yaml:"dora"`
	Honba        int      `yaml:"honba"`
	Manual       []int    `yaml:"manual"`
}

func (e Entry) conditions() mahc.WinConditions {
	return mahc.WinConditions{
		Tsumo:        e.Tsumo,
		Riichi:       e.Riichi,
		DoubleRiichi: e.DoubleRiichi,
		Ippatsu:      e.Ippatsu,
		Haitei:       e.Haitei,
		Chankan:      e.Chankan,
		Rinshan:      e.Rinshan,
	}
}

// ErrBadManual is returned for a manual entry that is not exactly [han, fu].
var ErrBadManual = errors.New("manual must be [han, fu]")

// Decode reads a batch document. Unknown keys are rejected.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("decode batch: %w", err)
	}
	return &f, nil
}

// Load opens and decodes a batch file.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return Decode(fh)
}

// Result is the outcome of one entry. Score is nil for manual entries and on error.
type Result struct {
	Name     string
	Score    *mahc.HandScore
	Payments mahc.Payments
	Err      error
}

type paymentKey struct {
	han, fu, honba int
}

// Scorer prices entries, memoizing payments by (han, fu, honba). It is not safe for
// concurrent use.
type Scorer struct {
	cache  *lru.Cache[paymentKey, mahc.Payments]
	seat   string
	prev   string
	logger *slog.Logger
	hits   int
}

// NewScorer creates a scorer whose memo holds up to size entries. seat and prev are
// used for entries that leave their winds empty.
func NewScorer(size int, seat, prev string, logger *slog.Logger) (*Scorer, error) {
	cache, err := lru.New[paymentKey, mahc.Payments](size)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Scorer{cache: cache, seat: seat, prev: prev, logger: logger}, nil
}

// Hits reports how many prices were served from the memo.
func (s *Scorer) Hits() int { return s.hits }

// price is a mahc.PaymentFunc backed by the memo. Errors are never cached.
func (s *Scorer) price(han, fu, honba int) (mahc.Payments, error) {
	key := paymentKey{han: han, fu: fu, honba: honba}
	if p, ok := s.cache.Get(key); ok {
		s.hits++
		return p, nil
	}
	p, err := mahc.Calculate(han, fu, honba)
	if err != nil {
		return mahc.Payments{}, err
	}
	s.cache.Add(key, p)
	return p, nil
}

// Score evaluates one entry.
func (s *Scorer) Score(e Entry) Result {
	res := Result{Name: e.Name}

	if e.Manual != nil {
		if len(e.Manual) != 2 {
			res.Err = fmt.Errorf("hand %q: %w", e.Name, ErrBadManual)
			return res
		}
		p, err := s.price(e.Manual[0], e.Manual[1], e.Honba)
		if err != nil {
			res.Err = fmt.Errorf("hand %q: %w", e.Name, err)
			return res
		}
		res.Payments = p
		return res
	}

	seat := e.Seat
	if seat == "" {
		seat = s.seat
	}
	prev := e.Prev
	if prev == "" {
		prev = s.prev
	}

	h, err := mahc.NewHand(e.Tiles, e.Win, seat, prev, e.conditions())
	if err != nil {
		res.Err = fmt.Errorf("hand %q: %w", e.Name, err)
		return res
	}
	score, err := mahc.GetHandScoreWith(h, e.Dora, e.Honba, s.price)
	if err != nil {
		res.Err = fmt.Errorf("hand %q: %w", e.Name, err)
		return res
	}
	res.Score = &score
	res.Payments = score.Payments
	return res
}

// ScoreAll evaluates every entry in file order. A failing entry does not stop the run.
func (s *Scorer) ScoreAll(f *File) []Result {
	results := make([]Result, 0, len(f.Hands))
	for i, e := range f.Hands {
		r := s.Score(e)
		if r.Err != nil {
			s.logger.Warn("hand failed", "index", i, "name", e.Name, "error", r.Err)
		} else {
			s.logger.Debug("hand scored", "index", i, "name", e.Name,
				"dealer_ron", r.Payments.DealerRon, "non_dealer_ron", r.Payments.NonDealerRon)
		}
		results = append(results, r)
	}
	s.logger.Info("batch complete", "hands", len(results), "cache_hits", s.hits)
	return results
}
